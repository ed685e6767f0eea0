// Package encrypt provides the opaque field transform applied before
// profile fields reach the registry. The registry stores and moves the
// resulting blobs without ever interpreting them.
package encrypt

import (
	"encoding/base64"

	"github.com/careervault/careervault-server/internal/model"
)

var _ model.Encryptor = (*FHE)(nil)

// FHE simulates a homomorphic encryption transform with a marker
// prefix over base64, matching the blobs already on the ledger.
type FHE struct{}

func NewFHE() *FHE {
	return &FHE{}
}

// Encrypt transforms plaintext into a ciphertext blob. Empty input
// stays empty so optional fields keep their absence on the wire.
func (f *FHE) Encrypt(plaintext string) string {
	if plaintext == "" {
		return ""
	}
	return "FHE-" + base64.StdEncoding.EncodeToString([]byte(plaintext))
}
