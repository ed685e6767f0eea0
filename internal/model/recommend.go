package model

import "context"

// Recommender computes a career path recommendation over a record's
// ciphertext blobs. The computation is opaque and may be slow.
type Recommender interface {
	Compute(ctx context.Context, record Record) (string, error)
}

// Encryptor transforms a plaintext field into an opaque ciphertext
// blob. Decryption never happens server-side.
type Encryptor interface {
	Encrypt(plaintext string) string
}
