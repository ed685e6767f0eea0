package model

import "context"

// Ledger is an external byte-valued key-value store. Keys are read and
// written independently; there is no multi-key transaction and no
// compare-and-swap. Get returns ErrKeyNotFound for an absent key.
type Ledger interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
