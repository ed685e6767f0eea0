// Package memory provides an in-process Ledger used as the default
// backend and throughout the tests.
package memory

import (
	"context"
	"sync"

	"github.com/careervault/careervault-server/internal/model"
)

var _ model.Ledger = (*Ledger)(nil)

// Ledger is an in-memory key-value ledger. Safe for concurrent use.
type Ledger struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// New creates an empty in-memory ledger.
func New() *Ledger {
	return &Ledger{
		values: make(map[string][]byte),
	}
}

// Get returns the value under key or model.ErrKeyNotFound.
func (l *Ledger) Get(_ context.Context, key string) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	value, ok := l.values[key]
	if !ok {
		return nil, model.ErrKeyNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores value under key, replacing any prior value.
func (l *Ledger) Set(_ context.Context, key string, value []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	l.values[key] = stored
	return nil
}
