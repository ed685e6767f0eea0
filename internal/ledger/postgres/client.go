// Package postgres provides a Ledger backed by a single key-value
// table. Each key is read and written independently; the registry never
// relies on cross-key transactions even though the database could offer
// them, keeping the backend interchangeable with the other ledgers.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/careervault/careervault-server/internal/model"
)

var _ model.Ledger = (*Ledger)(nil)

type Ledger struct {
	db *Connection
}

func NewLedger(db *Connection) *Ledger {
	return &Ledger{
		db: db,
	}
}

// Get returns the value under key or model.ErrKeyNotFound.
func (l *Ledger) Get(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT value FROM ledger_values WHERE key = $1`

	var value []byte
	err := l.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrKeyNotFound
		}
		return nil, fmt.Errorf("postgres get %q: %w", key, err)
	}

	return value, nil
}

// Set stores value under key, replacing any prior value.
func (l *Ledger) Set(ctx context.Context, key string, value []byte) error {
	const query = `
		INSERT INTO ledger_values (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	if _, err := l.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("postgres set %q: %w", key, err)
	}

	return nil
}
