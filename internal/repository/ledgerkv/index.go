// Package ledgerkv implements the index manager and record store on
// top of a byte-valued key-value ledger.
package ledgerkv

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/careervault/careervault-server/internal/codec"
	"github.com/careervault/careervault-server/internal/logger"
	"github.com/careervault/careervault-server/internal/model"
)

// indexKey is the single ledger key holding the list of all record ids.
const indexKey = "path_keys"

var _ model.IndexManager = (*Index)(nil)

// Index owns the index key. It is the only writer of that key.
type Index struct {
	ledger model.Ledger
	logger *logger.Logger
}

func NewIndex(ledger model.Ledger, logger *logger.Logger) *Index {
	return &Index{
		ledger: ledger,
		logger: logger,
	}
}

// ListIDs reads the index value. An absent key means no index yet; an
// undecodable value is logged and treated the same way.
func (i *Index) ListIDs(ctx context.Context) ([]string, error) {
	data, err := i.ledger.Get(ctx, indexKey)
	if errors.Is(err, model.ErrKeyNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}

	ids, err := codec.DecodeIDs(data)
	if err != nil {
		i.logger.Warn("index value not decodable, treating as empty", "key", indexKey, "error", err)
		return []string{}, nil
	}

	return ids, nil
}

// AppendID adds id to the index unless it is already present. The
// read-modify-write has no compare-and-swap underneath: a concurrent
// append landing between the read and the write is silently lost, last
// writer wins on the whole list.
func (i *Index) AppendID(ctx context.Context, id string) error {
	ids, err := i.ListIDs(ctx)
	if err != nil {
		return err
	}

	if slices.Contains(ids, id) {
		return nil
	}
	ids = append(ids, id)

	data, err := codec.EncodeIDs(ids)
	if err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}

	if err := i.ledger.Set(ctx, indexKey, data); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}

	return nil
}
