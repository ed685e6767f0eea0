package ledgerkv

import (
	"context"
	"errors"
	"fmt"

	"github.com/careervault/careervault-server/internal/codec"
	"github.com/careervault/careervault-server/internal/logger"
	"github.com/careervault/careervault-server/internal/model"
)

// recordKeyPrefix prefixes the per-record ledger keys.
const recordKeyPrefix = "path_"

func recordKey(id string) string {
	return recordKeyPrefix + id
}

var _ model.RecordStore = (*RecordRepository)(nil)

// RecordRepository owns the per-record ledger keys.
type RecordRepository struct {
	ledger model.Ledger
	logger *logger.Logger
}

func NewRecordRepository(ledger model.Ledger, logger *logger.Logger) *RecordRepository {
	return &RecordRepository{
		ledger: ledger,
		logger: logger,
	}
}

// Get reads and decodes the record stored under id. An undecodable
// value makes the record unusable and is reported as model.ErrNotFound,
// logged as a recoverable data-integrity event.
func (r *RecordRepository) Get(ctx context.Context, id string) (model.Record, error) {
	data, err := r.ledger.Get(ctx, recordKey(id))
	if errors.Is(err, model.ErrKeyNotFound) {
		return model.Record{}, model.ErrNotFound
	}
	if err != nil {
		return model.Record{}, fmt.Errorf("failed to read record %q: %w", id, err)
	}

	record, err := codec.DecodeRecord(id, data)
	if err != nil {
		r.logger.Warn("record value not decodable", "id", id, "error", err)
		return model.Record{}, model.ErrNotFound
	}

	return record, nil
}

// Put encodes and writes the record under its per-id key. Full
// overwrite semantics, no precondition on the prior value.
func (r *RecordRepository) Put(ctx context.Context, id string, record model.Record) error {
	data, err := codec.EncodeRecord(record)
	if err != nil {
		return fmt.Errorf("failed to encode record %q: %w", id, err)
	}

	if err := r.ledger.Set(ctx, recordKey(id), data); err != nil {
		return fmt.Errorf("failed to write record %q: %w", id, err)
	}

	return nil
}
