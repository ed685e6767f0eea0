package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/careervault/careervault-server/internal/logger"
	"github.com/careervault/careervault-server/internal/metrics"
	"github.com/careervault/careervault-server/internal/model"
)

// Registry composes the index manager and record store into the
// profile lifecycle: create, load, transition. It is the sole writer of
// the ledger keys both collaborators manage.
type Registry struct {
	index       model.IndexManager
	store       model.RecordStore
	recommender model.Recommender
	metrics     *metrics.Metrics
	logger      *logger.Logger
	now         func() time.Time
}

func NewRegistry(
	index model.IndexManager,
	store model.RecordStore,
	recommender model.Recommender,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) *Registry {
	return &Registry{
		index:       index,
		store:       store,
		recommender: recommender,
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
	}
}

// LoadAll rebuilds the full view from the ledger: every indexed id is
// fetched individually, orphan ids are dropped, and the result is
// ordered by creation time descending with the id as tiebreak. There is
// no cache; every call re-reads the ledger.
func (s *Registry) LoadAll(ctx context.Context) ([]model.Record, error) {
	ids, err := s.index.ListIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list record ids: %w", err)
	}

	records := make([]model.Record, 0, len(ids))
	for _, id := range ids {
		record, err := s.store.Get(ctx, id)
		if errors.Is(err, model.ErrNotFound) {
			// One broken record must not hide the rest of the list.
			s.logger.Warn("orphan id in index, skipping", "id", id)
			s.metrics.IncOrphansSkipped()
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load record %q: %w", id, err)
		}
		records = append(records, record)
	}

	slices.SortStableFunc(records, func(a, b model.Record) int {
		if c := cmp.Compare(b.CreatedAt, a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return records, nil
}

// Create validates the required ciphertext fields, builds a pending
// record and persists it. The record value is written before its id is
// appended to the index: a crash between the two writes leaves an
// invisible orphan record, never a dangling index entry.
func (s *Registry) Create(ctx context.Context, params model.CreateProfileParams) (model.Record, error) {
	if params.Skills == "" {
		return model.Record{}, fmt.Errorf("%w: skills are required", model.ErrValidation)
	}
	if params.History == "" {
		return model.Record{}, fmt.Errorf("%w: history is required", model.ErrValidation)
	}

	now := s.now()
	record := model.Record{
		ID:        newRecordID(now),
		Skills:    params.Skills,
		Interests: params.Interests,
		History:   params.History,
		CreatedAt: now.Unix(),
		Owner:     params.Owner,
		Status:    model.StatusPending,
	}

	if err := s.store.Put(ctx, record.ID, record); err != nil {
		return model.Record{}, fmt.Errorf("failed to store record: %w", err)
	}
	if err := s.index.AppendID(ctx, record.ID); err != nil {
		return model.Record{}, fmt.Errorf("failed to index record: %w", err)
	}

	s.metrics.IncProfilesCreated()
	s.logger.Info("profile created", "id", record.ID, "owner", record.Owner)

	return record, nil
}

// Transition moves a pending record into a terminal state on behalf of
// its owner. Recommendation payload is required exactly when the target
// state is recommended. The ownership gate is advisory: the actor
// identity is client-asserted, not attested.
func (s *Registry) Transition(ctx context.Context, id, actor string, newStatus model.Status, recommendation string) (model.Record, error) {
	if !newStatus.Terminal() {
		return model.Record{}, fmt.Errorf("%w: cannot transition to %q", model.ErrValidation, newStatus)
	}

	record, err := s.store.Get(ctx, id)
	if err != nil {
		return model.Record{}, fmt.Errorf("failed to get record: %w", err)
	}
	if record.Owner != actor {
		return model.Record{}, model.ErrNotOwner
	}
	if record.Status != model.StatusPending {
		return model.Record{}, model.ErrInvalidState
	}
	if newStatus == model.StatusRecommended && recommendation == "" {
		return model.Record{}, fmt.Errorf("%w: recommendation payload is required", model.ErrValidation)
	}

	updated := record
	updated.Status = newStatus
	if newStatus == model.StatusRecommended {
		updated.Recommendation = recommendation
	}

	if err := s.store.Put(ctx, id, updated); err != nil {
		return model.Record{}, fmt.Errorf("failed to store record: %w", err)
	}

	s.metrics.IncTransitions(newStatus)
	s.logger.Info("profile transitioned", "id", id, "status", updated.Status)

	return updated, nil
}

// Recommend runs the recommendation engine over the record and, on
// success, transitions it to recommended. The gates are checked before
// the engine runs so a non-owner cannot burn compute time, and the
// record is written only after the recommendation value is in hand; an
// engine failure leaves the record pending.
func (s *Registry) Recommend(ctx context.Context, id, actor string) (model.Record, error) {
	record, err := s.store.Get(ctx, id)
	if err != nil {
		return model.Record{}, fmt.Errorf("failed to get record: %w", err)
	}
	if record.Owner != actor {
		return model.Record{}, model.ErrNotOwner
	}
	if record.Status != model.StatusPending {
		return model.Record{}, model.ErrInvalidState
	}

	recommendation, err := s.recommender.Compute(ctx, record)
	if err != nil {
		return model.Record{}, fmt.Errorf("%w: %v", model.ErrRecommendationFailed, err)
	}

	return s.Transition(ctx, id, actor, model.StatusRecommended, recommendation)
}

// Reject transitions a pending record to rejected.
func (s *Registry) Reject(ctx context.Context, id, actor string) (model.Record, error) {
	return s.Transition(ctx, id, actor, model.StatusRejected, "")
}

// newRecordID builds a collision-resistant id from the creation time
// and a random suffix, mirroring the ids already on the ledger.
func newRecordID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
	return fmt.Sprintf("%d-%s", now.UnixMilli(), suffix)
}
