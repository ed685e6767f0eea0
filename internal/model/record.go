package model

import "context"

// IndexManager owns the single ledger value holding the ordered list of
// all record ids.
type IndexManager interface {
	ListIDs(ctx context.Context) ([]string, error)
	AppendID(ctx context.Context, id string) error
}

// RecordStore defines persistence operations for individual records.
type RecordStore interface {
	Get(ctx context.Context, id string) (Record, error)
	Put(ctx context.Context, id string, record Record) error
}

// Record represents one career profile. Skills, Interests and History
// hold ciphertext blobs; the registry never inspects them.
type Record struct {
	ID             string
	Skills         string
	Interests      string
	History        string
	Recommendation string
	CreatedAt      int64
	Owner          string
	Status         Status
}

// Status enumerates the review states of a record.
type Status string

const (
	// StatusPending is the initial state of every record.
	StatusPending Status = "pending"
	// StatusRecommended is a terminal state reached once a recommendation is generated.
	StatusRecommended Status = "recommended"
	// StatusRejected is a terminal state.
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the known states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusRecommended, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition may leave s.
func (s Status) Terminal() bool {
	return s == StatusRecommended || s == StatusRejected
}

// CreateProfileParams contains parameters to create a profile record.
// Field values are ciphertext blobs produced by the caller.
type CreateProfileParams struct {
	Skills    string
	Interests string
	History   string
	Owner     string
}
