// Package view shapes a loaded record list for presentation. It never
// touches the ledger.
package view

import (
	"strings"

	"github.com/careervault/careervault-server/internal/model"
)

// Filter narrows a record list. A zero Filter keeps everything.
type Filter struct {
	// Status keeps only records in this state; empty means all.
	Status model.Status
	// Search keeps records whose recommendation or owner contains the
	// term, case-insensitively.
	Search string
}

// Apply returns the records passing the filter, preserving order.
func Apply(records []model.Record, f Filter) []model.Record {
	out := make([]model.Record, 0, len(records))
	term := strings.ToLower(f.Search)

	for _, r := range records {
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(r.Recommendation), term) &&
			!strings.Contains(strings.ToLower(r.Owner), term) {
			continue
		}
		out = append(out, r)
	}

	return out
}

// Stats holds per-status counts over a record list.
type Stats struct {
	Total       int `json:"total"`
	Pending     int `json:"pending"`
	Recommended int `json:"recommended"`
	Rejected    int `json:"rejected"`
}

// Summarize counts records per status.
func Summarize(records []model.Record) Stats {
	s := Stats{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case model.StatusPending:
			s.Pending++
		case model.StatusRecommended:
			s.Recommended++
		case model.StatusRejected:
			s.Rejected++
		}
	}
	return s
}
