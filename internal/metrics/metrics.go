// Package metrics exposes Prometheus counters for registry operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/careervault/careervault-server/internal/model"
)

// Metrics holds all Prometheus metrics for the application. A nil
// *Metrics is valid and records nothing, which keeps tests free of
// global registry collisions.
type Metrics struct {
	ProfilesCreated prometheus.Counter
	Recommendations prometheus.Counter
	Rejections      prometheus.Counter
	OrphansSkipped  prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		ProfilesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "careervault_profiles_created_total",
			Help: "Total number of career profiles created",
		}),
		Recommendations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "careervault_recommendations_total",
			Help: "Total number of profiles transitioned to recommended",
		}),
		Rejections: promauto.NewCounter(prometheus.CounterOpts{
			Name: "careervault_rejections_total",
			Help: "Total number of profiles transitioned to rejected",
		}),
		OrphansSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "careervault_orphan_ids_skipped_total",
			Help: "Indexed ids with no decodable record value, dropped during load",
		}),
	}
}

// IncProfilesCreated increments the created counter by 1.
func (m *Metrics) IncProfilesCreated() {
	if m == nil {
		return
	}
	m.ProfilesCreated.Inc()
}

// IncTransitions increments the counter matching the terminal status.
func (m *Metrics) IncTransitions(status model.Status) {
	if m == nil {
		return
	}
	switch status {
	case model.StatusRecommended:
		m.Recommendations.Inc()
	case model.StatusRejected:
		m.Rejections.Inc()
	}
}

// IncOrphansSkipped increments the orphan counter by 1.
func (m *Metrics) IncOrphansSkipped() {
	if m == nil {
		return
	}
	m.OrphansSkipped.Inc()
}
