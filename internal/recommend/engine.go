// Package recommend hosts the recommendation engine collaborator. The
// computation is a black box from the registry's point of view: it
// takes a record's ciphertext blobs and produces a recommendation
// string after a multi-second delay.
package recommend

import (
	"context"
	"math/rand"
	"time"

	"github.com/careervault/careervault-server/internal/model"
)

var careerPaths = []string{
	"Senior Developer → Tech Lead → CTO",
	"Data Analyst → Data Scientist → AI Researcher",
	"Marketing Associate → Brand Manager → CMO",
	"HR Specialist → HR Manager → CHRO",
	"Financial Analyst → Finance Manager → CFO",
}

var _ model.Recommender = (*Engine)(nil)

// Engine simulates an encrypted-domain computation: it waits for the
// configured latency and picks a career path. It never reads the
// ciphertext blobs.
type Engine struct {
	latency time.Duration
	pick    func(n int) int
}

// NewEngine creates an engine with the given simulated latency.
func NewEngine(latency time.Duration) *Engine {
	return &Engine{
		latency: latency,
		pick:    rand.Intn,
	}
}

// Compute returns a recommendation for the record. Cancelling the
// context aborts the wait.
func (e *Engine) Compute(ctx context.Context, _ model.Record) (string, error) {
	if e.latency > 0 {
		timer := time.NewTimer(e.latency)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	return careerPaths[e.pick(len(careerPaths))], nil
}
