// Package httpcontext moves the acting wallet address through request
// contexts.
package httpcontext

import (
	"context"

	"github.com/careervault/careervault-server/internal/model"
)

type contextKey int

const actorKey contextKey = iota

var _ model.ContextManager = (*Manager)(nil)

// Manager stores and retrieves the actor address on a request context.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// SetActorToContext returns a child context carrying the actor address.
func (m *Manager) SetActorToContext(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActorFromContext returns the actor address and whether one was set.
func (m *Manager) GetActorFromContext(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(actorKey).(string)
	if !ok || actor == "" {
		return "", false
	}
	return actor, true
}
