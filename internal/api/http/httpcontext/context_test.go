package httpcontext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_SetAndGetActor(t *testing.T) {
	m := NewManager()

	ctx := m.SetActorToContext(context.Background(), "0xAA")

	actor, ok := m.GetActorFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "0xAA", actor)
}

func TestManager_GetActorMissing(t *testing.T) {
	m := NewManager()

	actor, ok := m.GetActorFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, actor)
}

func TestManager_EmptyActorTreatedAsMissing(t *testing.T) {
	m := NewManager()

	ctx := m.SetActorToContext(context.Background(), "")

	_, ok := m.GetActorFromContext(ctx)
	assert.False(t, ok)
}
