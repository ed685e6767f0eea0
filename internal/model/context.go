package model

import "context"

// ContextManager moves the acting wallet address in and out of a
// request context.
type ContextManager interface {
	SetActorToContext(ctx context.Context, actor string) context.Context
	GetActorFromContext(ctx context.Context) (string, bool)
}
