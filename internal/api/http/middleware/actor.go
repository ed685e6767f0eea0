package middleware

import (
	"net/http"

	"github.com/careervault/careervault-server/internal/model"
)

// ActorHeader carries the caller's wallet address. The value is taken
// as ground truth; there is no signature check behind it.
const ActorHeader = "X-Wallet-Address"

// Actor resolves the acting identity for each request: the wallet
// header when present, otherwise the configured fallback address.
type Actor struct {
	ctxManager model.ContextManager
	fallback   string
}

// NewActor creates a new Actor middleware with the given fallback
// address, which may be empty.
func NewActor(ctxManager model.ContextManager, fallback string) *Actor {
	return &Actor{
		ctxManager: ctxManager,
		fallback:   fallback,
	}
}

// Handle stores the resolved actor on the request context.
func (a *Actor) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := r.Header.Get(ActorHeader)
		if actor == "" {
			actor = a.fallback
		}

		ctx := a.ctxManager.SetActorToContext(r.Context(), actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
