package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/careervault/careervault-server/internal/api/http/handler"
	"github.com/careervault/careervault-server/internal/api/http/middleware"
	"github.com/careervault/careervault-server/internal/logger"
	"github.com/careervault/careervault-server/internal/model"
)

// Router wires the HTTP surface: profile endpoints, metrics, health.
type Router struct {
	registry       handler.RegistryService
	encryptor      model.Encryptor
	contextManager model.ContextManager
	fallbackActor  string
	logger         *logger.Logger
}

// New creates a Router instance.
func New(
	registry handler.RegistryService,
	encryptor model.Encryptor,
	contextManager model.ContextManager,
	fallbackActor string,
	logger *logger.Logger,
) *Router {
	return &Router{
		registry:       registry,
		encryptor:      encryptor,
		contextManager: contextManager,
		fallbackActor:  fallbackActor,
		logger:         logger,
	}
}

// Register builds the chi mux with all middleware and routes.
func (r *Router) Register() *chi.Mux {
	logging := middleware.NewLogging(r.logger)
	actor := middleware.NewActor(r.contextManager, r.fallbackActor)
	profile := handler.NewProfile(r.registry, r.encryptor, r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(chimiddleware.RequestID)
	mux.Use(chimiddleware.Recoverer)
	mux.Use(logging.Handle)

	mux.Route("/api/v1/profiles", func(api chi.Router) {
		api.Use(actor.Handle)
		api.Post("/", profile.Create)
		api.Get("/", profile.List)
		api.Get("/stats", profile.Stats)
		api.Post("/{id}/recommend", profile.Recommend)
		api.Post("/{id}/reject", profile.Reject)
	})

	mux.Handle("/metrics", promhttp.Handler())
	mux.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return mux
}
