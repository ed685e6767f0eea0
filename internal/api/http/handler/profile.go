package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/careervault/careervault-server/internal/logger"
	"github.com/careervault/careervault-server/internal/model"
	"github.com/careervault/careervault-server/internal/view"
)

// RegistryService is the slice of the registry the HTTP surface needs.
type RegistryService interface {
	LoadAll(ctx context.Context) ([]model.Record, error)
	Create(ctx context.Context, params model.CreateProfileParams) (model.Record, error)
	Recommend(ctx context.Context, id, actor string) (model.Record, error)
	Reject(ctx context.Context, id, actor string) (model.Record, error)
}

// Profile handles the career profile endpoints.
type Profile struct {
	registry   RegistryService
	encryptor  model.Encryptor
	ctxManager model.ContextManager
	logger     *logger.Logger
}

func NewProfile(
	registry RegistryService,
	encryptor model.Encryptor,
	ctxManager model.ContextManager,
	logger *logger.Logger,
) *Profile {
	return &Profile{
		registry:   registry,
		encryptor:  encryptor,
		ctxManager: ctxManager,
		logger:     logger,
	}
}

type createProfileRequest struct {
	Skills    string `json:"skills"`
	Interests string `json:"interests"`
	History   string `json:"history"`
}

type profileResponse struct {
	ID             string `json:"id"`
	Skills         string `json:"skills"`
	Interests      string `json:"interests"`
	History        string `json:"history"`
	Recommendation string `json:"recommendation"`
	CreatedAt      int64  `json:"createdAt"`
	Owner          string `json:"owner"`
	Status         string `json:"status"`
}

func toProfileResponse(r model.Record) profileResponse {
	return profileResponse{
		ID:             r.ID,
		Skills:         r.Skills,
		Interests:      r.Interests,
		History:        r.History,
		Recommendation: r.Recommendation,
		CreatedAt:      r.CreatedAt,
		Owner:          r.Owner,
		Status:         string(r.Status),
	}
}

// Create handles POST /api/v1/profiles. Plaintext fields are encrypted
// here, at the boundary; only ciphertext blobs travel further down.
func (h *Profile) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.ctxManager.GetActorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "wallet address required"})
		return
	}

	var req createProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	record, err := h.registry.Create(r.Context(), model.CreateProfileParams{
		Skills:    h.encryptor.Encrypt(req.Skills),
		Interests: h.encryptor.Encrypt(req.Interests),
		History:   h.encryptor.Encrypt(req.History),
		Owner:     actor,
	})
	if err != nil {
		h.logger.Error("failed to create profile", "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProfileResponse(record))
}

// List handles GET /api/v1/profiles with optional status and search
// query parameters.
func (h *Profile) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.registry.LoadAll(r.Context())
	if err != nil {
		h.logger.Error("failed to load profiles", "error", err)
		writeError(w, err)
		return
	}

	filter := view.Filter{
		Status: model.Status(r.URL.Query().Get("status")),
		Search: r.URL.Query().Get("search"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown status filter"})
		return
	}

	filtered := view.Apply(records, filter)
	out := make([]profileResponse, 0, len(filtered))
	for _, record := range filtered {
		out = append(out, toProfileResponse(record))
	}

	writeJSON(w, http.StatusOK, out)
}

// Stats handles GET /api/v1/profiles/stats.
func (h *Profile) Stats(w http.ResponseWriter, r *http.Request) {
	records, err := h.registry.LoadAll(r.Context())
	if err != nil {
		h.logger.Error("failed to load profiles", "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view.Summarize(records))
}

// Recommend handles POST /api/v1/profiles/{id}/recommend.
func (h *Profile) Recommend(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.registry.Recommend)
}

// Reject handles POST /api/v1/profiles/{id}/reject.
func (h *Profile) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.registry.Reject)
}

func (h *Profile) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id, actor string) (model.Record, error)) {
	actor, ok := h.ctxManager.GetActorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "wallet address required"})
		return
	}

	id := chi.URLParam(r, "id")
	record, err := op(r.Context(), id, actor)
	if err != nil {
		h.logger.Error("failed to transition profile", "id", id, "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(record))
}
