package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/careervault/careervault-server/internal/api/http/httpcontext"
	"github.com/careervault/careervault-server/internal/api/http/middleware"
	"github.com/careervault/careervault-server/internal/encrypt"
	"github.com/careervault/careervault-server/internal/model"
	"github.com/careervault/careervault-server/internal/testutil"
)

// MockRegistryService mocks the RegistryService interface
type MockRegistryService struct {
	mock.Mock
}

func (m *MockRegistryService) LoadAll(ctx context.Context) ([]model.Record, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Record), args.Error(1)
}

func (m *MockRegistryService) Create(ctx context.Context, params model.CreateProfileParams) (model.Record, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Record), args.Error(1)
}

func (m *MockRegistryService) Recommend(ctx context.Context, id, actor string) (model.Record, error) {
	args := m.Called(ctx, id, actor)
	return args.Get(0).(model.Record), args.Error(1)
}

func (m *MockRegistryService) Reject(ctx context.Context, id, actor string) (model.Record, error) {
	args := m.Called(ctx, id, actor)
	return args.Get(0).(model.Record), args.Error(1)
}

func newTestRouter(registry RegistryService) http.Handler {
	ctxMgr := httpcontext.NewManager()
	h := NewProfile(registry, encrypt.NewFHE(), ctxMgr, testutil.MakeNoopLogger())

	r := chi.NewRouter()
	r.Use(middleware.NewActor(ctxMgr, "").Handle)
	r.Post("/api/v1/profiles", h.Create)
	r.Get("/api/v1/profiles", h.List)
	r.Get("/api/v1/profiles/stats", h.Stats)
	r.Post("/api/v1/profiles/{id}/recommend", h.Recommend)
	r.Post("/api/v1/profiles/{id}/reject", h.Reject)
	return r
}

func TestProfile_Create(t *testing.T) {
	t.Run("success encrypts fields and returns 201", func(t *testing.T) {
		registry := &MockRegistryService{}
		registry.On("Create", mock.Anything, mock.MatchedBy(func(p model.CreateProfileParams) bool {
			return p.Owner == "0xAA" &&
				strings.HasPrefix(p.Skills, "FHE-") &&
				strings.HasPrefix(p.History, "FHE-") &&
				p.Interests == ""
		})).Return(model.Record{ID: "id1", Owner: "0xAA", Status: model.StatusPending}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles",
			strings.NewReader(`{"skills":"Go,Rust","history":"5y backend"}`))
		req.Header.Set(middleware.ActorHeader, "0xAA")
		rec := httptest.NewRecorder()

		newTestRouter(registry).ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp profileResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "id1", resp.ID)
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("missing wallet address", func(t *testing.T) {
		registry := &MockRegistryService{}

		req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles",
			strings.NewReader(`{"skills":"Go","history":"h"}`))
		rec := httptest.NewRecorder()

		newTestRouter(registry).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		registry.AssertNotCalled(t, "Create")
	})

	t.Run("validation failure maps to 400", func(t *testing.T) {
		registry := &MockRegistryService{}
		registry.On("Create", mock.Anything, mock.Anything).
			Return(model.Record{}, model.ErrValidation)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles",
			strings.NewReader(`{"history":"h"}`))
		req.Header.Set(middleware.ActorHeader, "0xAA")
		rec := httptest.NewRecorder()

		newTestRouter(registry).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		registry := &MockRegistryService{}

		req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles", strings.NewReader(`{`))
		req.Header.Set(middleware.ActorHeader, "0xAA")
		rec := httptest.NewRecorder()

		newTestRouter(registry).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProfile_List(t *testing.T) {
	records := []model.Record{
		{ID: "b", Owner: "0xBB", Status: model.StatusRecommended, Recommendation: "Senior Developer → Tech Lead → CTO", CreatedAt: 200},
		{ID: "a", Owner: "0xAA", Status: model.StatusPending, CreatedAt: 100},
	}

	t.Run("returns all records", func(t *testing.T) {
		registry := &MockRegistryService{}
		registry.On("LoadAll", mock.Anything).Return(records, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles", nil)
		rec := httptest.NewRecorder()

		newTestRouter(registry).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp []profileResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "b", resp[0].ID)
	})

	t.Run("status filter applies", func(t *testing.T) {
		registry := &MockRegistryService{}
		registry.On("LoadAll", mock.Anything).Return(records, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles?status=pending", nil)
		rec := httptest.NewRecorder()

		newTestRouter(registry).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp []profileResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "a", resp[0].ID)
	})

	t.Run("unknown status filter rejected", func(t *testing.T) {
		registry := &MockRegistryService{}
		registry.On("LoadAll", mock.Anything).Return(records, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles?status=archived", nil)
		rec := httptest.NewRecorder()

		newTestRouter(registry).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("load failure maps to 500", func(t *testing.T) {
		registry := &MockRegistryService{}
		registry.On("LoadAll", mock.Anything).Return([]model.Record(nil), errors.New("ledger down"))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles", nil)
		rec := httptest.NewRecorder()

		newTestRouter(registry).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestProfile_Stats(t *testing.T) {
	registry := &MockRegistryService{}
	registry.On("LoadAll", mock.Anything).Return([]model.Record{
		{ID: "a", Status: model.StatusPending},
		{ID: "b", Status: model.StatusRecommended},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/stats", nil)
	rec := httptest.NewRecorder()

	newTestRouter(registry).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":2,"pending":1,"recommended":1,"rejected":0}`, rec.Body.String())
}

func TestProfile_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		mockMethod string
		err        error
		wantStatus int
	}{
		{
			name:       "recommend success",
			path:       "/api/v1/profiles/id1/recommend",
			mockMethod: "Recommend",
			wantStatus: http.StatusOK,
		},
		{
			name:       "reject success",
			path:       "/api/v1/profiles/id1/reject",
			mockMethod: "Reject",
			wantStatus: http.StatusOK,
		},
		{
			name:       "not found",
			path:       "/api/v1/profiles/id1/reject",
			mockMethod: "Reject",
			err:        model.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non-owner",
			path:       "/api/v1/profiles/id1/reject",
			mockMethod: "Reject",
			err:        model.ErrNotOwner,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "terminal state",
			path:       "/api/v1/profiles/id1/recommend",
			mockMethod: "Recommend",
			err:        model.ErrInvalidState,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "engine failure",
			path:       "/api/v1/profiles/id1/recommend",
			mockMethod: "Recommend",
			err:        model.ErrRecommendationFailed,
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := &MockRegistryService{}
			record := model.Record{ID: "id1", Owner: "0xAA", Status: model.StatusRecommended}
			if tt.err != nil {
				record = model.Record{}
			}
			registry.On(tt.mockMethod, mock.Anything, "id1", "0xAA").Return(record, tt.err)

			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			req.Header.Set(middleware.ActorHeader, "0xAA")
			rec := httptest.NewRecorder()

			newTestRouter(registry).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
