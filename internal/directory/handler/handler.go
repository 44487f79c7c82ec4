package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lawpoint/internal/directory"
	"lawpoint/internal/platform/middleware"
	dErrors "lawpoint/pkg/domain-errors"
	"lawpoint/pkg/platform/httputil"
)

// Service defines the interface for roster operations.
type Service interface {
	List(ctx context.Context) ([]directory.Lawyer, error)
	Create(ctx context.Context, req directory.CreateLawyerRequest) (directory.Lawyer, error)
}

// Handler handles the /api/lawyers endpoints. Browsing is public; adding an
// entry requires an authenticated caller.
type Handler struct {
	roster   Service
	logger   *slog.Logger
	verifier middleware.TokenVerifier
}

func New(roster Service, logger *slog.Logger, verifier middleware.TokenVerifier) *Handler {
	return &Handler{roster: roster, logger: logger, verifier: verifier}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/lawyers", h.handleList)

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth(h.verifier, h.logger))
		protected.Post("/api/lawyers", h.handleCreate)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	lawyers, err := h.roster.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, lawyers)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req directory.CreateLawyerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid create lawyer request body",
			"error", err.Error(),
			"request_id", middleware.GetRequestID(ctx),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	lawyer, err := h.roster.Create(ctx, req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, lawyer)
}
