package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"regguard/internal/sanctions/service"
	"regguard/pkg/platform/httputil"
	"regguard/pkg/platform/sentinel"
	"regguard/pkg/requestcontext"
)

// Service is the engine surface the transport depends on.
type Service interface {
	CheckName(ctx context.Context, name string, fuzzy bool, threshold int) (string, error)
}

// Handler is the thin HTTP layer over the screening engine. It decodes,
// delegates, and logs; matching policy stays in the engine.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the screening endpoint on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/sanctions/check", h.HandleCheck)
}

// CheckRequest is the transport request for a screening check. Threshold is a
// pointer so an omitted field falls back to the engine default instead of 0.
type CheckRequest struct {
	Name      string `json:"name"`
	Fuzzy     bool   `json:"fuzzy"`
	Threshold *int   `json:"threshold,omitempty"`
}

type CheckResponse struct {
	Report    string `json:"report"`
	RequestID string `json:"request_id,omitempty"`
}

// HandleCheck handles POST /sanctions/check requests.
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, fmt.Errorf("%w: malformed JSON body", sentinel.ErrInvalidInput))
		return
	}

	threshold := service.DefaultThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	reportText, err := h.service.CheckName(ctx, req.Name, req.Fuzzy, threshold)
	if err != nil {
		h.logger.ErrorContext(ctx, "sanctions check rejected",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "sanctions check served",
		"request_id", requestID,
		"fuzzy", req.Fuzzy,
		"threshold", threshold,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, CheckResponse{Report: reportText, RequestID: requestID})
}
