package http

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/toyshop/internal/repository"
)

const healthTimeout = 2 * time.Second

type SystemHandler struct {
	pinger repository.Pinger
	logger hclog.Logger
}

// NewSystemHandler serves the root and health endpoints. pinger may be nil
// for stores without an external database.
func NewSystemHandler(pinger repository.Pinger, log hclog.Logger) *SystemHandler {
	return &SystemHandler{pinger: pinger, logger: log}
}

type rootResponse struct {
	Name    string            `json:"name"`
	Version string            `json:"version"`
	Links   map[string]string `json:"links"`
}

type healthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Root handles GET /
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, &rootResponse{
		Name:    "Toy Catalog API",
		Version: "1.0.0",
		Links: map[string]string{
			"toys":       "/toys",
			"categories": "/categories",
			"docs":       "/docs",
			"openapi":    "/openapi.yaml",
		},
	})
}

// Health handles GET /health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := h.pinger.Ping(ctx); err != nil {
			h.logger.Error("Health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, &healthResponse{Status: "unavailable", Error: err.Error()})
			return
		}
	}

	writeJSON(w, http.StatusOK, &healthResponse{Status: "ok"})
}
