package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Version is reported by the health endpoint
var Version = "1.0.0"

// HealthHandler provides health check endpoint
type HealthHandler struct {
	logger    *slog.Logger
	menuItems int
}

// NewHealthHandler creates a new health handler. menuItems is the size of the
// catalog loaded at start-up.
func NewHealthHandler(logger *slog.Logger, menuItems int) *HealthHandler {
	return &HealthHandler{
		logger:    logger,
		menuItems: menuItems,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	MenuItems int       `json:"menuItems"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   Version,
		MenuItems: h.menuItems,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode health response", "error", err)
	}
}
