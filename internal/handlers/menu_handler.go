package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/nova-site/internal/menu"
	"github.com/Lixing-Zhang/nova-site/internal/metrics"
	"github.com/Lixing-Zhang/nova-site/internal/models"
	"github.com/Lixing-Zhang/nova-site/internal/repository"
	"github.com/Lixing-Zhang/nova-site/internal/service"
	"github.com/go-chi/chi/v5"
)

// maxQuoteBody bounds the size of a quote request
const maxQuoteBody = 64 << 10

// MenuHandler serves the read-only menu API
type MenuHandler struct {
	service *service.MenuService
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewMenuHandler creates a new menu handler. m may be nil.
func NewMenuHandler(service *service.MenuService, m *metrics.Metrics, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		metrics: m,
		logger:  logger,
	}
}

// ListItems handles GET /api/menu
// Returns the available entries, optionally filtered by ?category=
func (h *MenuHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = menu.AllCategory
	}

	items, err := h.service.ListItems(r.Context(), category)
	if err != nil {
		h.logger.Error("failed to list menu items", "category", category, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, items, h.logger)
}

// Categories handles GET /api/menu/categories
func (h *MenuHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.logger.Error("failed to list menu categories", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, categories, h.logger)
}

// GetItem handles GET /api/menu/{itemId}
// - 200: successful operation
// - 400: Invalid ID supplied
// - 404: Menu item not found
func (h *MenuHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")
	if itemID == "" {
		h.logger.Warn("menu item ID is required")
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	item, err := h.service.GetItem(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			h.logger.Info("menu item not found", "itemId", itemID)
			WriteError(w, http.StatusNotFound, "Menu item not found", h.logger)
			return
		}

		h.logger.Error("failed to get menu item", "itemId", itemID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, item, h.logger)
}

// Quote handles POST /api/menu/{itemId}/quote
// Prices the entry with the customizations in the request body
func (h *MenuHandler) Quote(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")

	var req models.QuoteRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxQuoteBody)).Decode(&req); err != nil {
		h.logger.Warn("failed to decode quote request", "itemId", itemID, "error", err)
		h.metrics.RecordQuote("invalid")
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	quote, err := h.service.Quote(r.Context(), itemID, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrItemNotFound):
			h.metrics.RecordQuote("not_found")
			WriteError(w, http.StatusNotFound, "Menu item not found", h.logger)
		case errors.Is(err, service.ErrInvalidSelection):
			h.logger.Info("invalid quote selection", "itemId", itemID, "error", err)
			h.metrics.RecordQuote("invalid")
			WriteError(w, http.StatusBadRequest, err.Error(), h.logger)
		default:
			h.logger.Error("failed to quote menu item", "itemId", itemID, "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		}
		return
	}

	h.metrics.RecordQuote("ok")
	WriteJSON(w, http.StatusOK, quote, h.logger)
}
