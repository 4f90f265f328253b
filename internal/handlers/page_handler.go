package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/Lixing-Zhang/nova-site/internal/menu"
	"github.com/Lixing-Zhang/nova-site/internal/metrics"
	"github.com/Lixing-Zhang/nova-site/internal/models"
	"github.com/Lixing-Zhang/nova-site/internal/service"
	"github.com/Lixing-Zhang/nova-site/internal/site"
	"github.com/Lixing-Zhang/nova-site/internal/web"
)

const (
	selectionPrefix = "opt-"
	maxFormBody     = 32 << 10
)

// PageHandler renders the restaurant page and accepts the reservation form
type PageHandler struct {
	menu         *service.MenuService
	reservations *service.ReservationService
	renderer     *web.Renderer
	content      site.Content
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// NewPageHandler creates a new page handler. m may be nil.
func NewPageHandler(
	menuService *service.MenuService,
	reservations *service.ReservationService,
	renderer *web.Renderer,
	content site.Content,
	m *metrics.Metrics,
	logger *slog.Logger,
) *PageHandler {
	return &PageHandler{
		menu:         menuService,
		reservations: reservations,
		renderer:     renderer,
		content:      content,
		metrics:      m,
		logger:       logger,
	}
}

// Home handles GET /
// ?category= selects the menu filter, ?item= opens the customization modal and
// opt-<group> parameters (sent with customize=1) compute the customized total.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	state := service.ViewState{
		Category: q.Get("category"),
		ItemID:   q.Get("item"),
	}

	ctl, err := h.menu.Controller(r.Context(), state)
	if err != nil {
		h.logger.Error("failed to build menu state", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	selections := parseSelections(q)
	if selections != nil && ctl.IsOpen() {
		h.render(w, http.StatusOK, web.PageData{
			Site: h.content,
			Menu: web.NewMenuView(ctl, selections),
		})
		return
	}

	page, err := h.renderer.RenderCached(pageKey(ctl), func() (web.PageData, error) {
		return web.PageData{
			Site: h.content,
			Menu: web.NewMenuView(ctl, nil),
		}, nil
	})
	if err != nil {
		h.logger.Error("failed to render page", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteHTML(w, http.StatusOK, page, h.logger)
}

// SubmitReservation handles POST /reservations
// Invalid submissions re-render the form with field messages and status 422.
func (h *PageHandler) SubmitReservation(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBody)
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("failed to parse reservation form", "error", err)
		h.metrics.RecordReservation("invalid")
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	form := models.ReservationForm{
		Name:   r.PostFormValue("name"),
		Email:  r.PostFormValue("email"),
		Phone:  r.PostFormValue("phone"),
		Date:   r.PostFormValue("date"),
		Time:   r.PostFormValue("time"),
		Guests: r.PostFormValue("guests"),
		Notes:  r.PostFormValue("notes"),
	}

	ctl, err := h.menu.Controller(r.Context(), service.ViewState{})
	if err != nil {
		h.logger.Error("failed to build menu state", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	data := web.PageData{
		Site: h.content,
		Menu: web.NewMenuView(ctl, nil),
	}

	reservation, err := h.reservations.Submit(r.Context(), form)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			h.logger.Info("reservation rejected", "fields", len(verr.Fields))
			h.metrics.RecordReservation("invalid")
			data.Reservation = web.ReservationView{Values: form, Errors: verr.Fields}
			h.render(w, http.StatusUnprocessableEntity, data)
			return
		}

		h.logger.Error("failed to submit reservation", "error", err)
		h.metrics.RecordReservation("error")
		http.Error(w, "We could not take your reservation right now, please call us.", http.StatusInternalServerError)
		return
	}

	h.metrics.RecordReservation("accepted")
	data.Reservation = web.ReservationView{Confirmation: reservation}
	h.render(w, http.StatusOK, data)
}

func (h *PageHandler) render(w http.ResponseWriter, status int, data web.PageData) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, data); err != nil {
		h.logger.Error("failed to render page", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	WriteHTML(w, status, buf.Bytes(), h.logger)
}

// parseSelections collects opt-<group> parameters. It returns nil unless the
// modal form was submitted, so an untouched modal shows no total.
func parseSelections(q url.Values) menu.Selections {
	if q.Get("customize") == "" {
		return nil
	}

	selections := menu.Selections{}
	for key, values := range q {
		group, ok := strings.CutPrefix(key, selectionPrefix)
		if !ok || group == "" {
			continue
		}
		selections[group] = values
	}
	return selections
}

// pageKey identifies a cacheable page by its resolved menu state
func pageKey(ctl *menu.Controller) string {
	itemID := ""
	if item, ok := ctl.Selected(); ok {
		itemID = item.ID
	}
	return "page|" + ctl.Category() + "|" + itemID
}
