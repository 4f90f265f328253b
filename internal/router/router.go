package router

import (
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/nova-site/internal/handlers"
	"github.com/Lixing-Zhang/nova-site/internal/metrics"
	"github.com/Lixing-Zhang/nova-site/internal/middleware"
	"github.com/Lixing-Zhang/nova-site/internal/web"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Deps are the handlers and collaborators the router wires together
type Deps struct {
	Health         *handlers.HealthHandler
	Pages          *handlers.PageHandler
	Menu           *handlers.MenuHandler
	Metrics        *metrics.Metrics // nil disables /metrics
	Logger         *slog.Logger
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// New builds the HTTP router for the site
func New(d Deps) (http.Handler, error) {
	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(d.Logger))
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Compress(5))
	if d.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(d.RequestTimeout))
	}

	r.Get("/health", d.Health.ServeHTTP)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	// Page routes
	r.Get("/", d.Pages.Home)
	r.Post("/reservations", d.Pages.SubmitReservation)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	// Menu API
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   d.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))

		r.Get("/menu", d.Menu.ListItems)
		r.Get("/menu/categories", d.Menu.Categories)
		r.Get("/menu/{itemId}", d.Menu.GetItem)
		r.Post("/menu/{itemId}/quote", d.Menu.Quote)
	})

	return r, nil
}
