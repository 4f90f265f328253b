// Package app assembles the site server from its configuration
package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/nova-site/internal/catalog"
	"github.com/Lixing-Zhang/nova-site/internal/config"
	"github.com/Lixing-Zhang/nova-site/internal/handlers"
	"github.com/Lixing-Zhang/nova-site/internal/metrics"
	"github.com/Lixing-Zhang/nova-site/internal/models"
	"github.com/Lixing-Zhang/nova-site/internal/repository"
	"github.com/Lixing-Zhang/nova-site/internal/router"
	"github.com/Lixing-Zhang/nova-site/internal/service"
	"github.com/Lixing-Zhang/nova-site/internal/site"
	"github.com/Lixing-Zhang/nova-site/internal/web"
)

// requestTimeout bounds the time spent in a single handler
const requestTimeout = 60 * time.Second

// App is the wired site server
type App struct {
	Handler http.Handler
	Catalog []models.MenuEntry
	Metrics *metrics.Metrics
}

// Options override collaborators, mainly for tests
type Options struct {
	// Submitter receives accepted reservations; defaults to a LogSubmitter
	Submitter service.Submitter
}

// New loads the catalog and wires repositories, services, handlers and router
func New(cfg *config.Config, log *slog.Logger, opts Options) (*App, error) {
	entries, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("load menu catalog: %w", err)
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m, err = metrics.New()
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}

	renderer, err := web.NewRenderer(time.Duration(cfg.Cache.PageTTL)*time.Second, m)
	if err != nil {
		return nil, err
	}

	submitter := opts.Submitter
	if submitter == nil {
		submitter = service.NewLogSubmitter(log)
	}

	// Initialize repositories
	menuRepo := repository.NewInMemoryMenuRepository(entries)

	// Initialize services
	menuService := service.NewMenuService(menuRepo)
	reservationService := service.NewReservationService(submitter)

	// Initialize handlers
	content := site.Default(cfg.Site.Name, cfg.Site.OrderURL)
	handler, err := router.New(router.Deps{
		Health:         handlers.NewHealthHandler(log, len(entries)),
		Pages:          handlers.NewPageHandler(menuService, reservationService, renderer, content, m, log),
		Menu:           handlers.NewMenuHandler(menuService, m, log),
		Metrics:        m,
		Logger:         log,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RequestTimeout: requestTimeout,
	})
	if err != nil {
		return nil, err
	}

	return &App{
		Handler: handler,
		Catalog: entries,
		Metrics: m,
	}, nil
}
