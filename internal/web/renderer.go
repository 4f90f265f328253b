// Package web renders the restaurant page from embedded templates
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/Lixing-Zhang/nova-site/internal/metrics"
	"github.com/patrickmn/go-cache"
)

// baseTemplate is the entry point of every page render
const baseTemplate = "base"

// Renderer executes the page templates and optionally caches rendered pages
type Renderer struct {
	tmpl    *template.Template
	pages   *cache.Cache
	metrics *metrics.Metrics
}

// NewRenderer parses the embedded templates. A positive cacheTTL enables the
// rendered page cache; m may be nil.
func NewRenderer(cacheTTL time.Duration, m *metrics.Metrics) (*Renderer, error) {
	tmpl, err := template.New("_root").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := &Renderer{
		tmpl:    tmpl,
		metrics: m,
	}
	if cacheTTL > 0 {
		r.pages = cache.New(cacheTTL, 2*cacheTTL)
	}
	return r, nil
}

// Render writes the full page for data to w
func (r *Renderer) Render(w io.Writer, data PageData) error {
	if err := r.tmpl.ExecuteTemplate(w, baseTemplate, data); err != nil {
		return fmt.Errorf("template exec: %w", err)
	}
	return nil
}

// RenderCached returns the page stored under key, rendering it with build on a miss.
// Without a cache every call renders.
func (r *Renderer) RenderCached(key string, build func() (PageData, error)) ([]byte, error) {
	if r.pages != nil {
		if page, ok := r.pages.Get(key); ok {
			r.metrics.RecordPageCache(true)
			return page.([]byte), nil
		}
		r.metrics.RecordPageCache(false)
	}

	data, err := build()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, data); err != nil {
		return nil, err
	}

	page := buf.Bytes()
	if r.pages != nil {
		r.pages.SetDefault(key, page)
	}
	return page, nil
}

// CachedPages returns the number of pages currently cached
func (r *Renderer) CachedPages() int {
	if r.pages == nil {
		return 0
	}
	return r.pages.ItemCount()
}
