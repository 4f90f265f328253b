package repository

import (
	"context"
	"errors"

	"github.com/Lixing-Zhang/nova-site/internal/models"
)

var (
	ErrItemNotFound = errors.New("menu item not found")
)

// MenuRepository defines read access to the menu catalog
type MenuRepository interface {
	GetAll(ctx context.Context) ([]models.MenuEntry, error)
	GetByID(ctx context.Context, id string) (*models.MenuEntry, error)
}

// InMemoryMenuRepository serves an immutable, already validated catalog
type InMemoryMenuRepository struct {
	entries []models.MenuEntry
	index   map[string]int
}

// NewInMemoryMenuRepository creates a repository over a copy of entries.
// Entries are expected to have passed catalog validation, so IDs are unique.
func NewInMemoryMenuRepository(entries []models.MenuEntry) *InMemoryMenuRepository {
	copied := make([]models.MenuEntry, len(entries))
	copy(copied, entries)

	index := make(map[string]int, len(copied))
	for i, e := range copied {
		index[e.ID] = i
	}

	return &InMemoryMenuRepository{
		entries: copied,
		index:   index,
	}
}

// GetAll returns every entry in catalog order
func (r *InMemoryMenuRepository) GetAll(ctx context.Context) ([]models.MenuEntry, error) {
	entries := make([]models.MenuEntry, len(r.entries))
	copy(entries, r.entries)
	return entries, nil
}

// GetByID returns an entry by its ID
func (r *InMemoryMenuRepository) GetByID(ctx context.Context, id string) (*models.MenuEntry, error) {
	i, exists := r.index[id]
	if !exists {
		return nil, ErrItemNotFound
	}
	entry := r.entries[i]
	return &entry, nil
}
