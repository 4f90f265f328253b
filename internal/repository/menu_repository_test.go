package repository

import (
	"context"
	"testing"

	"github.com/Lixing-Zhang/nova-site/internal/catalog"
	"github.com/Lixing-Zhang/nova-site/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *InMemoryMenuRepository {
	t.Helper()
	entries, err := catalog.Load()
	require.NoError(t, err)
	return NewInMemoryMenuRepository(entries)
}

func TestInMemoryMenuRepository_GetAll(t *testing.T) {
	repo := newTestRepository(t)

	entries, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 6)

	for i, e := range entries {
		assert.Equal(t, string(rune('1'+i)), e.ID, "entries must keep catalog order")
	}
}

func TestInMemoryMenuRepository_GetAllReturnsCopy(t *testing.T) {
	repo := newTestRepository(t)

	first, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Signature Dish", second[0].Name)
}

func TestInMemoryMenuRepository_GetByID(t *testing.T) {
	repo := newTestRepository(t)

	tests := []struct {
		id       string
		name     string
		category string
	}{
		{"1", "Signature Dish", "Main Course"},
		{"3", "Fresh Salad", "Appetizers"},
		{"5", "Refreshing Drink", "Beverages"},
		{"6", "Classic Burger", "Main Course"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			e, err := repo.GetByID(context.Background(), tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.name, e.Name)
			assert.Equal(t, tt.category, e.Category)
		})
	}
}

func TestInMemoryMenuRepository_GetByIDNotFound(t *testing.T) {
	repo := NewInMemoryMenuRepository([]models.MenuEntry{{ID: "a", Name: "A", Category: "X"}})

	_, err := repo.GetByID(context.Background(), "b")
	assert.ErrorIs(t, err, ErrItemNotFound)
}
