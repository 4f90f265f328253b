package menu

import (
	"testing"

	"github.com/Lixing-Zhang/nova-site/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id, category string, available bool) models.MenuEntry {
	return models.MenuEntry{
		ID:        id,
		Name:      "Item " + id,
		Price:     decimal.NewFromInt(10),
		Category:  category,
		Available: available,
	}
}

// testCatalog has six entries across four categories; entry 4 is unavailable.
func testCatalog() []models.MenuEntry {
	return []models.MenuEntry{
		entry("1", "Main Course", true),
		entry("2", "Appetizers", true),
		entry("3", "Main Course", true),
		entry("4", "Main Course", false),
		entry("5", "Desserts", true),
		entry("6", "Beverages", true),
	}
}

func ids(entries []models.MenuEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestVisibleItems(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name     string
		category string
		want     []string
	}{
		{"all skips unavailable", AllCategory, []string{"1", "2", "3", "5", "6"}},
		{"main course in insertion order", "Main Course", []string{"1", "3"}},
		{"single entry category", "Desserts", []string{"5"}},
		{"unknown category", "Brunch", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(VisibleItems(catalog, tt.category)))
		})
	}
}

func TestVisibleItems_OnlyAvailableAndMatching(t *testing.T) {
	catalog := testCatalog()
	for _, category := range AvailableCategories(catalog) {
		for _, e := range VisibleItems(catalog, category) {
			assert.True(t, e.Available, "entry %s", e.ID)
			if category != AllCategory {
				assert.Equal(t, category, e.Category)
			}
		}
	}
}

func TestVisibleItems_AllIsSuperset(t *testing.T) {
	catalog := testCatalog()
	all := ids(VisibleItems(catalog, AllCategory))
	for _, category := range AvailableCategories(catalog) {
		for _, id := range ids(VisibleItems(catalog, category)) {
			assert.Contains(t, all, id, "category %s", category)
		}
	}
}

func TestVisibleItems_CategoryWithNoAvailableEntries(t *testing.T) {
	catalog := []models.MenuEntry{
		entry("1", "Main Course", true),
		entry("2", "Specials", false),
	}
	items := VisibleItems(catalog, "Specials")
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestAvailableCategories(t *testing.T) {
	got := AvailableCategories(testCatalog())
	assert.Equal(t, []string{"All", "Main Course", "Appetizers", "Desserts", "Beverages"}, got)
}

func TestAvailableCategories_NoDuplicates(t *testing.T) {
	got := AvailableCategories(testCatalog())
	require.NotEmpty(t, got)
	assert.Equal(t, AllCategory, got[0])

	seen := make(map[string]bool)
	for _, c := range got {
		assert.False(t, seen[c], "duplicate category %q", c)
		seen[c] = true
	}
}

// Categories are derived from every entry, so a label whose entries are all
// unavailable is still offered as a filter that shows nothing.
func TestAvailableCategories_IncludesCategoriesWithoutAvailableEntries(t *testing.T) {
	catalog := []models.MenuEntry{
		entry("1", "Main Course", true),
		entry("2", "Specials", false),
	}
	assert.Equal(t, []string{"All", "Main Course", "Specials"}, AvailableCategories(catalog))
	assert.Empty(t, VisibleItems(catalog, "Specials"))
}

func TestAvailableCategories_EmptyCatalog(t *testing.T) {
	assert.Equal(t, []string{AllCategory}, AvailableCategories(nil))
}

func TestHasCategory(t *testing.T) {
	catalog := testCatalog()
	assert.True(t, HasCategory(catalog, AllCategory))
	assert.True(t, HasCategory(catalog, "Desserts"))
	assert.False(t, HasCategory(catalog, "desserts"))
	assert.False(t, HasCategory(catalog, ""))
}
