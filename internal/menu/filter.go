// Package menu derives what the menu section shows from the catalog: the
// category filter, the visible entries, formatted prices, customization
// totals and the state of the customization modal.
package menu

import "github.com/Lixing-Zhang/nova-site/internal/models"

// AllCategory is the filter value meaning "no category restriction"
const AllCategory = "All"

// VisibleItems returns the available entries of the catalog, restricted to
// category unless it is AllCategory. Catalog order is preserved.
func VisibleItems(catalog []models.MenuEntry, category string) []models.MenuEntry {
	items := make([]models.MenuEntry, 0, len(catalog))
	for _, e := range catalog {
		if !e.Available {
			continue
		}
		if category != AllCategory && e.Category != category {
			continue
		}
		items = append(items, e)
	}
	return items
}

// AvailableCategories returns AllCategory followed by every distinct category
// label in first-seen order. Unavailable entries still contribute their label.
func AvailableCategories(catalog []models.MenuEntry) []string {
	categories := []string{AllCategory}
	seen := map[string]bool{AllCategory: true}
	for _, e := range catalog {
		if seen[e.Category] {
			continue
		}
		seen[e.Category] = true
		categories = append(categories, e.Category)
	}
	return categories
}

// HasCategory reports whether category is one of the labels AvailableCategories yields
func HasCategory(catalog []models.MenuEntry, category string) bool {
	if category == AllCategory {
		return true
	}
	for _, e := range catalog {
		if e.Category == category {
			return true
		}
	}
	return false
}
