package menu

import "github.com/Lixing-Zhang/nova-site/internal/models"

// Controller owns the transient state of the menu section: the selected
// category filter and the entry shown in the customization modal. Everything
// else is derived from the catalog on demand.
//
// A Controller is not safe for concurrent use; build one per render.
type Controller struct {
	catalog  []models.MenuEntry
	category string
	selected *models.MenuEntry
}

// NewController returns a controller with the "All" filter and the modal closed
func NewController(catalog []models.MenuEntry) *Controller {
	return &Controller{
		catalog:  catalog,
		category: AllCategory,
	}
}

// Category returns the selected category filter
func (c *Controller) Category() string {
	return c.category
}

// SelectCategory switches the filter. Labels that are not derived from the
// catalog are rejected and leave the state unchanged.
func (c *Controller) SelectCategory(category string) bool {
	if !HasCategory(c.catalog, category) {
		return false
	}
	c.category = category
	return true
}

// SelectItem opens the modal on item, replacing any entry already shown
func (c *Controller) SelectItem(item models.MenuEntry) {
	c.selected = &item
}

// Dismiss closes the modal
func (c *Controller) Dismiss() {
	c.selected = nil
}

// IsOpen reports whether the modal is showing an entry
func (c *Controller) IsOpen() bool {
	return c.selected != nil
}

// Selected returns the entry shown in the modal, if any
func (c *Controller) Selected() (models.MenuEntry, bool) {
	if c.selected == nil {
		return models.MenuEntry{}, false
	}
	return *c.selected, true
}

// Visible returns the entries shown in the grid for the current filter
func (c *Controller) Visible() []models.MenuEntry {
	return VisibleItems(c.catalog, c.category)
}

// Categories returns the filter buttons in display order
func (c *Controller) Categories() []string {
	return AvailableCategories(c.catalog)
}
