package web

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/Lixing-Zhang/nova-site/internal/menu"
	"github.com/Lixing-Zhang/nova-site/internal/models"
	"github.com/Lixing-Zhang/nova-site/internal/site"
)

// PageData is the view model of the whole page
type PageData struct {
	Site        site.Content
	Menu        MenuView
	Reservation ReservationView
}

// MenuView is the menu section derived from a menu.Controller
type MenuView struct {
	Categories []CategoryLink
	Items      []ItemCard
	Modal      *ModalView
}

// CategoryLink is one category filter button
type CategoryLink struct {
	Label  string
	Href   string
	Active bool
}

// ItemCard is one entry of the menu grid
type ItemCard struct {
	ID          string
	Name        string
	Description string
	Image       string
	Price       string
	Badge       string
	Href        string
}

// ModalView is the customization modal for the selected entry
type ModalView struct {
	ItemID      string
	Category    string
	Name        string
	Description string
	BasePrice   string
	Groups      []GroupView
	DismissHref string
	Total       string
	Error       string
}

// GroupView is a modifier group inside the modal
type GroupView struct {
	ID        string
	Name      string
	Required  bool
	InputType string
	Field     string
	Options   []OptionView
}

// OptionView is a selectable modifier option
type OptionView struct {
	ID         string
	Name       string
	PriceLabel string
	Checked    bool
}

// ReservationView carries the reservation form state
type ReservationView struct {
	Values       models.ReservationForm
	Errors       map[string]string
	Confirmation *models.Reservation
}

const defaultImage = "🍽️"

// SelectionField is the query parameter carrying the options chosen in a modifier group
func SelectionField(groupID string) string {
	return "opt-" + groupID
}

// NewMenuView derives the menu section from the controller state. When the
// modal is open and selections is non-nil, the customization total (or the
// reason it cannot be computed) is included.
func NewMenuView(c *menu.Controller, selections menu.Selections) MenuView {
	category := c.Category()

	view := MenuView{}
	for _, label := range c.Categories() {
		view.Categories = append(view.Categories, CategoryLink{
			Label:  label,
			Href:   pageHref(label, ""),
			Active: label == category,
		})
	}

	for _, e := range c.Visible() {
		image := e.Image
		if image == "" {
			image = defaultImage
		}
		view.Items = append(view.Items, ItemCard{
			ID:          e.ID,
			Name:        e.Name,
			Description: e.Description,
			Image:       image,
			Price:       menu.FormatPrice(e.Price),
			Badge:       customizationBadge(len(e.Modifiers)),
			Href:        pageHref(category, e.ID),
		})
	}

	if entry, ok := c.Selected(); ok {
		view.Modal = newModalView(entry, category, selections)
	}

	return view
}

func newModalView(entry models.MenuEntry, category string, selections menu.Selections) *ModalView {
	modal := &ModalView{
		ItemID:      entry.ID,
		Category:    category,
		Name:        entry.Name,
		Description: entry.Description,
		BasePrice:   menu.FormatPrice(entry.Price),
		DismissHref: pageHref(category, ""),
	}

	for _, g := range entry.Modifiers {
		group := GroupView{
			ID:        g.ID,
			Name:      g.Name,
			Required:  g.Required,
			InputType: "checkbox",
			Field:     SelectionField(g.ID),
		}
		if g.Required {
			group.InputType = "radio"
		}

		chosen := make(map[string]bool)
		for _, id := range selections[g.ID] {
			chosen[id] = true
		}
		for _, o := range g.Options {
			group.Options = append(group.Options, OptionView{
				ID:         o.ID,
				Name:       o.Name,
				PriceLabel: menu.FormatOptionPrice(o.Price),
				Checked:    chosen[o.ID],
			})
		}
		modal.Groups = append(modal.Groups, group)
	}

	if selections != nil {
		total, err := menu.Total(entry, selections)
		if err != nil {
			modal.Error = selectionMessage(err)
		} else {
			modal.Total = menu.FormatPrice(total)
		}
	}

	return modal
}

func customizationBadge(groups int) string {
	switch {
	case groups == 0:
		return ""
	case groups == 1:
		return "1 customization available"
	default:
		return strconv.Itoa(groups) + " customizations available"
	}
}

func selectionMessage(err error) string {
	switch {
	case errors.Is(err, menu.ErrRequiredSelection):
		return "Please make a choice for every required option."
	case errors.Is(err, menu.ErrTooManySelections):
		return "Please choose only one option for each required group."
	default:
		return "Some of the selected options are not available for this item."
	}
}

// pageHref links back to the page with the given menu state, anchored on the menu section
func pageHref(category, itemID string) string {
	q := url.Values{}
	if category != "" && category != menu.AllCategory {
		q.Set("category", category)
	}
	if itemID != "" {
		q.Set("item", itemID)
	}
	if len(q) == 0 {
		return "/#menu"
	}
	return "/?" + q.Encode() + "#menu"
}
