package models

import "github.com/shopspring/decimal"

// MenuEntry represents one purchasable item on the restaurant menu
type MenuEntry struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image,omitempty"`
	Available   bool            `json:"available"`
	Modifiers   []ModifierGroup `json:"modifiers,omitempty"`
}

// HasModifiers reports whether the entry offers any customization
func (e MenuEntry) HasModifiers() bool {
	return len(e.Modifiers) > 0
}

// Group returns the modifier group with the given ID
func (e MenuEntry) Group(id string) (ModifierGroup, bool) {
	for _, g := range e.Modifiers {
		if g.ID == id {
			return g, true
		}
	}
	return ModifierGroup{}, false
}

// ModifierGroup is a named set of customization options attached to an entry.
// When Required is set, exactly one option must be chosen.
type ModifierGroup struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Required bool             `json:"required"`
	Options  []ModifierOption `json:"options"`
}

// Option returns the option with the given ID
func (g ModifierGroup) Option(id string) (ModifierOption, bool) {
	for _, o := range g.Options {
		if o.ID == id {
			return o, true
		}
	}
	return ModifierOption{}, false
}

// ModifierOption is a single choice within a group, priced on top of the entry
type ModifierOption struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
