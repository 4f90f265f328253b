// Package catalog holds the restaurant menu compiled into the binary and the
// rules a menu document must satisfy before it is served.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/Lixing-Zhang/nova-site/internal/models"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var menuDocument []byte

var (
	ErrDuplicateEntryID   = errors.New("duplicate entry id")
	ErrDuplicateGroupID   = errors.New("duplicate modifier group id")
	ErrDuplicateOptionID  = errors.New("duplicate modifier option id")
	ErrNegativePrice      = errors.New("price must not be negative")
	ErrEmptyRequiredGroup = errors.New("required modifier group has no options")
	ErrMissingField       = errors.New("missing required field")
)

type document struct {
	Items []entryDoc `yaml:"items"`
}

type entryDoc struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Price       string     `yaml:"price"`
	Category    string     `yaml:"category"`
	Image       string     `yaml:"image"`
	Available   bool       `yaml:"available"`
	Modifiers   []groupDoc `yaml:"modifiers"`
}

type groupDoc struct {
	ID       string      `yaml:"id"`
	Name     string      `yaml:"name"`
	Required bool        `yaml:"required"`
	Options  []optionDoc `yaml:"options"`
}

type optionDoc struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
}

// Load decodes and validates the embedded menu
func Load() ([]models.MenuEntry, error) {
	return Parse(menuDocument)
}

// Parse decodes a YAML menu document and validates the result.
// Entry order in the document is preserved.
func Parse(data []byte) ([]models.MenuEntry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode menu document: %w", err)
	}

	entries := make([]models.MenuEntry, 0, len(doc.Items))
	for i, item := range doc.Items {
		entry, err := item.toModel()
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		entries = append(entries, entry)
	}

	if err := Validate(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (d entryDoc) toModel() (models.MenuEntry, error) {
	price, err := parsePrice(d.Price)
	if err != nil {
		return models.MenuEntry{}, fmt.Errorf("entry %q: %w", d.ID, err)
	}

	entry := models.MenuEntry{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       price,
		Category:    d.Category,
		Image:       d.Image,
		Available:   d.Available,
	}

	for _, g := range d.Modifiers {
		group := models.ModifierGroup{
			ID:       g.ID,
			Name:     g.Name,
			Required: g.Required,
			Options:  make([]models.ModifierOption, 0, len(g.Options)),
		}
		for _, o := range g.Options {
			optPrice, err := parsePrice(o.Price)
			if err != nil {
				return models.MenuEntry{}, fmt.Errorf("entry %q group %q option %q: %w", d.ID, g.ID, o.ID, err)
			}
			group.Options = append(group.Options, models.ModifierOption{
				ID:    o.ID,
				Name:  o.Name,
				Price: optPrice,
			})
		}
		entry.Modifiers = append(entry.Modifiers, group)
	}

	return entry, nil
}

// parsePrice treats an empty value as zero so free options can omit it
func parsePrice(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return d, nil
}

// Validate checks the catalog invariants and reports every violation found.
// The returned error wraps the matching sentinel errors.
func Validate(entries []models.MenuEntry) error {
	var errs []error
	seenEntries := make(map[string]bool, len(entries))

	for i, e := range entries {
		path := fmt.Sprintf("entry %q", e.ID)
		if e.ID == "" {
			path = fmt.Sprintf("entry #%d", i)
			errs = append(errs, fmt.Errorf("%s: %w: id", path, ErrMissingField))
		} else if seenEntries[e.ID] {
			errs = append(errs, fmt.Errorf("%s: %w", path, ErrDuplicateEntryID))
		}
		seenEntries[e.ID] = true

		if e.Name == "" {
			errs = append(errs, fmt.Errorf("%s: %w: name", path, ErrMissingField))
		}
		if e.Category == "" {
			errs = append(errs, fmt.Errorf("%s: %w: category", path, ErrMissingField))
		}
		if e.Price.IsNegative() {
			errs = append(errs, fmt.Errorf("%s: %w: %s", path, ErrNegativePrice, e.Price))
		}

		errs = append(errs, validateGroups(path, e.Modifiers)...)
	}

	return errors.Join(errs...)
}

func validateGroups(entryPath string, groups []models.ModifierGroup) []error {
	var errs []error
	seenGroups := make(map[string]bool, len(groups))

	for _, g := range groups {
		path := fmt.Sprintf("%s group %q", entryPath, g.ID)
		if g.ID == "" {
			errs = append(errs, fmt.Errorf("%s: %w: id", path, ErrMissingField))
		} else if seenGroups[g.ID] {
			errs = append(errs, fmt.Errorf("%s: %w", path, ErrDuplicateGroupID))
		}
		seenGroups[g.ID] = true

		if g.Name == "" {
			errs = append(errs, fmt.Errorf("%s: %w: name", path, ErrMissingField))
		}
		if g.Required && len(g.Options) == 0 {
			errs = append(errs, fmt.Errorf("%s: %w", path, ErrEmptyRequiredGroup))
		}

		seenOptions := make(map[string]bool, len(g.Options))
		for _, o := range g.Options {
			optPath := fmt.Sprintf("%s option %q", path, o.ID)
			if o.ID == "" {
				errs = append(errs, fmt.Errorf("%s: %w: id", optPath, ErrMissingField))
			} else if seenOptions[o.ID] {
				errs = append(errs, fmt.Errorf("%s: %w", optPath, ErrDuplicateOptionID))
			}
			seenOptions[o.ID] = true

			if o.Name == "" {
				errs = append(errs, fmt.Errorf("%s: %w: name", optPath, ErrMissingField))
			}

			if o.Price.IsNegative() {
				errs = append(errs, fmt.Errorf("%s: %w: %s", optPath, ErrNegativePrice, o.Price))
			}
		}
	}

	return errs
}
