package menu

import (
	"errors"
	"fmt"

	"github.com/Lixing-Zhang/nova-site/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrRequiredSelection  = errors.New("required modifier group has no selection")
	ErrTooManySelections  = errors.New("required modifier group accepts exactly one selection")
	ErrUnknownGroup       = errors.New("unknown modifier group")
	ErrUnknownOption      = errors.New("unknown modifier option")
	ErrDuplicateSelection = errors.New("option selected more than once")
)

// Selections maps a modifier group ID to the IDs of the options chosen in it
type Selections map[string][]string

// Total returns the entry's base price plus the price of every selected option.
// Each required group must have exactly one selection; optional groups take
// any number of distinct options.
func Total(entry models.MenuEntry, selections Selections) (decimal.Decimal, error) {
	for groupID := range selections {
		if _, ok := entry.Group(groupID); !ok {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownGroup, groupID)
		}
	}

	total := entry.Price
	for _, group := range entry.Modifiers {
		chosen := selections[group.ID]

		if group.Required {
			switch {
			case len(chosen) == 0:
				return decimal.Zero, fmt.Errorf("%w: %q", ErrRequiredSelection, group.ID)
			case len(chosen) > 1:
				return decimal.Zero, fmt.Errorf("%w: %q", ErrTooManySelections, group.ID)
			}
		}

		seen := make(map[string]bool, len(chosen))
		for _, optionID := range chosen {
			if seen[optionID] {
				return decimal.Zero, fmt.Errorf("%w: %q in group %q", ErrDuplicateSelection, optionID, group.ID)
			}
			seen[optionID] = true

			option, ok := group.Option(optionID)
			if !ok {
				return decimal.Zero, fmt.Errorf("%w: %q in group %q", ErrUnknownOption, optionID, group.ID)
			}
			total = total.Add(option.Price)
		}
	}

	return total, nil
}
