package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lixing-Zhang/nova-site/internal/menu"
	"github.com/Lixing-Zhang/nova-site/internal/models"
	"github.com/Lixing-Zhang/nova-site/internal/repository"
)

var (
	ErrInvalidSelection = errors.New("invalid selection")
)

// MenuService handles business logic for the menu section
type MenuService struct {
	repo repository.MenuRepository
}

// NewMenuService creates a new menu service
func NewMenuService(repo repository.MenuRepository) *MenuService {
	return &MenuService{
		repo: repo,
	}
}

// ListItems returns the entries visible under the given category filter
func (s *MenuService) ListItems(ctx context.Context, category string) ([]models.MenuEntry, error) {
	entries, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return menu.VisibleItems(entries, category), nil
}

// Categories returns the category filter labels, "All" first
func (s *MenuService) Categories(ctx context.Context) ([]string, error) {
	entries, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return menu.AvailableCategories(entries), nil
}

// GetItem returns a menu entry by ID
func (s *MenuService) GetItem(ctx context.Context, id string) (*models.MenuEntry, error) {
	return s.repo.GetByID(ctx, id)
}

// Quote prices an entry with the given customizations.
// Selection problems are reported wrapped in ErrInvalidSelection.
func (s *MenuService) Quote(ctx context.Context, id string, req models.QuoteRequest) (*models.Quote, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	total, err := menu.Total(*entry, menu.Selections(req.Selections))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSelection, err)
	}

	return &models.Quote{
		ItemID:         entry.ID,
		BasePrice:      entry.Price.StringFixed(2),
		Total:          total.StringFixed(2),
		FormattedTotal: menu.FormatPrice(total),
	}, nil
}

// ViewState is the menu UI state carried by a page request
type ViewState struct {
	Category string
	ItemID   string
}

// Controller builds the menu view controller for a page request.
// Unknown categories fall back to "All" and unknown items leave the modal closed.
func (s *MenuService) Controller(ctx context.Context, state ViewState) (*menu.Controller, error) {
	entries, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	c := menu.NewController(entries)
	if state.Category != "" {
		c.SelectCategory(state.Category)
	}

	if state.ItemID != "" {
		entry, err := s.repo.GetByID(ctx, state.ItemID)
		switch {
		case err == nil:
			c.SelectItem(*entry)
		case !errors.Is(err, repository.ErrItemNotFound):
			return nil, err
		}
	}

	return c, nil
}
