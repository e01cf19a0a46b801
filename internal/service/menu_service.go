package service

import (
	"context"
	"errors"
	"fmt"

	apperrors "theboar/internal/errors"
	"theboar/internal/model"
	"theboar/internal/repository"
)

// MenuService reads the menu catalog.
type MenuService interface {
	ListAll(ctx context.Context) ([]model.MenuItem, error)
	FindByID(ctx context.Context, id int) (*model.MenuItem, error)
	// EnsureSeeded inserts the default catalog into an empty store and
	// returns how many items were inserted.
	EnsureSeeded(ctx context.Context) (int, error)
}

type menuService struct {
	repo repository.MenuRepository
}

// NewMenuService creates a new menu service.
func NewMenuService(repo repository.MenuRepository) MenuService {
	return &menuService{repo: repo}
}

func (s *menuService) ListAll(ctx context.Context) ([]model.MenuItem, error) {
	return s.repo.List(ctx)
}

func (s *menuService) FindByID(ctx context.Context, id int) (*model.MenuItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("find menu item %d: %w", id, err)
	}
	return item, nil
}

func (s *menuService) EnsureSeeded(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count menu: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	items := model.DefaultMenu()
	if err := s.repo.CreateBatch(ctx, items); err != nil {
		return 0, fmt.Errorf("seed menu: %w", err)
	}
	return len(items), nil
}
