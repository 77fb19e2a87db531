package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"smart-restaurant/internal/repositories"
	"smart-restaurant/models"
	"smart-restaurant/pkg/logger"
)

type CreateMenuItemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	IsAvailable *bool    `json:"is_available,omitempty"`
}

// UpdateMenuItemRequest carries a partial update; nil fields stay untouched.
type UpdateMenuItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"image_url"`
	IsAvailable *bool    `json:"is_available"`
}

type MenuServiceInterface interface {
	ListMenu(ctx context.Context, category string) ([]*models.MenuItem, error)
	CreateMenuItem(ctx context.Context, req CreateMenuItemRequest) (string, error)
	UpdateMenuItem(ctx context.Context, id string, req UpdateMenuItemRequest) error
	DeleteMenuItem(ctx context.Context, id string) error
}

type MenuService struct {
	menuRepo repositories.MenuRepositoryInterface
	logger   *logger.Logger
}

func NewMenuService(menuRepo repositories.MenuRepositoryInterface, log *logger.Logger) *MenuService {
	return &MenuService{
		menuRepo: menuRepo,
		logger:   log.WithComponent("menu_service"),
	}
}

// ListMenu returns available items, optionally narrowed to one category,
// sorted ascending by name.
func (s *MenuService) ListMenu(ctx context.Context, category string) ([]*models.MenuItem, error) {
	items, err := s.menuRepo.ListAvailable(ctx, category)
	if err != nil {
		s.logger.Error("Failed to list menu items", "category", category, "error", err)
		return nil, err
	}

	s.logger.Debug("Listed menu items", "category", category, "count", len(items))
	return items, nil
}

func (s *MenuService) CreateMenuItem(ctx context.Context, req CreateMenuItemRequest) (string, error) {
	if req.Name == "" {
		return "", models.NewValidationError("name is required")
	}
	if req.Price == nil {
		return "", models.NewValidationError("price is required")
	}
	if *req.Price < 0 {
		return "", models.NewValidationError("price cannot be negative")
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	item := &models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		IsAvailable: available,
	}

	id, err := s.menuRepo.Create(ctx, item)
	if err != nil {
		s.logger.Error("Failed to create menu item", "name", req.Name, "error", err)
		return "", err
	}

	s.logger.Info("Menu item created", "id", id, "name", req.Name, "price", *req.Price)
	return id, nil
}

func (s *MenuService) UpdateMenuItem(ctx context.Context, id string, req UpdateMenuItemRequest) error {
	if req.Name != nil && *req.Name == "" {
		return models.NewValidationError("name cannot be empty")
	}
	if req.Price != nil && *req.Price < 0 {
		return models.NewValidationError("price cannot be negative")
	}

	partial := bson.M{}
	if req.Name != nil {
		partial["name"] = *req.Name
	}
	if req.Description != nil {
		partial["description"] = *req.Description
	}
	if req.Price != nil {
		partial["price"] = *req.Price
	}
	if req.Category != nil {
		partial["category"] = *req.Category
	}
	if req.ImageURL != nil {
		partial["image_url"] = *req.ImageURL
	}
	if req.IsAvailable != nil {
		partial["is_available"] = *req.IsAvailable
	}

	found, err := s.menuRepo.Update(ctx, id, partial)
	if err != nil {
		s.logger.Error("Failed to update menu item", "id", id, "error", err)
		return err
	}
	if !found {
		return fmt.Errorf("menu item %s: %w", id, models.ErrNotFound)
	}
	return nil
}

func (s *MenuService) DeleteMenuItem(ctx context.Context, id string) error {
	deleted, err := s.menuRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete menu item", "id", id, "error", err)
		return err
	}
	if !deleted {
		return fmt.Errorf("menu item %s: %w", id, models.ErrNotFound)
	}
	return nil
}
