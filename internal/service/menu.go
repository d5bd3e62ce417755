package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AGASocial/bottcierge/internal/logging"
	"github.com/AGASocial/bottcierge/internal/models"
	"github.com/AGASocial/bottcierge/internal/repo"
	"github.com/AGASocial/bottcierge/internal/search"
)

type MenuService struct {
	Products   repo.Products
	Categories repo.Categories
	Search     *search.Client
}

type PatchCategoryInput struct {
	Name         *string `json:"name"`
	DisplayOrder *int    `json:"displayOrder"`
	IsActive     *bool   `json:"isActive"`
}

type ProductInput struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Brand       string           `json:"brand"`
	BrandID     string           `json:"brandId"`
	Category    string           `json:"category"`
	Section     string           `json:"section"`
	Type        string           `json:"type"`
	Image       string           `json:"image"`
	Status      string           `json:"status"`
	Inventory   models.Inventory `json:"inventory"`
	Sizes       []models.Size    `json:"sizes"`
}

type PatchProductInput struct {
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	Status      *string           `json:"status"`
	Section     *string           `json:"section"`
	Inventory   *models.Inventory `json:"inventory"`
	Sizes       *[]models.Size    `json:"sizes"`
}

func (s *MenuService) ListCategories(ctx context.Context) ([]models.MenuCategory, error) {
	return s.Categories.List(ctx)
}

func (s *MenuService) GetCategory(ctx context.Context, id string) (*models.MenuCategory, error) {
	category, err := s.Categories.Get(ctx, id)
	if err != nil {
		return nil, fromDB(err, "category")
	}
	return category, nil
}

func (s *MenuService) PatchCategory(ctx context.Context, id string, in PatchCategoryInput) (*models.MenuCategory, error) {
	category, err := s.Categories.Get(ctx, id)
	if err != nil {
		return nil, fromDB(err, "category")
	}

	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.DisplayOrder != nil {
		category.DisplayOrder = *in.DisplayOrder
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}

	if err := s.Categories.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *MenuService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Products.List(ctx)
}

func (s *MenuService) ListProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	if _, err := s.Categories.Get(ctx, categoryID); err != nil {
		return nil, fromDB(err, "category")
	}
	return s.Products.ListByCategory(ctx, categoryID)
}

func (s *MenuService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.Products.Get(ctx, id)
	if err != nil {
		return nil, fromDB(err, "product")
	}
	return product, nil
}

func (s *MenuService) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(in.Sizes) == 0 {
		return nil, fmt.Errorf("%w: at least one size is required", ErrValidation)
	}

	product := &models.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Brand:       in.Brand,
		BrandID:     in.BrandID,
		Category:    in.Category,
		Section:     in.Section,
		Type:        in.Type,
		Image:       in.Image,
		Status:      in.Status,
		Inventory:   in.Inventory,
		Sizes:       in.Sizes,
	}
	if product.Status == "" {
		product.Status = "available"
	}
	for i := range product.Sizes {
		if product.Sizes[i].ID == "" {
			product.Sizes[i].ID = uuid.NewString()
		}
	}

	if err := s.Products.Create(ctx, product); err != nil {
		return nil, err
	}
	s.index(ctx, product)
	return product, nil
}

// ReplaceProduct is the PUT semantics: the body replaces every mutable field.
func (s *MenuService) ReplaceProduct(ctx context.Context, id string, in ProductInput) (*models.Product, error) {
	product, err := s.Products.Get(ctx, id)
	if err != nil {
		return nil, fromDB(err, "product")
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Brand = in.Brand
	product.BrandID = in.BrandID
	product.Category = in.Category
	product.Section = in.Section
	product.Type = in.Type
	product.Image = in.Image
	product.Status = in.Status
	product.Inventory = in.Inventory
	product.Sizes = in.Sizes
	for i := range product.Sizes {
		if product.Sizes[i].ID == "" {
			product.Sizes[i].ID = uuid.NewString()
		}
	}

	if err := s.Products.Save(ctx, product); err != nil {
		return nil, err
	}
	s.index(ctx, product)
	return product, nil
}

func (s *MenuService) PatchProduct(ctx context.Context, id string, in PatchProductInput) (*models.Product, error) {
	product, err := s.Products.Get(ctx, id)
	if err != nil {
		return nil, fromDB(err, "product")
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Status != nil {
		product.Status = *in.Status
	}
	if in.Section != nil {
		product.Section = *in.Section
	}
	if in.Inventory != nil {
		product.Inventory = *in.Inventory
	}
	if in.Sizes != nil {
		product.Sizes = *in.Sizes
	}

	if err := s.Products.Save(ctx, product); err != nil {
		return nil, err
	}
	s.index(ctx, product)
	return product, nil
}

func (s *MenuService) index(ctx context.Context, p *models.Product) {
	if err := s.Search.IndexProduct(ctx, p); err != nil {
		logging.FromContext(ctx).Error("index product", "product_id", p.ID, "error", err)
	}
}
