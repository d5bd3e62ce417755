package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/AGASocial/bottcierge/internal/models"
)

type ProductRepo struct {
	DB *gorm.DB
}

func (r *ProductRepo) Get(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).Order("name ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepo) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).Where("category = ?", category).Order("name ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepo) Create(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *ProductRepo) Save(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Save(p).Error
}

type CategoryRepo struct {
	DB *gorm.DB
}

func (r *CategoryRepo) Get(ctx context.Context, id string) (*models.MenuCategory, error) {
	var c models.MenuCategory
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]models.MenuCategory, error) {
	var categories []models.MenuCategory
	if err := r.DB.WithContext(ctx).Order("display_order ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepo) Save(ctx context.Context, c *models.MenuCategory) error {
	return r.DB.WithContext(ctx).Save(c).Error
}
