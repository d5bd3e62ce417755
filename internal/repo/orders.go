package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/AGASocial/bottcierge/internal/models"
)

type OrderRepo struct {
	DB *gorm.DB
}

func (r *OrderRepo) Create(ctx context.Context, o *models.Order) error {
	return r.DB.WithContext(ctx).Create(o).Error
}

func (r *OrderRepo) Get(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepo) ListByTable(ctx context.Context, tableID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).Where("table_id = ?", tableID).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *OrderRepo) Save(ctx context.Context, o *models.Order) error {
	return r.DB.WithContext(ctx).Save(o).Error
}
