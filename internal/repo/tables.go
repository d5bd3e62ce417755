package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/AGASocial/bottcierge/internal/models"
)

type TableRepo struct {
	DB *gorm.DB
}

func (r *TableRepo) Get(ctx context.Context, id string) (*models.Table, error) {
	var t models.Table
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepo) GetByQR(ctx context.Context, code string) (*models.Table, error) {
	var t models.Table
	if err := r.DB.WithContext(ctx).Where("qr_code = ?", code).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepo) List(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	if err := r.DB.WithContext(ctx).Order("number ASC").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *TableRepo) Save(ctx context.Context, t *models.Table) error {
	return r.DB.WithContext(ctx).Save(t).Error
}
