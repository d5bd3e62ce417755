package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/AGASocial/bottcierge/internal/models"
)

type StaffRepo struct {
	DB *gorm.DB
}

func (r *StaffRepo) Get(ctx context.Context, id string) (*models.Staff, error) {
	var s models.Staff
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StaffRepo) List(ctx context.Context) ([]models.Staff, error) {
	var staff []models.Staff
	if err := r.DB.WithContext(ctx).Order("last_name ASC").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *StaffRepo) Create(ctx context.Context, s *models.Staff) error {
	return r.DB.WithContext(ctx).Create(s).Error
}

func (r *StaffRepo) Save(ctx context.Context, s *models.Staff) error {
	return r.DB.WithContext(ctx).Save(s).Error
}
