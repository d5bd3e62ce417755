package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/AGASocial/bottcierge/internal/models"
)

type VenueRepo struct {
	DB *gorm.DB
}

func (r *VenueRepo) Get(ctx context.Context, id string) (*models.Venue, error) {
	var v models.Venue
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VenueRepo) List(ctx context.Context) ([]models.Venue, error) {
	var venues []models.Venue
	if err := r.DB.WithContext(ctx).Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *VenueRepo) Save(ctx context.Context, v *models.Venue) error {
	return r.DB.WithContext(ctx).Save(v).Error
}
