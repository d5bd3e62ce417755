package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/AGASocial/bottcierge/internal/models"
)

type PaymentRepo struct {
	DB *gorm.DB
}

func (r *PaymentRepo) Create(ctx context.Context, p *models.Payment) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepo) Get(ctx context.Context, id string) (*models.Payment, error) {
	var p models.Payment
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepo) ListByOrder(ctx context.Context, orderID string) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.DB.WithContext(ctx).Where("order_id = ?", orderID).Order("created_at DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

type ServiceRequestRepo struct {
	DB *gorm.DB
}

func (r *ServiceRequestRepo) Create(ctx context.Context, sr *models.ServiceRequest) error {
	return r.DB.WithContext(ctx).Create(sr).Error
}

func (r *ServiceRequestRepo) Get(ctx context.Context, id string) (*models.ServiceRequest, error) {
	var sr models.ServiceRequest
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&sr).Error; err != nil {
		return nil, err
	}
	return &sr, nil
}

func (r *ServiceRequestRepo) List(ctx context.Context, tableID string) ([]models.ServiceRequest, error) {
	q := r.DB.WithContext(ctx).Model(&models.ServiceRequest{})
	if tableID != "" {
		q = q.Where("table_id = ?", tableID)
	}
	var requests []models.ServiceRequest
	if err := q.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *ServiceRequestRepo) Save(ctx context.Context, sr *models.ServiceRequest) error {
	return r.DB.WithContext(ctx).Save(sr).Error
}
