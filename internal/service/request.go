package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AGASocial/bottcierge/internal/models"
	"github.com/AGASocial/bottcierge/internal/repo"
)

// ServiceRequestService tracks "call a waiter" style requests per table.
type ServiceRequestService struct {
	Requests repo.ServiceRequests
	Tables   repo.Tables
}

type ServiceRequestInput struct {
	TableID string `json:"tableId"`
	Type    string `json:"type"`
}

func (s *ServiceRequestService) Create(ctx context.Context, in ServiceRequestInput) (*models.ServiceRequest, error) {
	if in.Type == "" {
		return nil, fmt.Errorf("%w: type is required", ErrValidation)
	}
	if _, err := s.Tables.Get(ctx, in.TableID); err != nil {
		return nil, fromDB(err, "table")
	}

	req := &models.ServiceRequest{
		ID:        uuid.NewString(),
		TableID:   in.TableID,
		Type:      in.Type,
		Status:    "pending",
		CreatedAt: time.Now(),
	}
	if err := s.Requests.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *ServiceRequestService) List(ctx context.Context, tableID string) ([]models.ServiceRequest, error) {
	return s.Requests.List(ctx, tableID)
}

func (s *ServiceRequestService) UpdateStatus(ctx context.Context, id, status string) (*models.ServiceRequest, error) {
	switch status {
	case "pending", "acknowledged", "completed":
	default:
		return nil, fmt.Errorf("%w: unknown request status %q", ErrValidation, status)
	}

	req, err := s.Requests.Get(ctx, id)
	if err != nil {
		return nil, fromDB(err, "service request")
	}

	req.Status = status
	if err := s.Requests.Save(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}
