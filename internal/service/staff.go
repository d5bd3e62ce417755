package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AGASocial/bottcierge/internal/models"
	"github.com/AGASocial/bottcierge/internal/repo"
)

type StaffService struct {
	Staff repo.StaffMembers
}

type StaffInput struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Role      string   `json:"role"`
	Sections  []string `json:"sections"`
}

type PatchMetricsInput struct {
	AverageRating *float64 `json:"averageRating"`
	OrdersServed  *int     `json:"ordersServed"`
	SalesVolume   *float64 `json:"salesVolume"`
}

func validRole(role string) bool {
	switch role {
	case "manager", "server", "bartender":
		return true
	}
	return false
}

func (s *StaffService) List(ctx context.Context) ([]models.Staff, error) {
	return s.Staff.List(ctx)
}

func (s *StaffService) Get(ctx context.Context, id string) (*models.Staff, error) {
	member, err := s.Staff.Get(ctx, id)
	if err != nil {
		return nil, fromDB(err, "staff member")
	}
	return member, nil
}

func (s *StaffService) Create(ctx context.Context, in StaffInput) (*models.Staff, error) {
	if in.FirstName == "" || in.LastName == "" {
		return nil, fmt.Errorf("%w: first and last name are required", ErrValidation)
	}
	if !validRole(in.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, in.Role)
	}

	member := &models.Staff{
		ID:        uuid.NewString(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      in.Role,
		Sections:  in.Sections,
		IsActive:  true,
		Status:    "active",
	}
	if err := s.Staff.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *StaffService) Update(ctx context.Context, id string, in StaffInput) (*models.Staff, error) {
	member, err := s.Staff.Get(ctx, id)
	if err != nil {
		return nil, fromDB(err, "staff member")
	}

	if in.FirstName != "" {
		member.FirstName = in.FirstName
	}
	if in.LastName != "" {
		member.LastName = in.LastName
	}
	if in.Role != "" {
		if !validRole(in.Role) {
			return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, in.Role)
		}
		member.Role = in.Role
	}
	if in.Sections != nil {
		member.Sections = in.Sections
	}

	if err := s.Staff.Save(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *StaffService) PatchMetrics(ctx context.Context, id string, in PatchMetricsInput) (*models.Staff, error) {
	member, err := s.Staff.Get(ctx, id)
	if err != nil {
		return nil, fromDB(err, "staff member")
	}

	if in.AverageRating != nil {
		member.Metrics.AverageRating = *in.AverageRating
	}
	if in.OrdersServed != nil {
		member.Metrics.OrdersServed = *in.OrdersServed
	}
	if in.SalesVolume != nil {
		member.Metrics.SalesVolume = *in.SalesVolume
	}

	if err := s.Staff.Save(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *StaffService) Deactivate(ctx context.Context, id string) (*models.Staff, error) {
	member, err := s.Staff.Get(ctx, id)
	if err != nil {
		return nil, fromDB(err, "staff member")
	}

	member.IsActive = false
	member.Status = "inactive"
	if err := s.Staff.Save(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}
