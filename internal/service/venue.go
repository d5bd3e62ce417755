package service

import (
	"context"

	"github.com/AGASocial/bottcierge/internal/models"
	"github.com/AGASocial/bottcierge/internal/repo"
)

type VenueService struct {
	Venues repo.Venues
}

type VenueInput struct {
	Name           string                  `json:"name"`
	Locations      []models.VenueLocation  `json:"locations"`
	OperatingHours []models.OperatingHours `json:"operatingHours"`
	PricingRules   map[string]float64      `json:"pricingRules"`
	MinimumSpend   *models.MinimumSpend    `json:"minimumSpend"`
	DressCode      string                  `json:"dressCode"`
	Status         string                  `json:"status"`
}

func (s *VenueService) List(ctx context.Context) ([]models.Venue, error) {
	return s.Venues.List(ctx)
}

func (s *VenueService) Get(ctx context.Context, id string) (*models.Venue, error) {
	venue, err := s.Venues.Get(ctx, id)
	if err != nil {
		return nil, fromDB(err, "venue")
	}
	return venue, nil
}

// Update merges the provided fields over the stored venue.
func (s *VenueService) Update(ctx context.Context, id string, in VenueInput) (*models.Venue, error) {
	venue, err := s.Venues.Get(ctx, id)
	if err != nil {
		return nil, fromDB(err, "venue")
	}

	if in.Name != "" {
		venue.Name = in.Name
	}
	if in.Locations != nil {
		venue.Locations = in.Locations
	}
	if in.OperatingHours != nil {
		venue.OperatingHours = in.OperatingHours
	}
	if in.PricingRules != nil {
		venue.PricingRules = in.PricingRules
	}
	if in.MinimumSpend != nil {
		venue.MinimumSpend = *in.MinimumSpend
	}
	if in.DressCode != "" {
		venue.DressCode = in.DressCode
	}
	if in.Status != "" {
		venue.Status = in.Status
	}

	if err := s.Venues.Save(ctx, venue); err != nil {
		return nil, err
	}
	return venue, nil
}
