package store

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AGASocial/bottcierge/internal/models"
)

// Seed inserts the demo venue, menu, tables and staff. It only runs against
// an empty database so restarts against a persistent store keep their data.
func Seed(db *gorm.DB) error {
	var n int64
	if err := db.Model(&models.Venue{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	venue := models.Venue{
		ID:   uuid.NewString(),
		Name: "Luxury Lounge",
		Locations: []models.VenueLocation{{
			ID:          uuid.NewString(),
			Address:     "123 Main St",
			City:        "New York",
			State:       "NY",
			ZipCode:     "10001",
			PhoneNumber: "212-555-0123",
			Timezone:    "America/New_York",
			TaxRate:     8.875,
		}},
		OperatingHours: []models.OperatingHours{
			{DayOfWeek: 4, Open: "16:00", Close: "02:00", IsOpen: true},
			{DayOfWeek: 5, Open: "16:00", Close: "03:00", IsOpen: true},
			{DayOfWeek: 6, Open: "16:00", Close: "03:00", IsOpen: true},
		},
		PricingRules: map[string]float64{
			"main-floor": 500,
			"mezzanine":  250,
		},
		MinimumSpend: models.MinimumSpend{Regular: 0, VIP: 500, Event: 1000},
		DressCode:    "Smart Casual",
		Status:       "active",
	}
	if err := db.Create(&venue).Error; err != nil {
		return err
	}

	categories := []models.MenuCategory{
		{ID: uuid.NewString(), Name: "Spirits", Code: "spirits", DisplayOrder: 1, IsActive: true, Type: "beverage"},
		{ID: uuid.NewString(), Name: "Cocktails", Code: "cocktails", DisplayOrder: 2, IsActive: true, Type: "beverage"},
		{ID: uuid.NewString(), Name: "Bottles", Code: "bottles", DisplayOrder: 3, IsActive: true, Type: "beverage"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	products := []models.Product{
		{
			ID:          uuid.NewString(),
			Name:        "Grey Goose Vodka",
			Description: "Smooth, premium French vodka",
			Brand:       "Grey Goose",
			BrandID:     uuid.NewString(),
			Category:    categories[0].ID,
			Section:     "main-bar",
			Type:        "spirit",
			Status:      "available",
			Inventory:   models.Inventory{Current: 100, Minimum: 20, Maximum: 200},
			Sizes: []models.Size{
				{ID: uuid.NewString(), Name: "Shot", CurrentPrice: 14, IsAvailable: true},
				{ID: uuid.NewString(), Name: "Double", CurrentPrice: 24, IsAvailable: true},
			},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Espresso Martini",
			Description: "Vodka, espresso, coffee liqueur",
			Brand:       "House",
			BrandID:     uuid.NewString(),
			Category:    categories[1].ID,
			Section:     "main-bar",
			Type:        "cocktail",
			Status:      "available",
			Inventory:   models.Inventory{Current: 50, Minimum: 10, Maximum: 100},
			Sizes: []models.Size{
				{ID: uuid.NewString(), Name: "Glass", CurrentPrice: 18, IsAvailable: true},
			},
		},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	tables := []models.Table{
		{
			ID:       uuid.NewString(),
			VenueID:  venue.ID,
			Number:   "101",
			QRCode:   "table-101",
			Category: "vip",
			Section:  "main-floor",
			Capacity: models.Capacity{Minimum: 2, Maximum: 6},
			Location: models.TableLocation{Floor: 1, Position: "center", X: 100, Y: 100},
			Status:   models.TableAvailable,
		},
		{
			ID:       uuid.NewString(),
			VenueID:  venue.ID,
			Number:   "102",
			QRCode:   "table-102",
			Category: "regular",
			Section:  "mezzanine",
			Capacity: models.Capacity{Minimum: 2, Maximum: 4},
			Location: models.TableLocation{Floor: 2, Position: "rail", X: 40, Y: 220},
			Status:   models.TableAvailable,
		},
	}
	if err := db.Create(&tables).Error; err != nil {
		return err
	}

	staff := models.Staff{
		ID:        uuid.NewString(),
		FirstName: "Jane",
		LastName:  "Smith",
		Role:      "bartender",
		Sections:  []string{"main-bar"},
		IsActive:  true,
		Status:    "active",
		Metrics:   models.StaffMetrics{AverageRating: 4.8, OrdersServed: 150, SalesVolume: 15000},
	}
	if err := db.Create(&staff).Error; err != nil {
		return err
	}

	now := time.Now()
	user := models.User{
		ID:          uuid.NewString(),
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john@example.com",
		Phone:       "123-456-7890",
		// bcrypt of "password", demo login only
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:         "customer",
		CreatedAt:    now,
		UpdatedAt:    now,
		LastLoginAt:  now,
	}
	return db.Create(&user).Error
}
