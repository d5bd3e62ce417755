// Package repo contains the persistence interfaces consumed by the service
// layer and their gorm implementations. Lookups return gorm.ErrRecordNotFound
// for missing rows; services translate that into their own sentinels.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/AGASocial/bottcierge/internal/models"
)

type Orders interface {
	Create(ctx context.Context, o *models.Order) error
	Get(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	ListByTable(ctx context.Context, tableID string) ([]models.Order, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, o *models.Order) error
}

type Tables interface {
	Get(ctx context.Context, id string) (*models.Table, error)
	GetByQR(ctx context.Context, code string) (*models.Table, error)
	List(ctx context.Context) ([]models.Table, error)
	Save(ctx context.Context, t *models.Table) error
}

type Products interface {
	Get(ctx context.Context, id string) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	ListByCategory(ctx context.Context, category string) ([]models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Save(ctx context.Context, p *models.Product) error
}

type Categories interface {
	Get(ctx context.Context, id string) (*models.MenuCategory, error)
	List(ctx context.Context) ([]models.MenuCategory, error)
	Save(ctx context.Context, c *models.MenuCategory) error
}

type Venues interface {
	Get(ctx context.Context, id string) (*models.Venue, error)
	List(ctx context.Context) ([]models.Venue, error)
	Save(ctx context.Context, v *models.Venue) error
}

type StaffMembers interface {
	Get(ctx context.Context, id string) (*models.Staff, error)
	List(ctx context.Context) ([]models.Staff, error)
	Create(ctx context.Context, s *models.Staff) error
	Save(ctx context.Context, s *models.Staff) error
}

type Users interface {
	Get(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
	Save(ctx context.Context, u *models.User) error
}

type Tokens interface {
	Save(ctx context.Context, t *models.RefreshToken) error
	Get(ctx context.Context, token string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, token string) error
}

type Payments interface {
	Create(ctx context.Context, p *models.Payment) error
	Get(ctx context.Context, id string) (*models.Payment, error)
	ListByOrder(ctx context.Context, orderID string) ([]models.Payment, error)
}

type ServiceRequests interface {
	Create(ctx context.Context, r *models.ServiceRequest) error
	Get(ctx context.Context, id string) (*models.ServiceRequest, error)
	List(ctx context.Context, tableID string) ([]models.ServiceRequest, error)
	Save(ctx context.Context, r *models.ServiceRequest) error
}

// Store bundles one repository per resource, all backed by the same DB.
type Store struct {
	Orders          Orders
	Tables          Tables
	Products        Products
	Categories      Categories
	Venues          Venues
	Staff           StaffMembers
	Users           Users
	Tokens          Tokens
	Payments        Payments
	ServiceRequests ServiceRequests
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		Orders:          &OrderRepo{DB: db},
		Tables:          &TableRepo{DB: db},
		Products:        &ProductRepo{DB: db},
		Categories:      &CategoryRepo{DB: db},
		Venues:          &VenueRepo{DB: db},
		Staff:           &StaffRepo{DB: db},
		Users:           &UserRepo{DB: db},
		Tokens:          &TokenRepo{DB: db},
		Payments:        &PaymentRepo{DB: db},
		ServiceRequests: &ServiceRequestRepo{DB: db},
	}
}
