package models

import "time"

type Size struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CurrentPrice float64 `json:"currentPrice"`
	IsAvailable  bool    `json:"isAvailable"`
}

type Inventory struct {
	Current int `json:"current"`
	Minimum int `json:"minimum"`
	Maximum int `json:"maximum"`
}

type Product struct {
	ID          string    `gorm:"primaryKey"      json:"id"`
	Name        string    `gorm:"not null;index"  json:"name"`
	Description string    `json:"description"`
	BrandID     string    `json:"brandId"`
	Brand       string    `json:"brand"`
	Category    string    `gorm:"index"           json:"category"`
	Section     string    `json:"section"`
	Type        string    `json:"type"`
	Image       string    `json:"image,omitempty"`
	Status      string    `gorm:"default:available" json:"status"`
	Inventory   Inventory `gorm:"serializer:json" json:"inventory"`
	Sizes       []Size    `gorm:"serializer:json" json:"sizes"`
}

type MenuCategory struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null"   json:"name"`
	Code         string `json:"code"`
	DisplayOrder int    `json:"displayOrder"`
	IsActive     bool   `gorm:"default:true" json:"isActive"`
	Type         string `json:"type"`
}

type OrderItem struct {
	ID         string            `json:"id"`
	ProductID  string            `json:"productId"`
	Name       string            `json:"name"`
	Price      float64           `json:"price"`
	TotalPrice float64           `json:"totalPrice"`
	Quantity   int               `json:"quantity"`
	Size       Size              `json:"size"`
	Options    map[string]string `json:"options,omitempty"`
	Status     ItemStatus        `json:"status"`
}

type Order struct {
	ID            string      `gorm:"primaryKey"      json:"id"`
	OrderNumber   string      `gorm:"uniqueIndex"     json:"orderNumber"`
	UserID        string      `gorm:"index"           json:"userId"`
	TableID       string      `gorm:"index"           json:"tableId"`
	VenueID       string      `json:"venueId"`
	Type          string      `json:"type"`
	Items         []OrderItem `gorm:"serializer:json" json:"items"`
	Status        OrderStatus `gorm:"not null;index"  json:"status"`
	Total         float64     `json:"total"`
	Tip           float64     `json:"tip"`
	AdditionalTip float64     `json:"additionalTip"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

type Capacity struct {
	Minimum int `json:"minimum"`
	Maximum int `json:"maximum"`
}

type TableLocation struct {
	Floor    int    `json:"floor"`
	Position string `json:"position"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}

type TableReservation struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	MinimumSpend    float64   `json:"minimumSpend"`
	SpecialRequests string    `json:"specialRequests"`
}

type ReservationHistory struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Revenue float64   `json:"revenue"`
	Rating  float64   `json:"rating"`
}

type Table struct {
	ID                 string               `gorm:"primaryKey"      json:"id"`
	VenueID            string               `gorm:"index"           json:"venueId"`
	Number             string               `json:"number"`
	QRCode             string               `gorm:"index"           json:"qrCode"`
	Category           string               `json:"category"`
	Section            string               `json:"section"`
	Capacity           Capacity             `gorm:"serializer:json" json:"capacity"`
	Location           TableLocation        `gorm:"serializer:json" json:"location"`
	Status             TableStatus          `gorm:"not null"        json:"status"`
	Reservation        *TableReservation    `gorm:"serializer:json" json:"reservation"`
	CurrentOrderID     string               `json:"currentOrder"`
	ReservationHistory []ReservationHistory `gorm:"serializer:json" json:"reservationHistory"`
}

type VenueLocation struct {
	ID          string  `json:"id"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	ZipCode     string  `json:"zipCode"`
	PhoneNumber string  `json:"phoneNumber"`
	Timezone    string  `json:"timezone"`
	TaxRate     float64 `json:"taxRate"`
}

type OperatingHours struct {
	DayOfWeek int    `json:"dayOfWeek"`
	Open      string `json:"open"`
	Close     string `json:"close"`
	IsOpen    bool   `json:"isOpen"`
}

type MinimumSpend struct {
	Regular float64 `json:"regular"`
	VIP     float64 `json:"vip"`
	Event   float64 `json:"event"`
}

type Venue struct {
	ID             string             `gorm:"primaryKey"      json:"id"`
	Name           string             `gorm:"not null"        json:"name"`
	Locations      []VenueLocation    `gorm:"serializer:json" json:"locations"`
	OperatingHours []OperatingHours   `gorm:"serializer:json" json:"operatingHours"`
	PricingRules   map[string]float64 `gorm:"serializer:json" json:"pricingRules"`
	MinimumSpend   MinimumSpend       `gorm:"serializer:json" json:"minimumSpend"`
	DressCode      string             `json:"dressCode"`
	Status         string             `gorm:"default:active"  json:"status"`
}

type StaffMetrics struct {
	AverageRating float64 `json:"averageRating"`
	OrdersServed  int     `json:"ordersServed"`
	SalesVolume   float64 `json:"salesVolume"`
}

type Staff struct {
	ID        string       `gorm:"primaryKey"      json:"id"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	Role      string       `json:"role"`
	Sections  []string     `gorm:"serializer:json" json:"sections"`
	IsActive  bool         `gorm:"default:true"    json:"isActive"`
	Status    string       `gorm:"default:active"  json:"status"`
	Metrics   StaffMetrics `gorm:"serializer:json" json:"metrics"`
}

type User struct {
	ID           string    `gorm:"primaryKey"       json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `gorm:"not null"         json:"-"`
	Role         string    `gorm:"not null"         json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	LastLoginAt  time.Time `json:"lastLoginAt"`
}

type RefreshToken struct {
	ID        uint   `gorm:"primaryKey"      json:"id"`
	Token     string `gorm:"unique;not null" json:"token"`
	UserID    string `gorm:"index;not null"  json:"user_id"`
	ExpiresAt int64  `gorm:"not null"        json:"expires_at"`
	Revoked   bool   `gorm:"default:false"   json:"revoked"`
}

type Payment struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	OrderID       string    `gorm:"index"      json:"orderId"`
	Method        string    `json:"method"`
	Amount        float64   `json:"amount"`
	Tip           float64   `json:"tip"`
	TransactionID string    `json:"transactionId"`
	Status        string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"timestamp"`
}

type ServiceRequest struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	TableID   string    `gorm:"index"      json:"tableId"`
	Type      string    `json:"type"`
	Status    string    `gorm:"default:pending" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
