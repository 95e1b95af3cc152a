package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ProductView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Features    []string  `json:"features"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	CustomerID      uuid.UUID `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   string    `json:"customer_phone"`
	ProductID       uuid.UUID `json:"product_id"`
	ProductName     string    `json:"product_name"`
	EventDate       string    `json:"event_date"`
	EventTime       string    `json:"event_time"`
	Duration        int       `json:"duration"`
	Address         string    `json:"address"`
	EventType       string    `json:"event_type"`
	GuestsCount     *int32    `json:"guests_count,omitempty"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
	TotalPrice      int32     `json:"total_price"`
	Status          string    `json:"status"`
	DepositPaid     bool      `json:"deposit_paid"`
	FullPaymentPaid bool      `json:"full_payment_paid"`
	DepositAmount   float64   `json:"deposit_amount"`
	PaidAmount      float64   `json:"paid_amount"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	ProductName   string    `json:"product_name"`
	EventDate     string    `json:"event_date"`
	EventTime     string    `json:"event_time"`
	Duration      int       `json:"duration"`
	EventType     string    `json:"event_type"`
	TotalPrice    int32     `json:"total_price"`
	Status        string    `json:"status"`
	DepositPaid   bool      `json:"deposit_paid"`
	CreatedAt     time.Time `json:"created_at"`
}

type CustomerListItem struct {
	ID            uuid.UUID `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	BookingsCount int64     `json:"bookings_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type CustomerView struct {
	ID        uuid.UUID         `json:"id"`
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Address   string            `json:"address"`
	Bookings  []BookingListItem `json:"bookings"`
	CreatedAt time.Time         `json:"created_at"`
}

type TagView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

type GalleryImageView struct {
	ID        uuid.UUID `json:"id"`
	ImageURL  string    `json:"image_url"`
	Caption   string    `json:"caption"`
	IsPublic  bool      `json:"is_public"`
	Tags      []TagView `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactMessageView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type AvailabilityBlockView struct {
	ID        uuid.UUID  `json:"id"`
	ProductID *uuid.UUID `json:"product_id,omitempty"`
	BlockDate string     `json:"block_date"`
	Reason    *string    `json:"reason,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type DashboardStats struct {
	TotalBookings     int64             `json:"total_bookings"`
	PendingBookings   int64             `json:"pending_bookings"`
	ConfirmedBookings int64             `json:"confirmed_bookings"`
	TotalCustomers    int64             `json:"total_customers"`
	NewMessages       int64             `json:"new_messages"`
	Revenue           int64             `json:"revenue"`
	RecentBookings    []BookingListItem `json:"recent_bookings"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type UserView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	FullName    *string    `json:"full_name,omitempty"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
