package model

import "time"

type User struct {
	ID                   int       `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	PasswordHash         string    `json:"-"`
	MembershipStatus     string    `json:"membership_status"`
	MembershipExpiration time.Time `json:"membership_expiration"`
	CreatedAt            time.Time `json:"created_at"`
}

type Product struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Category  *string   `json:"category"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// CheckoutItem is one requested cart line. Not persisted.
type CheckoutItem struct {
	ProductID int
	Quantity  int
}

type Order struct {
	ID        int         `json:"order_id"`
	UserID    int         `json:"-"`
	Total     float64     `json:"total"`
	OrderDate time.Time   `json:"order_date"`
	Items     []OrderItem `json:"items"`
}

// OrderItem carries the unit price snapshotted at purchase time,
// not a live reference to the product's current price.
type OrderItem struct {
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
