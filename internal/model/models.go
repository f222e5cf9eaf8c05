package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `gorm:"primaryKey;size:64;not null" json:"id"`
	Name        string          `gorm:"size:128;not null" json:"name"`
	Description string          `gorm:"size:1024" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
	ImageURL    string          `gorm:"size:512" json:"image_url"`
	Category    string          `gorm:"size:64;index" json:"category"`
	InStock     bool            `gorm:"not null;default:true" json:"in_stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type Order struct {
	ID string `gorm:"primaryKey;size:64;not null" json:"id"`
	// FK → auth provider uid
	UserID      string          `gorm:"size:64;index;not null" json:"user_id"`
	TotalAmount decimal.Decimal `gorm:"type:numeric;not null" json:"total_amount"`
	// JSON snapshot of the shipping address at submission time
	ShippingAddress string `gorm:"size:2048;not null" json:"shipping_address"`
	// opaque payment blob; payment confirmation is handled elsewhere
	PaymentDetails string      `gorm:"size:2048" json:"payment_details"`
	Status         string      `gorm:"size:32;index;not null" json:"status"` // paid
	Items          []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
	CreatedAt      time.Time   `json:"created_at"`
}

// OrderItem is a denormalized snapshot of a cart line, immutable after creation.
type OrderItem struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// FK → order.id
	OrderID string `gorm:"size:64;index;not null" json:"order_id"`
	// FK → product.id
	ProductID string          `gorm:"size:64;index;not null" json:"product_id"`
	Name      string          `gorm:"size:128;not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	ImageURL  string          `gorm:"size:512" json:"image_url"`
	CreatedAt time.Time       `json:"created_at"`
}

type UserRole struct {
	UserID    string    `gorm:"primaryKey;size:64;not null" json:"user_id"`
	Role      string    `gorm:"size:32;index;not null" json:"role"` // admin, customer
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"

	OrderStatusPaid = "paid"
)
