package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderItem represents a single rental line in an order
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Size        string  `json:"size"`
	RentalDays  int     `json:"rental_days"`
	Quantity    int     `json:"quantity"`
	PricePerDay float64 `json:"price_per_day"`
	Deposit     float64 `json:"deposit"`
	Subtotal    float64 `json:"subtotal"`
}

// Order represents a confirmed rental order
type Order struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrderNumber string    `gorm:"type:text;unique;not null" json:"order_number"`

	// Customer
	CustomerID   string `gorm:"type:text;not null;index" json:"customer_id"`
	CustomerName string `gorm:"type:text" json:"customer_name"`

	// Rental Details
	Items        datatypes.JSON `gorm:"type:jsonb;not null" json:"items"`
	TotalAmount  float64        `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	TotalDeposit float64        `gorm:"type:decimal(12,2);not null;default:0" json:"total_deposit"`
	RentalStart  *time.Time     `json:"rental_start,omitempty"`
	RentalEnd    *time.Time     `json:"rental_end,omitempty"`

	// Payment (simulated, no real gateway behind this)
	PaymentMethod    string     `gorm:"type:text" json:"payment_method"`
	PaymentStatus    string     `gorm:"type:text;default:'pending'" json:"payment_status"`
	PaymentReference string     `gorm:"type:text" json:"payment_reference"`
	PaidAt           *time.Time `json:"paid_at"`

	// Fulfillment
	FulfillmentStatus string `gorm:"type:text;default:'pending'" json:"fulfillment_status"`

	// Timestamps
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "rental_orders"
}

// BeforeCreate sets UUID before creating
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// Order status constants
const (
	// Payment Status
	PaymentStatusPending   = "pending"
	PaymentStatusPaid      = "paid"
	PaymentStatusFailed    = "failed"
	PaymentStatusCancelled = "cancelled"
	PaymentStatusRefunded  = "refunded"

	// Payment Methods
	PaymentMethodUPI  = "upi"
	PaymentMethodCard = "card"
	PaymentMethodCOD  = "cod"

	// Fulfillment Status
	FulfillmentStatusPending   = "pending"
	FulfillmentStatusPreparing = "preparing"
	FulfillmentStatusDelivered = "delivered"
	FulfillmentStatusReturned  = "returned"
	FulfillmentStatusCancelled = "cancelled"
)
