package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem represents a single rental line in the cart
type CartItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Size        string  `json:"size"`
	RentalDays  int     `json:"rental_days"`
	Quantity    int     `json:"quantity"`
	PricePerDay float64 `json:"price_per_day"`
	Deposit     float64 `json:"deposit"`
	Subtotal    float64 `json:"subtotal"`
	Notes       string  `json:"notes,omitempty"`
}

// CartItems is a custom type for JSONB array
type CartItems []CartItem

// Scan implements sql.Scanner interface
func (c *CartItems) Scan(value interface{}) error {
	if value == nil {
		*c = []CartItem{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, c)
}

// Value implements driver.Valuer interface
func (c CartItems) Value() (driver.Value, error) {
	if c == nil {
		return json.Marshal([]CartItem{})
	}
	return json.Marshal(c)
}

// Cart represents a customer's rental cart
type Cart struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID   string         `json:"customer_id" gorm:"not null;index"`
	Items        CartItems      `json:"items" gorm:"type:jsonb;not null"`
	TotalAmount  float64        `json:"total_amount" gorm:"type:decimal(12,2);default:0"`
	TotalDeposit float64        `json:"total_deposit" gorm:"type:decimal(12,2);default:0"`
	Status       string         `json:"status" gorm:"default:'active';check:status IN ('active', 'checked_out', 'expired', 'cancelled')"`
	CreatedAt    time.Time      `json:"created_at" gorm:"default:now()"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"default:now()"`
	ExpiresAt    time.Time      `json:"expires_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Cart) TableName() string {
	return "rental_carts"
}

// BeforeCreate hook to set expiry time
func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ExpiresAt.IsZero() {
		c.ExpiresAt = time.Now().Add(24 * time.Hour)
	}
	return nil
}

// CalculateTotals recalculates rental total and deposit from the items
func (c *Cart) CalculateTotals() {
	total := 0.0
	deposit := 0.0
	for _, item := range c.Items {
		total += item.Subtotal
		deposit += item.Deposit * float64(item.Quantity)
	}
	c.TotalAmount = total
	c.TotalDeposit = deposit
}

// AddItem adds or merges a rental line in the cart. Lines merge only when
// product, size and rental length all match.
func (c *Cart) AddItem(item CartItem) {
	item.Subtotal = item.PricePerDay * float64(item.RentalDays) * float64(item.Quantity)

	for i, existing := range c.Items {
		if existing.ProductID == item.ProductID && existing.Size == item.Size && existing.RentalDays == item.RentalDays {
			c.Items[i].Quantity += item.Quantity
			c.Items[i].Subtotal = c.Items[i].PricePerDay * float64(c.Items[i].RentalDays) * float64(c.Items[i].Quantity)
			c.CalculateTotals()
			return
		}
	}

	c.Items = append(c.Items, item)
	c.CalculateTotals()
}

// UpdateItem updates an existing line's quantity (removes it at zero)
func (c *Cart) UpdateItem(productID, size string, quantity int) bool {
	for i, item := range c.Items {
		if item.ProductID == productID && item.Size == size {
			if quantity <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			} else {
				c.Items[i].Quantity = quantity
				c.Items[i].Subtotal = c.Items[i].PricePerDay * float64(c.Items[i].RentalDays) * float64(quantity)
			}
			c.CalculateTotals()
			return true
		}
	}
	return false
}

// RemoveItem removes a line from the cart
func (c *Cart) RemoveItem(productID, size string) bool {
	for i, item := range c.Items {
		if item.ProductID == productID && item.Size == size {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.CalculateTotals()
			return true
		}
	}
	return false
}

// ClearItems removes all lines from the cart
func (c *Cart) ClearItems() {
	c.Items = []CartItem{}
	c.TotalAmount = 0
	c.TotalDeposit = 0
}

// IsExpired checks if the cart has expired
func (c *Cart) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}

// IsEmpty checks if the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
