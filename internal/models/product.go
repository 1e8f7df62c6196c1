package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList is a custom type for JSONB string arrays.
type StringList []string

// Scan implements sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = []string{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, l)
}

// Value implements driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

// Product represents a rentable garment in the catalog
type Product struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`

	// Garment Info
	Name        string     `gorm:"type:text;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	SKU         string     `gorm:"type:text" json:"sku,omitempty"`
	Gender      string     `gorm:"type:text;not null;check:gender IN ('women', 'men')" json:"gender"`
	Category    string     `gorm:"type:text;not null" json:"category"`
	Occasions   StringList `gorm:"type:jsonb" json:"occasions,omitempty"`
	Sizes       StringList `gorm:"type:jsonb;not null" json:"sizes"`

	// Rental Pricing & Stock
	PricePerDay float64 `gorm:"type:decimal(12,2);not null;default:0" json:"price_per_day"`
	Deposit     float64 `gorm:"type:decimal(12,2);not null;default:0" json:"deposit"`
	RetailPrice float64 `gorm:"type:decimal(12,2)" json:"retail_price,omitempty"`
	Stock       int     `gorm:"type:integer;not null;default:0" json:"stock"`

	// Media
	ImageURL string `gorm:"type:text" json:"image_url,omitempty"`

	// Status
	IsActive bool `gorm:"type:boolean;default:true" json:"is_active"`

	// Timestamps
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "rental_products"
}

// BeforeCreate sets UUID before creating
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// IsAvailable checks if the garment can currently be rented
func (p *Product) IsAvailable() bool {
	return p.IsActive && p.Stock > 0
}

// HasSize checks if the garment is stocked in the given size
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// DeductStock reduces the stock by the specified quantity
func (p *Product) DeductStock(quantity int) bool {
	if p.Stock >= quantity {
		p.Stock -= quantity
		return true
	}
	return false
}

// AddStock increases the stock by the specified quantity
func (p *Product) AddStock(quantity int) {
	p.Stock += quantity
}

// CreateProductRequest represents garment creation request
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Description string   `json:"description,omitempty" validate:"max=1000"`
	SKU         string   `json:"sku,omitempty" validate:"max=100"`
	Gender      string   `json:"gender" validate:"required,oneof=women men"`
	Category    string   `json:"category" validate:"required,max=100"`
	Occasions   []string `json:"occasions,omitempty"`
	Sizes       []string `json:"sizes" validate:"required,min=1"`
	PricePerDay float64  `json:"price_per_day" validate:"required,gte=0"`
	Deposit     float64  `json:"deposit" validate:"gte=0"`
	RetailPrice float64  `json:"retail_price,omitempty" validate:"gte=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	ImageURL    string   `json:"image_url,omitempty" validate:"omitempty,url"`
	IsActive    *bool    `json:"is_active,omitempty"` // Pointer to allow explicit false
}

// UpdateProductRequest represents garment update request
type UpdateProductRequest struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=1000"`
	SKU         *string   `json:"sku,omitempty" validate:"omitempty,max=100"`
	Gender      *string   `json:"gender,omitempty" validate:"omitempty,oneof=women men"`
	Category    *string   `json:"category,omitempty" validate:"omitempty,max=100"`
	Occasions   *[]string `json:"occasions,omitempty"`
	Sizes       *[]string `json:"sizes,omitempty" validate:"omitempty,min=1"`
	PricePerDay *float64  `json:"price_per_day,omitempty" validate:"omitempty,gte=0"`
	Deposit     *float64  `json:"deposit,omitempty" validate:"omitempty,gte=0"`
	RetailPrice *float64  `json:"retail_price,omitempty" validate:"omitempty,gte=0"`
	Stock       *int      `json:"stock,omitempty" validate:"omitempty,gte=0"`
	ImageURL    *string   `json:"image_url,omitempty" validate:"omitempty,url"`
	IsActive    *bool     `json:"is_active,omitempty"`
}

// ProductListResponse represents paginated garment list response
type ProductListResponse struct {
	Products   []Product `json:"products"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}

// ProductFilter represents catalog filtering options
type ProductFilter struct {
	Gender     string
	Category   string
	Occasion   string
	Size       string
	IsActive   *bool
	SearchTerm string // Search in name, SKU, description
	MinPrice   *float64
	MaxPrice   *float64
	InStock    *bool // Only garments with stock > 0
	Page       int
	PageSize   int
}
