package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile represents a customer's account details. There is no login in
// front of this: profiles are keyed by the customer id the storefront holds,
// exactly as the page trusted its own storage before.
type Profile struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CustomerID string    `gorm:"type:text;unique;not null" json:"customer_id"`

	Name    string `gorm:"type:text" json:"name,omitempty"`
	Phone   string `gorm:"type:text" json:"phone,omitempty"`
	Email   string `gorm:"type:text" json:"email,omitempty"`
	Address string `gorm:"type:text" json:"address,omitempty"`
	City    string `gorm:"type:text" json:"city,omitempty"`
	Pincode string `gorm:"type:text" json:"pincode,omitempty"`

	PreferredSizes StringList `gorm:"type:jsonb" json:"preferred_sizes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Profile) TableName() string {
	return "rental_profiles"
}

// BeforeCreate sets UUID before creating
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// UpdateProfileRequest represents profile update request
type UpdateProfileRequest struct {
	Name           *string   `json:"name,omitempty" validate:"omitempty,max=200"`
	Phone          *string   `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email          *string   `json:"email,omitempty" validate:"omitempty,email"`
	Address        *string   `json:"address,omitempty" validate:"omitempty,max=500"`
	City           *string   `json:"city,omitempty" validate:"omitempty,max=100"`
	Pincode        *string   `json:"pincode,omitempty" validate:"omitempty,max=10"`
	PreferredSizes *[]string `json:"preferred_sizes,omitempty"`
}
