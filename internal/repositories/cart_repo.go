package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vastrarent/vastra-rental-be/internal/models"
)

type CartRepo interface {
	Create(cart *models.Cart) error
	GetActiveCart(customerID string) (*models.Cart, error)
	Update(cart *models.Cart) error
	MarkCheckedOut(id string) error
	ExpireCart(id string) error
	ExpireStale() (int64, error)
}

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepo(db *gorm.DB) CartRepo {
	return &cartRepo{db: db}
}

func (r *cartRepo) Create(cart *models.Cart) error {
	return r.db.Create(cart).Error
}

func (r *cartRepo) GetActiveCart(customerID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Where("customer_id = ? AND status = 'active'", customerID).
		Order("created_at DESC").
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepo) Update(cart *models.Cart) error {
	return r.db.Save(cart).Error
}

func (r *cartRepo) MarkCheckedOut(id string) error {
	return r.setStatus(id, "checked_out")
}

func (r *cartRepo) ExpireCart(id string) error {
	return r.setStatus(id, "expired")
}

func (r *cartRepo) setStatus(id, status string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid cart ID: %w", err)
	}

	return r.db.Model(&models.Cart{}).
		Where("id = ?", uid).
		Update("status", status).Error
}

// ExpireStale marks every active cart past its expiry as expired. Returns
// how many carts were swept.
func (r *cartRepo) ExpireStale() (int64, error) {
	result := r.db.Model(&models.Cart{}).
		Where("status = 'active' AND expires_at < ?", time.Now()).
		Update("status", "expired")
	return result.RowsAffected, result.Error
}
