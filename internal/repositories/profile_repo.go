package repositories

import (
	"gorm.io/gorm"

	"github.com/vastrarent/vastra-rental-be/internal/models"
)

type ProfileRepo interface {
	GetByCustomerID(customerID string) (*models.Profile, error)
	Upsert(profile *models.Profile) error
}

type profileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepo {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByCustomerID(customerID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Where("customer_id = ?", customerID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepo) Upsert(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
