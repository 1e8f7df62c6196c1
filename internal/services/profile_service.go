package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/vastrarent/vastra-rental-be/internal/models"
	"github.com/vastrarent/vastra-rental-be/internal/repositories"
)

type ProfileService struct {
	profileRepo repositories.ProfileRepo
}

func NewProfileService(profileRepo repositories.ProfileRepo) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

// GetProfile retrieves a customer's profile, returning an empty one when the
// customer has never saved any details.
func (s *ProfileService) GetProfile(customerID string) (*models.Profile, error) {
	if customerID == "" {
		return nil, errors.New("customer_id is required")
	}

	profile, err := s.profileRepo.GetByCustomerID(customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Profile{CustomerID: customerID}, nil
		}
		return nil, err
	}

	return profile, nil
}

// UpdateProfile upserts a customer's profile with the provided fields
func (s *ProfileService) UpdateProfile(customerID string, req *models.UpdateProfileRequest) (*models.Profile, error) {
	if customerID == "" {
		return nil, errors.New("customer_id is required")
	}

	profile, err := s.profileRepo.GetByCustomerID(customerID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile = &models.Profile{CustomerID: customerID}
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Pincode != nil {
		profile.Pincode = *req.Pincode
	}
	if req.PreferredSizes != nil {
		profile.PreferredSizes = models.StringList(*req.PreferredSizes)
	}

	if err := s.profileRepo.Upsert(profile); err != nil {
		return nil, err
	}

	return profile, nil
}
