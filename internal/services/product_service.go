package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vastrarent/vastra-rental-be/internal/models"
	"github.com/vastrarent/vastra-rental-be/internal/repositories"
)

type ProductService struct {
	productRepo repositories.ProductRepo
}

func NewProductService(productRepo repositories.ProductRepo) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

// CreateProduct adds a new garment to the catalog
func (s *ProductService) CreateProduct(req *models.CreateProductRequest) (*models.Product, error) {
	// Validate request
	if req.Name == "" {
		return nil, errors.New("product name is required")
	}
	if req.Gender != "women" && req.Gender != "men" {
		return nil, errors.New("gender must be 'women' or 'men'")
	}
	if len(req.Sizes) == 0 {
		return nil, errors.New("at least one size is required")
	}
	if req.PricePerDay < 0 {
		return nil, errors.New("price cannot be negative")
	}
	if req.Stock < 0 {
		return nil, errors.New("stock cannot be negative")
	}

	// Check if SKU already exists
	if req.SKU != "" {
		existing, err := s.productRepo.GetBySKU(req.SKU)
		if err == nil && existing != nil {
			return nil, fmt.Errorf("product with SKU '%s' already exists", req.SKU)
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		SKU:         req.SKU,
		Gender:      req.Gender,
		Category:    req.Category,
		Occasions:   models.StringList(req.Occasions),
		Sizes:       models.StringList(req.Sizes),
		PricePerDay: req.PricePerDay,
		Deposit:     req.Deposit,
		RetailPrice: req.RetailPrice,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}

	// Override IsActive if explicitly set
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// GetProduct retrieves a garment by ID
func (s *ProductService) GetProduct(productID string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, err
	}
	return product, nil
}

// ListProducts retrieves garments with filtering and pagination
func (s *ProductService) ListProducts(filter models.ProductFilter) (*models.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}

	products, total, err := s.productRepo.List(filter)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / filter.PageSize
	if int(total)%filter.PageSize > 0 {
		totalPages++
	}

	return &models.ProductListResponse{
		Products:   products,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// UpdateProduct updates an existing garment
func (s *ProductService) UpdateProduct(productID string, req *models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.GetProduct(productID)
	if err != nil {
		return nil, err
	}

	// Update fields if provided
	if req.Name != nil {
		if *req.Name == "" {
			return nil, errors.New("product name cannot be empty")
		}
		product.Name = *req.Name
	}

	if req.Description != nil {
		product.Description = *req.Description
	}

	if req.SKU != nil {
		if *req.SKU != product.SKU && *req.SKU != "" {
			existing, err := s.productRepo.GetBySKU(*req.SKU)
			if err == nil && existing != nil && existing.ID != product.ID {
				return nil, fmt.Errorf("product with SKU '%s' already exists", *req.SKU)
			}
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		product.SKU = *req.SKU
	}

	if req.Gender != nil {
		if *req.Gender != "women" && *req.Gender != "men" {
			return nil, errors.New("gender must be 'women' or 'men'")
		}
		product.Gender = *req.Gender
	}

	if req.Category != nil {
		product.Category = *req.Category
	}

	if req.Occasions != nil {
		product.Occasions = models.StringList(*req.Occasions)
	}

	if req.Sizes != nil {
		if len(*req.Sizes) == 0 {
			return nil, errors.New("at least one size is required")
		}
		product.Sizes = models.StringList(*req.Sizes)
	}

	if req.PricePerDay != nil {
		if *req.PricePerDay < 0 {
			return nil, errors.New("price cannot be negative")
		}
		product.PricePerDay = *req.PricePerDay
	}

	if req.Deposit != nil {
		if *req.Deposit < 0 {
			return nil, errors.New("deposit cannot be negative")
		}
		product.Deposit = *req.Deposit
	}

	if req.RetailPrice != nil {
		product.RetailPrice = *req.RetailPrice
	}

	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, errors.New("stock cannot be negative")
		}
		product.Stock = *req.Stock
	}

	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}

	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// DeleteProduct soft deletes a garment
func (s *ProductService) DeleteProduct(productID string) error {
	if _, err := s.GetProduct(productID); err != nil {
		return err
	}
	return s.productRepo.Delete(productID)
}

// UpdateStock adjusts garment stock (quantity can be positive or negative)
func (s *ProductService) UpdateStock(productID string, quantity int) (*models.Product, error) {
	product, err := s.GetProduct(productID)
	if err != nil {
		return nil, err
	}

	if quantity < 0 && product.Stock+quantity < 0 {
		return nil, errors.New("insufficient stock")
	}

	if err := s.productRepo.UpdateStock(productID, quantity); err != nil {
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}

	return s.productRepo.GetByID(productID)
}

// ToggleProductStatus flips a garment between active and inactive
func (s *ProductService) ToggleProductStatus(productID string) (*models.Product, error) {
	product, err := s.GetProduct(productID)
	if err != nil {
		return nil, err
	}

	product.IsActive = !product.IsActive

	if err := s.productRepo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to toggle product status: %w", err)
	}

	return product, nil
}
