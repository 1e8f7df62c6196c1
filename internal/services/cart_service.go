package services

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/vastrarent/vastra-rental-be/internal/models"
	"github.com/vastrarent/vastra-rental-be/internal/repositories"
)

type CartService struct {
	cartRepo    repositories.CartRepo
	productRepo repositories.ProductRepo
}

func NewCartService(cartRepo repositories.CartRepo, productRepo repositories.ProductRepo) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

type AddToCartRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
	ProductID  string `json:"product_id" validate:"required"`
	Size       string `json:"size" validate:"required"`
	RentalDays int    `json:"rental_days" validate:"required,gte=1"`
	Quantity   int    `json:"quantity" validate:"required,gte=1"`
	Notes      string `json:"notes,omitempty"`
}

type UpdateCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity"`
}

type RemoveFromCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
}

// AddToCart adds a rental line to the cart (creates the cart if none is active).
// Price and deposit are always read from the catalog, never from the client.
func (s *CartService) AddToCart(req *AddToCartRequest) (*models.Cart, error) {
	if req.Quantity <= 0 {
		return nil, errors.New("quantity must be greater than 0")
	}
	if req.RentalDays <= 0 {
		return nil, errors.New("rental days must be greater than 0")
	}

	product, err := s.productRepo.GetByID(req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, err
	}

	if !product.IsAvailable() {
		return nil, errors.New("product is not available for rent")
	}
	if !product.HasSize(req.Size) {
		return nil, errors.New("size not available for this garment")
	}
	if product.Stock < req.Quantity {
		return nil, errors.New("insufficient stock")
	}

	// Get or create active cart
	cart, err := s.cartRepo.GetActiveCart(req.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cart = &models.Cart{
				CustomerID: req.CustomerID,
				Status:     "active",
				Items:      models.CartItems{},
			}

			if err := s.cartRepo.Create(cart); err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if cart.IsExpired() {
		s.cartRepo.ExpireCart(cart.ID.String())
		return nil, errors.New("cart has expired, please start over")
	}

	cart.AddItem(models.CartItem{
		ProductID:   product.ID.String(),
		ProductName: product.Name,
		Size:        req.Size,
		RentalDays:  req.RentalDays,
		Quantity:    req.Quantity,
		PricePerDay: product.PricePerDay,
		Deposit:     product.Deposit,
		Notes:       req.Notes,
	})

	if err := s.cartRepo.Update(cart); err != nil {
		return nil, err
	}

	log.Printf("🛒 Added %dx %s (%s, %d days) to cart for %s",
		req.Quantity, product.Name, req.Size, req.RentalDays, req.CustomerID)
	return cart, nil
}

// UpdateCartItem updates the quantity of a line (removes it at zero)
func (s *CartService) UpdateCartItem(customerID string, req *UpdateCartItemRequest) (*models.Cart, error) {
	cart, err := s.activeCart(customerID)
	if err != nil {
		return nil, err
	}

	if !cart.UpdateItem(req.ProductID, req.Size, req.Quantity) {
		return nil, errors.New("product not found in cart")
	}

	if err := s.cartRepo.Update(cart); err != nil {
		return nil, err
	}

	log.Printf("🛒 Updated cart line %s/%s to quantity %d for %s",
		req.ProductID, req.Size, req.Quantity, customerID)
	return cart, nil
}

// RemoveFromCart removes a line from the cart
func (s *CartService) RemoveFromCart(customerID string, req *RemoveFromCartRequest) (*models.Cart, error) {
	cart, err := s.activeCart(customerID)
	if err != nil {
		return nil, err
	}

	if !cart.RemoveItem(req.ProductID, req.Size) {
		return nil, errors.New("product not found in cart")
	}

	if err := s.cartRepo.Update(cart); err != nil {
		return nil, err
	}

	log.Printf("🛒 Removed %s/%s from cart for %s", req.ProductID, req.Size, customerID)
	return cart, nil
}

// ViewCart retrieves the current active cart
func (s *CartService) ViewCart(customerID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetActiveCart(customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("no active cart found")
		}
		return nil, err
	}

	if cart.IsExpired() {
		s.cartRepo.ExpireCart(cart.ID.String())
		return nil, errors.New("cart has expired")
	}

	return cart, nil
}

// ClearCart removes all lines from the cart
func (s *CartService) ClearCart(customerID string) error {
	cart, err := s.cartRepo.GetActiveCart(customerID)
	if err != nil {
		return errors.New("cart not found")
	}

	cart.ClearItems()
	if err := s.cartRepo.Update(cart); err != nil {
		return err
	}

	log.Printf("🛒 Cleared cart for %s", customerID)
	return nil
}

func (s *CartService) activeCart(customerID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetActiveCart(customerID)
	if err != nil {
		return nil, errors.New("cart not found")
	}

	if cart.IsExpired() {
		s.cartRepo.ExpireCart(cart.ID.String())
		return nil, errors.New("cart has expired")
	}

	return cart, nil
}
