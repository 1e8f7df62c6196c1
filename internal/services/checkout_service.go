package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vastrarent/vastra-rental-be/internal/models"
	"github.com/vastrarent/vastra-rental-be/internal/payment"
	"github.com/vastrarent/vastra-rental-be/internal/repositories"
)

type CheckoutService struct {
	cartRepo    repositories.CartRepo
	orderRepo   repositories.OrderRepo
	productRepo repositories.ProductRepo
	profileRepo repositories.ProfileRepo
	gateway     payment.Gateway
}

func NewCheckoutService(
	cartRepo repositories.CartRepo,
	orderRepo repositories.OrderRepo,
	productRepo repositories.ProductRepo,
	profileRepo repositories.ProfileRepo,
	gateway payment.Gateway,
) *CheckoutService {
	return &CheckoutService{
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		profileRepo: profileRepo,
		gateway:     gateway,
	}
}

type CheckoutRequest struct {
	CustomerID    string     `json:"customer_id" validate:"required"`
	PaymentMethod string     `json:"payment_method" validate:"required,oneof=upi card cod"`
	RentalStart   *time.Time `json:"rental_start,omitempty"`
}

type CheckoutResponse struct {
	Order        *models.Order `json:"order"`
	Instructions string        `json:"instructions,omitempty"`
	QRCodePNG    []byte        `json:"qr_code_png,omitempty"`
}

// Checkout converts the active cart into a paid rental order. Stock is
// deducted per line; the payment itself goes through the configured gateway.
func (s *CheckoutService) Checkout(req *CheckoutRequest) (*CheckoutResponse, error) {
	cart, err := s.cartRepo.GetActiveCart(req.CustomerID)
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
	if cart.IsEmpty() {
		return nil, errors.New("cart is empty, cannot checkout")
	}

	// Verify availability and deduct stock up front. The longest rental line
	// decides the return date.
	maxDays := 0
	for _, item := range cart.Items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("garment %s is no longer in the catalog", item.ProductName)
		}
		if !product.IsAvailable() || product.Stock < item.Quantity {
			return nil, fmt.Errorf("garment %s is out of stock", item.ProductName)
		}
		if item.RentalDays > maxDays {
			maxDays = item.RentalDays
		}
	}

	orderItems := make([]models.OrderItem, len(cart.Items))
	for i, item := range cart.Items {
		orderItems[i] = models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Size:        item.Size,
			RentalDays:  item.RentalDays,
			Quantity:    item.Quantity,
			PricePerDay: item.PricePerDay,
			Deposit:     item.Deposit,
			Subtotal:    item.Subtotal,
		}
	}

	itemsJSON, err := json.Marshal(orderItems)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if req.RentalStart != nil {
		start = *req.RentalStart
	}
	end := start.Add(time.Duration(maxDays) * 24 * time.Hour)

	order := &models.Order{
		OrderNumber:       generateOrderNumber(),
		CustomerID:        cart.CustomerID,
		CustomerName:      s.customerName(cart.CustomerID),
		Items:             datatypes.JSON(itemsJSON),
		TotalAmount:       cart.TotalAmount,
		TotalDeposit:      cart.TotalDeposit,
		RentalStart:       &start,
		RentalEnd:         &end,
		PaymentMethod:     req.PaymentMethod,
		PaymentStatus:     models.PaymentStatusPending,
		FulfillmentStatus: models.FulfillmentStatusPending,
	}

	result, err := s.gateway.Process(payment.ProcessRequest{
		OrderNumber: order.OrderNumber,
		Method:      req.PaymentMethod,
		Amount:      cart.TotalAmount,
		Deposit:     cart.TotalDeposit,
	})
	if err != nil {
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	order.PaymentReference = result.Reference
	order.PaymentStatus = result.Status
	order.PaidAt = result.PaidAt
	if result.Status == models.PaymentStatusPaid {
		order.FulfillmentStatus = models.FulfillmentStatusPreparing
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	// Deduct stock after the order is committed. Best-effort: a failed
	// deduction leaves a paid order with unreserved stock, and only the
	// warning below records it.
	for _, item := range cart.Items {
		if err := s.productRepo.UpdateStock(item.ProductID, -item.Quantity); err != nil {
			log.Printf("⚠️  Failed to deduct stock for %s: %v", item.ProductID, err)
		}
	}

	if err := s.cartRepo.MarkCheckedOut(cart.ID.String()); err != nil {
		log.Printf("⚠️  Failed to mark cart as checked_out: %v", err)
	}

	log.Printf("✅ Checked out cart for %s - Order %s created (₹%.2f + ₹%.2f deposit)",
		cart.CustomerID, order.OrderNumber, order.TotalAmount, order.TotalDeposit)

	return &CheckoutResponse{
		Order:        order,
		Instructions: result.Instructions,
		QRCodePNG:    result.QRCodePNG,
	}, nil
}

// GetOrder retrieves an order by its order number
func (s *CheckoutService) GetOrder(orderNumber string) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNumber(orderNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order not found")
		}
		return nil, err
	}
	return order, nil
}

// ListOrders retrieves a customer's recent orders
func (s *CheckoutService) ListOrders(customerID string, limit int) ([]models.Order, error) {
	return s.orderRepo.ListByCustomer(customerID, limit)
}

// MarkReturned closes a rental once the garments come back
func (s *CheckoutService) MarkReturned(orderNumber string) (*models.Order, error) {
	order, err := s.GetOrder(orderNumber)
	if err != nil {
		return nil, err
	}

	if order.FulfillmentStatus == models.FulfillmentStatusReturned {
		return order, nil
	}

	order.FulfillmentStatus = models.FulfillmentStatusReturned
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	// Restock the returned garments
	var items []models.OrderItem
	if err := json.Unmarshal(order.Items, &items); err == nil {
		for _, item := range items {
			if err := s.productRepo.UpdateStock(item.ProductID, item.Quantity); err != nil {
				log.Printf("⚠️  Failed to restock %s: %v", item.ProductID, err)
			}
		}
	}

	log.Printf("✅ Order %s marked returned, deposit ₹%.2f to refund", order.OrderNumber, order.TotalDeposit)
	return order, nil
}

func (s *CheckoutService) customerName(customerID string) string {
	profile, err := s.profileRepo.GetByCustomerID(customerID)
	if err != nil {
		return ""
	}
	return profile.Name
}

func generateOrderNumber() string {
	return fmt.Sprintf("VR-%s-%s",
		time.Now().Format("20060102"),
		strings.ToUpper(uuid.New().String()[:8]))
}
