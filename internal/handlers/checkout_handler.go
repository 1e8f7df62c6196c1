package handlers

import (
	"encoding/base64"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/vastrarent/vastra-rental-be/internal/services"
)

type CheckoutHandler struct {
	checkoutService *services.CheckoutService
}

func NewCheckoutHandler(checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// Checkout converts the active cart into a paid rental order
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	var req services.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.CustomerID == "" || req.PaymentMethod == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "customer_id and payment_method are required",
		})
	}

	result, err := h.checkoutService.Checkout(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	response := fiber.Map{
		"order":        result.Order,
		"instructions": result.Instructions,
	}
	if len(result.QRCodePNG) > 0 {
		response["qr_code"] = base64.StdEncoding.EncodeToString(result.QRCodePNG)
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

// GetOrder retrieves an order by its order number
func (h *CheckoutHandler) GetOrder(c *fiber.Ctx) error {
	orderNumber := c.Params("order_number")
	if orderNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Order number is required",
		})
	}

	order, err := h.checkoutService.GetOrder(orderNumber)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(order)
}

// ListOrders retrieves a customer's recent orders
func (h *CheckoutHandler) ListOrders(c *fiber.Ctx) error {
	customerID := c.Params("customer_id")
	if customerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "customer_id is required",
		})
	}

	limit := 20
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	orders, err := h.checkoutService.ListOrders(customerID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"orders": orders,
		"total":  len(orders),
	})
}

// MarkReturned closes a rental once the garments come back
func (h *CheckoutHandler) MarkReturned(c *fiber.Ctx) error {
	orderNumber := c.Params("order_number")
	if orderNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Order number is required",
		})
	}

	order, err := h.checkoutService.MarkReturned(orderNumber)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(order)
}
