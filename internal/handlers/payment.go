package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/naismart/naismart-backend/internal/services"
)

// PaymentHandler triggers M-Pesa STK push prompts for signed-in customers
type PaymentHandler struct {
	mpesa *services.MpesaService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(mpesa *services.MpesaService) *PaymentHandler {
	return &PaymentHandler{mpesa: mpesa}
}

// ProcessPayment fires an STK push to the given phone. The gateway's async
// callback is not consumed here, so the response only confirms the prompt
// was accepted.
func (h *PaymentHandler) ProcessPayment(c *fiber.Ctx) error {
	var req struct {
		Phone  string `json:"phone" form:"phone"`
		Amount int    `json:"amount" form:"amount"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Phone == "" || req.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Phone and a positive amount are required",
		})
	}

	resp, err := h.mpesa.STKPush(req.Phone, req.Amount)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Payment request failed. Please try again",
		})
	}

	return c.JSON(fiber.Map{
		"message":  "Check your phone to authorize the payment",
		"checkout": resp.CheckoutRequestID,
	})
}
