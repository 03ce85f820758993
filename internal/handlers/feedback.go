package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/naismart/naismart-backend/internal/models"
	"github.com/naismart/naismart-backend/internal/services"
	"github.com/naismart/naismart-backend/internal/storage"
)

// FeedbackHandler handles contact-form submissions
type FeedbackHandler struct {
	store    storage.Store
	notifier *services.Notifier
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(store storage.Store, notifier *services.Notifier) *FeedbackHandler {
	return &FeedbackHandler{
		store:    store,
		notifier: notifier,
	}
}

// Submit stores feedback and acknowledges it by email. No sign-in required.
func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	var req models.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Feedback == "" || req.Name == "" || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Feedback, name and email are required",
		})
	}

	feedback, err := h.store.CreateFeedback(&models.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Feedback,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An error occured! Your feedback was not submitted! Try again!",
		})
	}

	h.notifier.NotifyFeedback(feedback)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Your feedback was successfully submitted",
	})
}
