package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/naismart/naismart-backend/internal/auth"
	"github.com/naismart/naismart-backend/internal/models"
	"github.com/naismart/naismart-backend/internal/services"
	"github.com/naismart/naismart-backend/internal/storage"
)

// invalidCredentials is the single message for every sign-in failure, so a
// caller cannot tell an unknown email from a wrong password.
const invalidCredentials = "invalid email or password"

// AuthHandler handles registration, sign-in and password recovery
type AuthHandler struct {
	store    storage.Store
	sessions *services.SessionManager
	notifier *services.Notifier
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(store storage.Store, sessions *services.SessionManager, notifier *services.Notifier) *AuthHandler {
	return &AuthHandler{
		store:    store,
		sessions: sessions,
		notifier: notifier,
	}
}

// Register handles new customer registration
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var reg models.CustomerRegistration
	if err := c.BodyParser(&reg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if reg.FirstName == "" || reg.LastName == "" || reg.Email == "" || reg.PhoneNo == "" || reg.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "First name, last name, email, phone number and password are required",
		})
	}

	hash, err := auth.HashPassword(reg.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to register. Please try again",
		})
	}

	customer, err := h.store.CreateCustomer(&models.Customer{
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		Email:     reg.Email,
		PhoneNo:   reg.PhoneNo,
		Password:  hash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateIdentity) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Number or email already exists!",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to register. Please try again",
		})
	}

	// The record is committed; a failed confirmation email does not undo it.
	h.notifier.NotifyRegistration(customer)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Registration was successful",
		"customer": customer,
	})
}

// SignIn authenticates a customer and opens a session
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
		})
	}

	customer, err := h.store.GetCustomerByEmail(req.Email)
	if err != nil || !auth.CheckPassword(req.Password, customer.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": invalidCredentials,
		})
	}

	if err := h.sessions.SignIn(c, customer.CustomerID, customer.FirstName); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to sign in. Please try again",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Signed in successfully",
		"name":    customer.FirstName,
	})
}

// SignOut clears the session
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	if err := h.sessions.SignOut(c); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to sign out",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Signed out",
	})
}

// RequestPasswordReset issues a reset code to a registered email
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email" form:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email is required",
		})
	}

	customer, err := h.store.GetCustomerByEmail(req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "The email does not exist!",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to issue reset code. Please try again",
		})
	}

	code, err := h.sessions.IssueResetCode(c, customer.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to issue reset code. Please try again",
		})
	}

	h.notifier.NotifyResetCode(customer.Email, code)

	return c.JSON(fiber.Map{
		"message": "Enter the code to reset your password",
	})
}

// ConfirmPasswordReset verifies the submitted code and sets a new password.
// The pending code is consumed on any attempt: a wrong code forces a re-issue.
func (h *AuthHandler) ConfirmPasswordReset(c *fiber.Ctx) error {
	var req struct {
		Code        string `json:"code" form:"code"`
		NewPassword string `json:"new_pwd" form:"new_pwd"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Code == "" || req.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Code and new password are required",
		})
	}

	code, email, ok := h.sessions.PendingReset(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No reset code has been issued",
		})
	}

	if err := h.sessions.ClearPendingReset(c); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reset password. Please try again",
		})
	}

	if req.Code != code {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Wrong code! Request a new one and try again",
		})
	}

	customer, err := h.store.GetCustomerByEmail(email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reset password. Please try again",
		})
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reset password. Please try again",
		})
	}

	if err := h.store.UpdateCustomerPassword(customer.CustomerID, hash); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reset password. Please try again",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Your password has been updated",
	})
}
