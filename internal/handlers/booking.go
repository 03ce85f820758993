package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/naismart/naismart-backend/internal/middleware"
	"github.com/naismart/naismart-backend/internal/models"
	"github.com/naismart/naismart-backend/internal/services"
	"github.com/naismart/naismart-backend/internal/storage"
)

// Assigned at booking time. Scheduling against a real roster is a separate
// concern the portal does not have yet.
const (
	defaultDoctor  = "Doc. James"
	defaultAddress = "130-0098 Ngong, Kajiado"
)

// BookingHandler handles appointment creation and history
type BookingHandler struct {
	store    storage.Store
	sessions *services.SessionManager
	notifier *services.Notifier
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(store storage.Store, sessions *services.SessionManager, notifier *services.Notifier) *BookingHandler {
	return &BookingHandler{
		store:    store,
		sessions: sessions,
		notifier: notifier,
	}
}

// BookNow creates an appointment. Signed-in customers book against their own
// record; anonymous visitors book against a matching account when their email
// is registered, and into the public ledger otherwise.
func (h *BookingHandler) BookNow(c *fiber.Ctx) error {
	var req models.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Service == "" || req.Date == "" || req.Time == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Service, date and time are required",
		})
	}

	state, err := h.sessions.Current(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to book. Please try again",
		})
	}

	if state.Authenticated() {
		return h.bookForCustomer(c, state, &req)
	}
	return h.bookAnonymous(c, &req)
}

func (h *BookingHandler) bookForCustomer(c *fiber.Ctx, state *services.SessionState, req *models.BookingRequest) error {
	customer, err := h.store.GetCustomerByID(state.CustomerID)
	if err != nil {
		if errors.Is(err, storage.ErrCustomerNotFound) {
			// Stale session referencing a record that no longer resolves.
			_ = h.sessions.SignOut(c)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "sign in required",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to book. Please try again",
		})
	}

	booking, err := h.store.CreateBooking(&models.Booking{
		CustomerID: customer.CustomerID,
		Service:    req.Service,
		Date:       req.Date,
		Time:       req.Time,
		Doctor:     defaultDoctor,
		Address:    defaultAddress,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to book. Please try again",
		})
	}

	h.notifier.NotifyBooking(customer.FirstName, customer.Email, customer.PhoneNo,
		booking.Service, booking.Date, booking.Time, booking.Doctor, booking.Address)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "You have successfully booked. Please check your email for more details",
		"booking": booking,
	})
}

func (h *BookingHandler) bookAnonymous(c *fiber.Ctx, req *models.BookingRequest) error {
	if req.Patient == "" || req.Contact == "" || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Patient name, contact and email are required",
		})
	}

	// A submitted email that matches an account attaches the booking to that
	// customer's history. No session is created for them.
	customer, err := h.store.GetCustomerByEmail(req.Email)
	if err != nil && !errors.Is(err, storage.ErrCustomerNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to book. Please try again",
		})
	}

	if customer != nil {
		booking, err := h.store.CreateBooking(&models.Booking{
			CustomerID: customer.CustomerID,
			Service:    req.Service,
			Date:       req.Date,
			Time:       req.Time,
			Doctor:     defaultDoctor,
			Address:    defaultAddress,
		})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to book. Please try again",
			})
		}

		h.notifier.NotifyBooking(req.Patient, req.Email, req.Contact,
			booking.Service, booking.Date, booking.Time, booking.Doctor, booking.Address)

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "You have successfully booked. Please check your email for more details",
			"booking": booking,
		})
	}

	booking, err := h.store.CreatePublicBooking(&models.PublicBooking{
		Patient: req.Patient,
		Contact: req.Contact,
		Email:   req.Email,
		Service: req.Service,
		Date:    req.Date,
		Time:    req.Time,
		Doctor:  defaultDoctor,
		Address: defaultAddress,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to book. Please try again",
		})
	}

	h.notifier.NotifyBooking(req.Patient, req.Email, req.Contact,
		booking.Service, booking.Date, booking.Time, booking.Doctor, booking.Address)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "You have successfully booked. Please check your email for more details",
		"booking": booking,
	})
}

// History lists the signed-in customer's bookings, most recent first
func (h *BookingHandler) History(c *fiber.Ctx) error {
	state := middleware.SessionState(c)
	if state == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "sign in required",
		})
	}

	bookings, err := h.store.GetBookingsByCustomer(state.CustomerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve bookings",
		})
	}

	return c.JSON(fiber.Map{
		"bookings": bookings,
		"count":    len(bookings),
	})
}
