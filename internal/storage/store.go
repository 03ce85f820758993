package storage

import (
	"errors"
	"sync"

	"github.com/naismart/naismart-backend/internal/models"
)

var (
	// ErrDuplicateIdentity is returned when a customer's email or phone
	// number collides with an existing record. Uniqueness is enforced by
	// the store itself, not pre-checked by callers.
	ErrDuplicateIdentity = errors.New("email or phone number already exists")

	// ErrCustomerNotFound is returned when no customer matches a lookup.
	ErrCustomerNotFound = errors.New("customer not found")
)

var (
	storeInstance Store
	storeMu       sync.RWMutex
)

// SetStore sets the global store instance (call from main.go)
func SetStore(s Store) {
	storeMu.Lock()
	defer storeMu.Unlock()
	storeInstance = s
}

// GetStore returns the global store instance
func GetStore() Store {
	storeMu.RLock()
	defer storeMu.RUnlock()
	return storeInstance
}

// Store defines the interface for storage operations
type Store interface {
	// Customer operations
	CreateCustomer(customer *models.Customer) (*models.Customer, error)
	GetCustomerByEmail(email string) (*models.Customer, error)
	GetCustomerByID(customerID string) (*models.Customer, error)
	UpdateCustomerPassword(customerID, passwordHash string) error

	// Booking operations
	CreateBooking(booking *models.Booking) (*models.Booking, error)
	GetBookingsByCustomer(customerID string) ([]*models.Booking, error)
	CreatePublicBooking(booking *models.PublicBooking) (*models.PublicBooking, error)

	// Feedback operations
	CreateFeedback(feedback *models.Feedback) (*models.Feedback, error)
}
