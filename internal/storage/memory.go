package storage

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/naismart/naismart-backend/internal/models"
	"github.com/naismart/naismart-backend/internal/utils"
)

// MemoryStore holds all data in memory, for tests and local runs
type MemoryStore struct {
	mu sync.RWMutex

	customersByEmail map[string]*models.Customer
	customersByPhone map[string]*models.Customer
	customersByID    map[string]*models.Customer
	bookings         []*models.Booking
	publicBookings   []*models.PublicBooking
	feedback         []*models.Feedback

	// Counters for ID generation
	customerCounter      uint
	bookingCounter       uint
	publicBookingCounter uint
	feedbackCounter      uint
}

// NewMemoryStore creates a new in-memory storage
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		customersByEmail: make(map[string]*models.Customer),
		customersByPhone: make(map[string]*models.Customer),
		customersByID:    make(map[string]*models.Customer),
	}
}

// Customer operations

func (m *MemoryStore) CreateCustomer(customer *models.Customer) (*models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(customer.Email))
	phone := strings.TrimSpace(customer.PhoneNo)

	// Uniqueness is checked and the record inserted under one lock, so two
	// concurrent registrations cannot both succeed.
	if _, exists := m.customersByEmail[email]; exists {
		return nil, ErrDuplicateIdentity
	}
	if _, exists := m.customersByPhone[phone]; exists {
		return nil, ErrDuplicateIdentity
	}

	if customer.CustomerID == "" {
		id, err := utils.GenerateCustomerID()
		if err != nil {
			return nil, err
		}
		customer.CustomerID = id
	}

	m.customerCounter++
	customer.ID = m.customerCounter
	customer.Email = email
	customer.PhoneNo = phone
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = customer.CreatedAt

	m.customersByEmail[email] = customer
	m.customersByPhone[phone] = customer
	m.customersByID[customer.CustomerID] = customer
	return customer, nil
}

func (m *MemoryStore) GetCustomerByEmail(email string) (*models.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	customer, exists := m.customersByEmail[strings.ToLower(strings.TrimSpace(email))]
	if !exists {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (m *MemoryStore) GetCustomerByID(customerID string) (*models.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	customer, exists := m.customersByID[customerID]
	if !exists {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (m *MemoryStore) UpdateCustomerPassword(customerID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	customer, exists := m.customersByID[customerID]
	if !exists {
		return ErrCustomerNotFound
	}
	customer.Password = passwordHash
	customer.UpdatedAt = time.Now()
	return nil
}

// Booking operations

func (m *MemoryStore) CreateBooking(booking *models.Booking) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bookingCounter++
	booking.ID = m.bookingCounter
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt

	m.bookings = append(m.bookings, booking)
	return booking, nil
}

func (m *MemoryStore) GetBookingsByCustomer(customerID string) ([]*models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bookings := make([]*models.Booking, 0)
	for _, booking := range m.bookings {
		if booking.CustomerID == customerID {
			bookings = append(bookings, booking)
		}
	}

	// Most recent first. IDs are monotonic so they break ties between
	// bookings created within the same clock tick.
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].ID > bookings[j].ID
	})
	return bookings, nil
}

func (m *MemoryStore) CreatePublicBooking(booking *models.PublicBooking) (*models.PublicBooking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.publicBookingCounter++
	booking.ID = m.publicBookingCounter
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt

	m.publicBookings = append(m.publicBookings, booking)
	return booking, nil
}

// Feedback operations

func (m *MemoryStore) CreateFeedback(feedback *models.Feedback) (*models.Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.feedbackCounter++
	feedback.ID = m.feedbackCounter
	feedback.CreatedAt = time.Now()
	feedback.UpdatedAt = feedback.CreatedAt

	m.feedback = append(m.feedback, feedback)
	return feedback, nil
}
