package storage

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/naismart/naismart-backend/internal/models"
)

// DatabaseStore implements Store on top of GORM
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a store backed by the given database handle
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// isDuplicateErr recognizes unique-constraint violations across drivers.
// gorm translates them to ErrDuplicatedKey for postgres; the sqlite driver
// used in tests surfaces the raw constraint message instead.
func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Customer operations

func (s *DatabaseStore) CreateCustomer(customer *models.Customer) (*models.Customer, error) {
	if err := s.db.Create(customer).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}
	return customer, nil
}

func (s *DatabaseStore) GetCustomerByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (s *DatabaseStore) GetCustomerByID(customerID string) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.Where("customer_id = ?", customerID).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (s *DatabaseStore) UpdateCustomerPassword(customerID, passwordHash string) error {
	result := s.db.Model(&models.Customer{}).
		Where("customer_id = ?", customerID).
		Update("password", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// Booking operations

func (s *DatabaseStore) CreateBooking(booking *models.Booking) (*models.Booking, error) {
	if err := s.db.Create(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *DatabaseStore) GetBookingsByCustomer(customerID string) ([]*models.Booking, error) {
	var bookings []*models.Booking
	err := s.db.Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *DatabaseStore) CreatePublicBooking(booking *models.PublicBooking) (*models.PublicBooking, error) {
	if err := s.db.Create(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

// Feedback operations

func (s *DatabaseStore) CreateFeedback(feedback *models.Feedback) (*models.Feedback, error) {
	if err := s.db.Create(feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}
