package storage

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/naismart/naismart-backend/internal/models"
)

func newTestDatabaseStore(t *testing.T) *DatabaseStore {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Booking{},
		&models.PublicBooking{},
		&models.Feedback{},
	))
	return NewDatabaseStore(db)
}

// Both implementations must behave the same for the workflow's purposes.
func stores(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory":   NewMemoryStore(),
		"database": newTestDatabaseStore(t),
	}
}

func TestCreateCustomerDuplicate(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			first, err := store.CreateCustomer(&models.Customer{
				FirstName: "Alice",
				LastName:  "W",
				Email:     "alice@x.com",
				PhoneNo:   "0700000001",
				Password:  "hash",
			})
			require.NoError(t, err)
			assert.NotEmpty(t, first.CustomerID)

			// Same email, different phone
			_, err = store.CreateCustomer(&models.Customer{
				FirstName: "Mallory",
				LastName:  "M",
				Email:     "alice@x.com",
				PhoneNo:   "0700000002",
				Password:  "hash",
			})
			assert.ErrorIs(t, err, ErrDuplicateIdentity)

			// Same phone, different email
			_, err = store.CreateCustomer(&models.Customer{
				FirstName: "Mallory",
				LastName:  "M",
				Email:     "mallory@x.com",
				PhoneNo:   "0700000001",
				Password:  "hash",
			})
			assert.ErrorIs(t, err, ErrDuplicateIdentity)

			// Exactly one record answers to that email
			got, err := store.GetCustomerByEmail("alice@x.com")
			require.NoError(t, err)
			assert.Equal(t, first.CustomerID, got.CustomerID)
			assert.Equal(t, "Alice", got.FirstName)
		})
	}
}

func TestCustomerLookups(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			created, err := store.CreateCustomer(&models.Customer{
				FirstName: "Bob",
				LastName:  "K",
				Email:     "Bob@X.com",
				PhoneNo:   "0711000000",
				Password:  "hash",
			})
			require.NoError(t, err)

			// Email lookups are case-insensitive (stored lowercased)
			byEmail, err := store.GetCustomerByEmail("bob@x.com")
			require.NoError(t, err)
			assert.Equal(t, created.CustomerID, byEmail.CustomerID)

			byID, err := store.GetCustomerByID(created.CustomerID)
			require.NoError(t, err)
			assert.Equal(t, "Bob", byID.FirstName)

			_, err = store.GetCustomerByEmail("nobody@x.com")
			assert.ErrorIs(t, err, ErrCustomerNotFound)

			_, err = store.GetCustomerByID("missing")
			assert.ErrorIs(t, err, ErrCustomerNotFound)
		})
	}
}

func TestUpdateCustomerPassword(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			created, err := store.CreateCustomer(&models.Customer{
				FirstName: "Carol",
				LastName:  "N",
				Email:     "carol@x.com",
				PhoneNo:   "0722000000",
				Password:  "old-hash",
			})
			require.NoError(t, err)

			require.NoError(t, store.UpdateCustomerPassword(created.CustomerID, "new-hash"))

			got, err := store.GetCustomerByID(created.CustomerID)
			require.NoError(t, err)
			assert.Equal(t, "new-hash", got.Password)

			assert.ErrorIs(t, store.UpdateCustomerPassword("missing", "x"), ErrCustomerNotFound)
		})
	}
}

func TestBookingHistoryOrder(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			customer, err := store.CreateCustomer(&models.Customer{
				FirstName: "Dan",
				LastName:  "O",
				Email:     "dan@x.com",
				PhoneNo:   "0733000000",
				Password:  "hash",
			})
			require.NoError(t, err)

			services := []string{"checkup", "dental", "optical"}
			for _, svc := range services {
				_, err := store.CreateBooking(&models.Booking{
					CustomerID: customer.CustomerID,
					Service:    svc,
					Date:       "2024-05-01",
					Time:       "10:00",
					Doctor:     "Doc. James",
					Address:    "130-0098 Ngong, Kajiado",
				})
				require.NoError(t, err)
				time.Sleep(5 * time.Millisecond) // distinct creation times
			}

			bookings, err := store.GetBookingsByCustomer(customer.CustomerID)
			require.NoError(t, err)
			require.Len(t, bookings, 3)

			// Most recent first
			assert.Equal(t, "optical", bookings[0].Service)
			assert.Equal(t, "dental", bookings[1].Service)
			assert.Equal(t, "checkup", bookings[2].Service)

			// Other customers see nothing
			none, err := store.GetBookingsByCustomer("someone-else")
			require.NoError(t, err)
			assert.Empty(t, none)
		})
	}
}

func TestPublicBookingAndFeedback(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			booking, err := store.CreatePublicBooking(&models.PublicBooking{
				Patient: "Eve P",
				Contact: "0744000000",
				Email:   "eve@x.com",
				Service: "checkup",
				Date:    "2024-05-02",
				Time:    "11:00",
				Doctor:  "Doc. James",
				Address: "130-0098 Ngong, Kajiado",
			})
			require.NoError(t, err)
			assert.NotZero(t, booking.ID)

			feedback, err := store.CreateFeedback(&models.Feedback{
				Name:    "Eve P",
				Email:   "eve@x.com",
				Message: "Great service",
			})
			require.NoError(t, err)
			assert.NotZero(t, feedback.ID)
		})
	}
}
