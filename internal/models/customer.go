package models

import (
	"strings"

	"gorm.io/gorm"

	"github.com/naismart/naismart-backend/internal/utils"
)

// Customer represents a registered client of the hospital portal
type Customer struct {
	// Using gorm.Model gives us ID (uint), CreatedAt, UpdatedAt, DeletedAt automatically
	gorm.Model

	// CustomerID is the opaque public identifier used in sessions and bookings
	CustomerID string `json:"customer_id" gorm:"uniqueIndex"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email" gorm:"uniqueIndex"`
	PhoneNo    string `json:"phone_no" gorm:"uniqueIndex"`
	Password   string `json:"-"` // bcrypt hash, never serialized
}

// BeforeCreate hook to auto-generate CustomerID and normalize contact fields
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.CustomerID == "" {
		id, err := utils.GenerateCustomerID()
		if err != nil {
			return err
		}
		c.CustomerID = id
	}

	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.PhoneNo = strings.TrimSpace(c.PhoneNo)

	return nil
}

// CustomerRegistration is the payload for new customer sign-up
type CustomerRegistration struct {
	FirstName string `json:"first_name" form:"first_name" validate:"required"`
	LastName  string `json:"last_name" form:"last_name" validate:"required"`
	Email     string `json:"email" form:"email" validate:"required"`
	PhoneNo   string `json:"phone_no" form:"phone_no" validate:"required"`
	Password  string `json:"password" form:"password" validate:"required"`
}

// FullName is used in notification bodies
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
