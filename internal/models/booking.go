package models

import "gorm.io/gorm"

// Booking is an appointment made by (or attributed to) a registered customer
type Booking struct {
	gorm.Model

	CustomerID string `json:"customer_id" gorm:"index"` // references Customer.CustomerID
	Service    string `json:"service"`
	Date       string `json:"date"` // appointment date as submitted
	Time       string `json:"time"` // appointment time as submitted
	Doctor     string `json:"doctor"`
	Address    string `json:"address"`
}

// PublicBooking is an appointment made by a visitor with no registered account
type PublicBooking struct {
	gorm.Model

	Patient string `json:"patient"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Doctor  string `json:"doctor"`
	Address string `json:"address"`
}

// BookingRequest is the payload for /book_now. The patient, contact and email
// fields are only required when the requester has no session.
type BookingRequest struct {
	Service string `json:"service" form:"service" validate:"required"`
	Date    string `json:"date" form:"date" validate:"required"`
	Time    string `json:"time" form:"time" validate:"required"`
	Patient string `json:"patient" form:"patient"`
	Contact string `json:"contact" form:"contact"`
	Email   string `json:"email" form:"email"`
}
