package models

import "gorm.io/gorm"

// Feedback is a message left through the contact form, with no identity requirement
type Feedback struct {
	gorm.Model

	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// FeedbackRequest is the payload for /feedback
type FeedbackRequest struct {
	Feedback string `json:"feedback" form:"feedback" validate:"required"`
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required"`
}
