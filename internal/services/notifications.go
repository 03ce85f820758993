package services

import (
	"fmt"
	"log"

	"github.com/naismart/naismart-backend/internal/models"
)

// Notifier is the outbound notification gateway. Every method is
// fire-and-forget: failures are logged and never abort the action that
// already committed.
type Notifier struct {
	mailer     Mailer
	sms        *TwilioService // nil when SMS is not configured
	adminEmail string
}

// NewNotifier creates the notification gateway
func NewNotifier(mailer Mailer, sms *TwilioService, adminEmail string) *Notifier {
	return &Notifier{mailer: mailer, sms: sms, adminEmail: adminEmail}
}

// NotifyRegistration confirms a new account by email
func (n *Notifier) NotifyRegistration(customer *models.Customer) {
	body := "Thank You for registering with HOSPITAL X!"
	if err := n.mailer.Send(customer.Email, "HOSPITAL X REGISTRATION", body); err != nil {
		log.Printf("registration email to %s failed: %v", customer.Email, err)
	}
}

// NotifyResetCode mails the password reset code
func (n *Notifier) NotifyResetCode(email, code string) {
	body := fmt.Sprintf("Use this code to reset your password\n\n %s", code)
	if err := n.mailer.Send(email, "HOSPITAL X RESET PASSWORD", body); err != nil {
		log.Printf("reset-code email to %s failed: %v", email, err)
	}
}

// NotifyBooking sends the appointment summary to the booking's email, and by
// SMS to the contact number when one was supplied and SMS is configured.
func (n *Notifier) NotifyBooking(name, email, contact, service, date, bookingTime, doctor, address string) {
	body := fmt.Sprintf("Hello %s, your appointment has been processed as follows:\n\n"+
		"Service booked: %s\n"+
		"Date:           %s\n"+
		"Time:           %s\n"+
		"Doctor:         %s\n"+
		"Address:        %s",
		name, service, date, bookingTime, doctor, address)

	if err := n.mailer.Send(email, "HOSPITAL X APPOINTMENT", body); err != nil {
		log.Printf("appointment email to %s failed: %v", email, err)
	}

	if n.sms != nil && contact != "" {
		text := fmt.Sprintf("HOSPITAL X: %s booked for %s at %s with %s.", service, date, bookingTime, doctor)
		if err := n.sms.SendSMS(contact, text); err != nil {
			log.Printf("appointment SMS to %s failed: %v", contact, err)
		}
	}
}

// NotifyFeedback acknowledges the submitter and alerts the operator
func (n *Notifier) NotifyFeedback(feedback *models.Feedback) {
	ack := fmt.Sprintf("Hello %s, thank you for your feedback.\n"+
		"We will reach out to you soon with a response. If you have any other issues feel free to reach out to us. Nice time!",
		feedback.Name)
	if err := n.mailer.Send(feedback.Email, "HOSPITAL X FEEDBACK", ack); err != nil {
		log.Printf("feedback ack email to %s failed: %v", feedback.Email, err)
	}

	if n.adminEmail != "" {
		alert := fmt.Sprintf("Client's name: %s\nMessage: %s", feedback.Name, feedback.Message)
		if err := n.mailer.Send(n.adminEmail, "HOSPITAL CUSTOMER FEEDBACK", alert); err != nil {
			log.Printf("feedback alert email to %s failed: %v", n.adminEmail, err)
		}
	}
}
