package config

import (
	"github.com/kelseyhightower/envconfig"
)

// App holds every environment-driven setting the backend consumes.
type App struct {
	// Server
	Port          string `envconfig:"PORT" default:"8080"`
	SessionCookie string `envconfig:"SESSION_COOKIE" default:"naismart_session"`

	// Database
	DBHost string `envconfig:"DB_HOST" default:"localhost"`
	DBUser string `envconfig:"DB_USER" default:"postgres"`
	DBPass string `envconfig:"DB_PASS"`
	DBName string `envconfig:"DB_NAME" default:"naismart"`
	DBPort string `envconfig:"DB_PORT" default:"5432"`

	UseMemoryStore bool `envconfig:"USE_MEMORY_STORE" default:"false"`

	// Mail server
	MailServer   string `envconfig:"MAIL_SERVER"`
	MailPort     int    `envconfig:"MAIL_PORT" default:"587"`
	MailUsername string `envconfig:"MAIL_USERNAME"`
	MailPassword string `envconfig:"MAIL_PASSWORD"`
	MailSender   string `envconfig:"MAIL_SENDER" default:"naismart@franksolutions.tech"`
	AdminEmail   string `envconfig:"ADMIN_EMAIL"`

	// Twilio SMS (optional)
	TwilioAccountSID string `envconfig:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `envconfig:"TWILIO_AUTH_TOKEN"`
	TwilioFrom       string `envconfig:"TWILIO_PHONE_NUMBER"`

	// M-Pesa STK push (sandbox)
	MpesaShortCode string `envconfig:"MPESA_SHORTCODE" default:"174379"`
	MpesaPasskey   string `envconfig:"MPESA_PASSKEY"`
	MpesaToken     string `envconfig:"MPESA_TOKEN"`
	MpesaURL       string `envconfig:"MPESA_URL" default:"https://sandbox.safaricom.co.ke/mpesa/stkpush/v1/processrequest"`
	MpesaCallback  string `envconfig:"MPESA_CALLBACK_URL"`
}

// Load reads the configuration from the environment.
func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
