package handlers_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/naismart/naismart-backend/internal/config"
	"github.com/naismart/naismart-backend/internal/models"
	"github.com/naismart/naismart-backend/internal/routes"
	"github.com/naismart/naismart-backend/internal/services"
	"github.com/naismart/naismart-backend/internal/storage"
)

// mailRecorder captures outbound mail instead of sending it
type mailRecorder struct {
	mu    sync.Mutex
	sends []recordedMail
}

type recordedMail struct {
	To      string
	Subject string
	Body    string
}

func (r *mailRecorder) Send(to, subject, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sends = append(r.sends, recordedMail{To: to, Subject: subject, Body: body})
	return nil
}

func (r *mailRecorder) all() []recordedMail {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordedMail(nil), r.sends...)
}

func (r *mailRecorder) last() recordedMail {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sends) == 0 {
		return recordedMail{}
	}
	return r.sends[len(r.sends)-1]
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB, *mailRecorder) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Booking{},
		&models.PublicBooking{},
		&models.Feedback{},
	))

	// Stub payment gateway accepting every push
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"MerchantRequestID":"mr-1","CheckoutRequestID":"ws_CO_1","ResponseCode":"0","ResponseDescription":"Success","CustomerMessage":"Success"}`)
	}))
	t.Cleanup(gateway.Close)

	store := storage.NewDatabaseStore(db)
	sessions := services.NewSessionManager("naismart_session")
	mail := &mailRecorder{}
	notifier := services.NewNotifier(mail, nil, "admin@naismart.test")
	mpesa := services.NewMpesaService(config.App{
		MpesaURL:       gateway.URL,
		MpesaShortCode: "174379",
		MpesaPasskey:   "test-passkey",
		MpesaToken:     "test-token",
	})

	app := fiber.New()
	routes.SetupRoutes(app, store, sessions, notifier, mpesa)
	return app, db, mail
}

// testClient carries the session cookie between requests
type testClient struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]string
}

func newClient(t *testing.T, app *fiber.App) *testClient {
	return &testClient{t: t, app: app, cookies: make(map[string]string)}
}

func (c *testClient) do(method, path string, form url.Values) *http.Response {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for name, value := range c.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	resp, err := c.app.Test(req, -1)
	require.NoError(c.t, err)

	for _, ck := range resp.Cookies() {
		expired := ck.MaxAge < 0 || (!ck.Expires.IsZero() && ck.Expires.Before(time.Now()))
		if ck.Value == "" || expired {
			delete(c.cookies, ck.Name)
		} else {
			c.cookies[ck.Name] = ck.Value
		}
	}
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func registerForm(first, last, email, phone, password string) url.Values {
	return url.Values{
		"first_name": {first},
		"last_name":  {last},
		"email":      {email},
		"phone_no":   {phone},
		"password":   {password},
	}
}

func signInForm(email, password string) url.Values {
	return url.Values{
		"email":    {email},
		"password": {password},
	}
}

// registerAndSignIn seeds an account and authenticates the client's session
func registerAndSignIn(t *testing.T, c *testClient, email, phone, password string) {
	t.Helper()
	resp := c.do(http.MethodPost, "/register", registerForm("Alice", "Wanjiru", email, phone, password))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = c.do(http.MethodPost, "/sign_in", signInForm(email, password))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
