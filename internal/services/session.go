package services

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/naismart/naismart-backend/internal/utils"
)

// Session payload keys. The client only ever holds the opaque session id
// cookie; these live server-side.
const (
	sessionKeyCustomerID = "cust_id"
	sessionKeyName       = "name"
	sessionKeyResetCode  = "reset_code"
	sessionKeyResetEmail = "reset_email"
)

// SessionState is the resolved identity for one request
type SessionState struct {
	CustomerID string
	Name       string
}

// Authenticated reports whether the session carries a signed-in customer
func (s *SessionState) Authenticated() bool {
	return s != nil && s.CustomerID != ""
}

// SessionManager issues and resolves per-visitor sessions
type SessionManager struct {
	store      *session.Store
	sessionTTL time.Duration
}

// NewSessionManager creates a session manager with a cookie-backed store
func NewSessionManager(cookieName string) *SessionManager {
	ttl := 30 * time.Minute
	store := session.New(session.Config{
		KeyLookup:      "cookie:" + cookieName,
		Expiration:     ttl,
		CookieHTTPOnly: true,
	})
	return &SessionManager{store: store, sessionTTL: ttl}
}

// Current resolves the session state for the request, Anonymous if none
func (sm *SessionManager) Current(c *fiber.Ctx) (*SessionState, error) {
	sess, err := sm.store.Get(c)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	state := &SessionState{}
	if id, ok := sess.Get(sessionKeyCustomerID).(string); ok {
		state.CustomerID = id
	}
	if name, ok := sess.Get(sessionKeyName).(string); ok {
		state.Name = name
	}
	return state, nil
}

// SignIn transitions the session to Authenticated for the given customer
func (sm *SessionManager) SignIn(c *fiber.Ctx, customerID, name string) error {
	sess, err := sm.store.Get(c)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	sess.Set(sessionKeyCustomerID, customerID)
	sess.Set(sessionKeyName, name)
	return sess.Save()
}

// SignOut clears the session entirely
func (sm *SessionManager) SignOut(c *fiber.Ctx) error {
	sess, err := sm.store.Get(c)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	return sess.Destroy()
}

// IssueResetCode generates a fresh 6-digit code bound to email and stores it
// in the session. A previously issued, unconsumed code is overwritten.
func (sm *SessionManager) IssueResetCode(c *fiber.Ctx, email string) (string, error) {
	code, err := utils.GenerateResetCode()
	if err != nil {
		return "", err
	}

	sess, err := sm.store.Get(c)
	if err != nil {
		return "", fmt.Errorf("failed to load session: %w", err)
	}
	sess.Set(sessionKeyResetCode, code)
	sess.Set(sessionKeyResetEmail, email)
	if err := sess.Save(); err != nil {
		return "", err
	}
	return code, nil
}

// PendingReset returns the outstanding reset code and its target email
func (sm *SessionManager) PendingReset(c *fiber.Ctx) (code, email string, ok bool) {
	sess, err := sm.store.Get(c)
	if err != nil {
		return "", "", false
	}
	code, _ = sess.Get(sessionKeyResetCode).(string)
	email, _ = sess.Get(sessionKeyResetEmail).(string)
	return code, email, code != "" && email != ""
}

// ClearPendingReset consumes the outstanding reset code
func (sm *SessionManager) ClearPendingReset(c *fiber.Ctx) error {
	sess, err := sm.store.Get(c)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	sess.Delete(sessionKeyResetCode)
	sess.Delete(sessionKeyResetEmail)
	return sess.Save()
}
