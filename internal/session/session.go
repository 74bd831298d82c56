// Package session implements the signed-cookie session used by the auth gate.
// The cookie itself is the source of truth: there is no server-side session
// record, and clearing the cookie is both sufficient and final.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const CookieName = "session"

var (
	ErrNoSession      = errors.New("no session present")
	ErrInvalidSession = errors.New("invalid session token")
)

type claims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// Manager signs and reads the session cookie. Expiry is enforced twice: by
// the cookie MaxAge and by the token's exp claim.
type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewManager(secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl, secure: secure}
}

// Issue establishes a session for the given user by setting the signed cookie
// on the response.
func (m *Manager) Issue(c echo.Context, userID uuid.UUID) error {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// UserID reads the authenticated user id from the request's session cookie.
func (m *Manager) UserID(c echo.Context) (uuid.UUID, error) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return uuid.Nil, ErrNoSession
	}

	parsed := &claims{}
	token, err := jwt.ParseWithClaims(cookie.Value, parsed, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidSession
	}
	if parsed.UserID == uuid.Nil {
		return uuid.Nil, ErrInvalidSession
	}
	return parsed.UserID, nil
}

// Clear expires the session cookie. There is no server-side invalidation list.
func (m *Manager) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
