package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mlehnert/linkup-backend/internal/session"
	"github.com/mlehnert/linkup-backend/internal/util"
)

const contextUserIDKey = "auth.user_id"

// RequireSession gates the JSON API: requests without a valid session cookie
// fail closed with the uniform failure envelope.
func RequireSession(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := sessions.UserID(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, util.Failure())
			}
			c.Set(contextUserIDKey, userID.String())
			return next(c)
		}
	}
}

// CurrentUserID reads the authenticated user id placed on the context by
// RequireSession.
func CurrentUserID(c echo.Context) (uuid.UUID, bool) {
	raw, ok := c.Get(contextUserIDKey).(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
