package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mlehnert/linkup-backend/internal/service"
	"github.com/mlehnert/linkup-backend/internal/session"
	"github.com/mlehnert/linkup-backend/internal/util"
)

type AuthHandler struct {
	auth     *service.AuthService
	sessions *session.Manager
	logger   *slog.Logger
}

func RegisterAuth(e *echo.Echo, auth *service.AuthService, sessions *session.Manager, logger *slog.Logger) {
	handler := &AuthHandler{auth: auth, sessions: sessions, logger: logger}

	e.POST("/registration", handler.register)
	e.POST("/login", handler.login)
	e.GET("/logout", handler.logout)
}

func (h *AuthHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, util.Failure())
	}

	user, err := h.auth.Register(c.Request().Context(), req.First, req.Last, req.Email, req.Password)
	if err != nil {
		h.logger.Warn("registration failed", "error", err.Error())
		return c.JSON(http.StatusOK, util.Failure())
	}

	if err := h.sessions.Issue(c, user.ID); err != nil {
		h.logger.Error("issue session", "error", err.Error())
		return c.JSON(http.StatusOK, util.Failure())
	}
	return c.JSON(http.StatusOK, util.Success())
}

func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, util.Failure())
	}

	user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Warn("login failed", "error", err.Error())
		return c.JSON(http.StatusOK, util.Failure())
	}

	if err := h.sessions.Issue(c, user.ID); err != nil {
		h.logger.Error("issue session", "error", err.Error())
		return c.JSON(http.StatusOK, util.Failure())
	}
	return c.JSON(http.StatusOK, util.Success())
}

func (h *AuthHandler) logout(c echo.Context) error {
	h.sessions.Clear(c)
	return c.Redirect(http.StatusFound, "/")
}
