package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mlehnert/linkup-backend/internal/media"
	"github.com/mlehnert/linkup-backend/internal/service"
	"github.com/mlehnert/linkup-backend/internal/session"
	"github.com/mlehnert/linkup-backend/internal/util"
)

type ProfileHandler struct {
	profiles *service.ProfileService
	maxBytes int64
	logger   *slog.Logger
}

func RegisterProfile(e *echo.Echo, profiles *service.ProfileService, sessions *session.Manager, maxBytes int64, logger *slog.Logger) {
	handler := &ProfileHandler{profiles: profiles, maxBytes: maxBytes, logger: logger}

	protected := e.Group("", RequireSession(sessions))
	protected.GET("/user", handler.user)
	protected.POST("/profile-pic", handler.profilePic)
	protected.POST("/bio", handler.bio)
}

func (h *ProfileHandler) user(c echo.Context) error {
	userID, ok := CurrentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Failure())
	}

	user, err := h.profiles.Profile(c.Request().Context(), userID)
	if err != nil {
		h.logger.Warn("profile lookup failed", "error", err.Error())
		return c.JSON(http.StatusOK, util.Failure())
	}

	return c.JSON(http.StatusOK, util.Success("rows", echo.Map{
		"id":        user.ID,
		"first":     user.FirstName,
		"last":      user.LastName,
		"email":     user.Email,
		"image_url": user.ImageURL,
		"bio":       user.Bio,
	}))
}

func (h *ProfileHandler) profilePic(c echo.Context) error {
	userID, ok := CurrentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Failure())
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusOK, util.Failure())
	}
	if h.maxBytes > 0 && fileHeader.Size > h.maxBytes {
		return c.JSON(http.StatusOK, util.Failure())
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusOK, util.Failure())
	}
	defer file.Close()

	user, err := h.profiles.UpdatePicture(c.Request().Context(), userID, media.Upload{
		Reader:      file,
		Size:        fileHeader.Size,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
	})
	if err != nil {
		h.logger.Warn("profile picture upload failed", "error", err.Error())
		return c.JSON(http.StatusOK, util.Failure())
	}

	var url string
	if user.ImageURL != nil {
		url = *user.ImageURL
	}
	return c.JSON(http.StatusOK, util.Success("data", url))
}

func (h *ProfileHandler) bio(c echo.Context) error {
	userID, ok := CurrentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Failure())
	}

	var req BioRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, util.Failure())
	}

	user, err := h.profiles.UpdateBio(c.Request().Context(), userID, req.Bio)
	if err != nil {
		h.logger.Warn("bio update failed", "error", err.Error())
		return c.JSON(http.StatusOK, util.Failure())
	}

	var bio string
	if user.Bio != nil {
		bio = *user.Bio
	}
	return c.JSON(http.StatusOK, util.Success("data", bio))
}
