// Package handler contains the HTTP handlers for the storefront API.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler serves reads of the synchronized user record.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type userView struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	ImageURL  string           `json:"imageUrl"`
	CartItems entity.CartItems `json:"cartItems"`
}

// GetUser returns the caller's synchronized record, including the
// authoritative cart.
func (h *UserHandler) GetUser(c echo.Context) error {
	userID := deliverycontext.GetUserID(c)

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, userView{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		ImageURL:  user.AvatarURL,
		CartItems: user.Cart,
	}, "User retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
