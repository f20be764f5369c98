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

// CartHandler serves the server-side authoritative cart. Clients push full
// snapshots; there is no incremental merge endpoint.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

type updateCartInput struct {
	CartData entity.CartItems `json:"cartData"`
}

// GetCart returns the caller's persisted cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	userID := deliverycontext.GetUserID(c)

	items, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]entity.CartItems{"cartItems": items}, "Cart retrieved successfully")
}

// UpdateCart replaces the caller's persisted cart with the pushed snapshot.
// A nil mapping is rejected; an empty mapping clears the cart.
func (h *CartHandler) UpdateCart(c echo.Context) error {
	var input *updateCartInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_CART_PAYLOAD", "Cart data is missing or malformed")
	}
	if input == nil || input.CartData == nil {
		return response.BadRequest(c, "INVALID_CART_PAYLOAD", "Cart data is missing or malformed")
	}

	userID := deliverycontext.GetUserID(c)
	if err := h.uc.ReplaceCart(c.Request().Context(), userID, input.CartData); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart updated successfully")
}
