package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler serves checkout and order reads. Checkout acknowledges the
// request once the event is on the transport; persistence happens in the
// batch worker.
type OrderHandler struct {
	checkout usecase.CheckoutUsecase
	orders   usecase.OrderQueryUsecase
	logger   *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(checkout usecase.CheckoutUsecase, orders usecase.OrderQueryUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		checkout: checkout,
		orders:   orders,
		logger:   logger,
	}
}

type orderView struct {
	ID             string             `json:"id"`
	Items          []entity.OrderItem `json:"items"`
	Amount         float64            `json:"amount"`
	AddressID      string             `json:"address"`
	Status         string             `json:"status"`
	IdempotencyKey string             `json:"idempotencyKey"`
	PlacedAt       time.Time          `json:"date"`
}

func toOrderViews(orders []*entity.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, orderView{
			ID:             order.ID.String(),
			Items:          order.Items,
			Amount:         order.Amount,
			AddressID:      order.AddressID.String(),
			Status:         string(order.Status),
			IdempotencyKey: order.IdempotencyKey,
			PlacedAt:       order.PlacedAt,
		})
	}

	return views
}

// PlaceOrder handles the checkout request.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var input *usecase.PlaceOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_ORDER_INPUT", "Invalid order input")
	}

	userID := deliverycontext.GetUserID(c)
	output, err := h.checkout.PlaceOrder(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Order placed")
}

// ListOrders returns the caller's persisted orders, newest first. Orders
// still in flight through the batch pipeline are not yet visible here.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID := deliverycontext.GetUserID(c)

	orders, err := h.orders.ListUserOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderViews(orders), "Orders retrieved successfully")
}

// ListAllOrders returns every persisted order. Seller only.
func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	orders, err := h.orders.ListAllOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderViews(orders), "Orders retrieved successfully")
}
