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

// AddressHandler manages the caller's delivery address book.
type AddressHandler struct {
	uc     usecase.AddressUsecase
	logger *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{
		uc:     uc,
		logger: logger,
	}
}

type addressView struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Phone    string `json:"phoneNumber"`
	Zip      string `json:"pincode"`
	Area     string `json:"area"`
	City     string `json:"city"`
	State    string `json:"state"`
}

func toAddressView(address *entity.Address) addressView {
	return addressView{
		ID:       address.ID.String(),
		FullName: address.FullName,
		Phone:    address.Phone,
		Zip:      address.Zip,
		Area:     address.Area,
		City:     address.City,
		State:    address.State,
	}
}

// CreateAddress stores a delivery address owned by the caller.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	var input *usecase.CreateAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	userID := deliverycontext.GetUserID(c)
	address, err := h.uc.CreateAddress(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAddressView(address), "Address created successfully")
}

// ListAddresses returns the caller's stored addresses.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	userID := deliverycontext.GetUserID(c)

	addresses, err := h.uc.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]addressView, 0, len(addresses))
	for _, address := range addresses {
		views = append(views, toAddressView(address))
	}

	return response.Success(c, http.StatusOK, views, "Addresses retrieved successfully")
}
