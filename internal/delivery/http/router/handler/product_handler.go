package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler serves the product catalog. Reads are public; creation and
// the seller listing are gated by the seller middleware in the router.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

type productView struct {
	ID          string    `json:"id"`
	SellerID    string    `json:"sellerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	OfferPrice  float64   `json:"offerPrice"`
	ImageURLs   []string  `json:"imageUrls"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toProductView(product *entity.Product) productView {
	return productView{
		ID:          product.ID.String(),
		SellerID:    product.SellerID,
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
		Price:       product.Price,
		OfferPrice:  product.OfferPrice,
		ImageURLs:   product.ImageURLs,
		CreatedAt:   product.CreatedAt,
	}
}

func toProductViews(products []*entity.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product))
	}

	return views
}

// ListProducts returns the full catalog.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products), "Products retrieved successfully")
}

// GetProduct returns a single catalog entry by id.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrProductNotFound)
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Product retrieved successfully")
}

// CreateProduct adds a catalog entry owned by the calling seller.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input *usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	sellerID := deliverycontext.GetUserID(c)
	product, err := h.uc.CreateProduct(c.Request().Context(), sellerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductView(product), "Product created successfully")
}

// ListSellerProducts returns the catalog entries owned by the calling seller.
func (h *ProductHandler) ListSellerProducts(c echo.Context) error {
	sellerID := deliverycontext.GetUserID(c)

	products, err := h.uc.ListSellerProducts(c.Request().Context(), sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products), "Products retrieved successfully")
}
