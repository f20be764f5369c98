// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	ProductHandler *handler.ProductHandler
	AddressHandler *handler.AddressHandler
	WebhookHandler *handler.WebhookHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	productHandler *handler.ProductHandler
	addressHandler *handler.AddressHandler
	webhookHandler *handler.WebhookHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		productHandler: params.ProductHandler,
		addressHandler: params.AddressHandler,
		webhookHandler: params.WebhookHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Identity-provider push endpoint, unauthenticated by design: the
	// provider signs deliveries and the signature is checked at ingress.
	e.POST("/webhooks/identity", r.webhookHandler.HandleIdentityEvent)

	// Public catalog reads
	e.GET("/api/products", r.productHandler.ListProducts)
	e.GET("/api/products/:id", r.productHandler.GetProduct)

	// Routes that require an authenticated caller
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.GET("/user", r.userHandler.GetUser)

		apiGroup.GET("/cart", r.cartHandler.GetCart)
		apiGroup.PUT("/cart", r.cartHandler.UpdateCart)

		apiGroup.POST("/orders", r.orderHandler.PlaceOrder)
		apiGroup.GET("/orders", r.orderHandler.ListOrders)

		apiGroup.POST("/addresses", r.addressHandler.CreateAddress)
		apiGroup.GET("/addresses", r.addressHandler.ListAddresses)
	}

	// Seller routes require authentication and the seller capability
	sellerGroup := e.Group("/api/seller")
	sellerGroup.Use(r.authMiddleware.Authenticate)
	sellerGroup.Use(r.authMiddleware.RequireSeller)
	{
		sellerGroup.POST("/products", r.productHandler.CreateProduct)
		sellerGroup.GET("/products", r.productHandler.ListSellerProducts)
		sellerGroup.GET("/orders", r.orderHandler.ListAllOrders)
	}
}
