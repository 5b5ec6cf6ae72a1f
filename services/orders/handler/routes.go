package handler

import (
	"github.com/labstack/echo/v4"

	orderhttp "github.com/arkananta/rantai/services/orders/handler/http"
)

// Handler coordinates the HTTP handlers for the order service
type Handler struct {
	orderHandler *orderhttp.OrderHandler
}

// NewHandler creates and initializes the order handlers
func NewHandler(orderHandler *orderhttp.OrderHandler) *Handler {
	return &Handler{
		orderHandler: orderHandler,
	}
}

// RegisterRoutes registers the order routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/place-order", h.orderHandler.PlaceOrder)
	e.GET("/manufacturer-orders/:manufacturerId", h.orderHandler.GetManufacturerOrders)
	e.GET("/all-orders", h.orderHandler.GetAllOrders)
	e.GET("/admin-requests", h.orderHandler.GetAdminRequests)
}
