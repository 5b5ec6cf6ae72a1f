package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/arkananta/rantai/internal/pkg/logger"
	"github.com/arkananta/rantai/internal/pkg/models"
	"github.com/arkananta/rantai/internal/utils"
	"github.com/arkananta/rantai/services/orders"
)

// OrderHandler handles HTTP requests for order operations
type OrderHandler struct {
	orderUC orders.OrderUC
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUC orders.OrderUC) *OrderHandler {
	return &OrderHandler{
		orderUC: orderUC,
	}
}

// PlaceOrder handles shopkeeper order submissions
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var request models.PlaceOrderRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid order items")
	}

	response, err := h.orderUC.PlaceOrder(c.Request().Context(), &request)
	if err != nil {
		logger.Warn("Failed to place order",
			logger.String("shopkeeper_id", request.ShopkeeperID),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return c.JSON(nethttp.StatusOK, response)
}

// GetManufacturerOrders handles a manufacturer's order list requests
func (h *OrderHandler) GetManufacturerOrders(c echo.Context) error {
	manufacturerID := c.Param("manufacturerId")
	if manufacturerID == "" {
		return utils.BadRequestResponse(c, "Invalid manufacturer ID")
	}

	matched, err := h.orderUC.ListForManufacturer(c.Request().Context(), manufacturerID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return c.JSON(nethttp.StatusOK, matched)
}

// GetAllOrders returns the full order log
func (h *OrderHandler) GetAllOrders(c echo.Context) error {
	all, err := h.orderUC.ListAll(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return c.JSON(nethttp.StatusOK, all)
}

// GetAdminRequests returns the registered manufacturers and transporters
func (h *OrderHandler) GetAdminRequests(c echo.Context) error {
	directory, err := h.orderUC.AdminDirectory(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return c.JSON(nethttp.StatusOK, directory)
}
