package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velmari/museum-tickets/internal/repository"
)

// AdminOrderHandler gives the console read access to orders.
type AdminOrderHandler struct {
	Orders *repository.OrderRepo
}

// NewAdminOrderHandler constructs an AdminOrderHandler.
func NewAdminOrderHandler(orders *repository.OrderRepo) *AdminOrderHandler {
	if orders == nil {
		panic("nil repository passed to NewAdminOrderHandler")
	}
	return &AdminOrderHandler{Orders: orders}
}

// ListOrders handles GET /admin/orders, newest first.
func (h *AdminOrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.Orders.ListAll(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("admin orders: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	return c.Render(http.StatusOK, "admin_orders.html", echo.Map{"Orders": orders})
}
