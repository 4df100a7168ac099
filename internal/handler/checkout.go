package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/velmari/museum-tickets/internal/monitoring"
	"github.com/velmari/museum-tickets/internal/queue"
	"github.com/velmari/museum-tickets/internal/repository"
	"github.com/velmari/museum-tickets/internal/service"
)

// CheckoutHandler exposes the reservation workflow over POST
// /create-order. The response contract matches the order form's
// client-side script: a JSON object with a success flag, and either the
// order identifiers or a human-readable error.
type CheckoutHandler struct {
	Checkout *service.Checkout
	AMQPURL  string // empty disables order events
}

// NewCheckoutHandler constructs a CheckoutHandler.
func NewCheckoutHandler(checkout *service.Checkout, amqpURL string) *CheckoutHandler {
	if checkout == nil {
		panic("nil checkout service passed to NewCheckoutHandler")
	}
	return &CheckoutHandler{Checkout: checkout, AMQPURL: amqpURL}
}

// CreateOrder handles POST /create-order (form-encoded). Domain failures
// come back as {"success": false, "error": ...} so the form script can
// surface them inline; only storage trouble is a 500.
func (h *CheckoutHandler) CreateOrder(c echo.Context) error {
	req := service.CheckoutRequest{
		FullName:      c.FormValue("full_name"),
		Email:         c.FormValue("email"),
		Phone:         c.FormValue("phone"),
		CountryCode:   c.FormValue("country_code"),
		SubscribeNews: c.FormValue("subscribe_news") == "on",
		AcceptTerms:   c.FormValue("accept_terms") == "on",
		SessionDate:   c.FormValue("session_date"),
		SessionTime:   c.FormValue("session_time"),
	}

	tickets, err := parseTicketsData(c.FormValue("tickets_data"))
	if err != nil {
		monitoring.CheckoutFailed("validation")
		return c.JSON(http.StatusOK, echo.Map{"success": false, "error": "invalid tickets_data: " + err.Error()})
	}
	req.Tickets = tickets

	result, err := h.Checkout.Create(c.Request().Context(), req)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			monitoring.CheckoutFailed("validation")
			return c.JSON(http.StatusOK, echo.Map{"success": false, "error": verr.Error()})
		case errors.Is(err, repository.ErrSlotNotFound):
			monitoring.CheckoutFailed("slot_not_found")
			return c.JSON(http.StatusOK, echo.Map{"success": false, "error": "session not found"})
		case errors.Is(err, repository.ErrCategoryNotFound):
			monitoring.CheckoutFailed("category_not_found")
			return c.JSON(http.StatusOK, echo.Map{"success": false, "error": "ticket category not found"})
		case errors.Is(err, repository.ErrInsufficientCapacity):
			monitoring.CheckoutFailed("capacity")
			return c.JSON(http.StatusOK, echo.Map{"success": false, "error": "not enough tickets available"})
		default:
			monitoring.CheckoutFailed("storage")
			c.Logger().Errorf("create-order: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "internal error"})
		}
	}

	monitoring.OrderCreated()
	if h.AMQPURL != "" {
		ev := queue.OrderCreatedEvent{
			OrderID:     result.OrderID,
			OrderNumber: result.OrderNumber,
			BookingCode: result.BookingCode,
			Email:       req.Email,
			SessionDate: req.SessionDate,
			SessionTime: req.SessionTime,
			Quantity:    result.Quantity,
			TotalAmount: result.TotalAmount.StringFixed(2),
			CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		}
		// Best effort; a broker outage never fails a committed order.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = queue.PublishOrderCreated(ctx, h.AMQPURL, ev)
		}()
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"order_id":     result.OrderID,
		"order_number": result.OrderNumber,
		"total_amount": result.TotalAmount.StringFixed(2),
	})
}

// parseTicketsData decodes the tickets_data form field: a JSON object
// mapping ticket category id to quantity. Keys arrive as strings because
// JSON object keys always are.
func parseTicketsData(raw string) (map[uint64]uint32, error) {
	if raw == "" {
		return nil, errors.New("tickets_data is required")
	}
	var decoded map[string]uint32
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, errors.New("not a JSON object of category id to quantity")
	}
	tickets := make(map[uint64]uint32, len(decoded))
	for key, qty := range decoded {
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil || id == 0 {
			return nil, errors.New("category ids must be positive integers")
		}
		tickets[id] = qty
	}
	return tickets, nil
}
