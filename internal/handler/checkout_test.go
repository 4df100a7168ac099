package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmari/museum-tickets/internal/model"
	"github.com/velmari/museum-tickets/internal/repository"
	"github.com/velmari/museum-tickets/internal/service"
)

// stubStore backs the checkout service with one slot and one category.
type stubStore struct {
	available uint32
	placed    int
}

func (s *stubStore) SlotByDateTime(_ context.Context, date, tm string) (*model.SessionSlot, error) {
	if date != "2026-09-10" || tm != "14:00:00" {
		return nil, repository.ErrSlotNotFound
	}
	return &model.SessionSlot{ID: 1, SessionDate: date, SessionTime: tm, AvailableTickets: s.available, IsActive: true}, nil
}

func (s *stubStore) CategoryByID(_ context.Context, id uint64) (*model.TicketCategory, error) {
	if id != 1 {
		return nil, repository.ErrCategoryNotFound
	}
	return &model.TicketCategory{ID: 1, Name: "Adult", Price: decimal.RequireFromString("500.00")}, nil
}

func (s *stubStore) PlaceOrder(_ context.Context, b *model.Booking, o *model.Order, n uint32) error {
	if s.available < n {
		return repository.ErrInsufficientCapacity
	}
	s.available -= n
	b.ID = 11
	o.BookingID = b.ID
	o.ID = 42
	s.placed++
	return nil
}

func orderForm() url.Values {
	return url.Values{
		"full_name":    {"Anna Petrova"},
		"email":        {"anna@example.com"},
		"phone":        {"9990001122"},
		"country_code": {"+7"},
		"accept_terms": {"on"},
		"session_date": {"2026-09-10"},
		"session_time": {"14:00:00"},
		"tickets_data": {`{"1": 2}`},
	}
}

func postOrder(t *testing.T, store *stubStore, form url.Values) (int, map[string]any) {
	t.Helper()
	h := NewCheckoutHandler(service.NewCheckout(store), "")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/create-order", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	require.NoError(t, h.CreateOrder(e.NewContext(req, rec)))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestCreateOrderSuccess(t *testing.T) {
	store := &stubStore{available: 10}
	code, body := postOrder(t, store, orderForm())

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(42), body["order_id"])
	assert.Equal(t, "1000.00", body["total_amount"])
	assert.Contains(t, body["order_number"], "ORD-")
	assert.Equal(t, 1, store.placed)
}

func TestCreateOrderValidationError(t *testing.T) {
	form := orderForm()
	form.Set("email", "")
	store := &stubStore{available: 10}
	code, body := postOrder(t, store, form)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "email is required", body["error"])
	assert.Zero(t, store.placed)
}

func TestCreateOrderUnknownSession(t *testing.T) {
	form := orderForm()
	form.Set("session_time", "09:00:00")
	code, body := postOrder(t, &stubStore{available: 10}, form)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "session not found", body["error"])
}

func TestCreateOrderCapacityExhausted(t *testing.T) {
	store := &stubStore{available: 1}
	code, body := postOrder(t, store, orderForm())

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "not enough tickets available", body["error"])
	assert.Zero(t, store.placed)
}

func TestCreateOrderBadTicketsData(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"not json", "two adult please"},
		{"non-numeric key", `{"adult": 2}`},
		{"zero key", `{"0": 2}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := orderForm()
			form.Set("tickets_data", tc.raw)
			code, body := postOrder(t, &stubStore{available: 10}, form)
			assert.Equal(t, http.StatusOK, code)
			assert.Equal(t, false, body["success"])
			assert.Contains(t, body["error"], "tickets_data")
		})
	}
}
