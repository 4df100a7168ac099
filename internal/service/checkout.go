// Package service implements the reservation workflow: a checkout request
// passes through validation, slot resolution, capacity pre-check, pricing,
// and a single transaction that creates the booking, the order and the
// capacity adjustment.
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/velmari/museum-tickets/internal/model"
	"github.com/velmari/museum-tickets/internal/repository"
	"github.com/velmari/museum-tickets/internal/utils"
)

// ValidationError names the first unmet requirement of a checkout
// request. Handlers surface the message verbatim in the JSON error field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s is required", e.Field)
}

// CheckoutStore is the narrow storage surface the workflow needs. The
// SQL-backed implementation lives in the repository package; tests use an
// in-memory fake.
type CheckoutStore interface {
	// SlotByDateTime resolves a slot by exact date and time, returning
	// repository.ErrSlotNotFound when absent.
	SlotByDateTime(ctx context.Context, date, tm string) (*model.SessionSlot, error)
	// CategoryByID resolves a price tier, returning
	// repository.ErrCategoryNotFound for unknown ids.
	CategoryByID(ctx context.Context, id uint64) (*model.TicketCategory, error)
	// PlaceOrder atomically persists the booking, the order referencing
	// it, and the n-ticket capacity claim. It returns
	// repository.ErrInsufficientCapacity (and persists nothing) when the
	// slot no longer has n tickets available.
	PlaceOrder(ctx context.Context, b *model.Booking, o *model.Order, n uint32) error
}

// CheckoutRequest carries the decoded order form.
type CheckoutRequest struct {
	FullName      string
	Email         string
	Phone         string
	CountryCode   string
	SubscribeNews bool
	AcceptTerms   bool
	SessionDate   string            // "2006-01-02"
	SessionTime   string            // "15:04:05"
	Tickets       map[uint64]uint32 // ticket category id -> quantity
}

// CheckoutResult is returned on success.
type CheckoutResult struct {
	OrderID     uint64
	OrderNumber string
	BookingCode string
	QRCodeURL   string
	Quantity    uint32
	TotalAmount decimal.Decimal
}

// Checkout runs reservation workflows against a CheckoutStore.
type Checkout struct {
	store CheckoutStore
}

// NewCheckout constructs the workflow. The store must be non-nil.
func NewCheckout(store CheckoutStore) *Checkout {
	if store == nil {
		panic("nil store passed to NewCheckout")
	}
	return &Checkout{store: store}
}

// Create processes one checkout attempt. On any error no partial side
// effects remain: everything persistent happens inside PlaceOrder's
// transaction. Errors are either *ValidationError or one of the
// repository sentinels (ErrSlotNotFound, ErrCategoryNotFound,
// ErrInsufficientCapacity), plus raw storage errors.
func (s *Checkout) Create(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}

	slot, err := s.store.SlotByDateTime(ctx, req.SessionDate, req.SessionTime)
	if err != nil {
		return nil, err
	}

	// Deterministic pricing order; map iteration order is random. The sum
	// runs in uint64 so huge per-category quantities cannot wrap around
	// the capacity check below.
	ids := make([]uint64, 0, len(req.Tickets))
	var sum uint64
	for id, qty := range req.Tickets {
		if qty == 0 {
			continue
		}
		ids = append(ids, id)
		sum += uint64(qty)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	// Fast pre-check for a friendly error. The authoritative guard is the
	// conditional UPDATE inside PlaceOrder.
	if sum > uint64(slot.AvailableTickets) {
		return nil, repository.ErrInsufficientCapacity
	}
	total := uint32(sum)

	amount := decimal.Zero
	for _, id := range ids {
		cat, err := s.store.CategoryByID(ctx, id)
		if err != nil {
			return nil, err
		}
		qty := decimal.NewFromInt(int64(req.Tickets[id]))
		amount = amount.Add(cat.Price.Mul(qty))
	}
	amount = amount.Round(2)

	code, err := utils.NewBookingCode()
	if err != nil {
		return nil, err
	}
	booking := &model.Booking{
		SessionID:     slot.ID,
		UserEmail:     req.Email,
		UserPhone:     req.Phone,
		Quantity:      total,
		TotalPrice:    amount,
		PaymentMethod: "online",
		BookingStatus: model.BookingStatusPending,
		BookingCode:   code,
	}
	if len(ids) == 1 {
		id := ids[0]
		booking.TicketCategoryID = &id
	}

	number, err := utils.NewOrderNumber(time.Now().UTC())
	if err != nil {
		return nil, err
	}
	token, err := utils.NewQRToken()
	if err != nil {
		return nil, err
	}
	order := &model.Order{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		CountryCode:   req.CountryCode,
		SubscribeNews: req.SubscribeNews,
		AcceptTerms:   req.AcceptTerms,
		OrderNumber:   number,
		OrderStatus:   model.OrderStatusNew,
		QRCodeToken:   token,
		QRCodeURL:     "/qr/" + token,
		TotalAmount:   amount,
		PaymentStatus: model.PaymentStatusUnpaid,
	}

	if err := s.store.PlaceOrder(ctx, booking, order, total); err != nil {
		return nil, err
	}

	return &CheckoutResult{
		OrderID:     order.ID,
		OrderNumber: number,
		BookingCode: code,
		QRCodeURL:   order.QRCodeURL,
		Quantity:    total,
		TotalAmount: amount,
	}, nil
}

// validate checks required fields in the order the form presents them and
// normalizes whitespace in place.
func validate(req *CheckoutRequest) error {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.SessionDate = strings.TrimSpace(req.SessionDate)
	req.SessionTime = strings.TrimSpace(req.SessionTime)

	switch {
	case req.FullName == "":
		return &ValidationError{Field: "full_name"}
	case req.Email == "":
		return &ValidationError{Field: "email"}
	case !strings.Contains(req.Email, "@"):
		return &ValidationError{Field: "email", Reason: "not an email address"}
	case req.Phone == "":
		return &ValidationError{Field: "phone"}
	case req.SessionDate == "":
		return &ValidationError{Field: "session_date"}
	case req.SessionTime == "":
		return &ValidationError{Field: "session_time"}
	case !req.AcceptTerms:
		return &ValidationError{Field: "accept_terms", Reason: "terms must be accepted"}
	}
	if _, err := time.Parse("2006-01-02", req.SessionDate); err != nil {
		return &ValidationError{Field: "session_date", Reason: "expected YYYY-MM-DD"}
	}
	if _, err := time.Parse("15:04:05", req.SessionTime); err != nil {
		return &ValidationError{Field: "session_time", Reason: "expected HH:MM:SS"}
	}
	var total uint64
	for _, qty := range req.Tickets {
		total += uint64(qty)
	}
	if total == 0 {
		return &ValidationError{Field: "tickets_data", Reason: "at least one ticket is required"}
	}
	return nil
}
