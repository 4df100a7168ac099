package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatusPending is the status every booking is created with.
// No code path transitions it; payment confirmation is not implemented.
const BookingStatusPending = "pending"

// Booking is the internal reservation record produced by a checkout
// attempt. It links a session slot, a requested quantity and the contact
// details captured on the order form. One booking belongs to exactly one
// order.
type Booking struct {
	ID               uint64          // ticket_bookings.id
	SessionID        uint64          // ticket_bookings.session_id
	TicketCategoryID *uint64         // ticket_bookings.ticket_category_id (nullable; unset for mixed-tier checkouts)
	UserEmail        string          // ticket_bookings.user_email
	UserPhone        string          // ticket_bookings.user_phone
	Quantity         uint32          // ticket_bookings.quantity
	TotalPrice       decimal.Decimal // ticket_bookings.total_price
	PaymentMethod    string          // ticket_bookings.payment_method
	BookingStatus    string          // ticket_bookings.booking_status
	BookingCode      string          // ticket_bookings.booking_code (16 uppercase hex chars)
	CreatedAt        time.Time       // ticket_bookings.created_at
}
