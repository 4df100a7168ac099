package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order status defaults. Orders are created "new" and "unpaid"; there is
// no payment gateway, so neither value transitions.
const (
	OrderStatusNew      = "new"
	PaymentStatusUnpaid = "unpaid"
)

// Order is the customer-facing receipt for a booking. The order number is
// shown to the visitor; the QR token is an opaque handle used to build the
// retrieval URL /qr/<token>.
type Order struct {
	ID            uint64          // orders.id
	FullName      string          // orders.full_name
	Email         string          // orders.email
	Phone         string          // orders.phone
	CountryCode   string          // orders.country_code
	SubscribeNews bool            // orders.subscribe_news
	AcceptTerms   bool            // orders.accept_terms
	BookingID     uint64          // orders.booking_id (FK to ticket_bookings)
	OrderNumber   string          // orders.order_number ("ORD-YYYYMMDD-XXXXXXXX")
	OrderStatus   string          // orders.order_status
	QRCodeToken   string          // orders.qr_code_token (base64url, no padding)
	QRCodeURL     string          // orders.qr_code_url ("/qr/<token>")
	TotalAmount   decimal.Decimal // orders.total_amount (DECIMAL(10,2))
	PaymentStatus string          // orders.payment_status
	CreatedAt     time.Time       // orders.created_at
}
