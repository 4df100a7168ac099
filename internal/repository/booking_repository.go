package repository

import (
	"context"
	"database/sql"

	"github.com/velmari/museum-tickets/internal/model"
)

// BookingRepo manages persistence for bookings (ticket_bookings). A
// booking is always created inside the checkout transaction, so only a
// *Tx insert is exposed.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the given DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// CreateTx inserts a new booking within the caller's transaction and
// populates the generated ID on the provided record. The caller must
// commit or roll back the transaction. BookingStatus should already be
// set to model.BookingStatusPending by the workflow.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	const q = `INSERT INTO ticket_bookings
	       (session_id, ticket_category_id, user_email, user_phone, quantity,
	        total_price, payment_method, booking_status, booking_code)
	       VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	var catID any
	if b.TicketCategoryID != nil {
		catID = *b.TicketCategoryID
	}
	res, err := tx.ExecContext(ctx, q,
		b.SessionID, catID, b.UserEmail, b.UserPhone, b.Quantity,
		b.TotalPrice, b.PaymentMethod, b.BookingStatus, b.BookingCode)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}
