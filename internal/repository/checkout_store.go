package repository

import (
	"context"
	"database/sql"

	"github.com/velmari/museum-tickets/internal/model"
)

// CheckoutStore bundles the repositories the reservation workflow touches
// and runs its persistent steps in a single transaction. It satisfies
// service.CheckoutStore.
type CheckoutStore struct {
	db         *sql.DB
	sessions   *SessionRepo
	categories *CategoryRepo
	bookings   *BookingRepo
	orders     *OrderRepo
}

// NewCheckoutStore constructs a CheckoutStore. All dependencies must be
// non-nil and share the same underlying database handle.
func NewCheckoutStore(db *sql.DB, sessions *SessionRepo, categories *CategoryRepo, bookings *BookingRepo, orders *OrderRepo) *CheckoutStore {
	if db == nil || sessions == nil || categories == nil || bookings == nil || orders == nil {
		panic("nil dependency passed to NewCheckoutStore")
	}
	return &CheckoutStore{db: db, sessions: sessions, categories: categories, bookings: bookings, orders: orders}
}

// SlotByDateTime resolves the slot a checkout selected.
func (s *CheckoutStore) SlotByDateTime(ctx context.Context, date, tm string) (*model.SessionSlot, error) {
	return s.sessions.FindByDateTime(ctx, date, tm)
}

// CategoryByID resolves a ticket category referenced by the quantity map.
func (s *CheckoutStore) CategoryByID(ctx context.Context, id uint64) (*model.TicketCategory, error) {
	return s.categories.GetByID(ctx, id)
}

// PlaceOrder persists the booking, the order referencing it, and the
// capacity adjustment as one transaction. When another checkout has
// claimed the remaining tickets in the meantime, the conditional update
// fails with ErrInsufficientCapacity and the whole transaction rolls
// back, leaving no orphaned booking or order rows.
func (s *CheckoutStore) PlaceOrder(ctx context.Context, b *model.Booking, o *model.Order, n uint32) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := s.bookings.CreateTx(ctx, tx, b); err != nil {
		return err
	}
	o.BookingID = b.ID
	if err := s.orders.CreateTx(ctx, tx, o); err != nil {
		return err
	}
	if err := s.sessions.ReserveTx(ctx, tx, b.SessionID, n); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
