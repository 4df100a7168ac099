package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/velmari/museum-tickets/internal/model"
)

// SessionRepo manages persistence for bookable session slots
// (session_schedule).
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo constructs a SessionRepo with the given DB handle.
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// DB exposes the underlying sql.DB. It allows callers to begin
// transactions spanning multiple repositories.
func (r *SessionRepo) DB() *sql.DB {
	return r.db
}

const sessionColumns = `id, DATE_FORMAT(session_date, '%Y-%m-%d'), TIME_FORMAT(session_time, '%H:%i:%s'),
       total_tickets, available_tickets, reserved_tickets, sold_tickets, is_active`

func scanSession(row interface{ Scan(...any) error }) (*model.SessionSlot, error) {
	var s model.SessionSlot
	if err := row.Scan(&s.ID, &s.SessionDate, &s.SessionTime,
		&s.TotalTickets, &s.AvailableTickets, &s.ReservedTickets, &s.SoldTickets, &s.IsActive); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListActive returns slots where is_active is set and session_date falls
// within [startDate, endDate] inclusive, ordered by date then time
// ascending. Dates are "YYYY-MM-DD" strings. An empty slice is returned
// when no slot matches.
func (r *SessionRepo) ListActive(ctx context.Context, startDate, endDate string) ([]model.SessionSlot, error) {
	const q = `SELECT ` + sessionColumns + `
	       FROM session_schedule
	       WHERE is_active = 1 AND session_date >= ? AND session_date <= ?
	       ORDER BY session_date, session_time`
	rows, err := r.db.QueryContext(ctx, q, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	slots := make([]model.SessionSlot, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return slots, nil
}

// FindByDateTime is the exact-match lookup used to resolve a checkout's
// chosen slot. Returns ErrSlotNotFound when no slot exists at that date
// and time.
func (r *SessionRepo) FindByDateTime(ctx context.Context, date, tm string) (*model.SessionSlot, error) {
	const q = `SELECT ` + sessionColumns + `
	       FROM session_schedule WHERE session_date = ? AND session_time = ?`
	s, err := scanSession(r.db.QueryRowContext(ctx, q, date, tm))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return s, nil
}

// ReserveTx atomically claims n tickets on a slot inside the caller's
// transaction. The availability check lives in the WHERE clause, so two
// racing checkouts can never both pass it: the second UPDATE matches zero
// rows and the caller gets ErrInsufficientCapacity. The caller must roll
// back on that error.
func (r *SessionRepo) ReserveTx(ctx context.Context, tx *sql.Tx, slotID uint64, n uint32) error {
	const q = `UPDATE session_schedule
	       SET available_tickets = available_tickets - ?,
	           reserved_tickets  = reserved_tickets + ?
	       WHERE id = ? AND is_active = 1 AND available_tickets >= ?`
	res, err := tx.ExecContext(ctx, q, n, n, slotID, n)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInsufficientCapacity
	}
	return nil
}
