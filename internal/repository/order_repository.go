package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/velmari/museum-tickets/internal/model"
)

// OrderRepo manages persistence for customer orders (orders).
type OrderRepo struct {
	db *sql.DB
}

// NewOrderRepo constructs an OrderRepo with the given DB handle.
func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

const orderColumns = `id, full_name, email, phone, country_code, subscribe_news, accept_terms,
       booking_id, order_number, order_status, qr_code_token, qr_code_url,
       total_amount, payment_status, created_at`

func scanOrder(row interface{ Scan(...any) error }) (*model.Order, error) {
	var o model.Order
	if err := row.Scan(&o.ID, &o.FullName, &o.Email, &o.Phone, &o.CountryCode,
		&o.SubscribeNews, &o.AcceptTerms,
		&o.BookingID, &o.OrderNumber, &o.OrderStatus, &o.QRCodeToken, &o.QRCodeURL,
		&o.TotalAmount, &o.PaymentStatus, &o.CreatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateTx inserts a new order within the caller's transaction and
// populates the generated ID. The booking it references must already
// exist inside the same transaction.
func (r *OrderRepo) CreateTx(ctx context.Context, tx *sql.Tx, o *model.Order) error {
	const q = `INSERT INTO orders
	       (full_name, email, phone, country_code, subscribe_news, accept_terms,
	        booking_id, order_number, order_status, qr_code_token, qr_code_url,
	        total_amount, payment_status)
	       VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q,
		o.FullName, o.Email, o.Phone, o.CountryCode, o.SubscribeNews, o.AcceptTerms,
		o.BookingID, o.OrderNumber, o.OrderStatus, o.QRCodeToken, o.QRCodeURL,
		o.TotalAmount, o.PaymentStatus)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	o.ID = uint64(id)
	return nil
}

// ListAll returns every order newest-first for the admin console.
func (r *OrderRepo) ListAll(ctx context.Context) ([]model.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	orders := make([]model.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetByToken resolves an order from its opaque QR token. Backs the
// /qr/:token retrieval page. Returns ErrOrderNotFound for unknown tokens.
func (r *OrderRepo) GetByToken(ctx context.Context, token string) (*model.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE qr_code_token = ?`
	o, err := scanOrder(r.db.QueryRowContext(ctx, q, token))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}
