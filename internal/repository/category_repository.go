package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/velmari/museum-tickets/internal/model"
)

// CategoryRepo manages persistence for ticket price tiers
// (ticket_categories).
type CategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepo constructs a CategoryRepo with the given DB handle.
func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

const categoryColumns = `id, name, price, accepts_subsidized_card, min_age, student_discount`

func scanCategory(row interface{ Scan(...any) error }) (*model.TicketCategory, error) {
	var cat model.TicketCategory
	if err := row.Scan(&cat.ID, &cat.Name, &cat.Price,
		&cat.AcceptsSubsidizedCard, &cat.MinAge, &cat.StudentDiscount); err != nil {
		return nil, err
	}
	return &cat, nil
}

// ListAll returns every ticket category in storage order. The order page
// renders them all; tiers are independent of any specific slot.
func (r *CategoryRepo) ListAll(ctx context.Context) ([]model.TicketCategory, error) {
	const q = `SELECT ` + categoryColumns + ` FROM ticket_categories`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	cats := make([]model.TicketCategory, 0)
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		cats = append(cats, *cat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cats, nil
}

// GetByID returns a single ticket category or ErrCategoryNotFound.
func (r *CategoryRepo) GetByID(ctx context.Context, id uint64) (*model.TicketCategory, error) {
	const q = `SELECT ` + categoryColumns + ` FROM ticket_categories WHERE id = ?`
	cat, err := scanCategory(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return cat, nil
}
