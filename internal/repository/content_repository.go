package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/velmari/museum-tickets/internal/model"
)

// ContentRepo manages persistence for content cards (data_content).
type ContentRepo struct {
	db *sql.DB
}

// NewContentRepo constructs a ContentRepo with the given DB handle.
func NewContentRepo(db *sql.DB) *ContentRepo {
	return &ContentRepo{db: db}
}

const contentColumns = `id, category, img_card, title_card, short_description_card,
       main_image, main_text,
       block_image_1, block_text_1, block_image_2, block_text_2, block_image_3, block_text_3`

// scanContent decodes one data_content row. All text and path columns are
// nullable in the legacy schema, so they scan through sql.NullString.
func scanContent(row interface{ Scan(...any) error }) (*model.ContentCard, error) {
	var card model.ContentCard
	cols := make([]sql.NullString, 12) // category .. block_text_3 in contentColumns order
	dest := make([]any, 0, 13)
	dest = append(dest, &card.ID)
	for i := range cols {
		dest = append(dest, &cols[i])
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	card.Category = cols[0].String
	card.CardImage = cols[1].String
	card.CardTitle = cols[2].String
	card.ShortDescription = cols[3].String
	card.MainImage = cols[4].String
	card.MainText = cols[5].String
	card.BlockImage1 = cols[6].String
	card.BlockText1 = cols[7].String
	card.BlockImage2 = cols[8].String
	card.BlockText2 = cols[9].String
	card.BlockImage3 = cols[10].String
	card.BlockText3 = cols[11].String
	return &card, nil
}

// ListByCategory returns all cards matching a category tag in storage
// order. When no rows match, an empty slice is returned, never an error.
func (r *ContentRepo) ListByCategory(ctx context.Context, category string) ([]model.ContentCard, error) {
	const q = `SELECT ` + contentColumns + ` FROM data_content WHERE category = ?`
	rows, err := r.db.QueryContext(ctx, q, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	cards := make([]model.ContentCard, 0)
	for rows.Next() {
		card, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *card)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cards, nil
}

// GetByID returns a single card or ErrContentNotFound.
func (r *ContentRepo) GetByID(ctx context.Context, id uint64) (*model.ContentCard, error) {
	const q = `SELECT ` + contentColumns + ` FROM data_content WHERE id = ?`
	card, err := scanContent(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return card, nil
}

// FirstByCategory returns the first card of a category in storage order,
// or ErrContentNotFound when the category is empty. The about-us page uses
// it when no explicit museum id is requested.
func (r *ContentRepo) FirstByCategory(ctx context.Context, category string) (*model.ContentCard, error) {
	const q = `SELECT ` + contentColumns + ` FROM data_content WHERE category = ? ORDER BY id LIMIT 1`
	card, err := scanContent(r.db.QueryRowContext(ctx, q, category))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return card, nil
}

// Create inserts a new card and assigns the generated ID back to the
// struct.
func (r *ContentRepo) Create(ctx context.Context, card *model.ContentCard) error {
	const q = `INSERT INTO data_content
	       (category, img_card, title_card, short_description_card,
	        main_image, main_text,
	        block_image_1, block_text_1, block_image_2, block_text_2, block_image_3, block_text_3)
	       VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		card.Category, card.CardImage, card.CardTitle, card.ShortDescription,
		card.MainImage, card.MainText,
		card.BlockImage1, card.BlockText1, card.BlockImage2, card.BlockText2, card.BlockImage3, card.BlockText3)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	card.ID = uint64(id)
	return nil
}

// Update overwrites all editable fields of an existing card. Image paths
// are whatever the handler decided: a freshly stored upload path or the
// previously stored one. Returns ErrContentNotFound when the id does not
// exist.
func (r *ContentRepo) Update(ctx context.Context, card *model.ContentCard) error {
	const q = `UPDATE data_content SET
	       category = ?, img_card = ?, title_card = ?, short_description_card = ?,
	       main_image = ?, main_text = ?,
	       block_image_1 = ?, block_text_1 = ?, block_image_2 = ?, block_text_2 = ?,
	       block_image_3 = ?, block_text_3 = ?
	       WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		card.Category, card.CardImage, card.CardTitle, card.ShortDescription,
		card.MainImage, card.MainText,
		card.BlockImage1, card.BlockText1, card.BlockImage2, card.BlockText2,
		card.BlockImage3, card.BlockText3,
		card.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Either no such row or the update was a no-op; distinguish.
		var exists int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM data_content WHERE id = ?`, card.ID).Scan(&exists); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrContentNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes a card by id. Returns ErrContentNotFound when nothing was
// deleted.
func (r *ContentRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM data_content WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrContentNotFound
	}
	return nil
}
