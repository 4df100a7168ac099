package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var contentRows = []string{
	"id", "category", "img_card", "title_card", "short_description_card",
	"main_image", "main_text",
	"block_image_1", "block_text_1", "block_image_2", "block_text_2",
	"block_image_3", "block_text_3",
}

func TestListByCategoryEmptyIsNotAnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM data_content WHERE category = \\?").
		WithArgs("poster").
		WillReturnRows(sqlmock.NewRows(contentRows))

	cards, err := NewContentRepo(db).ListByCategory(context.Background(), "poster")
	require.NoError(t, err)
	require.NotNil(t, cards)
	assert.Empty(t, cards)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByCategoryDecodesNullColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(contentRows).
		AddRow(4, "museums", "/static/uploads/a.jpg", "Hermitage", nil,
			nil, "Long text",
			nil, nil, nil, nil, nil, nil)
	mock.ExpectQuery("FROM data_content WHERE category = \\?").
		WithArgs("museums").
		WillReturnRows(rows)

	cards, err := NewContentRepo(db).ListByCategory(context.Background(), "museums")
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, uint64(4), cards[0].ID)
	assert.Equal(t, "Hermitage", cards[0].CardTitle)
	assert.Equal(t, "", cards[0].ShortDescription, "NULL columns decode to empty strings")
	assert.Equal(t, "Long text", cards[0].MainText)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM data_content WHERE id = \\?").
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	_, err = NewContentRepo(db).GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrContentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingRowIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM data_content WHERE id = \\?").
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewContentRepo(db).Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrContentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
