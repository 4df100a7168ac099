package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionRows = []string{
	"id", "session_date", "session_time",
	"total_tickets", "available_tickets", "reserved_tickets", "sold_tickets", "is_active",
}

func TestListActiveFiltersAndOrders(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(sessionRows).
		AddRow(1, "2026-09-01", "10:00:00", 50, 20, 10, 20, true).
		AddRow(2, "2026-09-01", "14:00:00", 50, 50, 0, 0, true).
		AddRow(3, "2026-09-02", "10:00:00", 50, 0, 30, 20, true)
	// Inclusive bounds and the (date, time) ordering live in the query.
	mock.ExpectQuery(`WHERE is_active = 1 AND session_date >= \? AND session_date <= \?\s+ORDER BY session_date, session_time`).
		WithArgs("2026-09-01", "2026-09-08").
		WillReturnRows(rows)

	slots, err := NewSessionRepo(db).ListActive(context.Background(), "2026-09-01", "2026-09-08")
	require.NoError(t, err)

	require.Len(t, slots, 3)
	assert.Equal(t, uint64(1), slots[0].ID)
	assert.Equal(t, "2026-09-01", slots[0].SessionDate)
	assert.Equal(t, "10:00:00", slots[0].SessionTime)
	assert.Equal(t, uint32(20), slots[0].AvailableTickets)
	assert.Equal(t, uint64(3), slots[2].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveNoMatchesReturnsEmptySlice(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM session_schedule").
		WithArgs("2026-09-01", "2026-09-08").
		WillReturnRows(sqlmock.NewRows(sessionRows))

	slots, err := NewSessionRepo(db).ListActive(context.Background(), "2026-09-01", "2026-09-08")
	require.NoError(t, err)
	require.NotNil(t, slots)
	assert.Empty(t, slots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByDateTimeNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM session_schedule WHERE session_date = \\? AND session_time = \\?").
		WithArgs("2026-09-01", "23:00:00").
		WillReturnError(sql.ErrNoRows)

	_, err = NewSessionRepo(db).FindByDateTime(context.Background(), "2026-09-01", "23:00:00")
	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveTxClaimsTickets(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE session_schedule`)).
		WithArgs(3, 3, 7, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, NewSessionRepo(db).ReserveTx(context.Background(), tx, 7, 3))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveTxZeroRowsMeansInsufficientCapacity(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE session_schedule`)).
		WithArgs(5, 5, 7, 5).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)
	err = NewSessionRepo(db).ReserveTx(context.Background(), tx, 7, 5)
	assert.ErrorIs(t, err, ErrInsufficientCapacity)
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}
