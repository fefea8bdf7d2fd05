package booking

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
	"github.com/m04kA/SMC-RealEstateService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RealEstateService/pkg/ptr"
	"github.com/m04kA/SMC-RealEstateService/pkg/types"
)

var fixedTime = time.Date(2024, time.May, 20, 9, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock, db
}

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "property_id", "check_in", "check_out", "total_price", "status",
		"created_at", "updated_at", "title", "location", "image", "price_per_night",
		"email", "first_name", "last_name",
	}).AddRow(
		int64(10), int64(7), int64(3),
		time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.June, 4, 0, 0, 0, 0, time.UTC),
		"300.00", "pending", fixedTime, fixedTime,
		"Sea view flat", "Lagos", nil, "100.00",
		"ada@example.com", "Ada", "Lovelace",
	)
}

func TestGetByID(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery(`SELECT b.id, .+ FROM bookings b JOIN properties p ON p.id = b.property_id JOIN users u ON u.id = b.user_id WHERE b.id = \$1$`).
		WithArgs(int64(10)).
		WillReturnRows(bookingRows())

	b, err := repo.GetByID(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, b.Status)
	assert.Equal(t, "2024-06-01", b.CheckIn.String())
	assert.Equal(t, "2024-06-04", b.CheckOut.String())
	assert.Equal(t, "300.00", b.TotalPrice.StringFixed(2))
	assert.Equal(t, 3, b.Nights())
	require.NotNil(t, b.Property)
	assert.Equal(t, "Sea view flat", b.Property.Title)
	assert.Nil(t, b.Property.Image)
	require.NotNil(t, b.User)
	assert.Equal(t, "ada@example.com", b.User.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_LocksInTransaction(t *testing.T) {
	repo, mock, db := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`WHERE b.id = \$1 FOR UPDATE OF b`).
		WithArgs(int64(10)).
		WillReturnRows(bookingRows())
	mock.ExpectRollback()

	tx, err := dbmetrics.Wrap(db, nil).BeginTx(context.Background(), nil)
	require.NoError(t, err)

	_, err = repo.GetByID(dbmetrics.WithTx(context.Background(), tx), 10)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery(`FROM bookings b`).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_UserAndStatus(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery(`WHERE b.user_id = \$1 AND b.status = \$2 ORDER BY b.created_at DESC, b.id DESC LIMIT 5`).
		WithArgs(int64(7), "pending").
		WillReturnRows(bookingRows())

	status := domain.StatusPending
	list, err := repo.List(context.Background(), domain.BookingFilter{
		UserID: ptr.Ptr(int64(7)),
		Status: &status,
		Limit:  5,
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(10), list[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery(`INSERT INTO bookings \(user_id,property_id,check_in,check_out,total_price,status\)`).
		WithArgs(int64(7), int64(3), "2024-06-01", "2024-06-04", "300", "pending").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(12), fixedTime, fixedTime))

	b, err := repo.Create(context.Background(), &domain.Booking{
		UserID:     7,
		PropertyID: 3,
		CheckIn:    types.NewDate(2024, time.June, 1),
		CheckOut:   types.NewDate(2024, time.June, 4),
		TotalPrice: decimal.RequireFromString("300.00"),
		Status:     domain.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), b.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_MissingReference(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery(`INSERT INTO bookings`).WillReturnError(&pq.Error{Code: "23503"})

	_, err := repo.Create(context.Background(), &domain.Booking{Status: domain.StatusPending})
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestHasOverlapping(t *testing.T) {
	repo, mock, _ := newRepo(t)
	in := types.NewDate(2024, time.June, 1)
	out := types.NewDate(2024, time.June, 4)

	mock.ExpectQuery(`SELECT id FROM bookings WHERE property_id = \$1 AND status IN \(\$2,\$3\) AND check_in < \$4 AND check_out > \$5$`).
		WithArgs(int64(3), "pending", "completed", "2024-06-04", "2024-06-01").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery(`SELECT id FROM bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	found, err := repo.HasOverlapping(context.Background(), 3, in, out)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.HasOverlapping(context.Background(), 3, in, out)
	require.NoError(t, err)
	assert.False(t, found)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectExec(`UPDATE bookings SET status = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs("completed", int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE bookings`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.UpdateStatus(context.Background(), 10, domain.StatusCompleted))
	assert.ErrorIs(t, repo.UpdateStatus(context.Background(), 11, domain.StatusCompleted), ErrBookingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
