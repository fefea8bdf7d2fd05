package wishlist

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`INSERT INTO wishlists \(user_id,property_id\) VALUES \(\$1,\$2\) RETURNING id, created_at`).
		WithArgs(int64(7), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))

	entry, err := repo.Create(context.Background(), 7, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), entry.ID)
	assert.Equal(t, int64(3), entry.PropertyID)
}

func TestCreate_ConstraintViolations(t *testing.T) {
	tests := []struct {
		name       string
		code       pq.ErrorCode
		constraint string
		want       error
	}{
		{"duplicate pair", "23505", "wishlists_user_id_property_id_key", ErrAlreadyExists},
		{"missing property", "23503", "wishlists_property_id_fkey", ErrPropertyNotFound},
		{"missing user", "23503", "wishlists_user_id_fkey", ErrUserNotFound},
		{"unknown foreign key", "23503", "other_fkey", ErrExecQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			mock.ExpectQuery(`INSERT INTO wishlists`).WillReturnError(&pq.Error{Code: tt.code, Constraint: tt.constraint})

			_, err := repo.Create(context.Background(), 7, 3)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDelete(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`DELETE FROM wishlists WHERE property_id = \$1 AND user_id = \$2`).
		WithArgs(int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM wishlists`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 7, 3))
	assert.ErrorIs(t, repo.Delete(context.Background(), 7, 3), ErrEntryNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`FROM wishlists w JOIN properties p ON p.id = w.property_id WHERE w.user_id = \$1 ORDER BY w.created_at DESC, w.id DESC`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "property_id", "created_at", "title", "description", "price_per_night",
			"location", "bedrooms", "bathrooms", "area", "is_featured", "is_available", "image",
			"p_created_at", "p_updated_at",
		}).AddRow(int64(1), int64(7), int64(3), now, "Loft", "", "80.00", "Abuja", 1, 1, "40.5",
			false, true, "/media/loft.jpg", now, now))

	entries, err := repo.ListByUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].Property)
	assert.Equal(t, int64(3), entries[0].Property.ID)
	assert.Equal(t, "Loft", entries[0].Property.Title)
	assert.Equal(t, "80.00", entries[0].Property.PricePerNight.StringFixed(2))
	require.NoError(t, mock.ExpectationsWereMet())
}
