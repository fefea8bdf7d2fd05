package user

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
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
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO users \(email,first_name,last_name,password_hash,is_active,is_staff,is_admin\) .+ RETURNING id, created_at`).
		WithArgs("ada@example.com", "Ada", "Lovelace", "hash", true, false, false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), now))

	u, err := repo.Create(context.Background(), &domain.User{
		Email:        "ada@example.com",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		PasswordHash: "hash",
		IsActive:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), u.ID)
	assert.Equal(t, now, u.CreatedAt)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.User{Email: "ada@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestGetByEmail(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE email = \$1`).
		WithArgs("ada@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(1), "ada@example.com", "Ada", "Lovelace", "hash", true, false, true, time.Now()))

	u, err := repo.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin)
	assert.Equal(t, "Ada Lovelace", u.FullName())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`FROM users WHERE id = \$1`).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 3)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListAndCount(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM users ORDER BY created_at DESC, id DESC`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(2), "b@example.com", "", "", "h", true, false, false, time.Now()).
			AddRow(int64(1), "a@example.com", "", "", "h", true, true, true, time.Now()))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int64(2), users[0].ID)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	require.NoError(t, mock.ExpectationsWereMet())
}
