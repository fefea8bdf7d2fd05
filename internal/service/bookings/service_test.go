package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RealEstateService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RealEstateService/internal/service/bookings/models"
	"github.com/m04kA/SMC-RealEstateService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	items      map[int64]*domain.Booking
	lastFilter domain.BookingFilter
	err        error
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.items[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Booking
	for _, b := range f.items {
		if filter.UserID != nil && b.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.items[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

type fakeTx struct{}

func (fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func booking(id, userID int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		UserID:     userID,
		PropertyID: 5,
		CheckIn:    types.NewDate(2024, time.June, 1),
		CheckOut:   types.NewDate(2024, time.June, 4),
		TotalPrice: decimal.RequireFromString("300"),
		Status:     status,
		Property: &domain.BookingProperty{
			Title:         "Loft",
			Location:      "Abuja",
			PricePerNight: decimal.RequireFromString("100"),
		},
		User: &domain.BookingUser{Email: "ada@example.com", FirstName: "Ada"},
	}
}

func newTestService(items ...*domain.Booking) (*Service, *fakeRepo) {
	repo := &fakeRepo{items: map[int64]*domain.Booking{}}
	for _, b := range items {
		repo.items[b.ID] = b
	}
	return NewService(repo, fakeTx{}, nopLogger{}), repo
}

func TestGetByID_OwnerAndAdmin(t *testing.T) {
	svc, _ := newTestService(booking(1, 10, domain.StatusPending))

	resp, err := svc.GetByID(context.Background(), &domain.Identity{UserID: 10}, 1)
	require.NoError(t, err)
	assert.Equal(t, "300.00", resp.TotalPrice)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, "2024-06-01", resp.CheckInDate)
	require.NotNil(t, resp.PropertyDetail)
	assert.Equal(t, "100.00", resp.PropertyDetail.Price)
	require.NotNil(t, resp.UserDetail)
	assert.Equal(t, "ada@example.com", resp.UserDetail.Email)

	_, err = svc.GetByID(context.Background(), &domain.Identity{UserID: 99, IsAdmin: true}, 1)
	assert.NoError(t, err)
}

func TestGetByID_AccessDenied(t *testing.T) {
	svc, _ := newTestService(booking(1, 10, domain.StatusPending))

	_, err := svc.GetByID(context.Background(), &domain.Identity{UserID: 11}, 1)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), &domain.Identity{UserID: 1, IsAdmin: true}, 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_RepositoryError(t *testing.T) {
	svc, repo := newTestService()
	repo.err = errors.New("db down")

	_, err := svc.GetByID(context.Background(), &domain.Identity{UserID: 1}, 1)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestListForUser_ScopesToCaller(t *testing.T) {
	svc, repo := newTestService(
		booking(1, 10, domain.StatusPending),
		booking(2, 20, domain.StatusPending),
		booking(3, 10, domain.StatusCancelled),
	)

	status := "cancelled"
	resp, err := svc.ListForUser(context.Background(), &domain.Identity{UserID: 10}, &status)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(3), resp.Bookings[0].ID)
	require.NotNil(t, repo.lastFilter.UserID)
	assert.Equal(t, int64(10), *repo.lastFilter.UserID)
}

func TestListForUser_InvalidStatus(t *testing.T) {
	svc, _ := newTestService()

	status := "confirmed"
	_, err := svc.ListForUser(context.Background(), &domain.Identity{UserID: 10}, &status)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListAll_EmptyIsNotNil(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.ListAll(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)
	assert.Nil(t, repo.lastFilter.UserID)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	cases := []struct {
		name    string
		from    domain.BookingStatus
		to      string
		wantErr error
	}{
		{"pending to completed", domain.StatusPending, "completed", nil},
		{"pending to cancelled", domain.StatusPending, "cancelled", nil},
		{"pending to pending", domain.StatusPending, "pending", ErrInvalidTransition},
		{"completed is terminal", domain.StatusCompleted, "cancelled", ErrInvalidTransition},
		{"cancelled is terminal", domain.StatusCancelled, "completed", ErrInvalidTransition},
		{"unknown status", domain.StatusPending, "paid", ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo := newTestService(booking(1, 10, tc.from))

			resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: tc.to})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, tc.from, repo.items[1].Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, resp.Status)
			assert.Equal(t, domain.BookingStatus(tc.to), repo.items[1].Status)
		})
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "completed"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
