package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeProperties struct{}

func (fakeProperties) Count(_ context.Context, filter domain.PropertyFilter) (int64, error) {
	if filter.Featured != nil && *filter.Featured {
		return 2, nil
	}
	return 12, nil
}

type counter struct {
	n   int64
	err error
}

func (c counter) Count(context.Context) (int64, error) { return c.n, c.err }

type fakeBookings struct {
	counter
	lastFilter domain.BookingFilter
}

func (f *fakeBookings) List(_ context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return []*domain.Booking{{ID: 9, Status: domain.StatusPending}}, nil
}

type fakeTx struct {
	readOnly bool
}

func (t *fakeTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	t.readOnly = true
	return fn(ctx)
}

func TestGet(t *testing.T) {
	bookings := &fakeBookings{counter: counter{n: 30}}
	tx := &fakeTx{}
	svc := NewService(fakeProperties{}, counter{n: 5}, bookings, counter{n: 7}, tx, nopLogger{})

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, tx.readOnly)
	assert.Equal(t, int64(12), resp.TotalProperties)
	assert.Equal(t, int64(2), resp.FeaturedProperties)
	assert.Equal(t, int64(5), resp.TotalUsers)
	assert.Equal(t, int64(30), resp.TotalBookings)
	assert.Equal(t, int64(7), resp.TotalWishlist)
	require.Len(t, resp.RecentBookings, 1)
	assert.Equal(t, uint64(domain.RecentBookingsLimit), bookings.lastFilter.Limit)
}

func TestGet_CountFailure(t *testing.T) {
	bookings := &fakeBookings{}
	svc := NewService(fakeProperties{}, counter{err: errors.New("timeout")}, bookings, counter{}, &fakeTx{}, nopLogger{})

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
