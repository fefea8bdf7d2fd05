package quote_booking

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
	propertyRepo "github.com/m04kA/SMC-RealEstateService/internal/infra/storage/property"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeProperties map[int64]*domain.Property

func (f fakeProperties) GetByID(_ context.Context, id int64) (*domain.Property, error) {
	p, ok := f[id]
	if !ok {
		return nil, propertyRepo.ErrPropertyNotFound
	}
	return p, nil
}

func newUseCase() *UseCase {
	return NewUseCase(fakeProperties{
		1: {ID: 1, PricePerNight: decimal.RequireFromString("100.00")},
		2: {ID: 2, PricePerNight: decimal.RequireFromString("0.10")},
	}, nopLogger{})
}

func TestExecute(t *testing.T) {
	resp, err := newUseCase().Execute(context.Background(), &Request{PropertyID: 1, CheckIn: "2024-06-01", CheckOut: "2024-06-04"})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, "300.00", resp.TotalPrice.StringFixed(2))
	assert.Equal(t, "100.00", resp.NightlyPrice.StringFixed(2))
}

func TestExecute_ExactDecimal(t *testing.T) {
	// 0.10 * 3 в float64 дает 0.30000000000000004
	resp, err := newUseCase().Execute(context.Background(), &Request{PropertyID: 2, CheckIn: "2024-06-01", CheckOut: "2024-06-04"})
	require.NoError(t, err)
	assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("0.3")))
}

func TestExecute_Errors(t *testing.T) {
	cases := []struct {
		name string
		req  *Request
		want error
	}{
		{"reversed", &Request{PropertyID: 1, CheckIn: "2024-06-04", CheckOut: "2024-06-01"}, ErrInvalidDateRange},
		{"missing property", &Request{PropertyID: 9, CheckIn: "2024-06-01", CheckOut: "2024-06-04"}, ErrPropertyNotFound},
		{"malformed date", &Request{PropertyID: 1, CheckIn: "01.06.2024", CheckOut: "2024-06-04"}, ErrInvalidInput},
		{"missing dates", &Request{PropertyID: 1}, ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newUseCase().Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
