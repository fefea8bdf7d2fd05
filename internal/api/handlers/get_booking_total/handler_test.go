package get_booking_total

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	quoteBooking "github.com/m04kA/SMC-RealEstateService/internal/usecase/quote_booking"
	"github.com/m04kA/SMC-RealEstateService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct{ err error }

func (f fakeUseCase) Execute(_ context.Context, req *quoteBooking.Request) (*quoteBooking.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &quoteBooking.Response{
		PropertyID:   req.PropertyID,
		CheckIn:      types.NewDate(2024, time.February, 27),
		CheckOut:     types.NewDate(2024, time.March, 2),
		Nights:       4,
		NightlyPrice: decimal.RequireFromString("99.99"),
		TotalPrice:   decimal.RequireFromString("399.96"),
	}, nil
}

func TestHandle_OK(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(fakeUseCase{}, nopLogger{}).Handle(w,
		httptest.NewRequest(http.MethodGet, "/api/v1/bookings/total?propertyId=3&checkIn=2024-02-27&checkOut=2024-03-02", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"property":3,"check_in_date":"2024-02-27","check_out_date":"2024-03-02",
		"nights":4,"price_per_night":"99.99","total_price":"399.96"}`, w.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	full := "/api/v1/bookings/total?propertyId=3&checkIn=2024-02-27&checkOut=2024-03-02"

	cases := []struct {
		name   string
		url    string
		err    error
		status int
	}{
		{"missing params", "/api/v1/bookings/total?propertyId=3", nil, http.StatusBadRequest},
		{"bad id", "/api/v1/bookings/total?propertyId=x&checkIn=a&checkOut=b", nil, http.StatusBadRequest},
		{"not found", full, quoteBooking.ErrPropertyNotFound, http.StatusNotFound},
		{"bad range", full, quoteBooking.ErrInvalidDateRange, http.StatusBadRequest},
		{"bad date", full, quoteBooking.ErrInvalidInput, http.StatusBadRequest},
		{"internal", full, quoteBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			NewHandler(fakeUseCase{err: tc.err}, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, tc.url, nil))
			assert.Equal(t, tc.status, w.Code)
		})
	}
}
