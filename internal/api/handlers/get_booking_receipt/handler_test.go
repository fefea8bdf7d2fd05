package get_booking_receipt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RealEstateService/internal/api/middleware"
	"github.com/m04kA/SMC-RealEstateService/internal/domain"
	"github.com/m04kA/SMC-RealEstateService/internal/service/receipts"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct{}

func (fakeService) Generate(_ context.Context, _ *domain.Identity, id int64) (*receipts.Receipt, error) {
	switch id {
	case 1:
		return &receipts.Receipt{FileName: "booking-1.pdf", Content: []byte("%PDF-1.3")}, nil
	case 2:
		return nil, receipts.ErrAccessDenied
	default:
		return nil, receipts.ErrBookingNotFound
	}
}

func serve(path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/bookings/{bookingId}/receipt", NewHandler(fakeService{}, nopLogger{}).Handle)

	r := httptest.NewRequest(http.MethodGet, path, nil)
	r = r.WithContext(middleware.WithIdentity(r.Context(), &domain.Identity{UserID: 1}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandle_PDF(t *testing.T) {
	w := serve("/bookings/1/receipt")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="booking-1.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3", w.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, serve("/bookings/2/receipt").Code)
	assert.Equal(t, http.StatusNotFound, serve("/bookings/3/receipt").Code)
	assert.Equal(t, http.StatusBadRequest, serve("/bookings/x/receipt").Code)
}
