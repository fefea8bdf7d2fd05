package get_dashboard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RealEstateService/internal/service/dashboard/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct{ err error }

func (f fakeService) Get(context.Context) (*models.DashboardResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.DashboardResponse{TotalProperties: 4, TotalUsers: 2}, nil
}

func TestHandle(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(fakeService{}, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_properties":4`)

	w = httptest.NewRecorder()
	NewHandler(fakeService{err: errors.New("db")}, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
