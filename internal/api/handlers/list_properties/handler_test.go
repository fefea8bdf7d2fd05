package list_properties

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
	"github.com/m04kA/SMC-RealEstateService/internal/service/properties/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	filter domain.PropertyFilter
	err    error
}

func (f *fakeService) List(_ context.Context, filter domain.PropertyFilter) (*models.PropertyListResponse, error) {
	f.filter = filter
	if f.err != nil {
		return nil, f.err
	}
	return &models.PropertyListResponse{Properties: []models.PropertyResponse{}}, nil
}

func TestHandle_ParsesFilters(t *testing.T) {
	svc := &fakeService{}
	w := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/properties?featured=true&location=Lagos", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.filter.Featured)
	assert.True(t, *svc.filter.Featured)
	assert.Nil(t, svc.filter.Available)
	require.NotNil(t, svc.filter.Location)
	assert.Equal(t, "Lagos", *svc.filter.Location)
	assert.JSONEq(t, `{"properties":[]}`, w.Body.String())
}

func TestHandle_NoFilters(t *testing.T) {
	svc := &fakeService{}
	w := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.PropertyFilter{}, svc.filter)
}

func TestHandle_InvalidFilter(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(&fakeService{}, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/properties?available=maybe", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandle_ServiceError(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(&fakeService{err: errors.New("db down")}, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
