package get_wishlist

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RealEstateService/internal/api/middleware"
	"github.com/m04kA/SMC-RealEstateService/internal/domain"
	"github.com/m04kA/SMC-RealEstateService/internal/service/wishlist/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct{ err error }

func (f fakeService) List(_ context.Context, identity *domain.Identity) (*models.ListResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ListResponse{Items: []models.EntryResponse{{ID: 1, UserID: identity.UserID, PropertyID: 8}}}, nil
}

func withIdentity(r *http.Request) *http.Request {
	return r.WithContext(middleware.WithIdentity(r.Context(), &domain.Identity{UserID: 4}))
}

func TestHandle(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(fakeService{}, nopLogger{}).Handle(w, withIdentity(httptest.NewRequest(http.MethodGet, "/api/v1/wishlist", nil)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"property":8`)

	w = httptest.NewRecorder()
	NewHandler(fakeService{err: errors.New("db")}, nopLogger{}).Handle(w, withIdentity(httptest.NewRequest(http.MethodGet, "/api/v1/wishlist", nil)))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
