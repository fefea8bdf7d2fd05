package verify_payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RealEstateService/internal/service/payments"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const providerPayload = `{"status":true,"message":"Verification successful","data":{"status":"success","amount":1000}}`

type fakeService struct{}

func (fakeService) Verify(_ context.Context, reference string) (json.RawMessage, error) {
	switch reference {
	case "ok":
		return json.RawMessage(providerPayload), nil
	case "missing":
		return nil, &payments.ProviderError{StatusCode: http.StatusNotFound, Message: "Transaction reference not found"}
	default:
		return nil, payments.ErrInternal
	}
}

func serve(path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/payments/verify/{reference}", NewHandler(fakeService{}, nopLogger{}).Handle)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandle(t *testing.T) {
	w := serve("/payments/verify/ok")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, providerPayload, w.Body.String())

	w = serve("/payments/verify/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Transaction reference not found"}`, w.Body.String())

	assert.Equal(t, http.StatusInternalServerError, serve("/payments/verify/boom").Code)
}
