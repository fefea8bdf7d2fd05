package paystack

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", "sk_test_secret", 2*time.Second, nopLogger{})
}

func TestInitializeTransaction(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body InitializeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, InitializeRequest{Email: "ada@example.com", Amount: 1234567, Reference: "ref-1"}, body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":true,"message":"Authorization URL created","data":{
			"authorization_url":"https://checkout.paystack.com/abc","access_code":"abc","reference":"ref-1"}}`))
	})

	auth, err := client.InitializeTransaction(context.Background(), InitializeRequest{
		Email:     "ada@example.com",
		Amount:    1234567,
		Reference: "ref-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.paystack.com/abc", auth.AuthorizationURL)
	assert.Equal(t, "abc", auth.AccessCode)
	assert.Equal(t, "ref-1", auth.Reference)
}

func TestInitializeTransaction_ProviderStatusIsKept(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":false,"message":"Invalid key"}`))
	})

	_, err := client.InitializeTransaction(context.Background(), InitializeRequest{Email: "a@b.c", Amount: 100})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProvider)

	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, http.StatusUnauthorized, perr.StatusCode)
	assert.Equal(t, "Invalid key", perr.Message)
}

func TestInitializeTransaction_StatusFalseOn2xx(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":false,"message":"Duplicate Transaction Reference"}`))
	})

	_, err := client.InitializeTransaction(context.Background(), InitializeRequest{Email: "a@b.c", Amount: 100})

	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, http.StatusBadGateway, perr.StatusCode)
}

func TestVerifyTransaction_ReturnsRawPayload(t *testing.T) {
	payload := `{"status":true,"message":"Verification successful","data":{"status":"success","amount":1234567,"reference":"ref/1"}}`

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/transaction/verify/ref%2F1", r.URL.EscapedPath())
		_, _ = w.Write([]byte(payload))
	})

	raw, err := client.VerifyTransaction(context.Background(), "ref/1")
	require.NoError(t, err)
	assert.Equal(t, payload, string(raw))
}

func TestVerifyTransaction_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	_, err := client.VerifyTransaction(context.Background(), "missing")

	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, http.StatusNotFound, perr.StatusCode)
	assert.Equal(t, "not found", perr.Message)
}

func TestInvalidJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	_, err := client.VerifyTransaction(context.Background(), "x")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestTransportFailure(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "k", time.Second, nopLogger{})

	_, err := client.VerifyTransaction(context.Background(), "x")
	assert.ErrorIs(t, err, ErrInternal)
}
