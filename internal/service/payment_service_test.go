package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_InitializePayment(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/transaction/initialize", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":true,"data":{"authorization_url":"https://pay.example/x"}}`))
	}))
	defer srv.Close()

	svc := NewPaymentService(srv.URL, "sk_test_123")
	resp, err := svc.InitializePayment(context.Background(), "a@b.com", 100)

	require.NoError(t, err)
	assert.Equal(t, "Bearer sk_test_123", gotAuth)
	assert.Equal(t, "a@b.com", gotBody["email"])
	assert.Equal(t, float64(10000), gotBody["amount"], "amount must be converted to kobo")
	assert.NotEmpty(t, gotBody["reference"])
	assert.JSONEq(t, `{"status":true,"data":{"authorization_url":"https://pay.example/x"}}`, string(resp))
}

func TestPaymentService_InitializePayment_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":false,"message":"Invalid key"}`))
	}))
	defer srv.Close()

	svc := NewPaymentService(srv.URL, "sk_bad")
	_, err := svc.InitializePayment(context.Background(), "a@b.com", 100)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusUnauthorized, provErr.StatusCode)
	assert.JSONEq(t, `{"status":false,"message":"Invalid key"}`, string(provErr.Body))
}

func TestPaymentService_InitializePayment_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	svc := NewPaymentService(srv.URL, "sk_test_123")
	_, err := svc.InitializePayment(context.Background(), "a@b.com", 100)

	assert.Error(t, err)
	var provErr *ProviderError
	assert.False(t, errors.As(err, &provErr), "transport failures are not provider errors")
}
