package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"callpoint/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubPaymentService struct {
	initializeFn func(ctx context.Context, email string, amount int64) (json.RawMessage, error)
}

func (s *stubPaymentService) InitializePayment(ctx context.Context, email string, amount int64) (json.RawMessage, error) {
	return s.initializeFn(ctx, email, amount)
}

func setupPaymentRouter(svc service.PaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewPaymentHandler(svc).RegisterPaymentRoutes(router)
	return router
}

func TestPaymentHandler_Pay(t *testing.T) {
	svc := &stubPaymentService{
		initializeFn: func(_ context.Context, email string, amount int64) (json.RawMessage, error) {
			assert.Equal(t, "a@b.com", email)
			assert.Equal(t, int64(100), amount)
			return json.RawMessage(`{"status":true}`), nil
		},
	}
	router := setupPaymentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/paystack/pay",
		strings.NewReader(`{"email":"a@b.com","amount":100}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":true}`, w.Body.String())
}

func TestPaymentHandler_Pay_ProviderErrorPassthrough(t *testing.T) {
	svc := &stubPaymentService{
		initializeFn: func(context.Context, string, int64) (json.RawMessage, error) {
			return nil, &service.ProviderError{
				StatusCode: http.StatusUnauthorized,
				Body:       []byte(`{"status":false,"message":"Invalid key"}`),
			}
		},
	}
	router := setupPaymentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/paystack/pay",
		strings.NewReader(`{"email":"a@b.com","amount":100}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"status":false,"message":"Invalid key"}`, w.Body.String())
}

func TestPaymentHandler_Pay_TransportFailure(t *testing.T) {
	svc := &stubPaymentService{
		initializeFn: func(context.Context, string, int64) (json.RawMessage, error) {
			return nil, errors.New("connection refused")
		},
	}
	router := setupPaymentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/paystack/pay",
		strings.NewReader(`{"email":"a@b.com","amount":100}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestPaymentHandler_Pay_InvalidBody(t *testing.T) {
	router := setupPaymentRouter(&stubPaymentService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/paystack/pay",
		strings.NewReader(`{"email":"not-an-email","amount":-5}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
