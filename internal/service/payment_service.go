package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const paymentRequestTimeout = 15 * time.Second

// ProviderError is a non-success response from the payment provider. The
// status code and body are carried verbatim for the caller to surface.
type ProviderError struct {
	StatusCode int
	Body       []byte
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("payment provider returned status %d: %s", e.StatusCode, e.Body)
}

// PaymentService forwards payment initializations to the Paystack API
type PaymentService interface {
	InitializePayment(ctx context.Context, email string, amount int64) (json.RawMessage, error)
}

type paymentService struct {
	client    *http.Client
	baseURL   string
	secretKey string
}

// NewPaymentService creates a new PaymentService targeting baseURL with the
// given bearer credential.
func NewPaymentService(baseURL, secretKey string) PaymentService {
	return &paymentService{
		client:    &http.Client{Timeout: paymentRequestTimeout},
		baseURL:   baseURL,
		secretKey: secretKey,
	}
}

// InitializePayment performs a synchronous transaction-initialize call.
// Amount is converted to the provider's minor unit (1 NGN = 100 kobo). No
// retries: the call either succeeds, fails with *ProviderError on a non-2xx
// response, or fails with the transport error.
func (s *paymentService) InitializePayment(ctx context.Context, email string, amount int64) (json.RawMessage, error) {
	payload := map[string]any{
		"email":     email,
		"amount":    amount * 100, // Paystack expects the amount in kobo
		"reference": uuid.NewString(),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build payment request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment provider request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Body: respBody}
	}
	return json.RawMessage(respBody), nil
}
