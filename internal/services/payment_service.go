package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
	"ucstore-api/internal/config"
	"ucstore-api/internal/database"
	"ucstore-api/internal/models"
	"ucstore-api/pkg/logging"

	"github.com/google/uuid"
)

// ErrPaymentNotConfigured is returned when the YooKassa credentials are
// missing from the environment.
var ErrPaymentNotConfigured = errors.New("Payment system not configured")

// DefaultPaymentDescription is used when the client supplies no description.
const DefaultPaymentDescription = "Пополнение UC"

const paymentCurrency = "RUB"

// ProviderError carries a YooKassa error response through to the client
// unchanged: the provider's status code and raw body.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("payment provider returned %d: %s", e.StatusCode, e.Body)
}

// PaymentService creates YooKassa payments for existing orders
type PaymentService struct {
	apiURL     string
	shopID     string
	secretKey  string
	returnURL  string
	httpClient *http.Client
}

// NewPaymentService creates a new payment service instance.
// Fails with ErrPaymentNotConfigured if the shop credentials are absent,
// before any provider work is attempted.
func NewPaymentService() (*PaymentService, error) {
	cfg := config.AppConfig
	if cfg.YooKassaShopID == "" || cfg.YooKassaSecretKey == "" {
		return nil, ErrPaymentNotConfigured
	}

	return &PaymentService{
		apiURL:    cfg.YooKassaAPIURL,
		shopID:    cfg.YooKassaShopID,
		secretKey: cfg.YooKassaSecretKey,
		returnURL: cfg.PaymentReturnURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// PaymentResult is the subset of the provider response returned to the client
type PaymentResult struct {
	PaymentID  string `json:"payment_id"`
	PaymentURL string `json:"payment_url"`
	Status     string `json:"status"`
}

// yooKassaPaymentRequest is the charge-creation body for POST /v3/payments
type yooKassaPaymentRequest struct {
	Amount       yooKassaAmount       `json:"amount"`
	Confirmation yooKassaConfirmation `json:"confirmation"`
	Capture      bool                 `json:"capture"`
	Description  string               `json:"description"`
	Metadata     map[string]string    `json:"metadata"`
}

type yooKassaAmount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type yooKassaConfirmation struct {
	Type            string `json:"type"`
	ReturnURL       string `json:"return_url,omitempty"`
	ConfirmationURL string `json:"confirmation_url,omitempty"`
}

// yooKassaPaymentResponse is the provider's charge-creation response
type yooKassaPaymentResponse struct {
	ID           string               `json:"id"`
	Status       string               `json:"status"`
	Confirmation yooKassaConfirmation `json:"confirmation"`
}

// CreatePayment creates a YooKassa payment for an existing order and returns
// the hosted confirmation URL. Each call sends a fresh Idempotence-Key, so a
// caller retry is a new, independently idempotent attempt against the
// provider. On provider success the order row is updated best-effort; the
// provider response is the source of truth and a failed local update is only
// logged.
func (s *PaymentService) CreatePayment(orderID uint, amount float64, description string) (*PaymentResult, error) {
	if description == "" {
		description = DefaultPaymentDescription
	}

	reqBody := yooKassaPaymentRequest{
		Amount: yooKassaAmount{
			Value:    fmt.Sprintf("%.2f", amount),
			Currency: paymentCurrency,
		},
		Confirmation: yooKassaConfirmation{
			Type:      "redirect",
			ReturnURL: s.returnURL,
		},
		Capture:     true,
		Description: description,
		Metadata: map[string]string{
			"order_id": fmt.Sprintf("%d", orderID),
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payment request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.apiURL+"/v3/payments", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to build payment request: %w", err)
	}

	// One unique key per initiation attempt, never derived from the order id
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotence-Key", uuid.New().String())
	req.SetBasicAuth(s.shopID, s.secretKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call payment provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var providerResp yooKassaPaymentResponse
	if err := json.Unmarshal(body, &providerResp); err != nil {
		return nil, fmt.Errorf("failed to parse provider response: %w", err)
	}

	result := &PaymentResult{
		PaymentID:  providerResp.ID,
		PaymentURL: providerResp.Confirmation.ConfirmationURL,
		Status:     providerResp.Status,
	}

	// Attach the payment URL to the order. Distinct from a provider failure:
	// the charge already exists, so this is logged rather than surfaced.
	if database.DB != nil && result.PaymentURL != "" {
		if err := database.UpdateOrderPayment(orderID, result.PaymentURL, models.PaymentMethodYooKassa); err != nil {
			logging.Warnf("Payment %s created but order %d not updated: %v", result.PaymentID, orderID, err)
		}
	}

	return result, nil
}
