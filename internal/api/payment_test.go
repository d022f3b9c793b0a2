package api

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"ucstore-api/internal/config"
	"ucstore-api/internal/database"
	"ucstore-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startProviderStub points the payment config at a local YooKassa stand-in
// and returns a counter of calls it received.
func startProviderStub(t *testing.T, status int, body string) *int32 {
	t.Helper()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	config.AppConfig.YooKassaAPIURL = server.URL
	return &calls
}

func TestCreatePaymentEndpoint(t *testing.T) {
	r := setupRouter(t)

	order := models.Order{PlayerID: "12345678", UCAmount: 660, Price: 499.00, Status: models.OrderStatusPending}
	require.NoError(t, database.CreateOrder(&order))

	startProviderStub(t, http.StatusOK,
		`{"id":"pay_1","status":"pending","confirmation":{"type":"redirect","confirmation_url":"https://pay/x"}}`)

	w := postJSON(r, "/api/payment", map[string]interface{}{
		"order_id": order.ID,
		"amount":   499.00,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"payment_id":"pay_1","payment_url":"https://pay/x","status":"pending"}`, w.Body.String())

	stored, err := database.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://pay/x", stored.PaymentURL)
	assert.Equal(t, models.PaymentMethodYooKassa, stored.PaymentMethod)
}

func TestCreatePaymentEndpointMissingAmount(t *testing.T) {
	r := setupRouter(t)

	calls := startProviderStub(t, http.StatusOK, `{}`)

	w := postJSON(r, "/api/payment", map[string]interface{}{
		"order_id": 1,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "order_id and amount required")

	// No provider call is made when a required field is missing
	assert.Zero(t, atomic.LoadInt32(calls))
}

func TestCreatePaymentEndpointMissingOrderID(t *testing.T) {
	r := setupRouter(t)

	calls := startProviderStub(t, http.StatusOK, `{}`)

	w := postJSON(r, "/api/payment", map[string]interface{}{
		"amount": 499.00,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "order_id and amount required")
	assert.Zero(t, atomic.LoadInt32(calls))
}

func TestCreatePaymentEndpointProviderErrorPassedThrough(t *testing.T) {
	r := setupRouter(t)

	startProviderStub(t, http.StatusForbidden, `{"code":"forbidden"}`)

	w := postJSON(r, "/api/payment", map[string]interface{}{
		"order_id": 1,
		"amount":   499.00,
	})
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Payment error:")
	assert.Contains(t, w.Body.String(), "forbidden")
}

func TestCreatePaymentEndpointNotConfigured(t *testing.T) {
	r := setupRouter(t)

	config.AppConfig.YooKassaShopID = ""

	w := postJSON(r, "/api/payment", map[string]interface{}{
		"order_id": 1,
		"amount":   499.00,
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Payment system not configured")
}
