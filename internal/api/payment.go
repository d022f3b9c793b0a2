package api

import (
	"errors"
	"net/http"
	"ucstore-api/internal/response"
	"ucstore-api/internal/services"

	"github.com/gin-gonic/gin"
)

// CreatePaymentRequest represents a payment initiation request.
// order_id and amount are required and must be non-zero.
type CreatePaymentRequest struct {
	OrderID     uint    `json:"order_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description"`
}

// CreatePayment initiates a YooKassa payment for an existing order
func CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorJSON(c, http.StatusBadRequest, "order_id and amount required")
		return
	}

	paymentService, err := services.NewPaymentService()
	if err != nil {
		response.ErrorJSON(c, http.StatusInternalServerError, "Payment system not configured")
		return
	}

	result, err := paymentService.CreatePayment(req.OrderID, req.Amount, req.Description)
	if err != nil {
		var providerErr *services.ProviderError
		if errors.As(err, &providerErr) {
			// Pass the provider's verdict through unchanged
			response.ErrorJSON(c, providerErr.StatusCode, "Payment error: "+providerErr.Body)
			return
		}
		response.ErrorJSON(c, http.StatusInternalServerError, "Server error: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}
