package api

import (
	"errors"
	"net/http"
	"strconv"
	"ucstore-api/internal/response"
	"ucstore-api/internal/services"

	"github.com/gin-gonic/gin"
)

const defaultListLimit = 50

// CreateOrderRequest represents a create order request
type CreateOrderRequest struct {
	PlayerID string  `json:"player_id"`
	UCAmount int     `json:"uc_amount"`
	BonusUC  int     `json:"bonus_uc"`
	Price    float64 `json:"price"`
}

// ListOrdersResponse represents the order listing response
type ListOrdersResponse struct {
	Orders interface{} `json:"orders"`
	Count  int         `json:"count"`
}

// CreateOrder creates a new UC top-up order
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorJSON(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	orderService := services.NewOrderService()
	order, err := orderService.CreateOrder(services.CreateOrderInput{
		PlayerID: req.PlayerID,
		UCAmount: req.UCAmount,
		BonusUC:  req.BonusUC,
		Price:    req.Price,
	})
	if err != nil {
		if isValidationError(err) {
			response.ErrorJSON(c, http.StatusBadRequest, err.Error())
			return
		}
		response.ErrorJSON(c, http.StatusInternalServerError, "Failed to create order")
		return
	}

	c.JSON(http.StatusCreated, order)
}

// ListOrders returns recent orders, optionally filtered by player_id
func ListOrders(c *gin.Context) {
	playerID := c.Query("player_id")

	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	orderService := services.NewOrderService()
	orders, err := orderService.ListOrders(playerID, limit)
	if err != nil {
		response.ErrorJSON(c, http.StatusInternalServerError, "Failed to list orders")
		return
	}

	c.JSON(http.StatusOK, ListOrdersResponse{
		Orders: orders,
		Count:  len(orders),
	})
}

func isValidationError(err error) bool {
	return errors.Is(err, services.ErrInvalidPlayerID) ||
		errors.Is(err, services.ErrInvalidPlayerIDLength) ||
		errors.Is(err, services.ErrInvalidAmount)
}
