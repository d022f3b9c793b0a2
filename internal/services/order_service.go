package services

import (
	"fmt"
	"ucstore-api/internal/database"
	"ucstore-api/internal/models"
)

const maxListLimit = 100

// OrderService provides order creation and listing
type OrderService struct{}

// NewOrderService creates a new order service instance
func NewOrderService() *OrderService {
	return &OrderService{}
}

// CreateOrder validates the input and persists a new pending order.
// Returns the materialized order with store-assigned id and created_at.
func (s *OrderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	if err := ValidateOrderCreation(&input); err != nil {
		return nil, err
	}

	order := &models.Order{
		PlayerID: input.PlayerID,
		UCAmount: input.UCAmount,
		BonusUC:  input.BonusUC,
		Price:    input.Price,
		Status:   models.OrderStatusPending,
	}

	if err := database.CreateOrder(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

// ListOrders returns orders newest-first, optionally filtered by player.
// limit is clamped to [1,100]; zero or negative requests never return
// unbounded results.
func (s *OrderService) ListOrders(playerID string, limit int) ([]models.Order, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	orders, err := database.ListOrders(playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}
