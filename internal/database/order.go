package database

import (
	"ucstore-api/internal/models"
)

// CreateOrder inserts a new order row; id and created_at are populated
// by the store on return.
func CreateOrder(order *models.Order) error {
	return DB.Create(order).Error
}

// ListOrders returns the most recent orders, optionally filtered by player
func ListOrders(playerID string, limit int) ([]models.Order, error) {
	var orders []models.Order
	query := DB.Order("created_at DESC").Limit(limit)
	if playerID != "" {
		query = query.Where("player_id = ?", playerID)
	}
	err := query.Find(&orders).Error
	return orders, err
}

// GetOrderByID returns a single order by its primary key
func GetOrderByID(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := DB.First(&order, orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderPayment attaches the payment URL and method to an order.
// Repeated initiation attempts overwrite the previous values.
func UpdateOrderPayment(orderID uint, paymentURL, paymentMethod string) error {
	return DB.Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"payment_url":    paymentURL,
			"payment_method": paymentMethod,
		}).Error
}
