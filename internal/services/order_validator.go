package services

import (
	"errors"
	"strings"
)

// Validation errors for order creation. The HTTP layer maps these to 400
// responses with the matching client message.
var (
	ErrInvalidPlayerID       = errors.New("Invalid player_id")
	ErrInvalidPlayerIDLength = errors.New("player_id must be 8-12 digits")
	ErrInvalidAmount         = errors.New("Invalid uc_amount or price")
)

// CreateOrderInput carries the client-supplied fields of a new order.
type CreateOrderInput struct {
	PlayerID string
	UCAmount int
	BonusUC  int
	Price    float64
}

// ValidateOrderCreation checks a create-order input. Rules run in order and
// the first failure wins. The input is normalized in place (player_id is
// trimmed). No side effects beyond that.
func ValidateOrderCreation(input *CreateOrderInput) error {
	input.PlayerID = strings.TrimSpace(input.PlayerID)

	if input.PlayerID == "" || !isDigits(input.PlayerID) {
		return ErrInvalidPlayerID
	}

	if len(input.PlayerID) < 8 || len(input.PlayerID) > 12 {
		return ErrInvalidPlayerIDLength
	}

	if input.UCAmount <= 0 || input.Price <= 0 || input.BonusUC < 0 {
		return ErrInvalidAmount
	}

	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
