package models

// Order status constants
const (
	OrderStatusPending = "pending" // awaiting payment
	OrderStatusPaid    = "paid"    // confirmed by the payment provider
	OrderStatusFailed  = "failed"  // rejected or expired
)

// PaymentMethodYooKassa is the payment_method value written after a
// successful YooKassa charge creation.
const PaymentMethodYooKassa = "yookassa"

// Order represents a UC top-up purchase order.
// payment_url/payment_method stay empty until a payment is initiated;
// each initiation attempt overwrites them.
type Order struct {
	BaseModel

	PlayerID      string  `json:"player_id" gorm:"not null;size:12;index"`
	UCAmount      int     `json:"uc_amount" gorm:"not null"`
	BonusUC       int     `json:"bonus_uc" gorm:"not null;default:0"`
	Price         float64 `json:"price" gorm:"not null;type:decimal(10,2)"`
	Status        string  `json:"status" gorm:"not null;size:20;default:'pending';index"`
	PaymentURL    string  `json:"payment_url,omitempty" gorm:"type:text"`
	PaymentMethod string  `json:"payment_method,omitempty" gorm:"size:50"`
}
