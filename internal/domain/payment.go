package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is written exactly once per successful checkout and never deleted
// here; it is the system of record for revenue and order statistics.
// CartItemIDs records exactly the cart entries the checkout claimed.
type Payment struct {
	ID            string          `gorm:"primaryKey" json:"_id"`
	Email         string          `gorm:"index" json:"email"`
	Price         decimal.Decimal `gorm:"type:numeric" json:"price"`
	TransactionID string          `json:"transactionId"`
	Status        string          `json:"status"`
	CartItemIDs   []string        `gorm:"serializer:json" json:"cartItems"`
	MenuItemIDs   []string        `gorm:"serializer:json" json:"menuItems"`
	CreatedAt     time.Time       `json:"date"`
}
