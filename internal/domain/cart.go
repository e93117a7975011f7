package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem belongs to exactly one identity; only that identity may read or
// delete it. Entries are removed one at a time by the owner or in bulk when
// a checkout retires them.
type CartItem struct {
	ID         string          `gorm:"primaryKey" json:"_id"`
	Email      string          `gorm:"index" json:"email"`
	MenuItemID string          `gorm:"index" json:"menuItemId"`
	Name       string          `json:"name"`
	Image      string          `json:"image"`
	Price      decimal.Decimal `gorm:"type:numeric" json:"price"`
	CreatedAt  time.Time       `json:"-"`
}
