package domain

import "github.com/shopspring/decimal"

// MenuItem is read-only reference data from checkout's point of view.
type MenuItem struct {
	ID       string          `gorm:"primaryKey" json:"_id"`
	Name     string          `json:"name"`
	Recipe   string          `json:"recipe"`
	Image    string          `json:"image"`
	Category string          `gorm:"index" json:"category"`
	Price    decimal.Decimal `gorm:"type:numeric" json:"price"`
}

type Review struct {
	ID      string  `gorm:"primaryKey" json:"_id"`
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating"`
}
