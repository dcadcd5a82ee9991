package models

import "time"

// ExchangeRateModel keeps one row per currency pair, no history.
type ExchangeRateModel struct {
	FromCurrency string `gorm:"primaryKey;size:8"`
	ToCurrency   string `gorm:"primaryKey;size:8"`
	Rate         float64
	UpdatedAt    time.Time
}
