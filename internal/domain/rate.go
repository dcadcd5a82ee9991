package domain

import "time"

// ExchangeRate is one currency pair, most recent value wins.
type ExchangeRate struct {
	FromCurrency string
	ToCurrency   string
	Rate         float64
	UpdatedAt    time.Time
}

// RateSource yields the most recent rate for a pair, 1.0 when none is known.
type RateSource interface {
	Rate(from, to string) float64
}

type RateRepository interface {
	GetRate(from, to string) (*ExchangeRate, error)
	UpsertRate(rate *ExchangeRate) error
	GetAllRates() ([]*ExchangeRate, error)
}
