package models

import "time"

// GatewayConfigModel is a single-row table edited from the admin panel.
type GatewayConfigModel struct {
	ID               uint `gorm:"primaryKey"`
	PaystackEnabled  bool
	StripeEnabled    bool
	PaystackTestMode bool
	StripeTestMode   bool
	PaystackSecret   string
	StripeSecret     string
	UpdatedAt        time.Time
}
