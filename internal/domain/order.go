package domain

import "time"

type PaymentStatus string

const (
	StatusPending PaymentStatus = "pending"
	StatusPaid    PaymentStatus = "paid"
	StatusFailed  PaymentStatus = "failed"
)

type Gateway string

const (
	GatewayPaystack Gateway = "paystack"
	GatewayStripe   Gateway = "stripe"
)

type AddonFlags struct {
	RemoveWatermark bool
	HDDownload      bool
	CustomLink      bool
	HasMusic        bool
}

type Order struct {
	ID               string
	Slug             string
	Email            string
	Currency         string
	TotalPaid        float64
	Gateway          Gateway
	PaymentReference string
	PagesJSON        string
	Addons           AddonFlags
	PaymentStatus    PaymentStatus
	PaidAt           *time.Time
	CreatedAt        time.Time
	ExpiresAt        time.Time
}

// Settled reports whether the order reached a terminal status.
// paid and failed are terminal: no transition ever leaves them.
func (o *Order) Settled() bool {
	return o.PaymentStatus == StatusPaid || o.PaymentStatus == StatusFailed
}
