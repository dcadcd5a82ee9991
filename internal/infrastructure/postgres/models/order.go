package models

import (
	"time"

	"github.com/jothamO/makemoments-checkout-service/internal/domain"
)

type OrderModel struct {
	ID               string               `gorm:"primaryKey;type:uuid"`
	Slug             string               `gorm:"uniqueIndex:idx_slug"`
	Email            string
	Currency         string
	TotalPaid        float64
	Gateway          string
	PaymentReference string               `gorm:"uniqueIndex:idx_payment_reference"`
	PagesJSON        string               `gorm:"type:jsonb"`
	RemoveWatermark  bool
	HDDownload       bool
	CustomLink       bool
	HasMusic         bool
	PaymentStatus    domain.PaymentStatus `gorm:"index:idx_payment_status"`
	PaidAt           *time.Time
	ExpiresAt        time.Time
	CreatedAt        time.Time            `gorm:"index:idx_created_at"`
	UpdatedAt        time.Time
}
