package models

import "time"

// WebhookDeliveryModel journals raw gateway callbacks for auditing.
type WebhookDeliveryModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	Gateway   string    `gorm:"index"`
	Reference string    `gorm:"index"`
	Outcome   string
	Payload   string    `gorm:"type:jsonb"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
