package repository

import (
	"github.com/google/uuid"
	"github.com/jothamO/makemoments-checkout-service/internal/domain"
	"github.com/jothamO/makemoments-checkout-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultWebhookJournal struct {
	DB *gorm.DB
}

func NewDefaultWebhookJournal(db *gorm.DB) *DefaultWebhookJournal {
	return &DefaultWebhookJournal{DB: db}
}

func (r *DefaultWebhookJournal) LogDelivery(delivery *domain.WebhookDelivery) error {
	model := models.WebhookDeliveryModel{
		ID:        uuid.New().String(),
		Gateway:   string(delivery.Gateway),
		Reference: delivery.Reference,
		Outcome:   delivery.Outcome,
		Payload:   delivery.Payload,
	}
	return r.DB.Create(&model).Error
}
