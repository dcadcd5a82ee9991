package repository

import (
	"errors"

	"github.com/jothamO/makemoments-checkout-service/internal/domain"
	"github.com/jothamO/makemoments-checkout-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultGatewayConfigRepository struct {
	DB *gorm.DB
}

func NewDefaultGatewayConfigRepository(db *gorm.DB) *DefaultGatewayConfigRepository {
	return &DefaultGatewayConfigRepository{DB: db}
}

// GetConfig returns the stored row, or zero-value config when the admin
// never saved one. Everything disabled with no secrets fails closed
// downstream.
func (r *DefaultGatewayConfigRepository) GetConfig() (*domain.StoredGatewayConfig, error) {
	var model models.GatewayConfigModel
	if err := r.DB.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.StoredGatewayConfig{}, nil
		}
		return nil, err
	}
	return &domain.StoredGatewayConfig{
		PaystackEnabled:  model.PaystackEnabled,
		StripeEnabled:    model.StripeEnabled,
		PaystackTestMode: model.PaystackTestMode,
		StripeTestMode:   model.StripeTestMode,
		PaystackSecret:   model.PaystackSecret,
		StripeSecret:     model.StripeSecret,
	}, nil
}

func (r *DefaultGatewayConfigRepository) SaveConfig(cfg *domain.StoredGatewayConfig) error {
	var model models.GatewayConfigModel
	if err := r.DB.First(&model).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	model.PaystackEnabled = cfg.PaystackEnabled
	model.StripeEnabled = cfg.StripeEnabled
	model.PaystackTestMode = cfg.PaystackTestMode
	model.StripeTestMode = cfg.StripeTestMode
	model.PaystackSecret = cfg.PaystackSecret
	model.StripeSecret = cfg.StripeSecret

	return r.DB.Save(&model).Error
}
