package repository

import (
	"errors"

	"github.com/jothamO/makemoments-checkout-service/internal/domain"
	"github.com/jothamO/makemoments-checkout-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultRateRepository struct {
	DB *gorm.DB
}

func NewDefaultRateRepository(db *gorm.DB) *DefaultRateRepository {
	return &DefaultRateRepository{DB: db}
}

func (r *DefaultRateRepository) GetRate(from, to string) (*domain.ExchangeRate, error) {
	var model models.ExchangeRateModel
	if err := r.DB.First(&model, "from_currency = ? AND to_currency = ?", from, to).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainRate(&model), nil
}

func (r *DefaultRateRepository) UpsertRate(rate *domain.ExchangeRate) error {
	model := models.ExchangeRateModel{
		FromCurrency: rate.FromCurrency,
		ToCurrency:   rate.ToCurrency,
		Rate:         rate.Rate,
		UpdatedAt:    rate.UpdatedAt,
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "from_currency"}, {Name: "to_currency"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "updated_at"}),
	}).Create(&model).Error
}

func (r *DefaultRateRepository) GetAllRates() ([]*domain.ExchangeRate, error) {
	var rateModels []models.ExchangeRateModel
	if err := r.DB.Find(&rateModels).Error; err != nil {
		return nil, err
	}

	rates := make([]*domain.ExchangeRate, len(rateModels))
	for i := range rateModels {
		rates[i] = toDomainRate(&rateModels[i])
	}
	return rates, nil
}

func toDomainRate(model *models.ExchangeRateModel) *domain.ExchangeRate {
	return &domain.ExchangeRate{
		FromCurrency: model.FromCurrency,
		ToCurrency:   model.ToCurrency,
		Rate:         model.Rate,
		UpdatedAt:    model.UpdatedAt,
	}
}
