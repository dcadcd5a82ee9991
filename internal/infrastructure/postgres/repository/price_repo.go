package repository

import (
	"errors"

	"github.com/jothamO/makemoments-checkout-service/internal/domain"
	"github.com/jothamO/makemoments-checkout-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPriceRepository struct {
	DB *gorm.DB
}

func NewDefaultPriceRepository(db *gorm.DB) *DefaultPriceRepository {
	return &DefaultPriceRepository{DB: db}
}

// PriceTable returns the current price row. A missing row prices
// everything at zero rather than failing checkout.
func (r *DefaultPriceRepository) PriceTable() (domain.PriceTable, error) {
	var model models.PriceTableModel
	if err := r.DB.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PriceTable{}, nil
		}
		return domain.PriceTable{}, err
	}
	return domain.PriceTable{
		BaseHome:        model.BaseHome,
		BaseForeign:     model.BaseForeign,
		Theme:           model.Theme,
		Font:            model.Font,
		Music:           model.Music,
		Pattern:         model.Pattern,
		Character:       model.Character,
		HDDownload:      model.HDDownload,
		ExtraSlide:      model.ExtraSlide,
		RemoveWatermark: model.RemoveWatermark,
		CustomLink:      model.CustomLink,
		MultiImage:      model.MultiImage,
	}, nil
}
