package repository

import (
	"log/slog"

	"github.com/jothamO/makemoments-checkout-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

const (
	assetKindMusic     = "music"
	assetKindFont      = "font"
	assetKindPattern   = "pattern"
	assetKindCharacter = "character"
)

// DefaultAssetCatalog answers premium lookups against the asset
// library's premium marks. Unknown IDs are never premium.
type DefaultAssetCatalog struct {
	DB *gorm.DB
}

func NewDefaultAssetCatalog(db *gorm.DB) *DefaultAssetCatalog {
	return &DefaultAssetCatalog{DB: db}
}

func (r *DefaultAssetCatalog) IsPremiumMusic(id string) bool {
	return r.isPremium(id, assetKindMusic)
}

func (r *DefaultAssetCatalog) IsPremiumFont(id string) bool {
	return r.isPremium(id, assetKindFont)
}

func (r *DefaultAssetCatalog) IsPremiumPattern(id string) bool {
	return r.isPremium(id, assetKindPattern)
}

func (r *DefaultAssetCatalog) IsPremiumCharacter(id string) bool {
	return r.isPremium(id, assetKindCharacter)
}

func (r *DefaultAssetCatalog) isPremium(id, kind string) bool {
	var count int64
	if err := r.DB.Model(&models.PremiumAssetModel{}).
		Where("id = ? AND kind = ?", id, kind).
		Count(&count).Error; err != nil {
		slog.Error("premium asset lookup failed", "kind", kind, "id", id, "error", err.Error())
		return false
	}
	return count > 0
}
