package models

import "time"

// PriceTableModel is a single-row table edited from the admin panel.
// Checkout reads it, never writes it.
type PriceTableModel struct {
	ID              uint `gorm:"primaryKey"`
	BaseHome        float64
	BaseForeign     float64
	Theme           float64
	Font            float64
	Music           float64
	Pattern         float64
	Character       float64
	HDDownload      float64
	ExtraSlide      float64
	RemoveWatermark float64
	CustomLink      float64
	MultiImage      float64
	UpdatedAt       time.Time
}
