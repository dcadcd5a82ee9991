package models

// PremiumAssetModel marks which library assets carry a premium charge.
// The asset library CRUD owns these rows; checkout only reads them.
type PremiumAssetModel struct {
	ID   string `gorm:"primaryKey"`
	Kind string `gorm:"primaryKey;size:16"`
}
