package postgres

import (
	"log"

	"github.com/jothamO/makemoments-checkout-service/internal/config"
	"github.com/jothamO/makemoments-checkout-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.CheckoutConfig) *gorm.DB {
	dsn := cfg.CheckoutDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.OrderModel{},
		&models.ExchangeRateModel{},
		&models.GatewayConfigModel{},
		&models.WebhookDeliveryModel{},
		&models.PriceTableModel{},
		&models.PremiumAssetModel{},
	)

	return db
}
