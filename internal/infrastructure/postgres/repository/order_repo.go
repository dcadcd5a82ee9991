package repository

import (
	"errors"
	"time"

	"github.com/jothamO/makemoments-checkout-service/internal/domain"
	"github.com/jothamO/makemoments-checkout-service/internal/infrastructure/postgres/mappers"
	"github.com/jothamO/makemoments-checkout-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.Create(orderModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	var order models.OrderModel
	if err := r.DB.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&order), nil
}

func (r *DefaultOrderRepository) GetOrderByReference(reference string) (*domain.Order, error) {
	var order models.OrderModel
	if err := r.DB.First(&order, "payment_reference = ?", reference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&order), nil
}

func (r *DefaultOrderRepository) GetOrderBySlug(slug string) (*domain.Order, error) {
	var order models.OrderModel
	if err := r.DB.First(&order, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&order), nil
}

func (r *DefaultOrderRepository) SlugExists(slug string) (bool, error) {
	var count int64
	if err := r.DB.Model(&models.OrderModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// MarkPaid is the settlement write. The status predicate makes the
// transition a single conditional update: of two concurrent deliveries
// for the same reference, at most one sees RowsAffected == 1.
func (r *DefaultOrderRepository) MarkPaid(reference string) (bool, error) {
	now := time.Now()
	result := r.DB.Model(&models.OrderModel{}).
		Where("payment_reference = ?", reference).
		Where("payment_status = ?", domain.StatusPending).
		Updates(map[string]interface{}{
			"payment_status": domain.StatusPaid,
			"paid_at":        now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *DefaultOrderRepository) MarkFailed(orderID string) (bool, error) {
	result := r.DB.Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Where("payment_status = ?", domain.StatusPending).
		Update("payment_status", domain.StatusFailed)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
