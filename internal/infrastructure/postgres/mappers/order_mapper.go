package mappers

import (
	"github.com/jothamO/makemoments-checkout-service/internal/domain"
	"github.com/jothamO/makemoments-checkout-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:               model.ID,
		Slug:             model.Slug,
		Email:            model.Email,
		Currency:         model.Currency,
		TotalPaid:        model.TotalPaid,
		Gateway:          domain.Gateway(model.Gateway),
		PaymentReference: model.PaymentReference,
		PagesJSON:        model.PagesJSON,
		Addons: domain.AddonFlags{
			RemoveWatermark: model.RemoveWatermark,
			HDDownload:      model.HDDownload,
			CustomLink:      model.CustomLink,
			HasMusic:        model.HasMusic,
		},
		PaymentStatus: model.PaymentStatus,
		PaidAt:        model.PaidAt,
		CreatedAt:     model.CreatedAt,
		ExpiresAt:     model.ExpiresAt,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:               order.ID,
		Slug:             order.Slug,
		Email:            order.Email,
		Currency:         order.Currency,
		TotalPaid:        order.TotalPaid,
		Gateway:          string(order.Gateway),
		PaymentReference: order.PaymentReference,
		PagesJSON:        order.PagesJSON,
		RemoveWatermark:  order.Addons.RemoveWatermark,
		HDDownload:       order.Addons.HDDownload,
		CustomLink:       order.Addons.CustomLink,
		HasMusic:         order.Addons.HasMusic,
		PaymentStatus:    order.PaymentStatus,
		PaidAt:           order.PaidAt,
		ExpiresAt:        order.ExpiresAt,
		CreatedAt:        order.CreatedAt,
	}
}
