package orderdto

import "github.com/jothamO/makemoments-checkout-service/internal/domain"

type CreateOrderOutput struct {
	OrderID          string
	Slug             string
	PaymentReference string
	Gateway          domain.Gateway
	Total            float64
	Currency         string
	Items            []domain.QuoteItem
}

type OrderStatusOutput struct {
	OrderID       string
	Slug          string
	PaymentStatus domain.PaymentStatus
}
