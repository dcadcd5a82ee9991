package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jothamO/makemoments-checkout-service/internal/domain"
	"github.com/jothamO/makemoments-checkout-service/internal/infrastructure/metrics"
)

type SettlementUsecase interface {
	SettleByReference(reference string) (*domain.Order, error)
}

// DefaultSettlementUsecase performs the pending -> paid transition.
// It runs only after webhook verification; the conditional update in
// the repository is the sole idempotency guard, so every side effect
// hangs off the update winning.
type DefaultSettlementUsecase struct {
	OrderRepo domain.OrderRepository
	Publisher domain.EventPublisher
	Metrics   *metrics.CheckoutMetrics
}

func NewDefaultSettlementUsecase(
	orderRepo domain.OrderRepository,
	publisher domain.EventPublisher,
	checkoutMetrics *metrics.CheckoutMetrics) *DefaultSettlementUsecase {

	return &DefaultSettlementUsecase{
		OrderRepo: orderRepo,
		Publisher: publisher,
		Metrics:   checkoutMetrics,
	}
}

// SettleByReference settles at most once. Concurrent deliveries for the
// same reference race on a single conditional UPDATE; the losers get
// domain.ErrAlreadySettled, which webhook handlers acknowledge with 200
// so the gateway stops retrying.
func (uc *DefaultSettlementUsecase) SettleByReference(reference string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByReference(reference)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	won, err := uc.OrderRepo.MarkPaid(reference)
	if err != nil {
		return nil, fmt.Errorf("settling order %s: %w", order.ID, err)
	}
	if !won {
		slog.Info("duplicate settlement ignored", "order_id", order.ID, "reference", reference)
		return order, domain.ErrAlreadySettled
	}

	uc.Metrics.SettlementDuration.WithLabelValues(string(order.Gateway)).Observe(time.Since(start).Seconds())
	uc.Metrics.OrdersSettledTotal.WithLabelValues(string(order.Gateway), order.Currency).Inc()
	uc.Metrics.OrdersSettledAmountTotal.WithLabelValues(string(order.Gateway), order.Currency).Add(order.TotalPaid)

	go func(event domain.OrderSettledEvent) {
		if err := uc.Publisher.PublishOrderSettled(event); err != nil {
			slog.Error("failed to publish OrderSettledEvent", "order_id", event.OrderID, "error", err.Error())
		}
	}(domain.OrderSettledEvent{
		OrderID:   order.ID,
		Slug:      order.Slug,
		Email:     order.Email,
		Gateway:   string(order.Gateway),
		Total:     order.TotalPaid,
		Currency:  order.Currency,
		Reference: order.PaymentReference,
	})

	slog.Info("order settled", "order_id", order.ID, "gateway", order.Gateway, "reference", reference)
	return order, nil
}
