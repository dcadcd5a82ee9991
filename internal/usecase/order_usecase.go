package usecase

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/jothamO/makemoments-checkout-service/internal/domain"
	"github.com/jothamO/makemoments-checkout-service/internal/infrastructure/metrics"
	orderdto "github.com/jothamO/makemoments-checkout-service/internal/usecase/dto/order"
)

type OrderUsecase interface {
	CreateOrder(input *orderdto.CreateOrderInput) (*orderdto.CreateOrderOutput, error)
	GetOrderStatus(orderID string) (*orderdto.OrderStatusOutput, error)
	FailOrder(orderID string) error
}

type DefaultOrderUsecase struct {
	OrderRepo domain.OrderRepository
	Pricing   PricingUsecase
	Prices    domain.PriceSource
	Publisher domain.EventPublisher
	Metrics   *metrics.CheckoutMetrics
	OrderTTL  time.Duration
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	pricing PricingUsecase,
	prices domain.PriceSource,
	publisher domain.EventPublisher,
	checkoutMetrics *metrics.CheckoutMetrics,
	orderTTL time.Duration) *DefaultOrderUsecase {

	return &DefaultOrderUsecase{
		OrderRepo: orderRepo,
		Pricing:   pricing,
		Prices:    prices,
		Publisher: publisher,
		Metrics:   checkoutMetrics,
		OrderTTL:  orderTTL,
	}
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// CreateOrder validates the untrusted draft, prices it server-side and
// persists a pending order. The client's estimated total is ignored;
// the reference is generated here, before any gateway interaction.
func (uc *DefaultOrderUsecase) CreateOrder(input *orderdto.CreateOrderInput) (*orderdto.CreateOrderOutput, error) {
	if !input.AdminBypass && !emailPattern.MatchString(input.Email) {
		uc.Metrics.CheckoutValidationErrorsTotal.WithLabelValues("email").Inc()
		return nil, domain.ErrInvalidEmail
	}

	slug, err := uc.resolveSlug(input.SlugCandidate)
	if err != nil {
		uc.Metrics.CheckoutValidationErrorsTotal.WithLabelValues("slug").Inc()
		return nil, err
	}

	draft := input.Draft
	draft.CustomSlug = input.SlugCandidate != ""

	prices, err := uc.Prices.PriceTable()
	if err != nil {
		return nil, fmt.Errorf("loading price table: %w", err)
	}
	quote := uc.Pricing.Quote(prices, draft, input.Currency)

	reference, err := newPaymentReference()
	if err != nil {
		return nil, fmt.Errorf("generating payment reference: %w", err)
	}

	now := time.Now()
	order := &domain.Order{
		ID:               uuid.New().String(),
		Slug:             slug,
		Email:            input.Email,
		Currency:         input.Currency,
		TotalPaid:        quote.Total,
		Gateway:          input.Gateway,
		PaymentReference: reference,
		PagesJSON:        input.PagesJSON,
		Addons: domain.AddonFlags{
			RemoveWatermark: draft.RemoveWatermark,
			HDDownload:      draft.HDDownload,
			CustomLink:      draft.CustomSlug,
			HasMusic:        draft.MusicID != "",
		},
		PaymentStatus: domain.StatusPending,
		CreatedAt:     now,
		ExpiresAt:     now.Add(uc.OrderTTL),
	}

	if err := uc.OrderRepo.CreateOrder(order); err != nil {
		return nil, fmt.Errorf("persisting order: %w", err)
	}

	uc.Metrics.OrdersCreatedTotal.WithLabelValues(string(order.Gateway), order.Currency).Inc()
	uc.Metrics.OrdersCreatedAmountTotal.WithLabelValues(string(order.Gateway), order.Currency).Add(order.TotalPaid)

	go func(event domain.OrderCreatedEvent) {
		if err := uc.Publisher.PublishOrderCreated(event); err != nil {
			slog.Error("failed to publish OrderCreatedEvent", "order_id", event.OrderID, "error", err.Error())
		}
	}(domain.OrderCreatedEvent{
		OrderID:   order.ID,
		Slug:      order.Slug,
		Gateway:   string(order.Gateway),
		Total:     order.TotalPaid,
		Currency:  order.Currency,
		Reference: order.PaymentReference,
	})

	return &orderdto.CreateOrderOutput{
		OrderID:          order.ID,
		Slug:             order.Slug,
		PaymentReference: order.PaymentReference,
		Gateway:          order.Gateway,
		Total:            quote.Total,
		Currency:         quote.Currency,
		Items:            quote.Items,
	}, nil
}

func (uc *DefaultOrderUsecase) GetOrderStatus(orderID string) (*orderdto.OrderStatusOutput, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	return &orderdto.OrderStatusOutput{
		OrderID:       order.ID,
		Slug:          order.Slug,
		PaymentStatus: order.PaymentStatus,
	}, nil
}

// FailOrder is the administrative pending -> failed transition.
// Terminal orders never move.
func (uc *DefaultOrderUsecase) FailOrder(orderID string) error {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return err
	}

	ok, err := uc.OrderRepo.MarkFailed(orderID)
	if err != nil {
		return fmt.Errorf("failing order %s: %w", orderID, err)
	}
	if !ok {
		return domain.ErrAlreadySettled
	}

	uc.Metrics.OrdersFailedTotal.WithLabelValues(string(order.Gateway)).Inc()
	slog.Info("order marked failed", "order_id", orderID)
	return nil
}

// resolveSlug normalizes a requested custom slug or generates one.
// A collision on a custom slug is a user-visible error, never silently
// rewritten.
func (uc *DefaultOrderUsecase) resolveSlug(candidate string) (string, error) {
	if candidate == "" {
		return uc.generateSlug()
	}

	slug := NormalizeSlug(candidate)
	if slug == "" {
		return "", domain.ErrInvalidSlug
	}

	taken, err := uc.OrderRepo.SlugExists(slug)
	if err != nil {
		return "", fmt.Errorf("checking slug: %w", err)
	}
	if taken {
		return "", domain.ErrSlugTaken
	}
	return slug, nil
}

func (uc *DefaultOrderUsecase) generateSlug() (string, error) {
	generate, err := nanoid.CustomASCII("abcdefghijklmnopqrstuvwxyz0123456789", 10)
	if err != nil {
		return "", err
	}

	for attempt := 0; attempt < 5; attempt++ {
		slug := generate()
		taken, err := uc.OrderRepo.SlugExists(slug)
		if err != nil {
			return "", fmt.Errorf("checking slug: %w", err)
		}
		if !taken {
			return slug, nil
		}
	}
	return "", fmt.Errorf("could not generate a free slug")
}

// NormalizeSlug lower-cases, keeps [a-z0-9-] and trims edge hyphens.
func NormalizeSlug(candidate string) string {
	lowered := strings.ToLower(strings.TrimSpace(candidate))

	var b strings.Builder
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ' || r == '_':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

func newPaymentReference() (string, error) {
	generate, err := nanoid.Standard(21)
	if err != nil {
		return "", err
	}
	return "mm_" + generate(), nil
}
