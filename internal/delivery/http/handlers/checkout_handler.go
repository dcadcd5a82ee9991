package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/jothamO/makemoments-checkout-service/internal/delivery/http/dto"
	"github.com/jothamO/makemoments-checkout-service/internal/domain"
	"github.com/jothamO/makemoments-checkout-service/internal/gateway"
	"github.com/jothamO/makemoments-checkout-service/internal/usecase"
	orderdto "github.com/jothamO/makemoments-checkout-service/internal/usecase/dto/order"
)

type CheckoutHandler struct {
	Orders        usecase.OrderUsecase
	Pricing       usecase.PricingUsecase
	Prices        domain.PriceSource
	GatewayConfig *usecase.DefaultGatewayConfigUsecase
}

func NewCheckoutHandler(
	orders usecase.OrderUsecase,
	pricing usecase.PricingUsecase,
	prices domain.PriceSource,
	gatewayConfig *usecase.DefaultGatewayConfigUsecase) *CheckoutHandler {

	return &CheckoutHandler{
		Orders:        orders,
		Pricing:       pricing,
		Prices:        prices,
		GatewayConfig: gatewayConfig,
	}
}

// Checkout initializes a pending order and returns the payment
// reference the client takes into the gateway redirect.
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	cfg, err := h.GatewayConfig.Snapshot()
	if err != nil {
		slog.Error("gateway config snapshot failed", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	output, err := h.Orders.CreateOrder(&orderdto.CreateOrderInput{
		SlugCandidate:  req.Slug,
		Email:          req.Email,
		Currency:       req.Currency,
		Gateway:        resolveGateway(req.Gateway, cfg),
		Draft:          toDraft(&req),
		PagesJSON:      string(req.Pages),
		EstimatedTotal: req.EstimatedTotal,
	})
	if err != nil {
		if isValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		slog.Error("order initialization failed", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CheckoutResponse{
		OrderID:          output.OrderID,
		Slug:             output.Slug,
		PaymentReference: output.PaymentReference,
		Gateway:          string(output.Gateway),
		Total:            output.Total,
		Currency:         output.Currency,
	})
}

// Quote prices a draft for display. Advisory only; checkout reprices.
func (h *CheckoutHandler) Quote(c *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	prices, err := h.Prices.PriceTable()
	if err != nil {
		slog.Error("price table load failed", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	draft := toDraft(&req)
	draft.CustomSlug = req.Slug != ""
	quote := h.Pricing.Quote(prices, draft, req.Currency)

	resp := dto.QuoteResponse{Total: quote.Total, Currency: quote.Currency}
	for _, item := range quote.Items {
		resp.Items = append(resp.Items, dto.QuoteItemResponse{
			Label:   item.Label,
			Price:   item.Price,
			Display: item.Display,
		})
	}
	return c.JSON(resp)
}

// OrderStatus feeds the client reconciliation poller.
func (h *CheckoutHandler) OrderStatus(c *fiber.Ctx) error {
	status, err := h.Orders.GetOrderStatus(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
		}
		slog.Error("order status lookup failed", "order_id", c.Params("id"), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.JSON(dto.OrderStatusResponse{
		OrderID:       status.OrderID,
		Slug:          status.Slug,
		PaymentStatus: string(status.PaymentStatus),
	})
}

// FailOrder is the back-office pending -> failed action.
func (h *CheckoutHandler) FailOrder(c *fiber.Ctx) error {
	err := h.Orders.FailOrder(c.Params("id"))
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	case errors.Is(err, domain.ErrAlreadySettled):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "order already settled"})
	case err != nil:
		slog.Error("failing order failed", "order_id", c.Params("id"), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(fiber.Map{"status": "failed"})
}

// resolveGateway honors the client's pick only when that gateway is
// enabled; anything else falls back to the router's decision.
func resolveGateway(requested string, cfg domain.GatewayConfig) domain.Gateway {
	switch domain.Gateway(requested) {
	case domain.GatewayPaystack:
		if cfg.PaystackEnabled {
			return domain.GatewayPaystack
		}
	case domain.GatewayStripe:
		if cfg.StripeEnabled {
			return domain.GatewayStripe
		}
	}
	return gateway.ActiveGateway(cfg)
}

func toDraft(req *dto.CheckoutRequest) domain.Draft {
	draft := domain.Draft{
		MusicID:         req.MusicID,
		RemoveWatermark: req.RemoveWatermark,
		HDDownload:      req.HDDownload,
	}
	for _, slide := range req.Slides {
		draft.Slides = append(draft.Slides, domain.Slide{
			FontID:      slide.FontID,
			PatternID:   slide.PatternID,
			CharacterID: slide.CharacterID,
			PhotoCount:  slide.PhotoCount,
		})
	}
	return draft
}

func isValidationError(err error) bool {
	return errors.Is(err, domain.ErrInvalidEmail) ||
		errors.Is(err, domain.ErrInvalidSlug) ||
		errors.Is(err, domain.ErrSlugTaken)
}
