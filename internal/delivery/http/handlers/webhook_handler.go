package handlers

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jothamO/makemoments-checkout-service/internal/domain"
	"github.com/jothamO/makemoments-checkout-service/internal/gateway"
	"github.com/jothamO/makemoments-checkout-service/internal/infrastructure/metrics"
	"github.com/jothamO/makemoments-checkout-service/internal/usecase"
)

const (
	outcomeSettled     = "settled"
	outcomeDuplicate   = "duplicate"
	outcomeIgnored     = "ignored"
	outcomeRejected    = "rejected"
	outcomeNoReference = "no_reference"
	outcomeUnknownRef  = "unknown_reference"
	outcomeError       = "error"
)

type WebhookHandler struct {
	Settlement    usecase.SettlementUsecase
	GatewayConfig *usecase.DefaultGatewayConfigUsecase
	Journal       domain.WebhookJournal
	Metrics       *metrics.CheckoutMetrics
	Now           func() time.Time
}

func NewWebhookHandler(
	settlement usecase.SettlementUsecase,
	gatewayConfig *usecase.DefaultGatewayConfigUsecase,
	journal domain.WebhookJournal,
	checkoutMetrics *metrics.CheckoutMetrics) *WebhookHandler {

	return &WebhookHandler{
		Settlement:    settlement,
		GatewayConfig: gatewayConfig,
		Journal:       journal,
		Metrics:       checkoutMetrics,
		Now:           time.Now,
	}
}

// HandlePaystack verifies the hex HMAC signature over the raw body and
// hands succeeded charges to settlement.
func (h *WebhookHandler) HandlePaystack(c *fiber.Ctx) error {
	cfg, err := h.GatewayConfig.Snapshot()
	if err != nil {
		slog.Error("gateway config snapshot failed", "gateway", domain.GatewayPaystack, "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	body := c.Body()
	if err := gateway.VerifyPaystack(body, c.Get(gateway.SignatureHeaderPaystack), cfg.PaystackSecret); err != nil {
		return h.rejectSignature(c, domain.GatewayPaystack, body, err)
	}

	event, err := gateway.DecodePaystackEvent(body)
	if err != nil {
		h.record(domain.GatewayPaystack, "", outcomeRejected, body)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed payload"})
	}

	return h.settle(c, domain.GatewayPaystack, event, body)
}

// HandleStripe verifies the t=,v1= signature header, enforces the
// replay window and hands completed checkout sessions to settlement.
func (h *WebhookHandler) HandleStripe(c *fiber.Ctx) error {
	cfg, err := h.GatewayConfig.Snapshot()
	if err != nil {
		slog.Error("gateway config snapshot failed", "gateway", domain.GatewayStripe, "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	body := c.Body()
	if err := gateway.VerifyStripe(body, c.Get(gateway.SignatureHeaderStripe), cfg.StripeSecret, h.Now()); err != nil {
		if errors.Is(err, gateway.ErrMalformedSignature) {
			h.record(domain.GatewayStripe, "", outcomeRejected, body)
			slog.Warn("webhook rejected", "gateway", domain.GatewayStripe, "reason", err.Error())
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed signature header"})
		}
		return h.rejectSignature(c, domain.GatewayStripe, body, err)
	}

	event, err := gateway.DecodeStripeEvent(body)
	if err != nil {
		h.record(domain.GatewayStripe, "", outcomeRejected, body)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed payload"})
	}

	return h.settle(c, domain.GatewayStripe, event, body)
}

func (h *WebhookHandler) settle(c *fiber.Ctx, gw domain.Gateway, event gateway.Event, body []byte) error {
	if event.Kind != gateway.EventPaymentSucceeded {
		// Not an error: acknowledged so the gateway stops retrying.
		h.record(gw, event.Reference, outcomeIgnored, body)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ignored"})
	}

	if event.Reference == "" {
		h.record(gw, "", outcomeNoReference, body)
		slog.Warn("webhook missing reference", "gateway", gw, "type", event.Type)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing reference"})
	}

	_, err := h.Settlement.SettleByReference(event.Reference)
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		// Either a forged reference or a webhook that outran order
		// creation. Logged, not retried locally.
		h.record(gw, event.Reference, outcomeUnknownRef, body)
		slog.Warn("webhook for unknown order", "gateway", gw, "reference", event.Reference)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	case errors.Is(err, domain.ErrAlreadySettled):
		h.record(gw, event.Reference, outcomeDuplicate, body)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "already processed"})
	case err != nil:
		h.record(gw, event.Reference, outcomeError, body)
		slog.Error("settlement failed", "gateway", gw, "reference", event.Reference, "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	h.record(gw, event.Reference, outcomeSettled, body)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}

func (h *WebhookHandler) rejectSignature(c *fiber.Ctx, gw domain.Gateway, body []byte, reason error) error {
	h.record(gw, "", outcomeRejected, body)
	slog.Warn("webhook rejected", "gateway", gw, "reason", reason.Error())
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "verification failed"})
}

func (h *WebhookHandler) record(gw domain.Gateway, reference, outcome string, body []byte) {
	h.Metrics.WebhookDeliveriesTotal.WithLabelValues(string(gw), outcome).Inc()
	if err := h.Journal.LogDelivery(&domain.WebhookDelivery{
		Gateway:   gw,
		Reference: reference,
		Outcome:   outcome,
		Payload:   string(body),
	}); err != nil {
		slog.Error("failed to journal webhook delivery", "gateway", gw, "error", err.Error())
	}
}
