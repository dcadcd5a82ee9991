package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jothamO/makemoments-checkout-service/internal/delivery/http/handlers"
)

func Register(app *fiber.App, checkout *handlers.CheckoutHandler, webhook *handlers.WebhookHandler) {
	app.Post("/checkout", checkout.Checkout)
	app.Post("/quote", checkout.Quote)
	app.Get("/orders/:id/status", checkout.OrderStatus)
	app.Post("/admin/orders/:id/fail", checkout.FailOrder)

	app.Post("/webhooks/paystack", webhook.HandlePaystack)
	app.Post("/webhooks/stripe", webhook.HandleStripe)
}
