package gateway

import "github.com/jothamO/makemoments-checkout-service/internal/domain"

// ActiveGateway picks the checkout route from the config snapshot.
// Paystack wins when both are enabled; a fully disabled config still
// routes to Paystack so checkout is never left without a route.
func ActiveGateway(cfg domain.GatewayConfig) domain.Gateway {
	if cfg.PaystackEnabled {
		return domain.GatewayPaystack
	}
	if cfg.StripeEnabled {
		return domain.GatewayStripe
	}
	return domain.GatewayPaystack
}
