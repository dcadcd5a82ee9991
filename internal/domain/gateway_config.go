package domain

// GatewayConfig is a request-scoped snapshot of the admin-configured
// gateway state. Secrets here are already resolved: environment value,
// when present, wins over the stored one.
type GatewayConfig struct {
	PaystackEnabled  bool
	StripeEnabled    bool
	PaystackTestMode bool
	StripeTestMode   bool
	PaystackSecret   string
	StripeSecret     string
}

// SecretFor returns the resolved secret for a gateway. An empty secret
// means verification must fail closed.
func (c GatewayConfig) SecretFor(gateway Gateway) string {
	switch gateway {
	case GatewayPaystack:
		return c.PaystackSecret
	case GatewayStripe:
		return c.StripeSecret
	}
	return ""
}

type GatewayConfigRepository interface {
	GetConfig() (*StoredGatewayConfig, error)
	SaveConfig(cfg *StoredGatewayConfig) error
}

// StoredGatewayConfig is the persisted (pre-override) gateway row.
type StoredGatewayConfig struct {
	PaystackEnabled  bool
	StripeEnabled    bool
	PaystackTestMode bool
	StripeTestMode   bool
	PaystackSecret   string
	StripeSecret     string
}
