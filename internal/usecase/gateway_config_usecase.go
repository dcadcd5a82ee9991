package usecase

import (
	"fmt"
	"os"

	"github.com/jothamO/makemoments-checkout-service/internal/domain"
)

const (
	EnvPaystackSecret = "PAYSTACK_SECRET_KEY"
	EnvStripeSecret   = "STRIPE_WEBHOOK_SECRET"
)

// DefaultGatewayConfigUsecase builds request-scoped config snapshots.
// Secret resolution happens here, once per request: environment value,
// when present, wins over the stored one.
type DefaultGatewayConfigUsecase struct {
	Repo      domain.GatewayConfigRepository
	LookupEnv func(string) string
}

func NewDefaultGatewayConfigUsecase(repo domain.GatewayConfigRepository) *DefaultGatewayConfigUsecase {
	return &DefaultGatewayConfigUsecase{
		Repo:      repo,
		LookupEnv: os.Getenv,
	}
}

func (uc *DefaultGatewayConfigUsecase) Snapshot() (domain.GatewayConfig, error) {
	stored, err := uc.Repo.GetConfig()
	if err != nil {
		return domain.GatewayConfig{}, fmt.Errorf("loading gateway config: %w", err)
	}

	snapshot := domain.GatewayConfig{
		PaystackEnabled:  stored.PaystackEnabled,
		StripeEnabled:    stored.StripeEnabled,
		PaystackTestMode: stored.PaystackTestMode,
		StripeTestMode:   stored.StripeTestMode,
		PaystackSecret:   stored.PaystackSecret,
		StripeSecret:     stored.StripeSecret,
	}

	if env := uc.LookupEnv(EnvPaystackSecret); env != "" {
		snapshot.PaystackSecret = env
	}
	if env := uc.LookupEnv(EnvStripeSecret); env != "" {
		snapshot.StripeSecret = env
	}

	return snapshot, nil
}
