package orderdto

import "github.com/jothamO/makemoments-checkout-service/internal/domain"

type CreateOrderInput struct {
	SlugCandidate string
	Email         string
	Currency      string
	Gateway       domain.Gateway
	Draft         domain.Draft
	PagesJSON     string
	// EstimatedTotal is what the client displayed. Advisory only, it is
	// never persisted or charged.
	EstimatedTotal float64
	// AdminBypass skips email validation for back-office checkouts.
	AdminBypass bool
}
