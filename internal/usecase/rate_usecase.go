package usecase

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jothamO/makemoments-checkout-service/internal/domain"
)

// DefaultRateUsecase fronts the read-only exchange rate table with a
// short in-memory TTL cache, so pricing never hits the database per
// line item.
type DefaultRateUsecase struct {
	repo  domain.RateRepository
	ttl   time.Duration
	mu    sync.RWMutex
	rates map[string]cachedRate
}

type cachedRate struct {
	rate      float64
	fetchedAt time.Time
}

func NewDefaultRateUsecase(repo domain.RateRepository) *DefaultRateUsecase {
	return &DefaultRateUsecase{
		repo:  repo,
		ttl:   10 * time.Minute,
		rates: make(map[string]cachedRate),
	}
}

// Rate implements domain.RateSource. Unknown pairs resolve to 1.0 so a
// missing rate row degrades pricing, never breaks it.
func (uc *DefaultRateUsecase) Rate(from, to string) float64 {
	key := pairKey(from, to)

	uc.mu.RLock()
	cached, ok := uc.rates[key]
	uc.mu.RUnlock()
	if ok && time.Since(cached.fetchedAt) < uc.ttl {
		return cached.rate
	}

	rate, err := uc.repo.GetRate(from, to)
	if err != nil {
		slog.Error("exchange rate lookup failed", "from", from, "to", to, "error", err.Error())
		if ok {
			return cached.rate
		}
		return 1.0
	}
	if rate == nil {
		return 1.0
	}

	uc.mu.Lock()
	uc.rates[key] = cachedRate{rate: rate.Rate, fetchedAt: time.Now()}
	uc.mu.Unlock()

	return rate.Rate
}

// Refresh reloads every stored pair into the cache. Main runs this on a
// ticker so checkout reads stay warm.
func (uc *DefaultRateUsecase) Refresh() error {
	rates, err := uc.repo.GetAllRates()
	if err != nil {
		return fmt.Errorf("refreshing exchange rates: %w", err)
	}

	now := time.Now()
	uc.mu.Lock()
	for _, rate := range rates {
		uc.rates[pairKey(rate.FromCurrency, rate.ToCurrency)] = cachedRate{
			rate:      rate.Rate,
			fetchedAt: now,
		}
	}
	uc.mu.Unlock()

	return nil
}

func pairKey(from, to string) string {
	return from + "/" + to
}
