package usecase

import (
	"sync"
	"time"

	"github.com/jothamO/makemoments-checkout-service/internal/domain"
	"github.com/jothamO/makemoments-checkout-service/internal/infrastructure/metrics"
)

// promauto registers against the default registry, so the package
// shares one metrics instance across tests.
var testMetrics = metrics.NewCheckoutMetrics()

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
	byRef  map[string]string
	bySlug map[string]string
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[string]*domain.Order),
		byRef:  make(map[string]string),
		bySlug: make(map[string]string),
	}
}

func (r *fakeOrderRepo) CreateOrder(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *order
	r.orders[order.ID] = &copied
	r.byRef[order.PaymentReference] = order.ID
	r.bySlug[order.Slug] = order.ID
	return nil
}

func (r *fakeOrderRepo) GetOrderByID(orderID string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) GetOrderByReference(reference string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byRef[reference]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	copied := *r.orders[id]
	return &copied, nil
}

func (r *fakeOrderRepo) GetOrderBySlug(slug string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.bySlug[slug]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	copied := *r.orders[id]
	return &copied, nil
}

func (r *fakeOrderRepo) SlugExists(slug string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.bySlug[slug]
	return ok, nil
}

func (r *fakeOrderRepo) MarkPaid(reference string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byRef[reference]
	if !ok {
		return false, nil
	}
	order := r.orders[id]
	if order.PaymentStatus != domain.StatusPending {
		return false, nil
	}
	now := time.Now()
	order.PaymentStatus = domain.StatusPaid
	order.PaidAt = &now
	return true, nil
}

func (r *fakeOrderRepo) MarkFailed(orderID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok || order.PaymentStatus != domain.StatusPending {
		return false, nil
	}
	order.PaymentStatus = domain.StatusFailed
	return true, nil
}

type fakePublisher struct {
	mu      sync.Mutex
	created []domain.OrderCreatedEvent
	settled []domain.OrderSettledEvent
}

func (p *fakePublisher) PublishOrderCreated(event domain.OrderCreatedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.created = append(p.created, event)
	return nil
}

func (p *fakePublisher) PublishOrderSettled(event domain.OrderSettledEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.settled = append(p.settled, event)
	return nil
}

func (p *fakePublisher) settledCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.settled)
}

// fakeCatalog marks fixed asset IDs as premium.
type fakeCatalog struct {
	music, fonts, patterns, characters map[string]bool
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		music:      map[string]bool{"track-premium": true},
		fonts:      map[string]bool{"font-premium": true},
		patterns:   map[string]bool{"pattern-premium": true},
		characters: map[string]bool{"char-premium": true},
	}
}

func (c *fakeCatalog) IsPremiumMusic(id string) bool     { return c.music[id] }
func (c *fakeCatalog) IsPremiumFont(id string) bool      { return c.fonts[id] }
func (c *fakeCatalog) IsPremiumPattern(id string) bool   { return c.patterns[id] }
func (c *fakeCatalog) IsPremiumCharacter(id string) bool { return c.characters[id] }

type fakeRates struct {
	rates map[string]float64
}

func (r *fakeRates) Rate(from, to string) float64 {
	if rate, ok := r.rates[from+"/"+to]; ok {
		return rate
	}
	return 1.0
}

type fakePrices struct {
	table domain.PriceTable
}

func (p *fakePrices) PriceTable() (domain.PriceTable, error) {
	return p.table, nil
}
