package usecase

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jothamO/makemoments-checkout-service/internal/domain"
	orderdto "github.com/jothamO/makemoments-checkout-service/internal/usecase/dto/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderUsecase(repo *fakeOrderRepo) *DefaultOrderUsecase {
	pricing := NewDefaultPricingUsecase("NGN", newFakeCatalog(), &fakeRates{})
	prices := &fakePrices{table: domain.PriceTable{BaseHome: 5500, CustomLink: 1200}}
	return NewDefaultOrderUsecase(repo, pricing, prices, &fakePublisher{}, testMetrics, 24*time.Hour)
}

func validInput() *orderdto.CreateOrderInput {
	return &orderdto.CreateOrderInput{
		Email:    "buyer@example.com",
		Currency: "NGN",
		Gateway:  domain.GatewayPaystack,
	}
}

func TestCreateOrderValidation(t *testing.T) {
	uc := newOrderUsecase(newFakeOrderRepo())

	t.Run("bad email rejected", func(t *testing.T) {
		input := validInput()
		input.Email = "not-an-email"
		_, err := uc.CreateOrder(input)
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	})

	t.Run("admin bypass skips email check", func(t *testing.T) {
		input := validInput()
		input.Email = ""
		input.AdminBypass = true
		_, err := uc.CreateOrder(input)
		assert.NoError(t, err)
	})

	t.Run("slug with no usable characters rejected", func(t *testing.T) {
		input := validInput()
		input.SlugCandidate = "!!!"
		_, err := uc.CreateOrder(input)
		assert.ErrorIs(t, err, domain.ErrInvalidSlug)
	})
}

func TestCreateOrderSlugHandling(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := newOrderUsecase(repo)

	t.Run("custom slug is normalized", func(t *testing.T) {
		input := validInput()
		input.SlugCandidate = "  For Amaka & Tunde! "
		output, err := uc.CreateOrder(input)
		require.NoError(t, err)
		assert.Equal(t, "for-amaka--tunde", output.Slug)
	})

	t.Run("collision is a user-visible error", func(t *testing.T) {
		input := validInput()
		input.SlugCandidate = "for-amaka--tunde"
		_, err := uc.CreateOrder(input)
		assert.ErrorIs(t, err, domain.ErrSlugTaken)
	})

	t.Run("custom slug prices the custom link addon", func(t *testing.T) {
		input := validInput()
		input.SlugCandidate = "one-of-a-kind"
		output, err := uc.CreateOrder(input)
		require.NoError(t, err)
		assert.Equal(t, 6700.0, output.Total)
	})

	t.Run("missing slug gets generated", func(t *testing.T) {
		output, err := uc.CreateOrder(validInput())
		require.NoError(t, err)
		assert.Len(t, output.Slug, 10)
	})
}

func TestNormalizeSlug(t *testing.T) {
	assert.Equal(t, "happy-birthday-ada", NormalizeSlug("Happy Birthday Ada"))
	assert.Equal(t, "my-card", NormalizeSlug("--My_Card!--"))
	assert.Equal(t, "", NormalizeSlug("!@#$%"))
}

func TestCreateOrderPersistsServerTotal(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := newOrderUsecase(repo)

	input := validInput()
	input.EstimatedTotal = 1.0 // client lies; ignored

	output, err := uc.CreateOrder(input)
	require.NoError(t, err)

	order, err := repo.GetOrderByID(output.OrderID)
	require.NoError(t, err)
	assert.Equal(t, 5500.0, order.TotalPaid)
	assert.Equal(t, domain.StatusPending, order.PaymentStatus)
	assert.True(t, strings.HasPrefix(order.PaymentReference, "mm_"))
	assert.True(t, order.ExpiresAt.After(order.CreatedAt))
}

func TestCreateOrderReferenceUniqueness(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := newOrderUsecase(repo)

	const n = 50
	references := make(chan string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			output, err := uc.CreateOrder(validInput())
			if !assert.NoError(t, err) {
				references <- ""
				return
			}
			references <- output.PaymentReference
		}()
	}
	wg.Wait()
	close(references)

	seen := make(map[string]bool)
	for reference := range references {
		assert.False(t, seen[reference], "duplicate reference %s", reference)
		seen[reference] = true
	}
	assert.Len(t, seen, n)
}

func TestFailOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := newOrderUsecase(repo)

	output, err := uc.CreateOrder(validInput())
	require.NoError(t, err)

	require.NoError(t, uc.FailOrder(output.OrderID))

	order, err := repo.GetOrderByID(output.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, order.PaymentStatus)

	// failed is terminal
	assert.ErrorIs(t, uc.FailOrder(output.OrderID), domain.ErrAlreadySettled)
	assert.ErrorIs(t, uc.FailOrder("missing"), domain.ErrOrderNotFound)
}
