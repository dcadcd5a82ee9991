package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jothamO/makemoments-checkout-service/internal/domain"
	"github.com/jothamO/makemoments-checkout-service/internal/usecase"
	orderdto "github.com/jothamO/makemoments-checkout-service/internal/usecase/dto/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrders struct {
	lastInput *orderdto.CreateOrderInput
	createErr error
	statuses  map[string]*orderdto.OrderStatusOutput
	failErr   error
}

func (f *fakeOrders) CreateOrder(input *orderdto.CreateOrderInput) (*orderdto.CreateOrderOutput, error) {
	f.lastInput = input
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &orderdto.CreateOrderOutput{
		OrderID:          "order-1",
		Slug:             "for-amaka",
		PaymentReference: "mm_ref_1",
		Gateway:          input.Gateway,
		Total:            5500,
		Currency:         input.Currency,
	}, nil
}

func (f *fakeOrders) GetOrderStatus(orderID string) (*orderdto.OrderStatusOutput, error) {
	status, ok := f.statuses[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return status, nil
}

func (f *fakeOrders) FailOrder(orderID string) error { return f.failErr }

type fakePricing struct{}

func (f *fakePricing) Quote(prices domain.PriceTable, draft domain.Draft, currency string) domain.Quote {
	return domain.Quote{
		Total:    prices.BaseHome,
		Currency: currency,
		Items: []domain.QuoteItem{
			{Label: "Digital card", Price: prices.BaseHome, Display: "₦5,500"},
		},
	}
}

type fakePrices struct{}

func (f *fakePrices) PriceTable() (domain.PriceTable, error) {
	return domain.PriceTable{BaseHome: 5500, BaseForeign: 6.99}, nil
}

func newCheckoutFixture(orders *fakeOrders, stored domain.StoredGatewayConfig) *fiber.App {
	configUsecase := &usecase.DefaultGatewayConfigUsecase{
		Repo:      &fakeConfigRepo{stored: stored},
		LookupEnv: func(string) string { return "" },
	}
	handler := NewCheckoutHandler(orders, &fakePricing{}, &fakePrices{}, configUsecase)

	app := fiber.New()
	app.Post("/checkout", handler.Checkout)
	app.Post("/quote", handler.Quote)
	app.Get("/orders/:id/status", handler.OrderStatus)
	app.Post("/admin/orders/:id/fail", handler.FailOrder)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return decoded
}

func TestCheckoutCreatesPendingOrder(t *testing.T) {
	orders := &fakeOrders{}
	app := newCheckoutFixture(orders, domain.StoredGatewayConfig{PaystackEnabled: true})

	resp := postJSON(t, app, "/checkout", map[string]any{
		"email":    "amaka@example.com",
		"currency": "NGN",
		"gateway":  "paystack",
	})

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "mm_ref_1", body["payment_reference"])
	assert.Equal(t, "for-amaka", body["slug"])
	assert.Equal(t, float64(5500), body["total"])
}

func TestCheckoutValidationFailure(t *testing.T) {
	orders := &fakeOrders{createErr: domain.ErrInvalidEmail}
	app := newCheckoutFixture(orders, domain.StoredGatewayConfig{PaystackEnabled: true})

	resp := postJSON(t, app, "/checkout", map[string]any{"email": "not-an-email", "currency": "NGN"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, domain.ErrInvalidEmail.Error(), decodeBody(t, resp)["error"])
}

func TestCheckoutSlugTaken(t *testing.T) {
	orders := &fakeOrders{createErr: domain.ErrSlugTaken}
	app := newCheckoutFixture(orders, domain.StoredGatewayConfig{PaystackEnabled: true})

	resp := postJSON(t, app, "/checkout", map[string]any{
		"email":    "amaka@example.com",
		"currency": "NGN",
		"slug":     "for-amaka",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCheckoutMalformedBody(t *testing.T) {
	app := newCheckoutFixture(&fakeOrders{}, domain.StoredGatewayConfig{PaystackEnabled: true})

	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCheckoutDisabledGatewayFallsBack(t *testing.T) {
	orders := &fakeOrders{}
	app := newCheckoutFixture(orders, domain.StoredGatewayConfig{PaystackEnabled: true, StripeEnabled: false})

	resp := postJSON(t, app, "/checkout", map[string]any{
		"email":    "amaka@example.com",
		"currency": "USD",
		"gateway":  "stripe",
	})

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, orders.lastInput)
	assert.Equal(t, domain.GatewayPaystack, orders.lastInput.Gateway)
}

func TestQuoteEndpoint(t *testing.T) {
	app := newCheckoutFixture(&fakeOrders{}, domain.StoredGatewayConfig{PaystackEnabled: true})

	resp := postJSON(t, app, "/quote", map[string]any{"currency": "NGN"})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(5500), body["total"])
	items, ok := body["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
}

func TestOrderStatusEndpoint(t *testing.T) {
	orders := &fakeOrders{statuses: map[string]*orderdto.OrderStatusOutput{
		"order-1": {OrderID: "order-1", Slug: "for-amaka", PaymentStatus: domain.StatusPaid},
	}}
	app := newCheckoutFixture(orders, domain.StoredGatewayConfig{PaystackEnabled: true})

	req := httptest.NewRequest(http.MethodGet, "/orders/order-1/status", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "paid", body["payment_status"])
	assert.Equal(t, "for-amaka", body["slug"])

	req = httptest.NewRequest(http.MethodGet, "/orders/missing/status", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFailOrderConflictsOnSettled(t *testing.T) {
	orders := &fakeOrders{failErr: domain.ErrAlreadySettled}
	app := newCheckoutFixture(orders, domain.StoredGatewayConfig{PaystackEnabled: true})

	req := httptest.NewRequest(http.MethodPost, "/admin/orders/order-1/fail", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
