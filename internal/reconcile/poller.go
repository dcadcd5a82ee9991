package reconcile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// ErrPaymentFailed is retryable: the buyer keeps their draft and can
// resubmit checkout.
var ErrPaymentFailed = errors.New("payment failed")

// DraftStore holds the client's unpaid draft. Cleared exactly once on
// settlement so a stale draft never resurfaces over a paid card.
type DraftStore interface {
	Clear()
}

type Hooks struct {
	// OnPaid fires exactly once, with the shareable slug.
	OnPaid func(slug string)
	// OnFailed fires for failed orders, cancellation, or abandonment.
	// The draft stays intact for resubmission.
	OnFailed func(err error)
	Drafts   DraftStore
}

// Poller observes an order's settlement status over the checkout API.
type Poller struct {
	BaseURL  string
	Interval time.Duration
	Client   *http.Client
}

func NewPoller(baseURL string, interval time.Duration) *Poller {
	return &Poller{
		BaseURL:  baseURL,
		Interval: interval,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type statusResponse struct {
	OrderID       string `json:"order_id"`
	Slug          string `json:"slug"`
	PaymentStatus string `json:"payment_status"`
}

// Watch polls until the order settles or ctx is canceled. Transient
// fetch errors keep the loop alive; the gateway flow being abandoned is
// the caller's cancelation.
func (p *Poller) Watch(ctx context.Context, orderID string, hooks Hooks) error {
	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	for {
		status, err := p.fetchStatus(ctx, orderID)
		if err != nil {
			if ctx.Err() != nil {
				return p.fail(hooks, ctx.Err())
			}
			slog.Warn("order status poll failed", "order_id", orderID, "error", err.Error())
		} else {
			switch status.PaymentStatus {
			case "paid":
				if hooks.Drafts != nil {
					hooks.Drafts.Clear()
				}
				if hooks.OnPaid != nil {
					hooks.OnPaid(status.Slug)
				}
				return nil
			case "failed":
				return p.fail(hooks, ErrPaymentFailed)
			}
		}

		select {
		case <-ctx.Done():
			return p.fail(hooks, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (p *Poller) fail(hooks Hooks, err error) error {
	if hooks.OnFailed != nil {
		hooks.OnFailed(err)
	}
	return err
}

func (p *Poller) fetchStatus(ctx context.Context, orderID string) (*statusResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/orders/%s/status", p.BaseURL, orderID), nil)
	if err != nil {
		return nil, err
	}

	response, err := p.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, fmt.Errorf("status endpoint answered %d", response.StatusCode)
	}

	var status statusResponse
	if err := json.Unmarshal(responseBodyBytes, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
