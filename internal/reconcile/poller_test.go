package reconcile

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryDraft struct {
	mu     sync.Mutex
	clears int
}

func (d *memoryDraft) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clears++
}

func (d *memoryDraft) clearCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.clears
}

// statusServer serves the order status endpoint, walking through the
// given sequence of payment statuses one per request and repeating the
// last one afterwards.
func statusServer(t *testing.T, orderID, slug string, statuses ...string) *httptest.Server {
	t.Helper()
	var mu sync.Mutex
	calls := 0
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders/"+orderID+"/status" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		mu.Lock()
		status := statuses[min(calls, len(statuses)-1)]
		calls++
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"order_id":%q,"slug":%q,"payment_status":%q}`, orderID, slug, status)
	}))
}

func TestWatchSettlesAfterPending(t *testing.T) {
	server := statusServer(t, "order-1", "for-amaka", "pending", "pending", "paid")
	defer server.Close()

	drafts := &memoryDraft{}
	var paidSlugs []string

	poller := NewPoller(server.URL, 5*time.Millisecond)
	err := poller.Watch(context.Background(), "order-1", Hooks{
		OnPaid:   func(slug string) { paidSlugs = append(paidSlugs, slug) },
		OnFailed: func(err error) { t.Errorf("unexpected OnFailed: %v", err) },
		Drafts:   drafts,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"for-amaka"}, paidSlugs)
	assert.Equal(t, 1, drafts.clearCount())
}

func TestWatchFailedKeepsDraft(t *testing.T) {
	server := statusServer(t, "order-1", "for-amaka", "pending", "failed")
	defer server.Close()

	drafts := &memoryDraft{}
	var failure error

	poller := NewPoller(server.URL, 5*time.Millisecond)
	err := poller.Watch(context.Background(), "order-1", Hooks{
		OnPaid:   func(string) { t.Error("unexpected OnPaid") },
		OnFailed: func(err error) { failure = err },
		Drafts:   drafts,
	})

	require.ErrorIs(t, err, ErrPaymentFailed)
	assert.ErrorIs(t, failure, ErrPaymentFailed)
	assert.Equal(t, 0, drafts.clearCount(), "draft must survive a failed payment")
}

func TestWatchCanceledContext(t *testing.T) {
	server := statusServer(t, "order-1", "for-amaka", "pending")
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	drafts := &memoryDraft{}
	failed := make(chan error, 1)

	poller := NewPoller(server.URL, 5*time.Millisecond)
	done := make(chan error, 1)
	go func() {
		done <- poller.Watch(ctx, "order-1", Hooks{
			OnFailed: func(err error) { failed <- err },
			Drafts:   drafts,
		})
	}()

	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancelation")
	}
	assert.ErrorIs(t, <-failed, context.Canceled)
	assert.Equal(t, 0, drafts.clearCount())
}

func TestWatchSurvivesTransientErrors(t *testing.T) {
	orderID := "order-1"
	var mu sync.Mutex
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, `{"order_id":%q,"slug":"for-amaka","payment_status":"paid"}`, orderID)
	}))
	defer server.Close()

	var paid bool
	poller := NewPoller(server.URL, 5*time.Millisecond)
	err := poller.Watch(context.Background(), orderID, Hooks{
		OnPaid: func(string) { paid = true },
	})

	require.NoError(t, err)
	assert.True(t, paid)
}
