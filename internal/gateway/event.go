package gateway

import "errors"

type EventKind int

const (
	// EventOther covers every event type the settlement pipeline ignores.
	EventOther EventKind = iota
	EventPaymentSucceeded
)

// Event is the normalized decode of a gateway payload. Downstream code
// never inspects gateway JSON directly.
type Event struct {
	Kind      EventKind
	Type      string
	Reference string
}

var (
	ErrMissingSecret      = errors.New("gateway: no webhook secret configured")
	ErrInvalidSignature   = errors.New("gateway: signature mismatch")
	ErrMalformedSignature = errors.New("gateway: malformed signature header")
	ErrStaleTimestamp     = errors.New("gateway: timestamp outside replay window")
	ErrMissingReference   = errors.New("gateway: payload carries no order reference")
)
