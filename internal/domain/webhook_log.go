package domain

import "time"

// WebhookDelivery journals every inbound gateway callback, accepted or
// not, for auditing. Raw payloads are kept; secrets never are.
type WebhookDelivery struct {
	ID        string
	Gateway   Gateway
	Reference string
	Outcome   string
	Payload   string
	CreatedAt time.Time
}

type WebhookJournal interface {
	LogDelivery(delivery *WebhookDelivery) error
}
