package domain

type OrderCreatedEvent struct {
	OrderID   string  `json:"order_id"`
	Slug      string  `json:"slug"`
	Gateway   string  `json:"gateway"`
	Total     float64 `json:"total"`
	Currency  string  `json:"currency"`
	Reference string  `json:"reference"`
}

type OrderSettledEvent struct {
	OrderID   string  `json:"order_id"`
	Slug      string  `json:"slug"`
	Email     string  `json:"email"`
	Gateway   string  `json:"gateway"`
	Total     float64 `json:"total"`
	Currency  string  `json:"currency"`
	Reference string  `json:"reference"`
}

type EventPublisher interface {
	PublishOrderCreated(event OrderCreatedEvent) error
	PublishOrderSettled(event OrderSettledEvent) error
}
