package domain

type OrderRepository interface {
	CreateOrder(order *Order) error
	GetOrderByID(orderID string) (*Order, error)
	GetOrderByReference(reference string) (*Order, error)
	GetOrderBySlug(slug string) (*Order, error)
	SlugExists(slug string) (bool, error)
	// MarkPaid flips pending -> paid as a single conditional update.
	// Returns false when the order was no longer pending.
	MarkPaid(reference string) (bool, error)
	// MarkFailed flips pending -> failed. Terminal states never move.
	MarkFailed(orderID string) (bool, error)
}
