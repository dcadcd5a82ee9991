package domain

// PriceSource yields the current admin-maintained price table. The
// calculator never caches it; checkout always prices off the latest row.
type PriceSource interface {
	PriceTable() (PriceTable, error)
}
