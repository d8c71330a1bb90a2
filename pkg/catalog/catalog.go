package catalog

import "context"

// Row is a single catalog entry. Rows are immutable once loaded; stock codes
// are assumed unique but not enforced, first match wins on lookup.
type Row struct {
	ProductName string `json:"product_name"`
	StockCode   string `json:"stock_code"`
}

// Provider supplies the product catalog. Implementations may legitimately
// return an empty slice or an error; callers must treat both as "no catalog"
// and degrade gracefully rather than fail.
type Provider interface {
	GetCatalog(ctx context.Context) ([]Row, error)
}

// Static wraps a fixed slice, mostly useful in tests and the console harness.
type Static []Row

func (s Static) GetCatalog(ctx context.Context) ([]Row, error) {
	return s, nil
}
