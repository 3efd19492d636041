package port

import (
	"context"
	"errors"

	"channel-offers/internal/core/domain"
)

// ErrNotFound is returned when a product or one of its offers does not exist.
var ErrNotFound = errors.New("not found")

// OfferRepository defines the persistence layer for products and their
// channel offers. It is an outbound port in hexagonal architecture.
// Implementations must be concurrency-safe and save a product atomically.
type OfferRepository interface {
	// GetProduct returns the product with its offers, or nil when the SKU
	// is unknown.
	GetProduct(ctx context.Context, sellerSKU string) (*domain.Product, error)
	// SaveProduct stores the product and replaces its offer set.
	SaveProduct(ctx context.Context, product *domain.Product) error
	// ListSKUs returns up to limit seller SKUs in ascending order.
	ListSKUs(ctx context.Context, limit int) ([]string, error)
}
