package port

import (
	"context"
	"time"

	"channel-offers/internal/core/domain"
)

// OfferUseCase defines the business operations on channel offers. This
// interface represents the primary port into the application domain. Mock
// implementations can be generated from this interface for testing.
type OfferUseCase interface {
	// PutOffer validates the input into a channel offer and stores it on
	// the product, replacing any offer for the same operator code. The
	// product is created when it does not exist yet.
	PutOffer(ctx context.Context, sellerSKU string, in OfferInput) (*domain.Record, error)

	// UpdatePrice sets the price and, when salePrice is not nil, the sale
	// price of an existing offer. Lowering the price alone does not
	// re-check a previously accepted sale price.
	UpdatePrice(ctx context.Context, sellerSKU, operatorCode string, price float64, salePrice *float64) (*domain.Record, error)

	// UpdateStock sets the stock of an existing offer.
	UpdateStock(ctx context.Context, sellerSKU, operatorCode string, stock int) (*domain.Record, error)

	// GetProduct returns the product view for sellerSKU.
	GetProduct(ctx context.Context, sellerSKU string) (*ProductView, error)

	// RemoveOffer drops the offer for operatorCode from the product.
	RemoveOffer(ctx context.Context, sellerSKU, operatorCode string) error

	// GetAttributes returns the feed attributes of a single offer.
	GetAttributes(ctx context.Context, sellerSKU, operatorCode string) (domain.Attributes, error)

	// ListSKUs returns up to limit known seller SKUs.
	ListSKUs(ctx context.Context, limit int) ([]string, error)

	// BuildFeed renders a product update feed for the given SKUs.
	BuildFeed(ctx context.Context, sellerSKUs []string) (*Feed, error)
}

// OfferInput carries the fields of a channel offer to create. Optional
// fields are nil when absent.
type OfferInput struct {
	OperatorCode  string
	Price         float64
	Stock         int
	Status        string
	IsPublished   *int
	BusinessUnit  *string
	SalePrice     *float64
	SaleStartDate *time.Time
	SaleEndDate   *time.Time
}

// ProductView is the serialized form of a product returned to clients.
type ProductView struct {
	SellerSKU string          `json:"sellerSku"`
	Offers    []domain.Record `json:"businessUnits"`
}

// Feed is a rendered feed document ready to be sent to the marketplace.
type Feed struct {
	RequestID string
	Document  []byte
	Products  int
	Offers    int
}
