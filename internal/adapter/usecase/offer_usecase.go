package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"channel-offers/internal/core/domain"
	"channel-offers/internal/core/port"
	"channel-offers/internal/feed"
)

// OfferUseCase provides business logic for channel offers and feed
// generation. It orchestrates domain and repositories to implement the
// port.OfferUseCase interface.
type OfferUseCase struct {
	repo port.OfferRepository

	// vocab is the set of operator codes and statuses new offers are
	// validated against.
	vocab *domain.Vocabulary
}

// NewOfferUseCase creates a new usecase with the provided repository and
// vocabulary. A nil vocabulary falls back to domain.DefaultVocabulary.
func NewOfferUseCase(repo port.OfferRepository, vocab *domain.Vocabulary) *OfferUseCase {
	if vocab == nil {
		vocab = domain.DefaultVocabulary()
	}
	return &OfferUseCase{repo: repo, vocab: vocab}
}

// PutOffer builds a channel offer from in and stores it on the product,
// creating the product if needed. Validation errors are returned unchanged
// and nothing is saved.
func (u *OfferUseCase) PutOffer(ctx context.Context, sellerSKU string, in port.OfferInput) (*domain.Record, error) {
	offer, err := domain.NewChannelOffer(u.vocab, in.OperatorCode, in.Price, in.Stock, in.Status, offerOptions(in)...)
	if err != nil {
		return nil, err
	}
	product, err := u.repo.GetProduct(ctx, sellerSKU)
	if err != nil {
		return nil, err
	}
	if product == nil {
		if product, err = domain.NewProduct(sellerSKU); err != nil {
			return nil, err
		}
	}
	product.PutOffer(offer)
	if err = u.repo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}
	rec := offer.Serialize()
	return &rec, nil
}

// UpdatePrice changes the price of an existing offer and, when salePrice
// is not nil, its sale price. The sale price is checked against the new
// price. A sale price already on the offer is left as is.
func (u *OfferUseCase) UpdatePrice(ctx context.Context, sellerSKU, operatorCode string, price float64, salePrice *float64) (*domain.Record, error) {
	return u.mutate(ctx, sellerSKU, operatorCode, func(o *domain.ChannelOffer) error {
		if err := o.SetPrice(price); err != nil {
			return err
		}
		if salePrice != nil {
			return o.SetSalePrice(salePrice)
		}
		return nil
	})
}

// UpdateStock changes the stock of an existing offer.
func (u *OfferUseCase) UpdateStock(ctx context.Context, sellerSKU, operatorCode string, stock int) (*domain.Record, error) {
	return u.mutate(ctx, sellerSKU, operatorCode, func(o *domain.ChannelOffer) error {
		return o.SetStock(stock)
	})
}

// RemoveOffer drops the offer for operatorCode and saves the product. The
// product itself is kept even when it has no offers left.
func (u *OfferUseCase) RemoveOffer(ctx context.Context, sellerSKU, operatorCode string) error {
	product, err := u.loadProduct(ctx, sellerSKU)
	if err != nil {
		return err
	}
	if !product.RemoveOffer(operatorCode) {
		return fmt.Errorf("offer %s/%s: %w", sellerSKU, operatorCode, port.ErrNotFound)
	}
	return u.repo.SaveProduct(ctx, product)
}

// GetProduct returns the serialized product. port.ErrNotFound is returned
// for an unknown SKU.
func (u *OfferUseCase) GetProduct(ctx context.Context, sellerSKU string) (*port.ProductView, error) {
	product, err := u.loadProduct(ctx, sellerSKU)
	if err != nil {
		return nil, err
	}
	return &port.ProductView{
		SellerSKU: product.SellerSKU(),
		Offers:    product.Records(),
	}, nil
}

// GetAttributes returns the feed attributes of one offer.
func (u *OfferUseCase) GetAttributes(ctx context.Context, sellerSKU, operatorCode string) (domain.Attributes, error) {
	product, err := u.loadProduct(ctx, sellerSKU)
	if err != nil {
		return nil, err
	}
	offer := product.Offer(operatorCode)
	if offer == nil {
		return nil, fmt.Errorf("offer %s/%s: %w", sellerSKU, operatorCode, port.ErrNotFound)
	}
	return offer.AllAttributes(), nil
}

// ListSKUs returns up to limit known seller SKUs.
func (u *OfferUseCase) ListSKUs(ctx context.Context, limit int) ([]string, error) {
	return u.repo.ListSKUs(ctx, limit)
}

// BuildFeed loads every product and renders them into one feed document
// tagged with a fresh request id. Any unknown SKU fails the whole feed.
func (u *OfferUseCase) BuildFeed(ctx context.Context, sellerSKUs []string) (*port.Feed, error) {
	products := make([]*domain.Product, 0, len(sellerSKUs))
	offers := 0
	for _, sku := range sellerSKUs {
		product, err := u.loadProduct(ctx, sku)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
		offers += len(product.Offers())
	}
	doc, err := feed.Render(products...)
	if err != nil {
		return nil, fmt.Errorf("render feed: %w", err)
	}
	return &port.Feed{
		RequestID: uuid.NewString(),
		Document:  doc,
		Products:  len(products),
		Offers:    offers,
	}, nil
}

// mutate loads an offer, applies fn and saves the product. When fn fails
// the product is not saved.
func (u *OfferUseCase) mutate(ctx context.Context, sellerSKU, operatorCode string, fn func(*domain.ChannelOffer) error) (*domain.Record, error) {
	product, err := u.loadProduct(ctx, sellerSKU)
	if err != nil {
		return nil, err
	}
	offer := product.Offer(operatorCode)
	if offer == nil {
		return nil, fmt.Errorf("offer %s/%s: %w", sellerSKU, operatorCode, port.ErrNotFound)
	}
	if err = fn(offer); err != nil {
		return nil, err
	}
	if err = u.repo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}
	rec := offer.Serialize()
	return &rec, nil
}

func (u *OfferUseCase) loadProduct(ctx context.Context, sellerSKU string) (*domain.Product, error) {
	product, err := u.repo.GetProduct(ctx, sellerSKU)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", sellerSKU, port.ErrNotFound)
	}
	return product, nil
}

func offerOptions(in port.OfferInput) []domain.OfferOption {
	var opts []domain.OfferOption
	if in.IsPublished != nil {
		opts = append(opts, domain.WithIsPublished(*in.IsPublished))
	}
	if in.BusinessUnit != nil {
		opts = append(opts, domain.WithBusinessUnit(*in.BusinessUnit))
	}
	if in.SalePrice != nil {
		opts = append(opts, domain.WithSalePrice(*in.SalePrice))
	}
	if in.SaleStartDate != nil {
		opts = append(opts, domain.WithSaleStartDate(*in.SaleStartDate))
	}
	if in.SaleEndDate != nil {
		opts = append(opts, domain.WithSaleEndDate(*in.SaleEndDate))
	}
	return opts
}
