package db

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"channel-offers/internal/core/domain"
	"channel-offers/internal/core/port"
)

// Seed stores demo products, each with one offer per operator code, through
// repo. Statuses are picked at random from statuses. Offers are validated
// against vocab like any other write.
func Seed(ctx context.Context, repo port.OfferRepository, vocab *domain.Vocabulary, operatorCodes, statuses []string) error {
	if len(statuses) == 0 {
		return errors.New("seed: no statuses")
	}
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 1; i <= 20; i++ {
		product, err := domain.NewProduct(fmt.Sprintf("DEMO-%04d", i))
		if err != nil {
			return err
		}
		for _, code := range operatorCodes {
			price := float64(1000+r.Intn(99000)) / 100
			opts := []domain.OfferOption{
				domain.WithBusinessUnit(fmt.Sprintf("store-%s", code)),
				domain.WithIsPublished(r.Intn(2)),
			}
			// roughly a third of the offers are on sale for the coming week
			if r.Intn(3) == 0 {
				start := time.Now().UTC().Truncate(time.Hour)
				opts = append(opts,
					domain.WithSalePrice(price*0.8),
					domain.WithSaleStartDate(start),
					domain.WithSaleEndDate(start.AddDate(0, 0, 7)),
				)
			}
			offer, err := domain.NewChannelOffer(vocab, code, price, r.Intn(50), statuses[r.Intn(len(statuses))], opts...)
			if err != nil {
				return fmt.Errorf("seed %s/%s: %w", product.SellerSKU(), code, err)
			}
			product.PutOffer(offer)
		}
		if err = repo.SaveProduct(ctx, product); err != nil {
			return err
		}
	}
	return nil
}
