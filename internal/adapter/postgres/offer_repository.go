package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"channel-offers/internal/core/domain"
)

// DB is the part of *pgxpool.Pool the repository uses.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// OfferRepository implements port.OfferRepository on a PostgreSQL pool.
type OfferRepository struct {
	pool  DB
	vocab *domain.Vocabulary
}

// NewOfferRepository returns a new repository instance. Offers read back
// from the database are validated against vocab.
func NewOfferRepository(pool DB, vocab *domain.Vocabulary) *OfferRepository {
	return &OfferRepository{pool: pool, vocab: vocab}
}

// offerRow mirrors a channel_offers row.
type offerRow struct {
	OperatorCode    string
	BusinessUnit    *string
	Price           float64
	SpecialPrice    *float64
	SpecialFromDate *time.Time
	SpecialToDate   *time.Time
	Stock           int
	Status          string
	IsPublished     *int
}

// GetProduct returns the product and its offers in stored order, or nil
// when the SKU is unknown.
func (r *OfferRepository) GetProduct(ctx context.Context, sellerSKU string) (*domain.Product, error) {
	var sku string
	err := r.pool.QueryRow(ctx, `SELECT seller_sku FROM products WHERE seller_sku = $1`, sellerSKU).Scan(&sku)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	query := `
        SELECT
            operator_code,
            business_unit,
            price,
            special_price,
            special_from_date,
            special_to_date,
            stock,
            status,
            is_published
        FROM channel_offers
        WHERE seller_sku = $1
        ORDER BY position`
	rows, err := r.pool.Query(ctx, query, sku)
	if err != nil {
		return nil, err
	}
	raw, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (offerRow, error) {
		var or offerRow
		err := row.Scan(
			&or.OperatorCode,
			&or.BusinessUnit,
			&or.Price,
			&or.SpecialPrice,
			&or.SpecialFromDate,
			&or.SpecialToDate,
			&or.Stock,
			&or.Status,
			&or.IsPublished,
		)
		return or, err
	})
	if err != nil {
		return nil, err
	}

	product, err := domain.NewProduct(sku)
	if err != nil {
		return nil, err
	}
	for _, or := range raw {
		offer, err := r.restoreOffer(or)
		if err != nil {
			return nil, fmt.Errorf("offer %s/%s: %w", sku, or.OperatorCode, err)
		}
		product.PutOffer(offer)
	}
	return product, nil
}

// restoreOffer rebuilds an offer through the validating constructor. A
// stored sale price may exceed the price when the price was lowered after
// the sale price was accepted; that order of writes is replayed here.
func (r *OfferRepository) restoreOffer(or offerRow) (*domain.ChannelOffer, error) {
	price := or.Price
	if or.SpecialPrice != nil && *or.SpecialPrice > price {
		price = *or.SpecialPrice
	}
	offer, err := domain.NewChannelOffer(r.vocab, or.OperatorCode, price, or.Stock, or.Status)
	if err != nil {
		return nil, err
	}
	offer.SetBusinessUnit(or.BusinessUnit)
	if err = offer.SetSalePrice(or.SpecialPrice); err != nil {
		return nil, err
	}
	if err = offer.SetPrice(or.Price); err != nil {
		return nil, err
	}
	offer.SetSaleStartDate(or.SpecialFromDate)
	offer.SetSaleEndDate(or.SpecialToDate)
	offer.SetIsPublished(or.IsPublished)
	return offer, nil
}

// SaveProduct upserts the product and replaces its offers in a single
// serializable transaction. Offers no longer on the product are deleted.
func (r *OfferRepository) SaveProduct(ctx context.Context, product *domain.Product) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	sku := product.SellerSKU()
	_, err = tx.Exec(ctx, `INSERT INTO products (seller_sku, created_at, updated_at)
VALUES ($1, now(), now())
ON CONFLICT (seller_sku) DO UPDATE SET updated_at = now()`, sku)
	if err != nil {
		return err
	}

	offers := product.Offers()
	codes := make([]string, 0, len(offers))
	for _, o := range offers {
		codes = append(codes, o.OperatorCode())
	}
	_, err = tx.Exec(ctx, `DELETE FROM channel_offers WHERE seller_sku = $1 AND NOT (operator_code = ANY($2))`, sku, codes)
	if err != nil {
		return err
	}

	for i, o := range offers {
		_, err = tx.Exec(ctx, `INSERT INTO channel_offers
    (seller_sku, operator_code, position, business_unit, price, special_price,
     special_from_date, special_to_date, stock, status, is_published)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
ON CONFLICT (seller_sku, operator_code) DO UPDATE SET
    position = EXCLUDED.position,
    business_unit = EXCLUDED.business_unit,
    price = EXCLUDED.price,
    special_price = EXCLUDED.special_price,
    special_from_date = EXCLUDED.special_from_date,
    special_to_date = EXCLUDED.special_to_date,
    stock = EXCLUDED.stock,
    status = EXCLUDED.status,
    is_published = EXCLUDED.is_published`,
			sku, o.OperatorCode(), i, o.BusinessUnit(), o.Price(), o.SalePrice(),
			o.SaleStartDate(), o.SaleEndDate(), o.Stock(), o.Status(), o.IsPublished())
		if err != nil {
			return err
		}
	}
	return nil
}

// ListSKUs returns up to limit seller SKUs in ascending order.
func (r *OfferRepository) ListSKUs(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT seller_sku FROM products ORDER BY seller_sku LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}
