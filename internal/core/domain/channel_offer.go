package domain

import (
	"encoding/json"
	"time"
)

// DateTimeLayout is the layout used for the string form of sale dates.
const DateTimeLayout = "2006-01-02 15:04:05"

var defaultVocabulary = DefaultVocabulary()

// ChannelOffer is the price, stock and publication state of a product on a
// single sales channel. It has no identity of its own: two offers with the
// same field values are equal. Every write goes through a validating setter,
// so a ChannelOffer returned by NewChannelOffer never violates its
// constraints. It is not safe for concurrent mutation.
type ChannelOffer struct {
	vocab *Vocabulary

	businessUnit  *string
	operatorCode  string
	price         float64
	salePrice     *float64
	saleStartDate *time.Time
	saleEndDate   *time.Time
	stock         int
	status        string
	isPublished   *int
}

// OfferOption sets an optional field of a ChannelOffer under construction.
type OfferOption func(*offerParams)

type offerParams struct {
	isPublished   *int
	businessUnit  *string
	salePrice     *float64
	saleStartDate *time.Time
	saleEndDate   *time.Time
}

// WithBusinessUnit sets the business unit identifier.
func WithBusinessUnit(businessUnit string) OfferOption {
	return func(p *offerParams) { p.businessUnit = &businessUnit }
}

// WithSalePrice sets the sale (special) price.
func WithSalePrice(price float64) OfferOption {
	return func(p *offerParams) { p.salePrice = &price }
}

// WithSaleStartDate sets the first moment the sale price applies.
func WithSaleStartDate(t time.Time) OfferOption {
	return func(p *offerParams) { p.saleStartDate = &t }
}

// WithSaleEndDate sets the last moment the sale price applies.
func WithSaleEndDate(t time.Time) OfferOption {
	return func(p *offerParams) { p.saleEndDate = &t }
}

// WithIsPublished sets the publication flag.
func WithIsPublished(flag int) OfferOption {
	return func(p *offerParams) { p.isPublished = &flag }
}

// NewChannelOffer validates every field and returns a new offer. Operator
// code and status are checked against vocab; a nil vocab uses
// DefaultVocabulary. Fields are assigned in a fixed order with price always
// set before the sale price is checked against it. If any field is invalid
// no offer is returned.
func NewChannelOffer(
	vocab *Vocabulary,
	operatorCode string,
	price float64,
	stock int,
	status string,
	opts ...OfferOption,
) (*ChannelOffer, error) {
	if vocab == nil {
		vocab = defaultVocabulary
	}

	var p offerParams
	for _, opt := range opts {
		opt(&p)
	}

	o := &ChannelOffer{vocab: vocab}
	if err := o.SetOperatorCode(operatorCode); err != nil {
		return nil, err
	}
	if err := o.SetPrice(price); err != nil {
		return nil, err
	}
	if err := o.SetStock(stock); err != nil {
		return nil, err
	}
	if err := o.SetStatus(status); err != nil {
		return nil, err
	}
	o.SetBusinessUnit(p.businessUnit)
	// price is set above; the sale price check depends on it.
	if err := o.SetSalePrice(p.salePrice); err != nil {
		return nil, err
	}
	o.SetSaleStartDate(p.saleStartDate)
	o.SetSaleEndDate(p.saleEndDate)
	o.SetIsPublished(p.isPublished)
	return o, nil
}

// Readers

func (o *ChannelOffer) BusinessUnit() *string { return copyPtr(o.businessUnit) }

func (o *ChannelOffer) OperatorCode() string { return o.operatorCode }

func (o *ChannelOffer) Price() float64 { return o.price }

// SalePrice returns nil when no sale price is set.
func (o *ChannelOffer) SalePrice() *float64 { return copyPtr(o.salePrice) }

func (o *ChannelOffer) SaleStartDate() *time.Time { return copyPtr(o.saleStartDate) }

// SaleStartDateString returns the sale start date formatted with
// DateTimeLayout, or "" when it is not set.
func (o *ChannelOffer) SaleStartDateString() string { return formatDate(o.saleStartDate) }

func (o *ChannelOffer) SaleEndDate() *time.Time { return copyPtr(o.saleEndDate) }

// SaleEndDateString returns the sale end date formatted with
// DateTimeLayout, or "" when it is not set.
func (o *ChannelOffer) SaleEndDateString() string { return formatDate(o.saleEndDate) }

func (o *ChannelOffer) Stock() int { return o.stock }

// Available is the quantity available for sale. Same value as Stock.
func (o *ChannelOffer) Available() int { return o.stock }

func (o *ChannelOffer) Status() string { return o.status }

func (o *ChannelOffer) IsPublished() *int { return copyPtr(o.isPublished) }

// Setters

// SetBusinessUnit assigns the business unit. nil clears it.
func (o *ChannelOffer) SetBusinessUnit(businessUnit *string) {
	o.businessUnit = copyPtr(businessUnit)
}

// SetOperatorCode fails unless code belongs to the vocabulary.
func (o *ChannelOffer) SetOperatorCode(code string) error {
	if !o.vocabulary().IsOperatorCode(code) {
		return NewInvalidField(FieldOperatorCode)
	}
	o.operatorCode = code
	return nil
}

// SetPrice fails on a negative price. An existing sale price is not
// re-checked against the new price.
func (o *ChannelOffer) SetPrice(price float64) error {
	if price < 0 {
		return NewInvalidField(FieldPrice)
	}
	o.price = price
	return nil
}

// SetSalePrice assigns the sale price. A non-nil price must lie within
// [0, Price()]; nil clears the sale price and never fails.
func (o *ChannelOffer) SetSalePrice(price *float64) error {
	if price != nil && (*price < 0 || *price > o.price) {
		return NewInvalidField(FieldSpecialPrice)
	}
	o.salePrice = copyPtr(price)
	return nil
}

func (o *ChannelOffer) SetSaleStartDate(t *time.Time) { o.saleStartDate = copyPtr(t) }

func (o *ChannelOffer) SetSaleEndDate(t *time.Time) { o.saleEndDate = copyPtr(t) }

// SetStock fails on a negative stock.
func (o *ChannelOffer) SetStock(stock int) error {
	if stock < 0 {
		return NewInvalidField(FieldStock)
	}
	o.stock = stock
	return nil
}

// SetStatus fails unless status belongs to the vocabulary.
func (o *ChannelOffer) SetStatus(status string) error {
	if !o.vocabulary().IsStatus(status) {
		return NewInvalidField(FieldStatus)
	}
	o.status = status
	return nil
}

func (o *ChannelOffer) SetIsPublished(flag *int) { o.isPublished = copyPtr(flag) }

// AllAttributes returns the feed attributes of the offer in feed order.
// Absent sale price and sale dates are reported as "".
func (o *ChannelOffer) AllAttributes() Attributes {
	return Attributes{
		{Name: FeedOperatorCode, Value: o.operatorCode},
		{Name: FeedPrice, Value: o.price},
		{Name: FeedSpecialPrice, Value: valueOrEmpty(o.salePrice)},
		{Name: FeedSpecialFromDate, Value: valueOrEmpty(o.saleStartDate)},
		{Name: FeedSpecialToDate, Value: valueOrEmpty(o.saleEndDate)},
		{Name: FeedStock, Value: o.stock},
		{Name: FeedStatus, Value: o.status},
	}
}

// Serialize returns the structured form of the offer. BusinessUnit and the
// sale fields fall back to "" when absent; IsPublished stays nil.
func (o *ChannelOffer) Serialize() Record {
	r := Record{
		OperatorCode:    o.operatorCode,
		Price:           o.price,
		SpecialPrice:    valueOrEmpty(o.salePrice),
		SpecialFromDate: valueOrEmpty(o.saleStartDate),
		SpecialToDate:   valueOrEmpty(o.saleEndDate),
		Stock:           o.stock,
		Status:          o.status,
		IsPublished:     copyPtr(o.isPublished),
	}
	if o.businessUnit != nil {
		r.BusinessUnit = *o.businessUnit
	}
	return r
}

// MarshalJSON encodes the offer as its Serialize record.
func (o *ChannelOffer) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Serialize())
}

// Equal reports whether both offers hold the same field values.
func (o *ChannelOffer) Equal(other *ChannelOffer) bool {
	if o == nil || other == nil {
		return o == other
	}
	return eqPtr(o.businessUnit, other.businessUnit) &&
		o.operatorCode == other.operatorCode &&
		o.price == other.price &&
		eqPtr(o.salePrice, other.salePrice) &&
		eqTime(o.saleStartDate, other.saleStartDate) &&
		eqTime(o.saleEndDate, other.saleEndDate) &&
		o.stock == other.stock &&
		o.status == other.status &&
		eqPtr(o.isPublished, other.isPublished)
}

// Clone returns a copy that shares no mutable state with o.
func (o *ChannelOffer) Clone() *ChannelOffer {
	return &ChannelOffer{
		vocab:         o.vocab,
		businessUnit:  copyPtr(o.businessUnit),
		operatorCode:  o.operatorCode,
		price:         o.price,
		salePrice:     copyPtr(o.salePrice),
		saleStartDate: copyPtr(o.saleStartDate),
		saleEndDate:   copyPtr(o.saleEndDate),
		stock:         o.stock,
		status:        o.status,
		isPublished:   copyPtr(o.isPublished),
	}
}

func (o *ChannelOffer) vocabulary() *Vocabulary {
	if o.vocab == nil {
		return defaultVocabulary
	}
	return o.vocab
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateTimeLayout)
}

func valueOrEmpty[T any](v *T) any {
	if v == nil {
		return ""
	}
	return *v
}

func copyPtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func eqPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
