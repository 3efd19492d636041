package domain

import "strings"

// Product is a marketplace product identified by its seller SKU. It owns
// the channel offers that augment it, at most one per operator code.
type Product struct {
	sellerSKU string
	offers    []*ChannelOffer
}

// NewProduct returns an empty product. The SKU is trimmed and must not be
// empty.
func NewProduct(sellerSKU string) (*Product, error) {
	sellerSKU = strings.TrimSpace(sellerSKU)
	if sellerSKU == "" {
		return nil, NewInvalidField(FieldSellerSKU)
	}
	return &Product{sellerSKU: sellerSKU}, nil
}

func (p *Product) SellerSKU() string { return p.sellerSKU }

// PutOffer stores a copy of o, replacing the offer with the same operator
// code if there is one. New operator codes are appended.
func (p *Product) PutOffer(o *ChannelOffer) {
	c := o.Clone()
	for i, cur := range p.offers {
		if cur.OperatorCode() == c.OperatorCode() {
			p.offers[i] = c
			return
		}
	}
	p.offers = append(p.offers, c)
}

// Offer returns the stored offer for operatorCode, or nil. The returned
// offer is owned by p; mutating it changes the product.
func (p *Product) Offer(operatorCode string) *ChannelOffer {
	for _, o := range p.offers {
		if o.OperatorCode() == operatorCode {
			return o
		}
	}
	return nil
}

// RemoveOffer drops the offer for operatorCode and reports whether one
// was present.
func (p *Product) RemoveOffer(operatorCode string) bool {
	for i, o := range p.offers {
		if o.OperatorCode() == operatorCode {
			p.offers = append(p.offers[:i], p.offers[i+1:]...)
			return true
		}
	}
	return false
}

// Offers returns the offers in insertion order.
func (p *Product) Offers() []*ChannelOffer {
	out := make([]*ChannelOffer, len(p.offers))
	copy(out, p.offers)
	return out
}

// Records returns Serialize for every offer in order.
func (p *Product) Records() []Record {
	out := make([]Record, 0, len(p.offers))
	for _, o := range p.offers {
		out = append(out, o.Serialize())
	}
	return out
}
