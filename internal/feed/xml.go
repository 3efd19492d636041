// Package feed renders marketplace feed documents from channel offers.
package feed

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"channel-offers/internal/core/domain"
)

// ErrNonFinite is returned when an offer holds an infinite or NaN number,
// which has no feed representation.
var ErrNonFinite = errors.New("non-finite number")

// Element names of the product update envelope.
const (
	elemRequest       = "Request"
	elemProduct       = "Product"
	elemSellerSKU     = "SellerSku"
	elemBusinessUnits = "BusinessUnits"
	elemBusinessUnit  = "BusinessUnit"
)

// Write encodes a product update request for products to w. Each offer is
// written as a BusinessUnit element whose children follow the order of
// ChannelOffer.AllAttributes. Empty values produce empty elements.
func Write(w io.Writer, products ...*domain.Product) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	if err := enc.EncodeToken(start(elemRequest)); err != nil {
		return err
	}
	for _, p := range products {
		if err := writeProduct(enc, p); err != nil {
			return fmt.Errorf("product %s: %w", p.SellerSKU(), err)
		}
	}
	if err := enc.EncodeToken(end(elemRequest)); err != nil {
		return err
	}
	return enc.Flush()
}

// Render returns the document produced by Write.
func Render(products ...*domain.Product) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, products...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeProduct(enc *xml.Encoder, p *domain.Product) error {
	if err := enc.EncodeToken(start(elemProduct)); err != nil {
		return err
	}
	if err := writeField(enc, elemSellerSKU, p.SellerSKU()); err != nil {
		return err
	}
	if err := enc.EncodeToken(start(elemBusinessUnits)); err != nil {
		return err
	}
	for _, o := range p.Offers() {
		if err := enc.EncodeToken(start(elemBusinessUnit)); err != nil {
			return err
		}
		for _, attr := range o.AllAttributes() {
			value, err := FormatValue(attr.Value)
			if err != nil {
				return fmt.Errorf("offer %s %s: %w", o.OperatorCode(), attr.Name, err)
			}
			if err = writeField(enc, attr.Name, value); err != nil {
				return err
			}
		}
		if err := enc.EncodeToken(end(elemBusinessUnit)); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(end(elemBusinessUnits)); err != nil {
		return err
	}
	return enc.EncodeToken(end(elemProduct))
}

func writeField(enc *xml.Encoder, name, value string) error {
	if err := enc.EncodeToken(start(name)); err != nil {
		return err
	}
	if value != "" {
		if err := enc.EncodeToken(xml.CharData(value)); err != nil {
			return err
		}
	}
	return enc.EncodeToken(end(name))
}

// FormatValue converts an attribute value to its feed text. Prices are
// written with two decimals and dates with domain.DateTimeLayout.
// Infinite and NaN numbers yield ErrNonFinite.
func FormatValue(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case float64:
		if math.IsInf(val, 0) || math.IsNaN(val) {
			return "", fmt.Errorf("%w: %v", ErrNonFinite, val)
		}
		return decimal.NewFromFloat(val).StringFixed(2), nil
	case int:
		return strconv.Itoa(val), nil
	case time.Time:
		return val.Format(domain.DateTimeLayout), nil
	default:
		return fmt.Sprint(val), nil
	}
}

func start(name string) xml.StartElement { return xml.StartElement{Name: xml.Name{Local: name}} }

func end(name string) xml.EndElement { return xml.EndElement{Name: xml.Name{Local: name}} }
