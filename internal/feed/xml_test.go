package feed

import (
	"bytes"
	"encoding/xml"
	"io"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"channel-offers/internal/core/domain"
)

// businessUnitChildren returns the element names found directly under each
// BusinessUnit element, in document order.
func businessUnitChildren(t *testing.T, doc []byte) [][]string {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(doc))
	var (
		out   [][]string
		stack []string
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		switch el := tok.(type) {
		case xml.StartElement:
			if len(stack) > 0 && stack[len(stack)-1] == "BusinessUnit" {
				out[len(out)-1] = append(out[len(out)-1], el.Name.Local)
			}
			if el.Name.Local == "BusinessUnit" {
				out = append(out, nil)
			}
			stack = append(stack, el.Name.Local)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}
	return out
}

func TestRenderFollowsAttributeOrder(t *testing.T) {
	p, err := domain.NewProduct("SKU-1")
	require.NoError(t, err)
	o, err := domain.NewChannelOffer(nil, "MP", 100, 5, "active")
	require.NoError(t, err)
	p.PutOffer(o)

	doc, err := Render(p)
	require.NoError(t, err)

	children := businessUnitChildren(t, doc)
	require.Len(t, children, 1)
	assert.Equal(t, o.AllAttributes().Names(), children[0])

	s := string(doc)
	assert.True(t, strings.HasPrefix(s, xml.Header))
	assert.Contains(t, s, "<SellerSku>SKU-1</SellerSku>")
	assert.Contains(t, s, "<OperatorCode>MP</OperatorCode>")
	assert.Contains(t, s, "<Price>100.00</Price>")
	assert.Contains(t, s, "<SpecialPrice></SpecialPrice>")
	assert.Contains(t, s, "<SpecialFromDate></SpecialFromDate>")
	assert.Contains(t, s, "<Stock>5</Stock>")
	assert.NotContains(t, s, "<IsPublished>")
}

func TestRenderSaleFields(t *testing.T) {
	from := time.Date(2024, 11, 29, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 2, 23, 59, 59, 0, time.UTC)
	p, err := domain.NewProduct("SKU-2")
	require.NoError(t, err)
	o, err := domain.NewChannelOffer(nil, "facl", 19990, 3, "active",
		domain.WithSalePrice(14990.5), domain.WithSaleStartDate(from), domain.WithSaleEndDate(to))
	require.NoError(t, err)
	p.PutOffer(o)

	doc, err := Render(p)
	require.NoError(t, err)
	s := string(doc)
	assert.Contains(t, s, "<SpecialPrice>14990.50</SpecialPrice>")
	assert.Contains(t, s, "<SpecialFromDate>2024-11-29 00:00:00</SpecialFromDate>")
	assert.Contains(t, s, "<SpecialToDate>2024-12-02 23:59:59</SpecialToDate>")
}

func TestRenderSeveralProducts(t *testing.T) {
	var products []*domain.Product
	for _, sku := range []string{"A", "B"} {
		p, err := domain.NewProduct(sku)
		require.NoError(t, err)
		for _, code := range []string{"facl", "fape"} {
			o, err := domain.NewChannelOffer(nil, code, 1, 1, "inactive")
			require.NoError(t, err)
			p.PutOffer(o)
		}
		products = append(products, p)
	}

	doc, err := Render(products...)
	require.NoError(t, err)
	assert.Len(t, businessUnitChildren(t, doc), 4)
	assert.Equal(t, 2, strings.Count(string(doc), "<Product>"))
}

func TestRenderEscapesText(t *testing.T) {
	p, err := domain.NewProduct("A&B<1>")
	require.NoError(t, err)

	doc, err := Render(p)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "<SellerSku>A&amp;B&lt;1&gt;</SellerSku>")
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{in: nil, want: ""},
		{in: "", want: ""},
		{in: "active", want: "active"},
		{in: 0.0, want: "0.00"},
		{in: 10.005, want: "10.01"},
		{in: 42, want: "42"},
		{in: time.Date(2023, 5, 6, 7, 8, 9, 0, time.UTC), want: "2023-05-06 07:08:09"},
		{in: int64(7), want: "7"},
	}
	for _, tt := range tests {
		got, err := FormatValue(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestFormatValueNonFinite(t *testing.T) {
	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err := FormatValue(v)
		assert.ErrorIs(t, err, ErrNonFinite)
	}
}

// TestRenderInfinitePrice renders an offer whose price is accepted by the
// domain but cannot be written to a feed.
func TestRenderInfinitePrice(t *testing.T) {
	p, err := domain.NewProduct("SKU-INF")
	require.NoError(t, err)
	o, err := domain.NewChannelOffer(nil, "MP", math.Inf(1), 1, "active")
	require.NoError(t, err)
	p.PutOffer(o)

	var doc []byte
	require.NotPanics(t, func() { doc, err = Render(p) })
	require.ErrorIs(t, err, ErrNonFinite)
	assert.Nil(t, doc)
	assert.Contains(t, err.Error(), "SKU-INF")
}
