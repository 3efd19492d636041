package domain

import (
	"bytes"
	"encoding/json"
)

// Feed field names. These are the element names consumed by the feed
// endpoint and must not change.
const (
	FeedBusinessUnit    = "BusinessUnit"
	FeedOperatorCode    = "OperatorCode"
	FeedPrice           = "Price"
	FeedSpecialPrice    = "SpecialPrice"
	FeedSpecialFromDate = "SpecialFromDate"
	FeedSpecialToDate   = "SpecialToDate"
	FeedStock           = "Stock"
	FeedStatus          = "Status"
	FeedIsPublished     = "IsPublished"
)

// Attribute is a single feed field.
type Attribute struct {
	Name  string
	Value any
}

// Attributes is an ordered set of feed fields. Order is the order fields
// appear in the feed document.
type Attributes []Attribute

// Get returns the value stored under name.
func (a Attributes) Get(name string) (any, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return nil, false
}

// Names returns the field names in order.
func (a Attributes) Names() []string {
	names := make([]string, len(a))
	for i, attr := range a {
		names[i] = attr.Name
	}
	return names
}

// MarshalJSON encodes the attributes as a JSON object keeping field order.
func (a Attributes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, attr := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(attr.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(attr.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Record is the structured form of a ChannelOffer. SpecialPrice holds a
// float64 and the special dates a time.Time, or "" when unset.
type Record struct {
	BusinessUnit    string  `json:"businessUnit"`
	OperatorCode    string  `json:"operatorCode"`
	Price           float64 `json:"price"`
	SpecialPrice    any     `json:"specialPrice"`
	SpecialFromDate any     `json:"specialFromDate"`
	SpecialToDate   any     `json:"specialToDate"`
	Stock           int     `json:"stock"`
	Status          string  `json:"status"`
	IsPublished     *int    `json:"isPublished"`
}
