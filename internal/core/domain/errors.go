package domain

import "errors"

// ErrInvalidField matches every *InvalidFieldError via errors.Is.
var ErrInvalidField = errors.New("invalid field")

// Field names reported by InvalidFieldError.
const (
	FieldOperatorCode = "operatorCode"
	FieldPrice        = "price"
	FieldSpecialPrice = "specialPrice"
	FieldStock        = "stock"
	FieldStatus       = "status"
	FieldSellerSKU    = "sellerSku"
)

// InvalidFieldError is returned when a value assigned to a field violates
// its constraint. Field carries the name of the offending field.
type InvalidFieldError struct {
	Field string
}

// NewInvalidField returns an InvalidFieldError for the named field.
func NewInvalidField(field string) *InvalidFieldError {
	return &InvalidFieldError{Field: field}
}

func (e *InvalidFieldError) Error() string {
	return "invalid field: " + e.Field
}

// Is reports whether target is ErrInvalidField.
func (e *InvalidFieldError) Is(target error) bool {
	return target == ErrInvalidField
}
