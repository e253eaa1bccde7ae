package order

import "errors"

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrUnknownProduct  = errors.New("product not found")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

// IsValidation reports whether err was caused by bad client input, as
// opposed to a datastore failure. Validation errors are safe to echo back
// with a 4xx status.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyCart) ||
		errors.Is(err, ErrUnknownProduct) ||
		errors.Is(err, ErrInvalidQuantity)
}
