package cart

import "errors"

// ErrInvalidQuantity is caught before any network call is made.
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")
