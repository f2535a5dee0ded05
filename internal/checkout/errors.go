package checkout

import "errors"

// Validation errors, caught before any network call.
var (
	ErrMissingShippingAddress = errors.New("shipping address is required")
	ErrMissingPaymentMethod   = errors.New("payment method is required")
)

var IllegalTransitionError = errors.New("illegal transition of checkout status")
