package errors

import "errors"

var (
	// ErrAPIKeyMissing is reported before any network call when no
	// credential is stored. It never reaches the store API.
	ErrAPIKeyMissing = errors.New("api key is not set")

	// ErrOrderNotFound is reported when an order referenced by the user
	// is absent from the current listing.
	ErrOrderNotFound = errors.New("order not found")

	// ErrCartEmpty blocks order submission for an empty cart.
	ErrCartEmpty = errors.New("cart is empty")
)
