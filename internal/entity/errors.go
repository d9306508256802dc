package domain

import "errors"

// Sentinel errors shared by use cases and adapters. Handlers map these onto
// HTTP statuses with errors.Is; anything else is an internal error.
var (
	ErrItemNotFound  = errors.New("item not found")
	ErrCartNotFound  = errors.New("cart not found")
	ErrItemNotInCart = errors.New("item not found in cart")
	ErrOrderNotFound = errors.New("order not found")
	ErrUserNotFound  = errors.New("user not found")

	ErrCartEmpty       = errors.New("cart is empty")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidPrice    = errors.New("price must be greater than zero")
	ErrInvalidName     = errors.New("name is required")

	ErrMissingCredentials = errors.New("username and password are required")
	ErrUsernameTaken      = errors.New("user with this username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// NotFound reports whether err is any of the missing-resource sentinels.
func NotFound(err error) bool {
	return errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrCartNotFound) ||
		errors.Is(err, ErrItemNotInCart) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// Invalid reports whether err is a request-validation sentinel.
func Invalid(err error) bool {
	return errors.Is(err, ErrCartEmpty) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidPrice) ||
		errors.Is(err, ErrInvalidName) ||
		errors.Is(err, ErrMissingCredentials)
}
