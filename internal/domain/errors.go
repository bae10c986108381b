package domain

import "errors"

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrProductNotFound      = errors.New("product not found in cart")
	ErrCurrencyMismatch     = errors.New("currency mismatch")

	// ErrUnknownProduct is returned by catalogs for ids they do not carry.
	ErrUnknownProduct = errors.New("unknown product")
)
