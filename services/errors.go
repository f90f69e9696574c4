package services

import "errors"

// Domain errors. Controllers map these to HTTP statuses; nothing below is ever
// swallowed, and no partial state is persisted once one is returned.
var (
	// validation (caller-fixable)
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrPriceMismatch   = errors.New("price does not match the menu price")
	ErrTotalMismatch   = errors.New("total does not match the cart")
	ErrInvalidDate     = errors.New("date cannot be in the past")

	// conflict
	ErrDuplicateCartItem = errors.New("menu item already in cart")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrMenuItemInUse     = errors.New("menu item is referenced by cart or order items")
	ErrCategoryInUse     = errors.New("category still has menu items")

	// authorization / lookup
	ErrForbidden = errors.New("forbidden")
	ErrNotFound  = errors.New("not found")
)
