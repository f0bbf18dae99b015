package payment

import "errors"

var (
	// ErrUnauthenticated means the caller identity is missing or unresolved.
	ErrUnauthenticated = errors.New("user not authenticated")

	// ErrInvalidInput means a required payment field is missing or malformed.
	ErrInvalidInput = errors.New("missing payment details")

	// ErrVerificationFailed means the callback signature did not match.
	ErrVerificationFailed = errors.New("payment verification failed")

	// ErrEmptyCart means there are no line items to materialize an order from.
	ErrEmptyCart = errors.New("cart is empty or not found")

	// ErrNoOrders means the user has no orders yet; a non-fatal empty state.
	ErrNoOrders = errors.New("no orders found")

	// ErrOrderNotFound is returned by OrderStore lookups with no match.
	ErrOrderNotFound = errors.New("order not found")

	// ErrDuplicateOrderRef is returned by OrderStore.Create when another
	// order already holds the same gateway order reference. The workflow
	// absorbs it; callers never see it.
	ErrDuplicateOrderRef = errors.New("duplicate gateway order reference")
)
