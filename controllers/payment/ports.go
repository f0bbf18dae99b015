package payment

import (
	"context"

	"github.com/shankarpradhan/Megashopping/models"
)

// Identity is the resolved caller, passed explicitly into every operation.
// The workflow never reads ambient session state.
type Identity struct {
	UserID string
	Role   string
}

// OrderStore is the durable collection of committed orders.
type OrderStore interface {
	// FindByGatewayRef returns ErrOrderNotFound when no order holds ref.
	FindByGatewayRef(ctx context.Context, ref string) (*models.Order, error)

	// Create persists a new order. It must return ErrDuplicateOrderRef when
	// the gateway order reference is already taken; that uniqueness
	// constraint, not the workflow's pre-check, is the idempotency guard.
	Create(ctx context.Context, order *models.Order) error

	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
}

// CartStore reads and clears per-user carts.
type CartStore interface {
	// Get returns (nil, nil) when the user has no cart.
	Get(ctx context.Context, userID string) (*models.Cart, error)
	Clear(ctx context.Context, userID string) error
}

// GatewayOrder is the opaque handle minted by the payment gateway for one
// payment intent.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // minor units
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Gateway creates remote payment intents.
type Gateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*GatewayOrder, error)
}
