package cache

import (
	"context"
	"errors"

	"github.com/shankarpradhan/Megashopping/models"
)

var ErrCacheMiss = errors.New("cache miss")

// Cache is a read-through cache for per-user carts. Implementations must be
// safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, userID string) (*models.Cart, error)
	Set(ctx context.Context, userID string, cart *models.Cart) error
	Delete(ctx context.Context, userID string) error
}
