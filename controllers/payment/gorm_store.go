package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/shankarpradhan/Megashopping/cache"
	"github.com/shankarpradhan/Megashopping/models"
	"gorm.io/gorm"
)

// GormOrderStore persists orders in postgres. The DB must be opened with
// TranslateError so unique violations surface as gorm.ErrDuplicatedKey.
type GormOrderStore struct {
	db *gorm.DB
}

func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

func (s *GormOrderStore) FindByGatewayRef(ctx context.Context, ref string) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("razorpay_order_id = ?", ref).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *GormOrderStore) Create(ctx context.Context, order *models.Order) error {
	err := s.db.WithContext(ctx).Create(order).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateOrderRef
	}
	return err
}

func (s *GormOrderStore) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// GormCartStore reads and clears carts. On clear it also drops the redis
// cache entry so stale items cannot resurface after checkout.
type GormCartStore struct {
	db    *gorm.DB
	cache cache.Cache // optional
}

func NewGormCartStore(db *gorm.DB, c cache.Cache) *GormCartStore {
	return &GormCartStore{db: db, cache: c}
}

func (s *GormCartStore) Get(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *GormCartStore) Clear(ctx context.Context, userID string) error {
	var cart models.Cart
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil // nothing to clear
	}
	if err != nil {
		return err
	}

	// The whole cart goes, not just its items; the next cart mutation
	// creates a fresh row.
	if err := s.db.WithContext(ctx).
		Where("cart_id = ?", cart.CartID).
		Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("clear cart items: %w", err)
	}
	if err := s.db.WithContext(ctx).Delete(&cart).Error; err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, userID)
	}
	return nil
}
