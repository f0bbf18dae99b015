package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shankarpradhan/Megashopping/models"
	"github.com/shankarpradhan/Megashopping/telemetry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Workflow orchestrates order creation from payments: verify the gateway
// signature, materialize an order from the caller's cart, persist it exactly
// once per gateway order reference, then clear the cart.
type Workflow struct {
	orders  OrderStore
	carts   CartStore
	gateway Gateway
	secret  string

	log     *zap.Logger
	tracer  trace.Tracer
	metrics *telemetry.PaymentMetrics
	notify  func(models.Order)
}

func NewWorkflow(orders OrderStore, carts CartStore, gateway Gateway, secret string, log *zap.Logger, metrics *telemetry.PaymentMetrics) *Workflow {
	if log == nil {
		log = zap.NewNop()
	}
	return &Workflow{
		orders:  orders,
		carts:   carts,
		gateway: gateway,
		secret:  secret,
		log:     log,
		tracer:  otel.Tracer("payment"),
		metrics: metrics,
	}
}

// OnOrderCommitted registers a hook invoked after a new order is persisted
// and the cart cleared. Idempotent replays do not fire it.
func (w *Workflow) OnOrderCommitted(fn func(models.Order)) {
	w.notify = fn
}

// VerifyRequest carries the gateway callback payload.
type VerifyRequest struct {
	OrderRef   string
	PaymentRef string
	Signature  string
	Amount     float64
}

// Result is the outcome of a successful VerifyAndCommit call.
type Result struct {
	Order            *models.Order
	History          []models.Order
	AlreadyProcessed bool
}

// CreateIntent asks the gateway to mint a payment intent for the amount,
// scaled to minor units. No local state changes; every call mints a new
// remote intent.
func (w *Workflow) CreateIntent(ctx context.Context, identity Identity, amount float64, currency string) (*GatewayOrder, error) {
	ctx, span := w.tracer.Start(ctx, "payment.CreateIntent")
	defer span.End()

	if identity.UserID == "" {
		return nil, ErrUnauthenticated
	}
	if amount <= 0 || math.IsInf(amount, 0) || math.IsNaN(amount) || currency == "" {
		return nil, ErrInvalidInput
	}

	receipt := fmt.Sprintf("order_rcptid_%d", time.Now().UnixMilli())
	order, err := w.gateway.CreateOrder(ctx, int64(math.Round(amount*100)), currency, receipt)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	w.log.Info("payment intent created",
		zap.String("user_id", identity.UserID),
		zap.String("gateway_order_id", order.ID),
		zap.Int64("amount_minor", order.Amount))

	return order, nil
}

// VerifyAndCommit validates the gateway callback and commits an order from
// the caller's cart. It is idempotent on the gateway order reference:
// repeated delivery of the same callback returns the existing order and
// never duplicates it or re-clears the cart.
func (w *Workflow) VerifyAndCommit(ctx context.Context, identity Identity, req VerifyRequest) (*Result, error) {
	ctx, span := w.tracer.Start(ctx, "payment.VerifyAndCommit",
		trace.WithAttributes(attribute.String("gateway.order_ref", req.OrderRef)))
	defer span.End()

	if identity.UserID == "" {
		return nil, ErrUnauthenticated
	}
	if req.OrderRef == "" || req.PaymentRef == "" || req.Signature == "" {
		return nil, ErrInvalidInput
	}
	if req.Amount <= 0 || math.IsInf(req.Amount, 0) || math.IsNaN(req.Amount) {
		return nil, ErrInvalidInput
	}

	// Step 1: signature. A mismatch is terminal; nothing is written.
	if !VerifySignature(req.OrderRef, req.PaymentRef, req.Signature, w.secret) {
		if w.metrics != nil {
			w.metrics.VerificationFailures.Inc()
		}
		w.log.Warn("payment signature mismatch",
			zap.String("user_id", identity.UserID),
			zap.String("gateway_order_ref", req.OrderRef))
		return nil, ErrVerificationFailed
	}

	// Step 2: fast-path idempotency check. The unique index on the gateway
	// reference remains the true guard; see the Create error handling below.
	existing, err := w.orders.FindByGatewayRef(ctx, req.OrderRef)
	if err != nil && !errors.Is(err, ErrOrderNotFound) {
		return nil, fmt.Errorf("lookup order by gateway ref: %w", err)
	}
	if existing != nil {
		if w.metrics != nil {
			w.metrics.IdempotentReplays.Inc()
		}
		w.log.Info("duplicate payment callback, returning existing order",
			zap.String("gateway_order_ref", req.OrderRef),
			zap.Uint("order_id", existing.ID))
		return &Result{Order: existing, AlreadyProcessed: true}, nil
	}

	// Step 3: materialize from the cart.
	cart, err := w.carts.Get(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &models.Order{
		UserID:            identity.UserID,
		Items:             copyItems(cart.Items),
		RazorpayOrderID:   req.OrderRef,
		RazorpayPaymentID: req.PaymentRef,
		AmountPaid:        req.Amount,
		Status:            models.OrderStatusPaid,
	}

	// Step 4: persist the order, then clear the cart. The order must land
	// first: a crash in between leaves the cart intact and the replay of
	// the same callback finds the order via the idempotency check.
	if err := w.orders.Create(ctx, order); err != nil {
		if errors.Is(err, ErrDuplicateOrderRef) {
			// Lost a race against a concurrent delivery of the same
			// callback; the winner's order is the order.
			winner, ferr := w.orders.FindByGatewayRef(ctx, req.OrderRef)
			if ferr != nil {
				return nil, fmt.Errorf("lookup order after duplicate ref: %w", ferr)
			}
			if w.metrics != nil {
				w.metrics.IdempotentReplays.Inc()
			}
			return &Result{Order: winner, AlreadyProcessed: true}, nil
		}
		return nil, fmt.Errorf("persist order: %w", err)
	}

	if err := w.carts.Clear(ctx, identity.UserID); err != nil {
		// The order is committed; a retried callback returns it through the
		// idempotency path. Surface the failure rather than a half-success.
		w.log.Error("order committed but cart clear failed",
			zap.Uint("order_id", order.ID), zap.Error(err))
		return nil, fmt.Errorf("clear cart after commit: %w", err)
	}

	if w.metrics != nil {
		w.metrics.OrdersCommitted.Inc()
	}
	w.log.Info("order committed",
		zap.String("user_id", identity.UserID),
		zap.Uint("order_id", order.ID),
		zap.String("gateway_order_ref", req.OrderRef),
		zap.Float64("amount_paid", req.Amount),
		zap.Float64("cart_total", cartTotal(cart.Items)))

	if w.notify != nil {
		w.notify(*order)
	}

	// Step 5: history, newest first.
	history, err := w.orders.ListByUser(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("list user orders: %w", err)
	}

	return &Result{Order: order, History: history}, nil
}

// ListOrderedProducts flattens the line items of all the caller's orders
// into one sequence, preserving per-order grouping by concatenation order.
func (w *Workflow) ListOrderedProducts(ctx context.Context, identity Identity) ([]models.OrderItem, error) {
	ctx, span := w.tracer.Start(ctx, "payment.ListOrderedProducts")
	defer span.End()

	if identity.UserID == "" {
		return nil, ErrUnauthenticated
	}

	orders, err := w.orders.ListByUser(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("list user orders: %w", err)
	}
	if len(orders) == 0 {
		return nil, ErrNoOrders
	}

	var products []models.OrderItem
	for _, order := range orders {
		products = append(products, order.Items...)
	}
	return products, nil
}

// copyItems snapshots cart items by value; the order never references live
// cart rows.
func copyItems(items []models.CartItem) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}
	return out
}

func cartTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}
