package payment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CreateOrderRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string  `json:"razorpay_order_id"`
	RazorpayPaymentID string  `json:"razorpay_payment_id"`
	RazorpaySignature string  `json:"razorpay_signature"`
	Amount            float64 `json:"amount"`
}

// POST /payment/order
func CreateOrderHandler(w *Workflow) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Valid amount and currency are required")
			return
		}

		order, err := w.CreateIntent(c.Request.Context(), identityFromContext(c), req.Amount, req.Currency)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				fail(c, http.StatusBadRequest, "Valid amount and currency are required")
				return
			}
			respondError(c, err, "Error creating order")
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}

// POST /payment/verify
func VerifyPaymentHandler(w *Workflow) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Missing payment details")
			return
		}

		result, err := w.VerifyAndCommit(c.Request.Context(), identityFromContext(c), VerifyRequest{
			OrderRef:   req.RazorpayOrderID,
			PaymentRef: req.RazorpayPaymentID,
			Signature:  req.RazorpaySignature,
			Amount:     req.Amount,
		})
		if err != nil {
			respondError(c, err, "Error verifying payment")
			return
		}

		if result.AlreadyProcessed {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "Order already exists",
				"order":   result.Order,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":        true,
			"message":        "Payment verified & new order saved successfully",
			"order":          result.Order,
			"previousOrders": result.History,
		})
	}
}

// POST /payment/getorders
func GetOrdersHandler(w *Workflow) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := w.ListOrderedProducts(c.Request.Context(), identityFromContext(c))
		if err != nil {
			respondError(c, err, "Server error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
	}
}

func identityFromContext(c *gin.Context) Identity {
	return Identity{
		UserID: c.GetString("user_id"),
		Role:   c.GetString("role"),
	}
}

// respondError maps workflow errors onto the HTTP contract. Anything outside
// the taxonomy is a dependency failure.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		fail(c, http.StatusUnauthorized, "User not authenticated")
	case errors.Is(err, ErrInvalidInput):
		fail(c, http.StatusBadRequest, "Missing payment details")
	case errors.Is(err, ErrVerificationFailed):
		fail(c, http.StatusBadRequest, "Payment verification failed")
	case errors.Is(err, ErrEmptyCart):
		fail(c, http.StatusBadRequest, "Cart is empty or not found")
	case errors.Is(err, ErrNoOrders):
		fail(c, http.StatusNotFound, "No orders found")
	default:
		fail(c, http.StatusInternalServerError, fallback)
	}
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}
