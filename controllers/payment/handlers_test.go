package payment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shankarpradhan/Megashopping/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(wf *Workflow, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
			c.Set("role", "user")
		}
	})
	r.POST("/payment/order", CreateOrderHandler(wf))
	r.POST("/payment/verify", VerifyPaymentHandler(wf))
	r.POST("/payment/getorders", GetOrdersHandler(wf))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestCreateOrderHandler(t *testing.T) {
	gw := &mockGateway{}
	wf := newTestWorkflow(&mockOrderStore{}, &mockCartStore{}, gw)
	r := newTestRouter(wf, "user-1")

	w, resp := doJSON(t, r, "/payment/order", gin.H{"amount": 250, "currency": "INR"})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, true, resp["success"])
	order := resp["order"].(map[string]interface{})
	assert.Equal(t, "order_mock123", order["id"])
	assert.Equal(t, float64(25000), order["amount"])
}

func TestCreateOrderHandlerRejectsBadAmount(t *testing.T) {
	wf := newTestWorkflow(&mockOrderStore{}, &mockCartStore{}, &mockGateway{})
	r := newTestRouter(wf, "user-1")

	w, resp := doJSON(t, r, "/payment/order", gin.H{"amount": -1, "currency": "INR"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, resp["success"])
	assert.NotEmpty(t, resp["message"])
}

func TestVerifyHandlerSuccessAndReplay(t *testing.T) {
	orders := &mockOrderStore{}
	carts := &mockCartStore{cart: testCart("user-1")}
	wf := newTestWorkflow(orders, carts, &mockGateway{})
	r := newTestRouter(wf, "user-1")

	body := gin.H{
		"razorpay_order_id":   "order_a1",
		"razorpay_payment_id": "pay_b2",
		"razorpay_signature":  Sign("order_a1", "pay_b2", testSecret),
		"amount":              250,
	}

	w, resp := doJSON(t, r, "/payment/verify", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.Contains(t, resp, "previousOrders")

	// Same callback again: still 200, flagged as existing, no history field.
	w, resp = doJSON(t, r, "/payment/verify", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Order already exists", resp["message"])
	assert.NotContains(t, resp, "previousOrders")

	assert.Len(t, orders.orders, 1)
}

func TestVerifyHandlerTamperedSignature(t *testing.T) {
	carts := &mockCartStore{cart: testCart("user-1")}
	wf := newTestWorkflow(&mockOrderStore{}, carts, &mockGateway{})
	r := newTestRouter(wf, "user-1")

	w, resp := doJSON(t, r, "/payment/verify", gin.H{
		"razorpay_order_id":   "order_a1",
		"razorpay_payment_id": "pay_b2",
		"razorpay_signature":  "deadbeef",
		"amount":              250,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Payment verification failed", resp["message"])
}

func TestVerifyHandlerUnauthenticated(t *testing.T) {
	wf := newTestWorkflow(&mockOrderStore{}, &mockCartStore{}, &mockGateway{})
	r := newTestRouter(wf, "") // no identity in context

	w, resp := doJSON(t, r, "/payment/verify", gin.H{
		"razorpay_order_id":   "order_a1",
		"razorpay_payment_id": "pay_b2",
		"razorpay_signature":  Sign("order_a1", "pay_b2", testSecret),
		"amount":              250,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, resp["success"])
}

func TestVerifyHandlerEmptyCart(t *testing.T) {
	wf := newTestWorkflow(&mockOrderStore{}, &mockCartStore{}, &mockGateway{})
	r := newTestRouter(wf, "user-1")

	w, resp := doJSON(t, r, "/payment/verify", gin.H{
		"razorpay_order_id":   "order_a1",
		"razorpay_payment_id": "pay_b2",
		"razorpay_signature":  Sign("order_a1", "pay_b2", testSecret),
		"amount":              250,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cart is empty or not found", resp["message"])
}

func TestGetOrdersHandler(t *testing.T) {
	orders := &mockOrderStore{
		orders: []models.Order{
			{ID: 1, UserID: "user-1", RazorpayOrderID: "order_a",
				Items: []models.OrderItem{{ProductName: "a"}, {ProductName: "b"}}},
		},
	}
	wf := newTestWorkflow(orders, &mockCartStore{}, &mockGateway{})
	r := newTestRouter(wf, "user-1")

	w, resp := doJSON(t, r, "/payment/getorders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.Len(t, resp["products"], 2)
}

func TestGetOrdersHandlerNoOrders(t *testing.T) {
	wf := newTestWorkflow(&mockOrderStore{}, &mockCartStore{}, &mockGateway{})
	r := newTestRouter(wf, "user-1")

	w, resp := doJSON(t, r, "/payment/getorders", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "No orders found", resp["message"])
}

func TestVerifyHandlerStatusMapping(t *testing.T) {
	// Dependency failures map to 500 with the generic envelope.
	orders := &mockOrderStore{findErr: fmt.Errorf("connection refused")}
	carts := &mockCartStore{cart: testCart("user-1")}
	wf := newTestWorkflow(orders, carts, &mockGateway{})
	r := newTestRouter(wf, "user-1")

	w, resp := doJSON(t, r, "/payment/verify", gin.H{
		"razorpay_order_id":   "order_a1",
		"razorpay_payment_id": "pay_b2",
		"razorpay_signature":  Sign("order_a1", "pay_b2", testSecret),
		"amount":              250,
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, resp["success"])
}
