package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRazorpayCreateOrder(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "key-id", user)
		assert.Equal(t, "key-secret", pass)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_live1",
			"amount":   25000,
			"currency": "INR",
			"receipt":  gotBody["receipt"],
			"status":   "created",
		})
	}))
	defer srv.Close()

	client := NewRazorpayClient("key-id", "key-secret", srv.URL)
	order, err := client.CreateOrder(context.Background(), 25000, "INR", "order_rcptid_1")
	require.NoError(t, err)

	assert.Equal(t, "order_live1", order.ID)
	assert.Equal(t, int64(25000), order.Amount)
	assert.Equal(t, float64(25000), gotBody["amount"])
	assert.Equal(t, "INR", gotBody["currency"])
	assert.Equal(t, float64(1), gotBody["payment_capture"])
}

func TestRazorpayCreateOrderGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{
				"code":        "BAD_REQUEST_ERROR",
				"description": "amount must be at least 100",
			},
		})
	}))
	defer srv.Close()

	client := NewRazorpayClient("key-id", "key-secret", srv.URL)
	_, err := client.CreateOrder(context.Background(), 1, "INR", "order_rcptid_1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount must be at least 100")
}

func TestRazorpayCreateOrderEmptyID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"status": "created"})
	}))
	defer srv.Close()

	client := NewRazorpayClient("key-id", "key-secret", srv.URL)
	_, err := client.CreateOrder(context.Background(), 25000, "INR", "order_rcptid_1")
	assert.Error(t, err)
}
