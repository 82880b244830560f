package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestGateway_VerifySignature(t *testing.T) {
	t.Parallel()
	cfg := Config{KeySecret: "topsecret"}
	gw := New(cfg, zap.NewExample())

	good := sign("topsecret", "order_1", "pay_1")
	require.True(t, gw.VerifySignature("order_1", "pay_1", good))

	require.False(t, gw.VerifySignature("order_1", "pay_2", good), "signature bound to another payment")
	require.False(t, gw.VerifySignature("order_2", "pay_1", good), "signature bound to another order")
	require.False(t, gw.VerifySignature("order_1", "pay_1", sign("wrong", "order_1", "pay_1")), "wrong secret")
	require.False(t, gw.VerifySignature("order_1", "pay_1", ""), "empty signature")
}

func TestGateway_CreateOrder(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "key_id", user)
		require.Equal(t, "key_secret", pass)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.EqualValues(t, 35000, body["amount"])
		require.Equal(t, "INR", body["currency"])

		_ = json.NewEncoder(w).Encode(Order{
			ID:       "order_42",
			Amount:   35000,
			Currency: "INR",
			Receipt:  body["receipt"].(string),
			Status:   "created",
		})
	}))
	defer srv.Close()

	gw := New(Config{
		BaseURL:   srv.URL,
		KeyID:     "key_id",
		KeySecret: "key_secret",
		Timeout:   5 * time.Second,
	}, zap.NewExample())

	order, err := gw.CreateOrder(context.Background(), 35000, "BLD-TEST-AAAAAA")
	require.NoError(t, err)
	require.Equal(t, "order_42", order.ID)
	require.Equal(t, "BLD-TEST-AAAAAA", order.Receipt)
}

func TestGateway_CreateOrder_LocalMode(t *testing.T) {
	t.Parallel()
	gw := New(Config{}, zap.NewExample())

	order, err := gw.CreateOrder(context.Background(), 100, "BLD-TEST-AAAAAA")
	require.NoError(t, err)
	require.Contains(t, order.ID, "order_")
	require.Equal(t, "created", order.Status)
	require.Equal(t, "BLD-TEST-AAAAAA", order.Receipt)
}

func TestGateway_CreateOrder_UpstreamError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	gw := New(Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, zap.NewExample())

	_, err := gw.CreateOrder(context.Background(), 100, "BLD-TEST-AAAAAA")
	require.Error(t, err)
}
