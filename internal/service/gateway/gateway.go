package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	cb "github.com/booklendiverse/booklend-service/pkg/circuit_breaker"
)

// Config holds the payment gateway credentials. KeySecret signs the
// order checkout payload the gateway echoes back on verification.
type Config struct {
	BaseURL   string        `yaml:"base_url" envconfig:"GATEWAY_BASE_URL" default:"https://api.razorpay.com/v1"`
	KeyID     string        `yaml:"key_id" envconfig:"GATEWAY_KEY_ID" default:"rzp_test_booklend"`
	KeySecret string        `yaml:"key_secret" envconfig:"GATEWAY_KEY_SECRET" default:"insecure-gateway-secret"`
	Timeout   time.Duration `yaml:"timeout" envconfig:"GATEWAY_TIMEOUT" default:"10s"`
}

type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type Gateway interface {
	CreateOrder(ctx context.Context, amountPaise int64, receipt string) (Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
	KeyID() string
}

type gateway struct {
	cfg    Config
	client *http.Client
	cb     cb.CircuitBreaker
	log    *zap.Logger
}

func New(cfg Config, log *zap.Logger) *gateway {
	return &gateway{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		cb:     cb.New(10, 5*time.Second, 0.5, 2),
		log:    log.Named("gateway"),
	}
}

func (g *gateway) KeyID() string {
	return g.cfg.KeyID
}

// CreateOrder registers the order with the gateway. The call is guarded by a
// circuit breaker so a flapping gateway fails fast instead of stacking up
// request goroutines.
func (g *gateway) CreateOrder(ctx context.Context, amountPaise int64, receipt string) (Order, error) {
	// without a configured gateway the order lives only in our database;
	// local setups run the whole checkout flow against it
	if g.cfg.BaseURL == "" {
		return Order{
			ID:       "order_" + uuid.NewString(),
			Amount:   amountPaise,
			Currency: "INR",
			Receipt:  receipt,
			Status:   "created",
		}, nil
	}
	var order Order
	err := g.cb.Call(func() error {
		body, err := json.Marshal(map[string]any{
			"amount":   amountPaise,
			"currency": "INR",
			"receipt":  receipt,
		})
		if err != nil {
			return err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/orders", bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.SetBasicAuth(g.cfg.KeyID, g.cfg.KeySecret)

		resp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			g.log.Warn("create order", zap.Int("status", resp.StatusCode), zap.ByteString("body", data))
			return errors.Errorf("gateway status %d", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(&order)
	})
	if err != nil {
		return Order{}, errors.Wrap(err, "create order")
	}
	return order, nil
}

// VerifySignature checks the gateway's HMAC-SHA256 signature over
// "<orderID>|<paymentID>". Comparison is constant-time.
func (g *gateway) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.cfg.KeySecret))
	fmt.Fprintf(mac, "%s|%s", orderID, paymentID)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
