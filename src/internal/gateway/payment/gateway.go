package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"kitchen-service/src/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Gateway models the online payment provider. Session creation is the one
// outbound call; signature verification is pure local computation and never
// calls back out.
type Gateway interface {
	CreateSession(orderID string, amount int64) *model.GatewaySessionResponse
	VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool
}

type RazorpayGateway struct {
	KeyID    string
	Secret   string
	Currency string
}

func NewGateway(v *viper.Viper) *RazorpayGateway {
	currency := v.GetString("payment.gateway.currency")
	if currency == "" {
		currency = "INR"
	}
	return &RazorpayGateway{
		KeyID:    v.GetString("payment.gateway.key_id"),
		Secret:   v.GetString("payment.gateway.secret"),
		Currency: currency,
	}
}

func (g *RazorpayGateway) CreateSession(orderID string, amount int64) *model.GatewaySessionResponse {
	return &model.GatewaySessionResponse{
		GatewaySessionID: "session_" + uuid.NewString(),
		Amount:           amount,
		Currency:         g.Currency,
		Key:              g.KeyID,
	}
}

// VerifySignature recomputes HMAC-SHA256 over "orderId|paymentId" with the
// gateway secret and compares in constant time.
func (g *RazorpayGateway) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.Secret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
