package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	g := &RazorpayGateway{Secret: "test-secret"}

	valid := sign("test-secret", "gw_order_1", "gw_pay_1")
	assert.True(t, g.VerifySignature("gw_order_1", "gw_pay_1", valid))

	assert.False(t, g.VerifySignature("gw_order_1", "gw_pay_1", valid+"00"))
	assert.False(t, g.VerifySignature("gw_order_2", "gw_pay_1", valid))
	assert.False(t, g.VerifySignature("gw_order_1", "gw_pay_1", sign("wrong-secret", "gw_order_1", "gw_pay_1")))
	assert.False(t, g.VerifySignature("gw_order_1", "gw_pay_1", ""))
}

func TestCreateSession(t *testing.T) {
	g := &RazorpayGateway{KeyID: "key_abc", Secret: "test-secret", Currency: "INR"}

	session := g.CreateSession("ord-1", 630)
	assert.NotEmpty(t, session.GatewaySessionID)
	assert.Equal(t, int64(630), session.Amount)
	assert.Equal(t, "INR", session.Currency)
	assert.Equal(t, "key_abc", session.Key)
}
