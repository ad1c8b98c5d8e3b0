package paystack

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "sk_test_abc123"
	body := []byte(`{"event":"charge.success","data":{"reference":"TXN_1_x"}}`)

	t.Run("accepts a correctly signed body", func(t *testing.T) {
		assert.True(t, VerifySignature(secret, body, sign(secret, body)))
	})

	t.Run("rejects a tampered body", func(t *testing.T) {
		signature := sign(secret, body)
		tampered := []byte(`{"event":"charge.success","data":{"reference":"TXN_2_y"}}`)
		assert.False(t, VerifySignature(secret, tampered, signature))
	})

	t.Run("rejects a signature made with another secret", func(t *testing.T) {
		assert.False(t, VerifySignature(secret, body, sign("sk_test_other", body)))
	})

	t.Run("rejects an empty signature", func(t *testing.T) {
		assert.False(t, VerifySignature(secret, body, ""))
	})
}

func TestParseEvent(t *testing.T) {
	body := []byte(`{
		"event": "charge.success",
		"data": {"reference": "TXN_1712345678_9f3a2b7", "amount": 500000, "status": "success"}
	}`)

	event, err := ParseEvent(body)

	assert.NoError(t, err)
	assert.Equal(t, EventChargeSuccess, event.Event)
	assert.Equal(t, "TXN_1712345678_9f3a2b7", event.Data.Reference)
	assert.Equal(t, int64(500000), event.Data.Amount)
}

func TestParseEventRejectsGarbage(t *testing.T) {
	_, err := ParseEvent([]byte("not json"))
	assert.Error(t, err)
}
