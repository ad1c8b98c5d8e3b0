// Package paystack implements the server-side surface of the Paystack
// integration: webhook payload types and signature verification. The hosted
// checkout popup runs client-side, so no gateway API calls originate here.
package paystack

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
)

// SignatureHeader carries the hex HMAC-SHA512 of the raw webhook body.
const SignatureHeader = "x-paystack-signature"

// EventChargeSuccess is emitted when a charge settles.
const EventChargeSuccess = "charge.success"

// WebhookEvent is the envelope Paystack posts to the webhook endpoint.
type WebhookEvent struct {
	Event string      `json:"event"`
	Data  WebhookData `json:"data"`
}

// WebhookData is the charge payload inside a webhook event. Amount is in the
// currency's minor unit.
type WebhookData struct {
	Reference string                 `json:"reference"`
	Amount    int64                  `json:"amount"`
	Status    string                 `json:"status"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// VerifySignature recomputes the HMAC-SHA512 of the exact raw body bytes and
// compares it against the signature header in constant time. The body must be
// the unparsed request payload; re-serialized JSON will not match.
func VerifySignature(secret string, body []byte, signature string) bool {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// ParseEvent decodes a verified webhook body.
func ParseEvent(body []byte) (*WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
