package gateway

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
)

// SignatureHeaderPaystack is the header carrying the hex HMAC-SHA512
// of the exact raw request body.
const SignatureHeaderPaystack = "x-paystack-signature"

const paystackSucceededType = "charge.success"

// VerifyPaystack checks the signature over the raw body bytes, never a
// re-serialized form. Empty secret fails closed.
func VerifyPaystack(body []byte, signature, secret string) error {
	if secret == "" {
		return ErrMissingSecret
	}
	if signature == "" {
		return ErrInvalidSignature
	}

	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}

type paystackPayload struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
	} `json:"data"`
}

// DecodePaystackEvent normalizes a verified Paystack payload.
func DecodePaystackEvent(body []byte) (Event, error) {
	var payload paystackPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return Event{}, err
	}

	event := Event{Kind: EventOther, Type: payload.Event, Reference: payload.Data.Reference}
	if payload.Event == paystackSucceededType {
		event.Kind = EventPaymentSucceeded
	}
	return event, nil
}
