package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SignatureHeaderStripe carries a composite "t=<unix>,v1=<hex>" value,
// possibly with several v1 entries during secret rotation.
const SignatureHeaderStripe = "Stripe-Signature"

// ReplayWindow bounds the age of a signed payload. Older deliveries are
// rejected regardless of signature validity.
const ReplayWindow = 300 * time.Second

const stripeSucceededType = "checkout.session.completed"

type stripeSignature struct {
	timestamp int64
	v1        []string
}

func parseStripeSignature(header string) (stripeSignature, error) {
	var sig stripeSignature
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "t":
			ts, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return sig, ErrMalformedSignature
			}
			sig.timestamp = ts
		case "v1":
			sig.v1 = append(sig.v1, value)
		}
	}
	if sig.timestamp == 0 || len(sig.v1) == 0 {
		return sig, ErrMalformedSignature
	}
	return sig, nil
}

// VerifyStripe parses the signature header, enforces the replay window
// against now, and compares HMAC-SHA256(secret, "<ts>.<body>") against
// every v1 candidate timing-safely.
func VerifyStripe(body []byte, header, secret string, now time.Time) error {
	if secret == "" {
		return ErrMissingSecret
	}
	if header == "" {
		return ErrMalformedSignature
	}

	sig, err := parseStripeSignature(header)
	if err != nil {
		return err
	}

	age := now.Unix() - sig.timestamp
	if age < 0 {
		age = -age
	}
	if time.Duration(age)*time.Second > ReplayWindow {
		return ErrStaleTimestamp
	}

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", sig.timestamp)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	for _, candidate := range sig.v1 {
		if hmac.Equal([]byte(expected), []byte(candidate)) {
			return nil
		}
	}
	return ErrInvalidSignature
}

type stripePayload struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ClientReferenceID string `json:"client_reference_id"`
			Metadata          struct {
				Reference string `json:"reference"`
			} `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// DecodeStripeEvent normalizes a verified Stripe payload. The order
// reference is echoed back either as client_reference_id or inside
// session metadata, depending on how the session was created.
func DecodeStripeEvent(body []byte) (Event, error) {
	var payload stripePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return Event{}, err
	}

	reference := payload.Data.Object.ClientReferenceID
	if reference == "" {
		reference = payload.Data.Object.Metadata.Reference
	}

	event := Event{Kind: EventOther, Type: payload.Type, Reference: reference}
	if payload.Type == stripeSucceededType {
		event.Kind = EventPaymentSucceeded
	}
	return event, nil
}
