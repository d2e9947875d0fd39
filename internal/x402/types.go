// Package x402 answers HTTP 402 payment challenges.
//
// The exchange is explicit: the caller makes a request, and when the server
// replies 402 with a Challenge, a Settler turns it into a Proof that the
// caller attaches to a single retry of the same request. Signing itself is
// done by the x402-go EVM signer.
package x402

import (
	"context"

	x402go "github.com/mark3labs/x402-go"
)

const (
	// PaymentHeader carries the encoded Proof on the retried request.
	PaymentHeader = "X-PAYMENT"
	// PaymentResponseHeader carries the encoded Settlement on the paid response.
	PaymentResponseHeader = "X-PAYMENT-RESPONSE"
)

// Challenge is the body of a 402 response.
type Challenge struct {
	X402Version int                         `json:"x402Version"`
	Error       string                      `json:"error,omitempty"`
	Accepts     []x402go.PaymentRequirement `json:"accepts"`
}

// Proof is a settled challenge, ready to be attached to the retry.
type Proof struct {
	Payload *x402go.PaymentPayload
	Header  string
}

// Settlement is what the server reports after it has taken the payment.
type Settlement struct {
	Success     bool   `json:"success"`
	Transaction string `json:"transaction"`
	Network     string `json:"network"`
	Payer       string `json:"payer,omitempty"`
	ErrorReason string `json:"errorReason,omitempty"`
}

// Settler turns a challenge into a payment proof.
type Settler interface {
	Settle(ctx context.Context, ch *Challenge) (*Proof, error)
}
