package x402

import (
	"encoding/base64"
	"encoding/json"

	x402go "github.com/mark3labs/x402-go"
	"github.com/pkg/errors"
)

func encodePayment(p *x402go.PaymentPayload) (string, error) {
	v, err := json.Marshal(p)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode payment payload")
	}
	return base64.StdEncoding.EncodeToString(v), nil
}

// DecodeSettlement parses an X-PAYMENT-RESPONSE header. An empty header yields nil.
func DecodeSettlement(header string) (*Settlement, error) {
	if header == "" {
		return nil, nil
	}
	raw, err := base64.StdEncoding.DecodeString(header)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode payment response header")
	}
	s := new(Settlement)
	if err := json.Unmarshal(raw, s); err != nil {
		return nil, errors.Wrap(err, "failed to decode payment response header: failed to parse json")
	}
	return s, nil
}

func EncodeSettlement(s Settlement) (string, error) {
	v, err := json.Marshal(s)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode settlement")
	}
	return base64.StdEncoding.EncodeToString(v), nil
}

// ParseChallenge decodes a 402 body. It returns nil when the body is not a
// challenge, such as the API's own payment_required error.
func ParseChallenge(body []byte) *Challenge {
	ch := new(Challenge)
	if err := json.Unmarshal(body, ch); err != nil {
		return nil
	}
	if len(ch.Accepts) == 0 {
		return nil
	}
	return ch
}
