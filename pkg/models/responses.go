package models

import (
	"bytes"
	"encoding/json"
)

// Error codes the API returns in the error field of a failed response.
const (
	ErrCodePaymentRequired     = "payment_required"
	ErrCodeRateLimitExceeded   = "rate_limit_exceeded"
	ErrCodeUnauthorized        = "unauthorized"
	ErrCodeNotFound            = "not_found"
	ErrCodeInsufficientCredits = "insufficient_credits"
)

// Ref is an identifier the API sends either as a JSON string or a number.
type Ref string

func (r *Ref) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Ref(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*r = Ref(n.String())
	return nil
}

type Campaign struct {
	ID             Ref    `json:"id"`
	CampaignNumber Ref    `json:"campaign_number"`
	Title          string `json:"title"`
	Status         string `json:"status"`
	IsFunded       bool   `json:"is_funded"`
}

type Payment struct {
	Method     string  `json:"method"`
	AmountUSDC float64 `json:"amount_usdc"`
	Payer      string  `json:"payer,omitempty"`
	TxHash     string  `json:"tx_hash,omitempty"`
}

type DirectTransferMethod struct {
	PayTo        string `json:"pay_to"`
	Network      string `json:"network"`
	Token        string `json:"token,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

type X402Method struct {
	Network      string `json:"network,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

type PaymentMethods struct {
	DirectTransfer *DirectTransferMethod `json:"direct_transfer,omitempty"`
	X402           *X402Method           `json:"x402,omitempty"`
}

type TopUpOption struct {
	Bundle      string  `json:"bundle"`
	Credits     int     `json:"credits"`
	Price       float64 `json:"price"`
	Recommended bool    `json:"recommended"`
}

// APIError carries the fields every failed response may populate.
type APIError struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`

	AmountUSDC     float64         `json:"amount_usdc,omitempty"`
	Package        string          `json:"package,omitempty"`
	PaymentMethods *PaymentMethods `json:"payment_methods,omitempty"`

	RequiredCredits  int           `json:"required_credits,omitempty"`
	AvailableCredits int           `json:"available_credits,omitempty"`
	TopUpOptions     []TopUpOption `json:"topup_options,omitempty"`
}

type CreateCampaignResponse struct {
	Success  bool      `json:"success"`
	Campaign *Campaign `json:"campaign,omitempty"`
	Payment  *Payment  `json:"payment,omitempty"`
	APIError
}

type TopUpRequest struct {
	Bundle        string `json:"bundle"`
	PaymentTxHash string `json:"payment_tx_hash,omitempty"`
}

type TopUpResponse struct {
	Success      bool    `json:"success"`
	CreditsAdded int     `json:"credits_added"`
	NewBalance   int     `json:"new_balance"`
	AmountUSDC   float64 `json:"amount_usdc"`
	APIError
}
