package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"communiply/internal/x402"
	"communiply/pkg/models"
)

const (
	balancePath   = "/credits/balance"
	topUpPath     = "/credits/topup"
	campaignsPath = "/agents/campaigns"
)

// Payment funds a paid request. TxHash is forwarded for server-side verification
// and takes precedence; otherwise Settler answers the server's challenge.
// The zero value sends the request unpaid.
type Payment struct {
	TxHash  string
	Settler x402.Settler
}

func (p Payment) settler() x402.Settler {
	if p.TxHash != "" {
		return nil
	}
	return p.Settler
}

type campaignBody struct {
	*models.CampaignRequest
	PaymentTxHash string `json:"payment_tx_hash,omitempty"`
}

// Balance returns the prepaid credit balance of the API key's account.
func (c *Client) Balance(ctx context.Context) (*models.CreditBalance, error) {
	resp, err := c.Do(ctx, &Request{Method: http.MethodGet, Path: balancePath}, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check credit balance")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, errors.Errorf("failed to check credit balance (%d): %s", resp.StatusCode, describeFailure(resp))
	}

	balance := new(models.CreditBalance)
	if err := decode(resp, balance); err != nil {
		return nil, errors.Wrap(err, "failed to check credit balance")
	}
	return balance, nil
}

// TopUp buys a credit bundle.
func (c *Client) TopUp(ctx context.Context, bundle string, pay Payment) (*models.TopUpResponse, *Response, error) {
	body := models.TopUpRequest{Bundle: bundle, PaymentTxHash: pay.TxHash}

	resp, err := c.Do(ctx, &Request{Method: http.MethodPost, Path: topUpPath, Body: body}, pay.settler())
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to top up credits")
	}

	out := new(models.TopUpResponse)
	if err := decode(resp, out); err != nil {
		return nil, resp, errors.Wrap(err, "failed to top up credits")
	}
	return out, resp, nil
}

// CreateCampaign submits a campaign. Only a transport or decoding failure is an
// error; a rejected campaign comes back with Success false.
func (c *Client) CreateCampaign(ctx context.Context, campaign *models.CampaignRequest, pay Payment) (*models.CreateCampaignResponse, *Response, error) {
	body := campaignBody{CampaignRequest: campaign, PaymentTxHash: pay.TxHash}

	resp, err := c.Do(ctx, &Request{Method: http.MethodPost, Path: campaignsPath, Body: body}, pay.settler())
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create campaign")
	}

	out := new(models.CreateCampaignResponse)
	if err := decode(resp, out); err != nil {
		return nil, resp, errors.Wrap(err, "failed to create campaign")
	}
	return out, resp, nil
}

func decode(resp *Response, v interface{}) error {
	if err := json.Unmarshal(resp.Body, v); err != nil {
		return errors.Wrapf(err, "failed to parse json (status %d)", resp.StatusCode)
	}
	return nil
}

// maxBodyInError bounds how much of a non-JSON error body is quoted back to the user.
const maxBodyInError = 200

func describeFailure(resp *Response) string {
	apiErr := new(models.APIError)
	if err := json.Unmarshal(resp.Body, apiErr); err == nil && (apiErr.Error != "" || apiErr.Message != "") {
		return strings.TrimSpace(apiErr.Error + " " + apiErr.Message)
	}

	body := strings.TrimSpace(string(resp.Body))
	if body == "" {
		return http.StatusText(resp.StatusCode)
	}
	if len(body) > maxBodyInError {
		body = body[:maxBodyInError] + "..."
	}
	return body
}
