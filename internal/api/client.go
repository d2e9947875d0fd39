// Package api is the HTTP client for the ProductClank agent API.
package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"communiply/internal/x402"
)

const requestIDHeader = "X-Request-ID"

type Client struct {
	rest *resty.Client
	log  *slog.Logger
}

// New returns a client that authenticates every request with apiKey as a bearer token.
// A nil logger discards request logs.
func New(baseURL, apiKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Client{log: logger}
	c.rest = resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetHeader("Accept", "application/json").
		OnAfterResponse(c.logResponse)
	return c
}

// Request is one logical API call. A paid call keeps its ID across the attempt and the retry.
type Request struct {
	Method string
	Path   string
	Body   interface{}
	ID     string
}

type Response struct {
	StatusCode int
	Body       []byte
	RequestID  string
	// Settlement is set when the server took an x402 payment for this response.
	Settlement *x402.Settlement
}

// Attempt sends req once. A 402 carrying a payment challenge is returned as the
// challenge instead of a response; any other status is returned as is.
func (c *Client) Attempt(ctx context.Context, req *Request) (*Response, *x402.Challenge, error) {
	resp, err := c.send(ctx, req, "")
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode == http.StatusPaymentRequired {
		if ch := x402.ParseChallenge(resp.Body); ch != nil {
			return nil, ch, nil
		}
	}
	return resp, nil, nil
}

// Retry resends req with proof attached. It is never followed by another settlement.
func (c *Client) Retry(ctx context.Context, req *Request, proof *x402.Proof) (*Response, error) {
	if proof == nil {
		return nil, errors.New("failed to retry request: no payment proof")
	}
	return c.send(ctx, req, proof.Header)
}

// Do runs a request, answering at most one payment challenge through settler.
// With a nil settler a challenge is returned to the caller as a plain 402 response.
func (c *Client) Do(ctx context.Context, req *Request, settler x402.Settler) (*Response, error) {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	if settler == nil {
		return c.send(ctx, req, "")
	}

	resp, ch, err := c.Attempt(ctx, req)
	if err != nil {
		return nil, err
	}
	if ch == nil {
		return resp, nil
	}

	c.log.DebugContext(ctx, "payment challenge received",
		slog.String("path", req.Path),
		slog.Int("requirements", len(ch.Accepts)),
		slog.String("request_id", req.ID))

	proof, err := settler.Settle(ctx, ch)
	if err != nil {
		return nil, err
	}
	return c.Retry(ctx, req, proof)
}

func (c *Client) send(ctx context.Context, req *Request, payment string) (*Response, error) {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	r := c.rest.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, req.ID)
	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}
	if payment != "" {
		r.SetHeader(x402.PaymentHeader, payment)
	}

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to %s %s", req.Method, req.Path)
	}

	settlement, err := x402.DecodeSettlement(resp.Header().Get(x402.PaymentResponseHeader))
	if err != nil {
		c.log.WarnContext(ctx, "ignoring malformed payment response header",
			slog.String("request_id", req.ID),
			slog.String("error", err.Error()))
		settlement = nil
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
		RequestID:  req.ID,
		Settlement: settlement,
	}, nil
}

func (c *Client) logResponse(_ *resty.Client, resp *resty.Response) error {
	req := resp.Request
	c.log.DebugContext(req.Context(), "api request",
		slog.String("method", req.Method),
		slog.String("url", req.URL),
		slog.Int("status", resp.StatusCode()),
		slog.String("request_id", req.Header.Get(requestIDHeader)),
		slog.Bool("paid", req.Header.Get(x402.PaymentHeader) != ""),
		slog.Duration("elapsed", resp.Time().Round(time.Millisecond)))
	return nil
}
