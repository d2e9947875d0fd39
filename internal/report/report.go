// Package report renders CLI progress and results as human-readable text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"communiply/internal/x402"
	"communiply/pkg/models"
)

const (
	dashboardURL = "https://app.productclank.com"
	campaignURL  = dashboardURL + "/communiply/campaigns/"
	productsURL  = dashboardURL + "/products"
)

// Printer writes progress and results to Out and failures to Err.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

func (p *Printer) out(format string, args ...interface{}) {
	fmt.Fprintf(p.Out, format+"\n", args...)
}

func (p *Printer) err(format string, args ...interface{}) {
	fmt.Fprintf(p.Err, format+"\n", args...)
}

func (p *Printer) Step(format string, args ...interface{}) {
	p.out(format, args...)
}

func (p *Printer) ConfigError(err error, hints []string) {
	p.err("Error: %s", err)
	for _, h := range hints {
		p.err("%s", h)
	}
}

func (p *Printer) ValidationErrors(problems []string) {
	p.err("Validation errors:")
	for _, msg := range problems {
		p.err("   - %s", msg)
	}
	p.err("")
	p.err("Edit the campaign file (or pass one with --file) to fix these errors.")
}

// CampaignSummary describes the campaign about to be submitted for the pay-per-campaign flow.
func (p *Printer) CampaignSummary(c *models.CampaignRequest) {
	p.out("Campaign Details:")
	p.out("   - Title: %s", c.Title)
	p.out("   - Keywords: %s", strings.Join(c.Keywords, ", "))
	p.out("   - Package: %s", c.SelectedPackage)
	p.out("")
}

// FundedSummary describes the campaign and its credit estimate for the prepaid flow.
func (p *Printer) FundedSummary(c *models.CampaignRequest, posts, credits int, bundle models.Bundle) {
	p.out("Campaign Details:")
	p.out("   - Title: %s", c.Title)
	p.out("   - Keywords: %s", strings.Join(c.Keywords, ", "))
	p.out("   - Estimated Posts: %d", posts)
	p.out("   - Estimated Credits: ~%d", credits)
	p.out("   - Recommended Bundle: %s ($%d = %d credits)", bundle.Name, bundle.Price, bundle.Credits)
	p.out("")
}

func (p *Printer) Balance(b *models.CreditBalance) {
	p.out("   Current balance: %d credits", b.Credits)
}

func (p *Printer) TopUpSucceeded(r *models.TopUpResponse, settlement *x402.Settlement) {
	p.out("")
	p.out("Credits Topped Up!")
	p.out("   Added: %d credits", r.CreditsAdded)
	p.out("   New balance: %d credits", r.NewBalance)
	p.out("   Amount paid: $%s USDC", usdc(r.AmountUSDC))
	p.settlement(settlement)
	p.out("")
}

func (p *Printer) TopUpFailed(r *models.TopUpResponse, requestID string) {
	p.err("")
	p.err("Top-up Failed: %s", r.Error)
	p.err("   Message: %s", r.Message)
	p.failureHint(&r.APIError)
	p.requestID(requestID)
}

func (p *Printer) CampaignCreated(r *models.CreateCampaignResponse, settlement *x402.Settlement) {
	c := r.Campaign
	if c == nil {
		c = new(models.Campaign)
	}

	p.out("")
	p.out("Campaign Created Successfully!")
	p.out("")
	p.out("Campaign Details:")
	p.out("   - ID: %s", c.ID)
	if c.CampaignNumber != "" {
		p.out("   - Number: %s", c.CampaignNumber)
	}
	p.out("   - Title: %s", c.Title)
	p.out("   - Status: %s", c.Status)
	p.out("   - Funded: %s", yesNo(c.IsFunded))

	if pay := r.Payment; pay != nil {
		p.out("")
		p.out("Payment:")
		p.out("   - Method: %s", pay.Method)
		p.out("   - Amount: $%s USDC", usdc(pay.AmountUSDC))
		if pay.Payer != "" {
			p.out("   - Payer: %s", pay.Payer)
		}
		if pay.TxHash != "" {
			p.out("   - Transaction: %s", pay.TxHash)
		}
	}
	p.settlement(settlement)

	p.out("")
	p.out("View Campaign:")
	p.out("   %s%s", campaignURL, c.ID)
	p.out("")
	p.out("Next Steps:")
	p.out("   1. AI is discovering relevant conversations")
	p.out("   2. Generating contextual replies for opportunities")
	p.out("   3. Community can claim and execute replies")
	p.out("   4. Track engagement in real-time via dashboard")
	p.out("")
}

func (p *Printer) CampaignFailed(r *models.CreateCampaignResponse, requestID string) {
	p.err("")
	p.err("Campaign Creation Failed")
	p.err("")
	p.err("Error: %s", r.Error)
	p.err("Message: %s", r.Message)
	p.failureHint(&r.APIError)
	p.requestID(requestID)
}

// Fatal prints an unexpected error with the stack trace recorded where it was wrapped.
func (p *Printer) Fatal(err error) {
	p.err("")
	p.err("Error: %s", err)
	p.err("")
	p.err("Stack trace:")
	p.err("%+v", err)
}

func (p *Printer) failureHint(e *models.APIError) {
	switch e.Error {
	case models.ErrCodePaymentRequired:
		p.err("")
		p.err("Payment Required:")
		p.err("   Amount: $%s USDC", usdc(e.AmountUSDC))
		if e.Package != "" {
			p.err("   Package: %s", e.Package)
		}
		p.err("")
		p.err("   Option 1, x402 protocol:")
		p.err("      export AGENT_PRIVATE_KEY=0xYOUR_PRIVATE_KEY and run again")
		if m := paymentMethods(e).X402; m != nil && m.Instructions != "" {
			p.err("      %s", m.Instructions)
		}
		p.err("   Option 2, direct USDC transfer:")
		if m := paymentMethods(e).DirectTransfer; m != nil {
			token := m.Token
			if token == "" {
				token = "USDC"
			}
			p.err("      Send $%s %s to %s on %s", usdc(e.AmountUSDC), token, m.PayTo, m.Network)
			if m.Instructions != "" {
				p.err("      %s", m.Instructions)
			}
		}
		p.err("      then export PAYMENT_TX_HASH=0xYOUR_TX_HASH and run again")
	case models.ErrCodeInsufficientCredits:
		p.err("")
		p.err("Insufficient Credits:")
		p.err("   Required: %d credits", e.RequiredCredits)
		p.err("   Available: %d credits", e.AvailableCredits)
		if len(e.TopUpOptions) > 0 {
			p.err("")
			p.err("   Top-up Options:")
			for _, o := range e.TopUpOptions {
				marker := ""
				if o.Recommended {
					marker = " (recommended)"
				}
				p.err("   - %s: %d credits for $%s%s", o.Bundle, o.Credits, usdc(o.Price), marker)
			}
		}
	case models.ErrCodeRateLimitExceeded:
		p.err("")
		p.err("Rate limit exceeded. Try again later or contact ProductClank for higher limits.")
	case models.ErrCodeUnauthorized:
		p.err("")
		p.err("Invalid API key. Verify PRODUCTCLANK_API_KEY is correct.")
	case models.ErrCodeNotFound:
		p.err("")
		p.err("Product not found. Verify product_id exists on ProductClank.")
		p.err("   Visit: %s", productsURL)
	}
}

func (p *Printer) settlement(s *x402.Settlement) {
	if s == nil {
		return
	}
	p.out("   - Settlement: %s on %s (success: %s)", s.Transaction, s.Network, yesNo(s.Success))
}

func (p *Printer) requestID(id string) {
	if id != "" {
		p.err("")
		p.err("Request ID: %s", id)
	}
}

func paymentMethods(e *models.APIError) models.PaymentMethods {
	if e.PaymentMethods == nil {
		return models.PaymentMethods{}
	}
	return *e.PaymentMethods
}

func usdc(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
