// Package campaign runs the CLI commands: validate a campaign, pay for it and submit it.
package campaign

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"communiply/internal/api"
	"communiply/internal/report"
	"communiply/pkg/models"
)

// ErrReported marks a failure that has already been explained to the user.
var ErrReported = errors.New("failure reported")

// API is the subset of the remote service the commands use.
type API interface {
	Balance(ctx context.Context) (*models.CreditBalance, error)
	TopUp(ctx context.Context, bundle string, pay api.Payment) (*models.TopUpResponse, *api.Response, error)
	CreateCampaign(ctx context.Context, c *models.CampaignRequest, pay api.Payment) (*models.CreateCampaignResponse, *api.Response, error)
}

type Service struct {
	API     API
	Payment api.Payment
	Printer *report.Printer
	// DryRun stops after validation and the summary.
	DryRun bool
}

// Create submits a pay-per-campaign request. Payment is attached to the
// creation call itself, either as a transaction hash or by answering the
// server's payment challenge.
func (s *Service) Create(ctx context.Context, c *models.CampaignRequest) error {
	s.Printer.Step("Validating campaign data...")
	if problems := c.Validate(models.FlowPackage); len(problems) > 0 {
		s.Printer.ValidationErrors(problems)
		return ErrReported
	}

	s.Printer.CampaignSummary(c)
	if s.DryRun {
		s.Printer.Step("Dry run: campaign is valid, nothing was submitted.")
		return nil
	}

	s.announcePayment()
	s.Printer.Step("Creating campaign...")
	return s.submit(ctx, c, s.Payment)
}

// CreateFunded spends prepaid credits. When the balance is below the
// estimated cost it first buys the smallest bundle that covers it. A top-up
// that succeeds is not undone if creation then fails.
func (s *Service) CreateFunded(ctx context.Context, c *models.CampaignRequest) error {
	s.Printer.Step("Validating campaign data...")
	if problems := c.Validate(models.FlowFunded); len(problems) > 0 {
		s.Printer.ValidationErrors(problems)
		return ErrReported
	}

	posts := c.EstimatedPosts
	if posts == 0 {
		posts = models.DefaultEstimatedPosts
	}
	cost := models.EstimatedCredits(posts)
	bundle := models.RecommendBundle(cost)

	s.Printer.FundedSummary(c, posts, cost, bundle)
	if s.DryRun {
		s.Printer.Step("Dry run: campaign is valid, nothing was submitted.")
		return nil
	}

	s.Printer.Step("Checking credit balance...")
	balance, err := s.API.Balance(ctx)
	if err != nil {
		return err
	}
	s.Printer.Balance(balance)

	if !balance.CheckBalance(cost) {
		s.Printer.Step("")
		s.Printer.Step("Insufficient credits (need %d, have %d)", cost, balance.Credits)
		s.Printer.Step("   Topping up with %s bundle...", bundle.Name)
		if err := s.topUp(ctx, bundle.Name); err != nil {
			return err
		}
	} else {
		s.Printer.Step("   Sufficient credits available")
		s.Printer.Step("")
	}

	s.Printer.Step("Creating campaign...")
	return s.submit(ctx, c, api.Payment{})
}

// TopUp buys a named credit bundle.
func (s *Service) TopUp(ctx context.Context, bundle string) error {
	if _, ok := models.LookupBundle(bundle); !ok {
		s.Printer.ValidationErrors([]string{"bundle must be one of " + bundleNames()})
		return ErrReported
	}
	return s.topUp(ctx, bundle)
}

// Balance prints the prepaid credit balance.
func (s *Service) Balance(ctx context.Context) error {
	s.Printer.Step("Checking credit balance...")
	balance, err := s.API.Balance(ctx)
	if err != nil {
		return err
	}
	s.Printer.Balance(balance)
	return nil
}

func (s *Service) topUp(ctx context.Context, bundle string) error {
	s.announcePayment()
	result, resp, err := s.API.TopUp(ctx, bundle, s.Payment)
	if err != nil {
		return err
	}
	if !result.Success {
		s.Printer.TopUpFailed(result, resp.RequestID)
		return ErrReported
	}
	s.Printer.TopUpSucceeded(result, resp.Settlement)
	return nil
}

func (s *Service) submit(ctx context.Context, c *models.CampaignRequest, pay api.Payment) error {
	result, resp, err := s.API.CreateCampaign(ctx, c, pay)
	if err != nil {
		return err
	}
	if !result.Success {
		s.Printer.CampaignFailed(result, resp.RequestID)
		return ErrReported
	}
	s.Printer.CampaignCreated(result, resp.Settlement)
	return nil
}

func (s *Service) announcePayment() {
	switch {
	case s.Payment.TxHash != "":
		s.Printer.Step("Using direct USDC transfer, transaction hash: %s", s.Payment.TxHash)
	case s.Payment.Settler != nil:
		s.Printer.Step("Paying with the x402 protocol if the server asks for payment...")
	}
}

func bundleNames() string {
	names := make([]string, 0, len(models.Bundles))
	for _, b := range models.Bundles {
		names = append(names, b.Name)
	}
	return strings.Join(names, ", ")
}
