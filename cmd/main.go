package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/devfacet/gocmd/v3"
	"github.com/pkg/errors"

	"communiply/internal/api"
	"communiply/internal/campaign"
	"communiply/internal/config"
	"communiply/internal/report"
	"communiply/internal/x402"
)

var (
	version = "v1.0"
)

func main() {
	flags := struct {
		Debug  bool `long:"debug" description:"Log every API request to stderr"`
		Create struct {
			File   string `short:"f" long:"file" description:"Campaign file (YAML or JSON); defaults to the built-in example"`
			DryRun bool   `long:"dry-run" description:"Validate and print the campaign without submitting it"`
		} `command:"create" description:"Create a campaign paid per campaign (selected_package tiers)"`
		CreateFunded struct {
			File   string `short:"f" long:"file" description:"Campaign file (YAML or JSON); defaults to the built-in example"`
			DryRun bool   `long:"dry-run" description:"Validate and print the campaign without submitting it"`
		} `command:"create-funded" description:"Create a campaign from prepaid credits, topping up first when the balance is short"`
		Balance struct {
		} `command:"balance" description:"Show the prepaid credit balance"`
		TopUp struct {
			Bundle string `short:"b" long:"bundle" required:"true" description:"Credit bundle: nano, micro, small, medium, large or enterprise"`
		} `command:"topup" description:"Buy a credit bundle"`
	}{}

	printer := &report.Printer{Out: os.Stdout, Err: os.Stderr}
	exitCode := 0
	run := func(requirePayment bool, fn func(ctx context.Context, svc *campaign.Service) error) {
		exitCode = execute(printer, flags.Debug, requirePayment, fn)
	}

	_, err := gocmd.HandleFlag("Create", func(cmd *gocmd.Cmd, args []string) error {
		run(true, func(ctx context.Context, svc *campaign.Service) error {
			c, err := campaign.Load(flags.Create.File)
			if err != nil {
				return err
			}
			svc.DryRun = flags.Create.DryRun
			return svc.Create(ctx, c)
		})
		return nil
	})
	if err != nil {
		fmt.Printf("failed to register command: %s\n", err.Error())
		os.Exit(1)
	}

	_, err = gocmd.HandleFlag("CreateFunded", func(cmd *gocmd.Cmd, args []string) error {
		run(true, func(ctx context.Context, svc *campaign.Service) error {
			c, err := campaign.Load(flags.CreateFunded.File)
			if err != nil {
				return err
			}
			svc.DryRun = flags.CreateFunded.DryRun
			return svc.CreateFunded(ctx, c)
		})
		return nil
	})
	if err != nil {
		fmt.Printf("failed to register command: %s\n", err.Error())
		os.Exit(1)
	}

	_, err = gocmd.HandleFlag("Balance", func(cmd *gocmd.Cmd, args []string) error {
		run(false, func(ctx context.Context, svc *campaign.Service) error {
			return svc.Balance(ctx)
		})
		return nil
	})
	if err != nil {
		fmt.Printf("failed to register command: %s\n", err.Error())
		os.Exit(1)
	}

	_, err = gocmd.HandleFlag("TopUp", func(cmd *gocmd.Cmd, args []string) error {
		run(true, func(ctx context.Context, svc *campaign.Service) error {
			return svc.TopUp(ctx, flags.TopUp.Bundle)
		})
		return nil
	})
	if err != nil {
		fmt.Printf("failed to register command: %s\n", err.Error())
		os.Exit(1)
	}

	_, err = gocmd.New(gocmd.Options{
		Name:        "communiply",
		Description: "Create Communiply campaigns on ProductClank, paying with x402 or a USDC transfer.",
		Version:     version,
		Flags:       &flags,
		ConfigType:  gocmd.ConfigTypeAuto,
	})
	if err != nil {
		fmt.Printf("failed to start: %s\n", err.Error())
		os.Exit(1)
	}

	os.Exit(exitCode)
}

// execute loads configuration, wires the API client and payment path, and runs fn.
// It returns the process exit code.
func execute(printer *report.Printer, debug, requirePayment bool, fn func(ctx context.Context, svc *campaign.Service) error) int {
	cfg, err := config.Load()
	if err != nil {
		printer.Fatal(err)
		return 1
	}
	if err := cfg.Validate(requirePayment); err != nil {
		printer.ConfigError(err, config.Hint(err))
		return 1
	}

	logger := newLogger(debug)

	pay := api.Payment{TxHash: cfg.PaymentTxHash}
	if requirePayment && cfg.PaymentMethod() == config.PaymentX402 {
		maxAmount, err := cfg.MaxPaymentAtomic()
		if err != nil {
			printer.ConfigError(err, nil)
			return 1
		}
		signer, err := x402.NewEVMSigner(cfg.PrivateKey, cfg.Network, maxAmount)
		if err != nil {
			printer.Fatal(errors.Wrap(err, "failed to load agent wallet"))
			return 1
		}
		logger.Debug("agent wallet loaded", slog.String("address", signer.Address()), slog.String("network", signer.Network()))
		pay.Settler = signer
	}

	svc := &campaign.Service{
		API:     api.New(cfg.BaseURL, cfg.APIKey, logger),
		Payment: pay,
		Printer: printer,
	}

	printer.Step("ProductClank Campaign CLI %s", version)
	printer.Step("")

	err = fn(context.Background(), svc)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, campaign.ErrReported):
		return 1
	default:
		printer.Fatal(err)
		return 1
	}
}

func newLogger(debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
