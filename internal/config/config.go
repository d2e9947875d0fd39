// Package config reads the CLI's credentials and payment settings from the environment.
package config

import (
	"math/big"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

var (
	ErrMissingAPIKey  = errors.New("PRODUCTCLANK_API_KEY environment variable is required")
	ErrMissingPayment = errors.New("either AGENT_PRIVATE_KEY or PAYMENT_TX_HASH is required")
)

// PaymentMethod is how a paid request is funded.
type PaymentMethod int

const (
	PaymentNone PaymentMethod = iota
	// PaymentDirectTransfer cites an already broadcast USDC transfer for the server to verify.
	PaymentDirectTransfer
	// PaymentX402 signs the server's payment challenge with the agent wallet.
	PaymentX402
)

func (m PaymentMethod) String() string {
	switch m {
	case PaymentDirectTransfer:
		return "direct transfer"
	case PaymentX402:
		return "x402"
	default:
		return "none"
	}
}

type Config struct {
	APIKey         string  `env:"PRODUCTCLANK_API_KEY"`
	PrivateKey     string  `env:"AGENT_PRIVATE_KEY"`
	PaymentTxHash  string  `env:"PAYMENT_TX_HASH"`
	BaseURL        string  `env:"PRODUCTCLANK_API_URL" envDefault:"https://app.productclank.com/api/v1"`
	Network        string  `env:"PRODUCTCLANK_PAYMENT_NETWORK" envDefault:"base"`
	MaxPaymentUSDC string  `env:"AGENT_MAX_PAYMENT_USDC"`
}

// Load reads a .env file from the working directory when one exists, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to read .env")
	}

	cfg := new(Config)
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return cfg, nil
}

// FromMap parses configuration from vars instead of the process environment.
func FromMap(vars map[string]string) (*Config, error) {
	cfg := new(Config)
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return cfg, nil
}

// Validate checks that the credentials a command needs are present.
// Commands that never pay pass requirePayment false.
func (c *Config) Validate(requirePayment bool) error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if requirePayment && c.PaymentMethod() == PaymentNone {
		return ErrMissingPayment
	}
	if _, err := c.MaxPaymentAtomic(); err != nil {
		return err
	}
	return nil
}

// PaymentMethod picks the payment path. A transaction hash wins over a private key.
func (c *Config) PaymentMethod() PaymentMethod {
	switch {
	case c.PaymentTxHash != "":
		return PaymentDirectTransfer
	case c.PrivateKey != "":
		return PaymentX402
	default:
		return PaymentNone
	}
}

// usdcUnit is one USDC in token units (6 decimals).
var usdcUnit = big.NewRat(1_000_000, 1)

// MaxPaymentAtomic converts the USDC cap to token units without rounding.
// An unset or zero cap yields nil, meaning no cap.
func (c *Config) MaxPaymentAtomic() (*big.Int, error) {
	if c.MaxPaymentUSDC == "" {
		return nil, nil
	}
	amount, ok := new(big.Rat).SetString(c.MaxPaymentUSDC)
	if !ok {
		return nil, errors.Errorf("AGENT_MAX_PAYMENT_USDC %q is not a decimal amount", c.MaxPaymentUSDC)
	}
	if amount.Sign() < 0 {
		return nil, errors.New("AGENT_MAX_PAYMENT_USDC must not be negative")
	}
	units := amount.Mul(amount, usdcUnit)
	if !units.IsInt() {
		return nil, errors.Errorf("AGENT_MAX_PAYMENT_USDC %q has more than 6 decimal places", c.MaxPaymentUSDC)
	}
	if units.Sign() == 0 {
		return nil, nil
	}
	return new(big.Int).Set(units.Num()), nil
}

// Hint tells the user how to fix a configuration error.
func Hint(err error) []string {
	switch errors.Cause(err) {
	case ErrMissingAPIKey:
		return []string{"Set it with: export PRODUCTCLANK_API_KEY=pck_live_YOUR_KEY"}
	case ErrMissingPayment:
		return []string{
			"For x402 payment: export AGENT_PRIVATE_KEY=0xYOUR_PRIVATE_KEY",
			"For direct transfer: export PAYMENT_TX_HASH=0xYOUR_TX_HASH",
		}
	}
	return nil
}
