package config

import (
	"testing"
)

func TestPaymentMethodPrecedence(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want PaymentMethod
	}{
		{
			name: "tx hash wins over private key",
			vars: map[string]string{"PRODUCTCLANK_API_KEY": "k", "AGENT_PRIVATE_KEY": "0x01", "PAYMENT_TX_HASH": "0xabc"},
			want: PaymentDirectTransfer,
		},
		{
			name: "private key only",
			vars: map[string]string{"PRODUCTCLANK_API_KEY": "k", "AGENT_PRIVATE_KEY": "0x01"},
			want: PaymentX402,
		},
		{
			name: "neither",
			vars: map[string]string{"PRODUCTCLANK_API_KEY": "k"},
			want: PaymentNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := FromMap(tt.vars)
			if err != nil {
				t.Fatal(err)
			}
			if got := cfg.PaymentMethod(); got != tt.want {
				t.Errorf("PaymentMethod() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name           string
		vars           map[string]string
		requirePayment bool
		want           error
	}{
		{"missing api key", map[string]string{"PAYMENT_TX_HASH": "0xabc"}, true, ErrMissingAPIKey},
		{"missing payment", map[string]string{"PRODUCTCLANK_API_KEY": "k"}, true, ErrMissingPayment},
		{"balance needs no payment", map[string]string{"PRODUCTCLANK_API_KEY": "k"}, false, nil},
		{"complete", map[string]string{"PRODUCTCLANK_API_KEY": "k", "AGENT_PRIVATE_KEY": "0x01"}, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := FromMap(tt.vars)
			if err != nil {
				t.Fatal(err)
			}
			if got := cfg.Validate(tt.requirePayment); got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
			if tt.want != nil && len(Hint(tt.want)) == 0 {
				t.Errorf("no hint for %v", tt.want)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := FromMap(map[string]string{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "https://app.productclank.com/api/v1" {
		t.Errorf("BaseURL = %s", cfg.BaseURL)
	}
	if cfg.Network != "base" {
		t.Errorf("Network = %s", cfg.Network)
	}
	if got, err := cfg.MaxPaymentAtomic(); got != nil || err != nil {
		t.Errorf("MaxPaymentAtomic() = %v, %v; want no cap", got, err)
	}
}

func TestMaxPaymentAtomic(t *testing.T) {
	tests := []struct {
		value string
		want  int64
	}{
		{"2.01", 2_010_000},
		{"0.29", 290_000},
		{"19.99", 19_990_000},
		{"2.5", 2_500_000},
		{"5", 5_000_000},
		{"0.000001", 1},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cfg, err := FromMap(map[string]string{"AGENT_MAX_PAYMENT_USDC": tt.value})
			if err != nil {
				t.Fatal(err)
			}
			got, err := cfg.MaxPaymentAtomic()
			if err != nil {
				t.Fatal(err)
			}
			if got == nil || got.Int64() != tt.want {
				t.Errorf("MaxPaymentAtomic() = %v, want %d", got, tt.want)
			}
		})
	}
}

func TestMaxPaymentAtomicRejects(t *testing.T) {
	for _, value := range []string{"-1", "1.0000001", "two"} {
		cfg, err := FromMap(map[string]string{"PRODUCTCLANK_API_KEY": "k", "PAYMENT_TX_HASH": "0xabc", "AGENT_MAX_PAYMENT_USDC": value})
		if err != nil {
			t.Fatal(err)
		}
		if err := cfg.Validate(true); err == nil {
			t.Errorf("Validate() accepted AGENT_MAX_PAYMENT_USDC=%s", value)
		}
	}

	cfg, _ := FromMap(map[string]string{"AGENT_MAX_PAYMENT_USDC": "0"})
	if got, err := cfg.MaxPaymentAtomic(); got != nil || err != nil {
		t.Errorf("zero cap = %v, %v; want no cap", got, err)
	}
}
