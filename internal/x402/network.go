package x402

import "github.com/pkg/errors"

// usdc is the USDC contract the agent wallet pays with on each supported network.
var usdc = map[string]string{
	"base":         "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
	"base-sepolia": "0x036CbD53842c5426634e7929541eC2318f3dCF7e",
}

// USDCAddress returns the USDC contract for network.
func USDCAddress(network string) (string, error) {
	addr, ok := usdc[network]
	if !ok {
		return "", errors.Errorf("unsupported network %q", network)
	}
	return addr, nil
}
