package x402

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	x402go "github.com/mark3labs/x402-go"
	"github.com/mark3labs/x402-go/evm"
	"github.com/pkg/errors"
)

// EVMSigner settles exact-scheme USDC challenges from the agent wallet.
type EVMSigner struct {
	signer  x402go.Signer
	address string
	network string
}

// NewEVMSigner loads the wallet from a hex private key, with or without 0x.
// maxAmount caps a single payment in USDC atomic units; nil means no cap.
func NewEVMSigner(privateKey, network string, maxAmount *big.Int) (*EVMSigner, error) {
	keyHex := strings.TrimPrefix(strings.TrimSpace(privateKey), "0x")
	key, err := crypto.HexToECDSA(keyHex)
	if err != nil {
		return nil, errors.Wrap(err, "invalid private key")
	}
	token, err := USDCAddress(network)
	if err != nil {
		return nil, err
	}

	opts := []evm.SignerOption{
		evm.WithPrivateKey(keyHex),
		evm.WithNetwork(network),
		evm.WithToken(token, "USDC", 6),
	}
	if maxAmount != nil {
		opts = append(opts, evm.WithMaxAmountPerCall(maxAmount.String()))
	}
	signer, err := evm.NewSigner(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create wallet signer")
	}

	return &EVMSigner{
		signer:  signer,
		address: crypto.PubkeyToAddress(key.PublicKey).Hex(),
		network: network,
	}, nil
}

func (s *EVMSigner) Address() string {
	return s.address
}

func (s *EVMSigner) Network() string {
	return s.network
}

// Settle signs a payment for the first requirement the wallet can pay.
func (s *EVMSigner) Settle(_ context.Context, ch *Challenge) (*Proof, error) {
	if ch == nil {
		return nil, errors.New("failed to settle payment: no challenge")
	}

	for i := range ch.Accepts {
		req := &ch.Accepts[i]
		if !s.signer.CanSign(req) {
			continue
		}

		payload, err := s.signer.Sign(req)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to settle payment of %s on %s", req.MaxAmountRequired, req.Network)
		}
		header, err := encodePayment(payload)
		if err != nil {
			return nil, err
		}
		return &Proof{Payload: payload, Header: header}, nil
	}

	return nil, errors.Errorf("failed to settle payment: no requirement payable in USDC on %s", s.network)
}
