package blockchain

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// Prober checks whether an RPC endpoint is reachable
type Prober struct{}

// NewProber creates a new Prober
func NewProber() *Prober {
	return &Prober{}
}

// ProbeChainID dials rpcURL and returns the chain ID the node reports
func (p *Prober) ProbeChainID(ctx context.Context, rpcURL string) (uint64, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	return chainID.Uint64(), nil
}

var _ usecase.ChainProbe = (*Prober)(nil)
