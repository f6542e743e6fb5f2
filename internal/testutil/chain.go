package testutil

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/require"
)

// Chain is an in-process chain that mines a block for every transaction
type Chain struct {
	Backend *simulated.Backend
	Key     *ecdsa.PrivateKey
	Address common.Address
}

// NewChain starts a simulated chain with a funded account. It is closed when the test ends.
func NewChain(t *testing.T) *Chain {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	addr := crypto.PubkeyToAddress(key.PublicKey)

	balance := new(big.Int).Mul(big.NewInt(1000), big.NewInt(1e18))
	backend := simulated.NewBackend(types.GenesisAlloc{
		addr: {Balance: balance},
	})
	t.Cleanup(func() { _ = backend.Close() })

	return &Chain{Backend: backend, Key: key, Address: addr}
}

// Client returns a client whose SendTransaction immediately mines a block
func (c *Chain) Client() *AutoMiningClient {
	return &AutoMiningClient{Client: c.Backend.Client(), backend: c.Backend}
}

// AutoMiningClient wraps the simulated client so receipts are available
// as soon as a transaction is accepted
type AutoMiningClient struct {
	simulated.Client
	backend *simulated.Backend
}

// SendTransaction sends the transaction and commits a block
func (a *AutoMiningClient) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := a.Client.SendTransaction(ctx, tx); err != nil {
		return err
	}
	a.backend.Commit()
	return nil
}
