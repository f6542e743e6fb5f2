package blockchain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/sling/internal/domain"
	"github.com/trebuchet-org/sling/internal/domain/config"
	"github.com/trebuchet-org/sling/internal/domain/models"
	"github.com/trebuchet-org/sling/internal/testutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, network *config.Network) (*Client, *testutil.Chain) {
	t.Helper()
	chain := testutil.NewChain(t)
	if network == nil {
		network = &config.Network{Name: "simulated"}
	}
	c := NewClientWithBackend(chain.Client(), chain.Key, network, discardLogger())
	_, err := c.Connect(context.Background())
	require.NoError(t, err)
	return c, chain
}

func deploy(t *testing.T, c *Client, contract *models.Contract) *models.Instance {
	t.Helper()
	ctx := context.Background()
	parsed, err := contract.Artifact.ParsedABI()
	require.NoError(t, err)

	instance, err := c.SendDeployment(ctx, contract, parsed)
	require.NoError(t, err)
	require.NoError(t, c.WaitDeployed(ctx, instance))
	return instance
}

func TestClient_Connect(t *testing.T) {
	t.Run("accepts any chain when none configured", func(t *testing.T) {
		c, chain := newTestClient(t, nil)
		assert.Equal(t, chain.Address, c.Sender())

		chainID, err := c.Connect(context.Background())
		require.NoError(t, err)
		assert.Equal(t, uint64(1337), chainID)
	})

	t.Run("rejects mismatched chain id", func(t *testing.T) {
		chain := testutil.NewChain(t)
		c := NewClientWithBackend(chain.Client(), chain.Key, &config.Network{Name: "anvil", ChainID: 31337}, discardLogger())

		_, err := c.Connect(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrChainIDMismatch)
		assert.Contains(t, err.Error(), "expected 31337, got 1337")
	})

	t.Run("missing private key", func(t *testing.T) {
		c := NewClient(&config.RuntimeConfig{Network: &config.Network{Name: "sepolia", RPCURL: "https://example.invalid"}}, discardLogger())

		_, err := c.Connect(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no private key configured for network sepolia")
	})

	t.Run("invalid private key", func(t *testing.T) {
		c := NewClient(&config.RuntimeConfig{Network: &config.Network{Name: "localhost", PrivateKey: "0xnothex"}}, discardLogger())

		_, err := c.Connect(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid private key")
	})
}

func TestParsePrivateKey(t *testing.T) {
	key, err := ParsePrivateKey("0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	require.NoError(t, err)
	assert.NotNil(t, key)

	same, err := ParsePrivateKey("ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	require.NoError(t, err)
	assert.Equal(t, key.D, same.D)
}

func TestClient_DeployAndCall(t *testing.T) {
	c, _ := newTestClient(t, nil)
	ctx := context.Background()

	instance := deploy(t, c, testutil.IfElse())
	assert.True(t, instance.Confirmed)
	assert.NotEqual(t, common.Address{}, instance.Address)
	assert.NotZero(t, instance.BlockNumber)
	assert.NotZero(t, instance.GasUsed)

	code, err := c.CodeAt(ctx, instance.Address)
	require.NoError(t, err)
	assert.NotEmpty(t, code)

	tests := []struct {
		input int64
		want  int64
	}{
		{5, 0},
		{9, 0},
		{10, 1},
		{11, 1},
		{19, 1},
		{20, 2},
		{30, 2},
	}
	for _, tt := range tests {
		out, err := c.Call(ctx, instance, "foo", big.NewInt(tt.input))
		require.NoError(t, err)
		require.Len(t, out, 1)
		assertBigInt(t, tt.want, out[0], "foo(%d)", tt.input)
	}
}

func TestClient_Transaction(t *testing.T) {
	c, chain := newTestClient(t, nil)
	ctx := context.Background()

	instance := deploy(t, c, testutil.Mapping())

	out, err := c.Call(ctx, instance, "get", chain.Address)
	require.NoError(t, err)
	assertBigInt(t, 0, out[0])

	tx, err := c.SendTransaction(ctx, instance, "set", chain.Address, big.NewInt(3))
	require.NoError(t, err)

	receipt, err := c.WaitMined(ctx, tx)
	require.NoError(t, err)
	assert.True(t, receipt.Succeeded())
	assert.Equal(t, tx.Hash(), receipt.TxHash)

	out, err = c.Call(ctx, instance, "get", chain.Address)
	require.NoError(t, err)
	assertBigInt(t, 3, out[0])

	// other keys are untouched
	out, err = c.Call(ctx, instance, "get", common.HexToAddress("0x000000000000000000000000000000000000dEaD"))
	require.NoError(t, err)
	assertBigInt(t, 0, out[0])
}

// assertBigInt compares numerically; decoded zeros carry an empty, non-nil word slice
func assertBigInt(t *testing.T, want int64, got any, msgAndArgs ...any) {
	t.Helper()
	n, ok := got.(*big.Int)
	require.True(t, ok, "expected *big.Int, got %T", got)
	if big.NewInt(want).Cmp(n) != 0 {
		assert.Fail(t, fmt.Sprintf("want %d, got %s", want, n), msgAndArgs...)
	}
}

func TestDecodedZeroComparesNumerically(t *testing.T) {
	c, chain := newTestClient(t, nil)
	instance := deploy(t, c, testutil.Mapping())

	out, err := c.Call(context.Background(), instance, "get", chain.Address)
	require.NoError(t, err)
	require.Len(t, out, 1)

	n, ok := out[0].(*big.Int)
	require.True(t, ok)
	assert.Equal(t, 0, n.Sign())
	assert.Equal(t, "0", n.String())
	assertBigInt(t, 0, n)
}

func TestClient_Reverts(t *testing.T) {
	c, _ := newTestClient(t, nil)
	ctx := context.Background()

	instance := deploy(t, c, testutil.Reverter())

	_, err := c.Call(ctx, instance, "check")
	assert.Error(t, err)

	_, err = c.SendTransaction(ctx, instance, "fail")
	assert.Error(t, err)
}

func TestClient_NotConnected(t *testing.T) {
	chain := testutil.NewChain(t)
	c := NewClientWithBackend(chain.Client(), chain.Key, &config.Network{Name: "simulated"}, discardLogger())

	contract := testutil.IfElse()
	parsed, err := contract.Artifact.ParsedABI()
	require.NoError(t, err)

	_, err = c.SendDeployment(context.Background(), contract, parsed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not connected")
}

type dataError struct {
	data any
}

func (e dataError) Error() string  { return "execution reverted" }
func (e dataError) ErrorData() any { return e.data }

func revertPayload(t *testing.T, reason string) []byte {
	t.Helper()
	stringType, err := abi.NewType("string", "", nil)
	require.NoError(t, err)
	packed, err := abi.Arguments{{Type: stringType}}.Pack(reason)
	require.NoError(t, err)
	// Error(string) selector
	return append(common.FromHex("0x08c379a0"), packed...)
}

func TestRevertReason(t *testing.T) {
	payload := revertPayload(t, "not allowed")

	tests := []struct {
		name   string
		err    error
		want   string
		wantOK bool
	}{
		{"hex string data", dataError{data: hexutil.Encode(payload)}, "not allowed", true},
		{"raw bytes data", dataError{data: payload}, "not allowed", true},
		{"empty data", dataError{data: "0x"}, "", false},
		{"not a data error", assert.AnError, "", false},
		{"unexpected data type", dataError{data: 42}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RevertReason(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
