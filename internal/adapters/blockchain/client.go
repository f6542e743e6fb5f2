package blockchain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/trebuchet-org/sling/internal/domain"
	"github.com/trebuchet-org/sling/internal/domain/config"
	"github.com/trebuchet-org/sling/internal/domain/models"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// defaultConfirmTimeout applies when the network doesn't set one
const defaultConfirmTimeout = 2 * time.Minute

// Backend is everything the client needs from a node connection.
// *ethclient.Client and the simulated backend's client both satisfy it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// Client implements usecase.ChainClient with go-ethereum's bind package
type Client struct {
	network *config.Network
	log     *slog.Logger

	backend Backend
	closer  func()

	key     *ecdsa.PrivateKey
	keyErr  error
	sender  common.Address
	chainID *big.Int
}

// NewClient creates a client for the configured network. Nothing is dialed
// until Connect.
func NewClient(cfg *config.RuntimeConfig, log *slog.Logger) *Client {
	c := &Client{network: cfg.Network, log: log}
	if cfg.Network == nil {
		c.keyErr = fmt.Errorf("no network configured")
		return c
	}
	if cfg.Network.PrivateKey == "" {
		c.keyErr = fmt.Errorf("no private key configured for network %s (set private_key in sling.toml or SLING_PRIVATE_KEY)", cfg.Network.Name)
		return c
	}
	c.setKey(ParsePrivateKey(cfg.Network.PrivateKey))
	return c
}

// NewClientWithBackend creates a client over an existing backend
func NewClientWithBackend(backend Backend, key *ecdsa.PrivateKey, network *config.Network, log *slog.Logger) *Client {
	c := &Client{network: network, backend: backend, log: log}
	c.setKey(key, nil)
	return c
}

func (c *Client) setKey(key *ecdsa.PrivateKey, err error) {
	if err != nil {
		c.keyErr = err
		return
	}
	c.key = key
	c.sender = crypto.PubkeyToAddress(key.PublicKey)
}

// ParsePrivateKey parses a hex private key with or without 0x prefix
func ParsePrivateKey(hexKey string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return key, nil
}

// Connect establishes connection to the blockchain and verifies the chain ID
func (c *Client) Connect(ctx context.Context) (uint64, error) {
	if c.chainID != nil {
		return c.chainID.Uint64(), nil
	}
	if c.keyErr != nil {
		return 0, c.keyErr
	}

	if c.backend == nil {
		client, err := ethclient.DialContext(ctx, c.network.RPCURL)
		if err != nil {
			return 0, fmt.Errorf("failed to connect to RPC %s: %w", c.network.RPCURL, err)
		}
		c.backend = client
		c.closer = client.Close
	}

	networkChainID, err := c.backend.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}

	// If the expected chain ID is 0, use the network's chain ID
	if c.network != nil && c.network.ChainID != 0 && networkChainID.Uint64() != c.network.ChainID {
		return 0, fmt.Errorf("%w: expected %d, got %d", domain.ErrChainIDMismatch, c.network.ChainID, networkChainID.Uint64())
	}
	c.chainID = networkChainID

	c.log.Debug("connected", "chain_id", networkChainID.Uint64(), "sender", c.sender.Hex())
	return networkChainID.Uint64(), nil
}

// Close releases the RPC connection
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// Sender returns the signing account
func (c *Client) Sender() common.Address {
	return c.sender
}

func (c *Client) transactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if c.chainID == nil {
		return nil, fmt.Errorf("not connected to blockchain")
	}
	opts, err := bind.NewKeyedTransactorWithChainID(c.key, c.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}

func (c *Client) confirmTimeout() time.Duration {
	if c.network != nil && c.network.ConfirmTimeout > 0 {
		return c.network.ConfirmTimeout
	}
	return defaultConfirmTimeout
}

// SendDeployment signs and submits a contract creation transaction
func (c *Client) SendDeployment(ctx context.Context, contract *models.Contract, parsed abi.ABI, args ...any) (*models.Instance, error) {
	code, err := contract.Artifact.CreationCode()
	if err != nil {
		return nil, err
	}
	opts, err := c.transactOpts(ctx)
	if err != nil {
		return nil, err
	}

	address, tx, _, err := bind.DeployContract(opts, parsed, code, c.backend, args...)
	if err != nil {
		return nil, fmt.Errorf("deployment transaction rejected: %w", err)
	}

	return &models.Instance{
		Contract: contract,
		ABI:      parsed,
		Address:  address,
		DeployTx: tx,
	}, nil
}

// WaitDeployed blocks until the deployment is mined and code exists at the new address
func (c *Client) WaitDeployed(ctx context.Context, instance *models.Instance) error {
	if instance.DeployTx == nil {
		return fmt.Errorf("instance has no deployment transaction")
	}

	ctx, cancel := context.WithTimeout(ctx, c.confirmTimeout())
	defer cancel()

	receipt, err := bind.WaitMined(ctx, c.backend, instance.DeployTx)
	if err != nil {
		return fmt.Errorf("failed waiting for deployment: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("%w: deployment failed in block %d", domain.ErrReverted, receipt.BlockNumber.Uint64())
	}

	code, err := c.backend.CodeAt(ctx, receipt.ContractAddress, nil)
	if err != nil {
		return fmt.Errorf("failed to check code: %w", err)
	}
	if len(code) == 0 {
		return fmt.Errorf("no code at %s after deployment", receipt.ContractAddress.Hex())
	}

	instance.Address = receipt.ContractAddress
	instance.BlockNumber = receipt.BlockNumber.Uint64()
	instance.GasUsed = receipt.GasUsed
	instance.Confirmed = true
	return nil
}

// CodeAt returns the runtime code at address
func (c *Client) CodeAt(ctx context.Context, address common.Address) ([]byte, error) {
	if c.backend == nil {
		return nil, fmt.Errorf("not connected to blockchain")
	}
	return c.backend.CodeAt(ctx, address, nil)
}

func (c *Client) bound(instance *models.Instance) *bind.BoundContract {
	return bind.NewBoundContract(instance.Address, instance.ABI, c.backend, c.backend, c.backend)
}

// Call executes a read-only method and returns its decoded outputs
func (c *Client) Call(ctx context.Context, instance *models.Instance, method string, args ...any) ([]any, error) {
	if c.backend == nil {
		return nil, fmt.Errorf("not connected to blockchain")
	}
	var out []any
	opts := &bind.CallOpts{Context: ctx, From: c.sender}
	if err := c.bound(instance).Call(opts, &out, method, args...); err != nil {
		return nil, err
	}
	return out, nil
}

// SendTransaction signs and submits a state-changing method call
func (c *Client) SendTransaction(ctx context.Context, instance *models.Instance, method string, args ...any) (*types.Transaction, error) {
	opts, err := c.transactOpts(ctx)
	if err != nil {
		return nil, err
	}
	return c.bound(instance).Transact(opts, method, args...)
}

// WaitMined blocks until tx is included in a block
func (c *Client) WaitMined(ctx context.Context, tx *types.Transaction) (*models.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, c.confirmTimeout())
	defer cancel()

	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for transaction %s: %w", tx.Hash().Hex(), err)
	}

	return &models.Receipt{
		TxHash:      receipt.TxHash,
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
		Status:      receipt.Status,
	}, nil
}

// RevertReason decodes an Error(string) payload attached to a node error
func (c *Client) RevertReason(err error) (string, bool) {
	return RevertReason(err)
}

// RevertReason decodes an Error(string) payload attached to a node error
func RevertReason(err error) (string, bool) {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return "", false
	}

	var data []byte
	switch d := dataErr.ErrorData().(type) {
	case string:
		decoded, decErr := hexutil.Decode(d)
		if decErr != nil {
			return "", false
		}
		data = decoded
	case []byte:
		data = d
	default:
		return "", false
	}

	reason, unpackErr := abi.UnpackRevert(data)
	if unpackErr != nil {
		return "", false
	}
	return reason, true
}

// Ensure the adapter implements the interface
var _ usecase.ChainClient = (*Client)(nil)
