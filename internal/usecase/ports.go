package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/sling/internal/domain"
	"github.com/trebuchet-org/sling/internal/domain/config"
	"github.com/trebuchet-org/sling/internal/domain/models"
)

// ContractRepository provides access to compiled contracts
type ContractRepository interface {
	GetContract(ctx context.Context, key string) (*models.Contract, error)
	ListContracts(ctx context.Context) ([]*models.Contract, error)
}

// ChainClient talks to the connected network on behalf of the signing account
type ChainClient interface {
	// Connect dials the node once and returns its chain ID
	Connect(ctx context.Context) (uint64, error)
	Sender() common.Address

	SendDeployment(ctx context.Context, contract *models.Contract, parsed abi.ABI, args ...any) (*models.Instance, error)
	WaitDeployed(ctx context.Context, instance *models.Instance) error
	CodeAt(ctx context.Context, address common.Address) ([]byte, error)

	Call(ctx context.Context, instance *models.Instance, method string, args ...any) ([]any, error)
	SendTransaction(ctx context.Context, instance *models.Instance, method string, args ...any) (*types.Transaction, error)
	WaitMined(ctx context.Context, tx *types.Transaction) (*models.Receipt, error)

	// RevertReason extracts a decoded revert reason from a node error
	RevertReason(err error) (string, bool)
}

// ChainProbe asks an RPC endpoint for its chain ID without signing anything
type ChainProbe interface {
	ProbeChainID(ctx context.Context, rpcURL string) (uint64, error)
}

// NetworkResolver resolves configured network names
type NetworkResolver interface {
	Names() []string
	Resolve(name string) (*config.Network, error)
}

// ArgCodec converts between command-line strings and ABI values
type ArgCodec interface {
	ParseArgs(inputs abi.Arguments, raw []string) ([]any, error)
	FormatValue(v any) string
}

// AnvilManager manages local anvil processes
type AnvilManager interface {
	Start(ctx context.Context, instance *domain.AnvilInstance) error
	Stop(ctx context.Context, instance *domain.AnvilInstance) error
	GetStatus(ctx context.Context, instance *domain.AnvilInstance) (*domain.AnvilStatus, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Message  string
	Spinner  bool
	Metadata any
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
