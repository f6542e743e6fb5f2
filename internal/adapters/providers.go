package adapters

import (
	"log/slog"

	"github.com/google/wire"
	"github.com/trebuchet-org/sling/internal/adapters/abi"
	"github.com/trebuchet-org/sling/internal/adapters/anvil"
	"github.com/trebuchet-org/sling/internal/adapters/blockchain"
	"github.com/trebuchet-org/sling/internal/adapters/repository/contracts"
	internalconfig "github.com/trebuchet-org/sling/internal/config"
	"github.com/trebuchet-org/sling/internal/domain/config"
	"github.com/trebuchet-org/sling/internal/scripts"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// ProvideChainClient provides the chain client and closes its connection on cleanup
func ProvideChainClient(cfg *config.RuntimeConfig, log *slog.Logger) (*blockchain.Client, func()) {
	client := blockchain.NewClient(cfg, log)
	return client, client.Close
}

// ProvideNetworkResolver provides a resolver over the loaded project file
func ProvideNetworkResolver(cfg *config.RuntimeConfig) *internalconfig.NetworkResolver {
	return internalconfig.NewNetworkResolver(cfg.Project)
}

// RepositorySet provides artifact-backed implementations
var RepositorySet = wire.NewSet(
	contracts.NewRepository,
	wire.Bind(new(usecase.ContractRepository), new(*contracts.Repository)),
)

// BlockchainSet provides go-ethereum backed implementations
var BlockchainSet = wire.NewSet(
	ProvideChainClient,
	wire.Bind(new(usecase.ChainClient), new(*blockchain.Client)),

	blockchain.NewProber,
	wire.Bind(new(usecase.ChainProbe), new(*blockchain.Prober)),
)

// CodecSet provides ABI argument handling
var CodecSet = wire.NewSet(
	abi.NewCodec,
	wire.Bind(new(usecase.ArgCodec), new(*abi.Codec)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	ProvideNetworkResolver,
	wire.Bind(new(usecase.NetworkResolver), new(*internalconfig.NetworkResolver)),
)

// AnvilSet provides local node management
var AnvilSet = wire.NewSet(
	anvil.NewManager,
	wire.Bind(new(usecase.AnvilManager), new(*anvil.Manager)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	RepositorySet,
	BlockchainSet,
	CodecSet,
	ConfigSet,
	AnvilSet,
	scripts.DefaultRegistry,
)
