//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/sling/internal/adapters"
	"github.com/trebuchet-org/sling/internal/config"
	"github.com/trebuchet-org/sling/internal/logging"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// InitApp creates a fully wired App instance. The returned cleanup closes
// the network connection.
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, func(), error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewHarness,
		usecase.NewRunScript,
		usecase.NewListScripts,
		usecase.NewListContracts,
		usecase.NewDeployContract,
		usecase.NewCallContract,
		usecase.NewListNetworks,
		usecase.NewManageNode,

		// App
		NewApp,
	)
	return nil, nil, nil
}
