package app

import (
	"log/slog"

	"github.com/trebuchet-org/sling/internal/domain/config"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	RunScript      *usecase.RunScript
	ListScripts    *usecase.ListScripts
	ListContracts  *usecase.ListContracts
	DeployContract *usecase.DeployContract
	CallContract   *usecase.CallContract
	ListNetworks   *usecase.ListNetworks
	ManageNode     *usecase.ManageNode
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	runScript *usecase.RunScript,
	listScripts *usecase.ListScripts,
	listContracts *usecase.ListContracts,
	deployContract *usecase.DeployContract,
	callContract *usecase.CallContract,
	listNetworks *usecase.ListNetworks,
	manageNode *usecase.ManageNode,
) *App {
	return &App{
		Config:         cfg,
		Log:            log,
		RunScript:      runScript,
		ListScripts:    listScripts,
		ListContracts:  listContracts,
		DeployContract: deployContract,
		CallContract:   callContract,
		ListNetworks:   listNetworks,
		ManageNode:     manageNode,
	}
}
