package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/sling/internal/adapters/progress"
	"github.com/trebuchet-org/sling/internal/app"
	"github.com/trebuchet-org/sling/internal/config"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// skipInit lists commands that run without a project
var skipInit = map[string]bool{
	"version":    true,
	"help":       true,
	"completion": true,
}

// Execute runs the command line and releases whatever the command acquired,
// including on failure
func Execute(ctx context.Context) error {
	rootCmd, cleanup := NewRootCmd()
	defer cleanup()
	return rootCmd.ExecuteContext(ctx)
}

// NewRootCmd creates the root command. The returned cleanup closes the
// network connection, cancels the command timeout and stops the spinner. It
// must run after execution whether or not the command failed.
func NewRootCmd() (*cobra.Command, func()) {
	var release []func()
	cleanup := func() {
		for i := len(release) - 1; i >= 0; i-- {
			release[i]()
		}
		release = nil
	}

	rootCmd := &cobra.Command{
		Use:   "sling",
		Short: "Deploy smart contracts and drive them from scripts",
		Long: `Sling deploys compiled contracts to an Ethereum network and runs short
scripts that call them, printing each result as it goes.

Contracts are read from Hardhat or Foundry artifacts. Networks are configured
in sling.toml; without one, sling talks to a local node on 127.0.0.1:8545.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipInit[cmd.Name()] {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			sink := newProgressSink(v)
			if s, ok := sink.(*progress.SpinnerProgressReporter); ok {
				release = append(release, s.Stop)
			}

			appInstance, appCleanup, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			release = append(release, appCleanup)

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				release = append(release, cancel)
			}
			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (defaults to default_network in sling.toml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("project-root", "", "Project directory (defaults to the nearest directory with sling.toml)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	for _, cmd := range []*cobra.Command{NewRunCmd(), NewDeployCmd(), NewCallCmd()} {
		cmd.GroupID = "main"
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{NewScriptsCmd(), NewContractsCmd(), NewNetworksCmd(), NewNodeCmd()} {
		cmd.GroupID = "management"
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd, cleanup
}

// newProgressSink shows a spinner on interactive terminals. Debug runs log
// every step instead, so the spinner would only garble the output.
func newProgressSink(v *viper.Viper) usecase.ProgressSink {
	if v.GetBool("debug") || !isatty.IsTerminal(os.Stderr.Fd()) {
		return progress.NewNopSink()
	}
	return progress.NewSpinnerProgressReporter()
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
