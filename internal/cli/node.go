package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/sling/internal/adapters/anvil"
	"github.com/trebuchet-org/sling/internal/cli/render"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// NewNodeCmd creates the node command group
func NewNodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Manage a local anvil node",
		Long: `Start, stop and inspect a local anvil node for development.

PID and log files are kept in /tmp, keyed by the node name, so several nodes
can run side by side on different ports.`,
	}

	cmd.AddCommand(
		newNodeOperationCmd("start", "Start a local anvil node"),
		newNodeOperationCmd("stop", "Stop a local anvil node"),
		newNodeOperationCmd("status", "Show the status of a local anvil node"),
	)

	return cmd
}

func newNodeOperationCmd(operation, short string) *cobra.Command {
	var (
		name    string
		port    string
		chainID string
	)

	cmd := &cobra.Command{
		Use:          operation,
		Short:        short,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ManageNode.Execute(cmd.Context(), usecase.ManageNodeParams{
				Operation: operation,
				Name:      name,
				Port:      port,
				ChainID:   chainID,
			})
			if err != nil {
				return err
			}

			return render.NewNodeRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().StringVar(&name, "name", anvil.DefaultAnvilName, "Name of the node instance")
	cmd.Flags().StringVar(&port, "port", anvil.DefaultAnvilPort, "Port to listen on")
	if operation == "start" {
		cmd.Flags().StringVar(&chainID, "chain-id", "", "Chain ID to run with (anvil default when empty)")
	}

	return cmd
}
