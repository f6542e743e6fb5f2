package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/sling/internal/cli/render"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var probe bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List available networks from sling.toml",
		Long: `List all networks configured in the [networks] section of sling.toml,
together with the built-in local networks. The selected network is marked.

With --probe each endpoint is asked for its chain ID.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{Probe: probe})
			if err != nil {
				return err
			}

			return render.NewNetworksRenderer(cmd.OutOrStdout()).RenderNetworksList(result)
		},
	}

	cmd.Flags().BoolVar(&probe, "probe", false, "Query each endpoint for its chain ID")

	return cmd
}
