package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/sling/internal/cli/render"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// NewContractsCmd creates the contracts command
func NewContractsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contracts [filter]",
		Short: "List compiled contracts from the artifacts directory",
		Long: `List the contracts sling can deploy, read from the artifacts directory
configured in sling.toml. build_command runs first when it is set.

An optional filter keeps contracts whose name or source path contains it.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListContractsParams{}
			if len(args) == 1 {
				params.Filter = args[0]
			}

			result, err := app.ListContracts.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewContractRenderer(cmd.OutOrStdout()).RenderList(result)
		},
	}
}
