package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/sling/internal/cli/render"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deploy <contract> [constructor-args...]",
		Short: "Deploy a single contract",
		Long: `Deploy one contract from the artifacts directory and wait for confirmation.

The contract is given by name, or as <source>:<name> when the name is ambiguous.
Constructor arguments are converted using the constructor's ABI types; lists
are written as [a,b,c].

Examples:
  sling deploy IfElse
  sling deploy contracts/Token.sol:Token "My Token" 1_000_000`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.DeployContract.Run(cmd.Context(), usecase.DeployContractParams{
				Contract: args[0],
				Args:     args[1:],
			})
			if err != nil {
				return err
			}

			return render.NewContractRenderer(cmd.OutOrStdout()).RenderDeployment(result)
		},
	}
}
