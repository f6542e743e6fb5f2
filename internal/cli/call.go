package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/sling/internal/cli/render"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// NewCallCmd creates the call command
func NewCallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <contract> <address> <method> [args...]",
		Short: "Invoke a method on a deployed contract",
		Long: `Invoke a method on a contract that is already deployed at <address>.

View and pure methods are executed as calls and print their return values.
Every other method is sent as a transaction and waits for its receipt.

Examples:
  sling call IfElse 0x5FbDB2315678afecb367f032d93F642f64180aa3 foo 11
  sling call Mapping 0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512 set 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266 3`,
		Args:         cobra.MinimumNArgs(3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.CallContract.Run(cmd.Context(), usecase.CallContractParams{
				Contract: args[0],
				Address:  args[1],
				Method:   args[2],
				Args:     args[3:],
			})
			if err != nil {
				return err
			}

			return render.NewContractRenderer(cmd.OutOrStdout()).RenderCall(result)
		},
	}
}
