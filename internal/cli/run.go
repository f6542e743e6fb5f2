package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/sling/internal/cli/render"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// NewRunCmd creates the run command
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run a built-in script against the selected network",
		Long: `Run one of the built-in scripts. Each script deploys the contracts it needs
and calls them in order, printing every result. The first failing step
aborts the run.

The script may be given by name or by its file name; paths, extensions and
numeric suffixes are ignored.

Examples:
  # Deploy IfElse and call foo with three inputs
  sling run foo-ifelse

  # Same script, addressed by file name
  sling run scripts/foo-IfElse_19.js

  # Deploy Mapping and set a value on sepolia
  sling run set-mapping --network sepolia`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.RunScript.Run(cmd.Context(), usecase.RunScriptParams{
				Name: args[0],
				Out:  cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}

			// Summary goes to stderr so stdout carries only the script's own lines
			return render.NewScriptRenderer(cmd.ErrOrStderr()).RenderResult(result)
		},
	}

	return cmd
}
