package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/sling/internal/cli/render"
)

// NewScriptsCmd creates the scripts command
func NewScriptsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "scripts",
		Aliases: []string{"ls"},
		Short:   "List the built-in scripts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			list := app.ListScripts.Run(cmd.Context())
			return render.NewScriptRenderer(cmd.OutOrStdout()).RenderList(list)
		},
	}
}
