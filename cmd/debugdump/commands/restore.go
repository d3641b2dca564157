package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/debugdump/internal/app"
)

func (c *CLI) newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <filename>",
		Short: "Install, remove and replace packages to match a dump file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetBool("output")
			installLatest, _ := cmd.Flags().GetBool("install-latest")
			ignoreArch, _ := cmd.Flags().GetBool("ignore-arch")
			configPath, _ := cmd.Flags().GetString("config")
			trace, _ := cmd.Flags().GetBool("trace")

			var filterTypes []string
			if cmd.Flags().Changed("filter-types") {
				filterTypes, _ = cmd.Flags().GetStringSlice("filter-types")
				if filterTypes == nil {
					filterTypes = []string{}
				}
			}

			_, err := c.app.Restore(cmd.Context(), app.RestoreOptions{
				Filename:      args[0],
				Output:        output,
				InstallLatest: installLatest,
				IgnoreArch:    ignoreArch,
				FilterTypes:   filterTypes,
				ConfigPath:    configPath,
				Trace:         trace,
			})
			return err
		},
	}
	cmd.Flags().Bool("output", false, "Only print the planned steps")
	cmd.Flags().Bool("install-latest", false, "Install the latest version of recorded packages instead of the recorded one")
	cmd.Flags().Bool("ignore-arch", false, "Ignore architecture when installing recorded packages")
	cmd.Flags().StringSlice("filter-types", []string{"install", "remove", "replace"},
		"Limit the steps to these types: install, remove, replace")
	return cmd
}
