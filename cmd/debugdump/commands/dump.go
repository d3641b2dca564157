package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/debugdump/internal/app"
)

func (c *CLI) newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [filename]",
		Short: "Write the installed packages, dependency problems and repositories to a dump file",
		Long: "Write the installed packages, dependency problems and repository contents to a dump file.\n" +
			"Without a filename the dump is written to dump-<hostname>-<timestamp>.txt.gz.\n" +
			"Names ending in .gz are gzip compressed.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noRepos, _ := cmd.Flags().GetBool("norepos")
			configPath, _ := cmd.Flags().GetString("config")
			trace, _ := cmd.Flags().GetBool("trace")

			var filename string
			if len(args) > 0 {
				filename = args[0]
			}

			_, err := c.app.Dump(cmd.Context(), app.DumpOptions{
				Filename:   filename,
				NoRepos:    noRepos,
				ConfigPath: configPath,
				Trace:      trace,
			})
			return err
		},
	}
	cmd.Flags().Bool("norepos", false, "Do not record the contents of enabled repositories")
	return cmd
}
