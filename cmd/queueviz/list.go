// cmd/queueviz/list.go
package queueviz

import (
	"github.com/spf13/cobra"
)

// listCmd groups 'list commands' and 'list files'.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Inspect the command tree or the fixture directory",
	Long:  `The 'list' command groups subcommands that report on the CLI itself or on the fixture files in data_dir. It does nothing on its own.`,
}

func init() {
	rootCmd.AddCommand(listCmd)
}
