// cmd/queueviz/list_commands.go
package queueviz

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"
)

var (
	commandPathStyle  = lipgloss.NewStyle().Bold(true)
	commandShortStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	treeBranchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).MarginRight(1)
)

// commandsCmd implements 'list commands', which prints the command tree.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List all commands and subcommands as a tree",
	Long:  `The 'commands' subcommand prints every available command as a tree, each node showing the full command path followed by its short description.`,
	Run: func(cmd *cobra.Command, args []string) {
		listAllCommands(cmd.OutOrStdout(), rootCmd)
	},
}

func init() {
	listCmd.AddCommand(commandsCmd)
}

// listAllCommands writes the tree rooted at root.
func listAllCommands(w io.Writer, root *cobra.Command) {
	fmt.Fprintln(w, commandTree(root))
}

// commandTree builds a lipgloss tree of the available commands under cmd.
// help, completion and hidden commands are left out.
func commandTree(cmd *cobra.Command) *tree.Tree {
	t := tree.Root(commandLabel(cmd)).
		EnumeratorStyle(treeBranchStyle)
	for _, sub := range cmd.Commands() {
		if !sub.IsAvailableCommand() || sub.Name() == "completion" {
			continue
		}
		if sub.HasAvailableSubCommands() {
			t.Child(commandTree(sub))
			continue
		}
		t.Child(commandLabel(sub))
	}
	return t
}

func commandLabel(cmd *cobra.Command) string {
	return commandPathStyle.Render(cmd.CommandPath()) + "  " + commandShortStyle.Render(cmd.Short)
}
