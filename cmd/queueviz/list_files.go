// cmd/queueviz/list_files.go
package queueviz

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mwiater/queueviz/internal/dataset"
)

// filesCmd implements 'list files', which checks the fixture directory.
var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the expected fixture files and whether they exist",
	Long:  `The 'files' subcommand lists the 18 fixture files expected in data_dir, in loading order, with their size or MISSING. With format auto both the .json and .csv names are checked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := dataset.ParseFormat(cfg.Format)
		if err != nil {
			return err
		}
		missing := listFiles(cmd.OutOrStdout(), os.DirFS(cfg.DataDir), format)
		if missing > 0 {
			return fmt.Errorf("%d of %d fixtures missing in %s", missing, len(dataset.FileNames(dataset.FormatJSON)), cfg.DataDir)
		}
		return nil
	},
}

func init() {
	listCmd.AddCommand(filesCmd)
}

// listFiles prints one line per expected fixture and returns how many are
// missing.
func listFiles(w io.Writer, fsys fs.FS, f dataset.Format) int {
	formats := []dataset.Format{f}
	if f == dataset.FormatAuto {
		formats = []dataset.Format{dataset.FormatJSON, dataset.FormatCSV}
	}

	missing := 0
	for _, impl := range dataset.Implementations {
		for _, size := range dataset.Sizes {
			var found []string
			for _, ff := range formats {
				name := dataset.FileName(impl, size, ff)
				if info, err := fs.Stat(fsys, name); err == nil {
					found = append(found, fmt.Sprintf("%s (%s)", name, humanize.Bytes(uint64(info.Size()))))
				}
			}
			if len(found) == 0 {
				missing++
				fmt.Fprintf(w, "  %-34s MISSING\n", dataset.FileName(impl, size, formats[0]))
				continue
			}
			fmt.Fprintf(w, "  %s\n", strings.Join(found, ", "))
		}
	}
	return missing
}
