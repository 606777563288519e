package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/input-collector/internal/collect"
	"github.com/ytget/input-collector/internal/model"
)

func newStatsCmd(root *rootOptions) *cobra.Command {
	var noFolders bool
	var list bool

	cmd := &cobra.Command{
		Use:   "stats <path> [path...]",
		Short: "Print the file count and total size of the given inputs",
		Long: `Collect the given files and folders without asking and print the summary
line. Folders are included recursively; when two files share a name the first
one is kept.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompter := collect.FixedPrompter{Folder: collect.ChoiceYes, Replace: collect.ChoiceNo}
			if noFolders {
				prompter.Folder = collect.ChoiceNo
			}

			files := model.NewFileList()
			res, err := collect.NewCollector(files, prompter, root.log).Add(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if list {
				for _, path := range files.Paths() {
					fmt.Fprintln(out, path)
				}
			}
			fmt.Fprintln(out, files.Stats().Summary())
			if res.Skipped > 0 {
				fmt.Fprintf(out, "Skipped: %d\n", res.Skipped)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noFolders, "no-folders", false, "Ignore folders given on the command line")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "Print the collected paths")

	return cmd
}
