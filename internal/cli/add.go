package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/input-collector/internal/collect"
	"github.com/ytget/input-collector/internal/config"
	"github.com/ytget/input-collector/internal/model"
	"github.com/ytget/input-collector/internal/transfer"
)

// errNoTarget is returned when neither --to nor working_dir names a folder
var errNoTarget = errors.New("no working folder: use --to or set working_dir in the config file")

type addOptions struct {
	to        string
	yes       bool
	replace   string
	dryRun    bool
	overwrite bool
}

func newAddCmd(root *rootOptions) *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add <path> [path...]",
		Short: "Collect files and folders and copy them into the working folder",
		Long: `Collect the given files and folders into a list and copy it into the
working folder.

Each folder asks whether all of its files should be added, recursively.
A file whose name is already listed asks whether to replace the listed one.

Examples:
  # Copy two files into ./work
  input-collector add a.csv b.csv --to ./work

  # Add a whole folder without questions, replacing duplicate names
  input-collector add ./inputs --to ./work --yes --replace always

  # Only show what would be copied
  input-collector add ./inputs --dry-run`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, root, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.to, "to", "t", "", "Working folder to copy into (default: working_dir from config)")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Include folders without asking")
	cmd.Flags().StringVar(&opts.replace, "replace", "", "Duplicate file names: ask, always or never (default: replace from config)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Collect and print the list without copying")
	cmd.Flags().BoolVar(&opts.overwrite, "overwrite", false, "Overwrite files that already exist in the working folder")

	return cmd
}

func runAdd(cmd *cobra.Command, root *rootOptions, opts *addOptions, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	log := root.log

	policy := root.cfg.Replace
	if cmd.Flags().Changed("replace") {
		policy = opts.replace
	}
	if err := config.ValidateReplace(policy); err != nil {
		return err
	}

	prompter := &policyPrompter{
		replace: replaceChoice(policy),
		ask:     NewTerminalPrompter(cmd.InOrStdin(), out),
	}
	if opts.yes || (root.cfg.IncludeFolders != nil && *root.cfg.IncludeFolders) {
		yes := collect.ChoiceYes
		prompter.folder = &yes
	}

	list := model.NewFileList()
	res, err := collect.NewCollector(list, prompter, log).Add(ctx, args)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, list.Stats().Summary())
	if res.Aborted {
		fmt.Fprintln(out, "Aborted, nothing copied.")
		return nil
	}

	if opts.dryRun {
		for _, path := range list.Paths() {
			fmt.Fprintln(out, path)
		}
		return nil
	}

	if list.Len() == 0 {
		fmt.Fprintln(out, "No input files.")
		return nil
	}

	target := opts.to
	if target == "" {
		target = root.cfg.WorkingDir
	}
	if target == "" {
		return errNoTarget
	}

	overwrite := opts.overwrite
	if !cmd.Flags().Changed("overwrite") && root.cfg.Overwrite != nil {
		overwrite = *root.cfg.Overwrite
	}

	svc := transfer.NewService(log)
	svc.SetOverwrite(overwrite)

	progress := newCopyProgress(cmd.ErrOrStderr(), list.Len())
	svc.SetUpdateCallback(progress.update)

	batch, err := svc.CopyAll(ctx, list.Paths(), target)
	progress.finish()
	if err != nil {
		if failed := transfer.FailedPath(err); failed != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "copy failed: %s\n", failed)
		}
		return err
	}

	fmt.Fprintf(out, "Copied %d files to %s\n", len(batch.Tasks), target)
	return nil
}
