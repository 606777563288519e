package collect

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ytget/input-collector/internal/model"
	"github.com/ytget/input-collector/internal/platform"
)

// Result summarizes one Add call
type Result struct {
	Added    int
	Replaced int
	Skipped  int
	Aborted  bool

	// LastDir is the directory the next file dialog should open in.
	// Empty when nothing completed.
	LastDir string
}

// Changed reports whether the list was modified
func (r Result) Changed() bool {
	return r.Added > 0 || r.Replaced > 0
}

// Collector adds paths to a file list following the folder and duplicate rules
type Collector struct {
	list     *model.FileList
	prompter Prompter
	log      zerolog.Logger
}

// NewCollector creates a collector that mutates list and asks prompter
func NewCollector(list *model.FileList, prompter Prompter, log zerolog.Logger) *Collector {
	return &Collector{
		list:     list,
		prompter: prompter,
		log:      log,
	}
}

// List returns the file list the collector writes to
func (c *Collector) List() *model.FileList {
	return c.list
}

// Add processes the selected paths in order. Regular files are added
// directly; folders are expanded after the user confirms them. An abort
// answer stops the whole call and sets Result.Aborted; it is not an error.
func (c *Collector) Add(ctx context.Context, paths []string) (Result, error) {
	var res Result

loop:
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		info, err := os.Stat(path)
		if err != nil {
			c.log.Warn().Err(err).Str("path", path).Msg("skipping path that cannot be read")
			res.Skipped++
			continue
		}

		switch {
		case info.Mode().IsRegular():
			cont, err := c.addFile(ctx, path, i < len(paths)-1, &res)
			if err != nil {
				return res, err
			}
			if !cont {
				res.Aborted = true
				break loop
			}
			res.LastDir = absDir(filepath.Dir(path))
		case info.IsDir():
			choice, err := c.prompter.ConfirmFolder(ctx, path)
			if err != nil {
				return res, fmt.Errorf("confirm folder %s: %w", path, err)
			}

			switch choice {
			case ChoiceYes:
				cont, err := c.addFolder(ctx, path, &res)
				if err != nil {
					return res, err
				}
				if !cont {
					res.Aborted = true
					break loop
				}
				res.LastDir = absDir(path)
			case ChoiceNo:
				c.log.Debug().Str("folder", path).Msg("folder skipped by user")
			default:
				res.Aborted = true
				break loop
			}
		default:
			c.log.Warn().Str("path", path).Msg("skipping special file")
			res.Skipped++
		}
	}

	c.log.Info().
		Int("added", res.Added).
		Int("replaced", res.Replaced).
		Int("skipped", res.Skipped).
		Bool("aborted", res.Aborted).
		Int("total", c.list.Len()).
		Msg("input files collected")

	return res, nil
}

// addFolder visits the entries of dir. It returns false when the user
// aborted somewhere below dir.
func (c *Collector) addFolder(ctx context.Context, dir string, res *Result) (bool, error) {
	entries, err := platform.ListFolder(dir)
	if err != nil {
		c.log.Warn().Err(err).Str("folder", dir).Msg("cannot list folder")
		return true, nil
	}

	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		if !entry.IsDir {
			cont, err := c.addFile(ctx, entry.Path, i < len(entries)-1, res)
			if err != nil {
				return false, err
			}
			if !cont {
				return false, nil
			}
			continue
		}

		choice, err := c.prompter.ConfirmFolder(ctx, entry.Path)
		if err != nil {
			return false, fmt.Errorf("confirm folder %s: %w", entry.Path, err)
		}

		switch choice {
		case ChoiceYes:
			cont, err := c.addFolder(ctx, entry.Path, res)
			if err != nil || !cont {
				return false, err
			}
		case ChoiceNo:
			continue
		default:
			return false, nil
		}
	}

	return true, nil
}

// addFile appends path or resolves a file name clash with the user.
// It returns false when the user aborted.
func (c *Collector) addFile(ctx context.Context, path string, canAbort bool, res *Result) (bool, error) {
	dup := c.list.FindDuplicate(path)
	if dup == -1 {
		c.list.Append(path)
		res.Added++
		return true, nil
	}

	existing := c.list.At(dup)
	choice, err := c.prompter.ConfirmReplace(ctx, existing, path, canAbort)
	if err != nil {
		return false, fmt.Errorf("confirm replace %s: %w", path, err)
	}

	switch {
	case choice == ChoiceYes:
		if err := c.list.Replace(dup, path); err != nil {
			return false, err
		}
		c.log.Debug().Str("old", existing).Str("new", path).Msg("entry replaced")
		res.Replaced++
	case choice == ChoiceAbort && canAbort:
		return false, nil
	default:
		res.Skipped++
	}
	return true, nil
}

// absDir returns the absolute form of dir, or dir itself on failure
func absDir(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}
