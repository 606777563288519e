package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/ytget/input-collector/internal/model"
)

// copyProgress shows a per-file progress bar while copying.
// It stays silent when w is not a terminal.
type copyProgress struct {
	bar *progressbar.ProgressBar
}

func newCopyProgress(w io.Writer, total int) *copyProgress {
	if !isTerminal(w) || total == 0 {
		return &copyProgress{}
	}

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("copying"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
	return &copyProgress{bar: bar}
}

// update is the transfer service callback
func (p *copyProgress) update(task *model.CopyTask) {
	if p.bar == nil {
		return
	}
	switch task.Status {
	case model.CopyStatusCopying:
		p.bar.Describe(filepath.Base(task.Source))
	case model.CopyStatusCompleted:
		_ = p.bar.Add(1)
	}
}

func (p *copyProgress) finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
