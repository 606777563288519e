package ui

import (
	"image/color"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
)

// formatFileSize formats file size in bytes to human readable format.
// Negative sizes mean the file is gone.
func formatFileSize(bytes int64) string {
	if bytes < 0 {
		return DashPlaceholder
	}
	return humanize.IBytes(uint64(bytes))
}

// fileSize returns the size of path, or -1 when it cannot be stat-ed
func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return -1
	}
	return info.Size()
}

// FileRow represents one entry of an input list
type FileRow struct {
	widget.BaseWidget

	index int
	path  string

	// UI components
	check     *widget.Check
	nameLabel *widget.Label
	dirLabel  *widget.Label
	sizeLabel *widget.Label

	onToggled func(index int, checked bool)
}

// NewFileRow creates a new file row widget
func NewFileRow(onToggled func(index int, checked bool)) *FileRow {
	row := &FileRow{
		index:     -1,
		onToggled: onToggled,
	}
	row.ExtendBaseWidget(row)
	row.createUI()
	return row
}

// SetEntry shows path at list position index
func (r *FileRow) SetEntry(index int, path string, checked bool) {
	r.index = index
	r.path = path

	r.nameLabel.SetText(filepath.Base(path))
	r.dirLabel.SetText(filepath.Dir(path))
	r.sizeLabel.SetText(formatFileSize(fileSize(path)))

	// SetChecked fires OnChanged; detach while syncing
	r.check.OnChanged = nil
	r.check.SetChecked(checked)
	r.check.OnChanged = r.toggled
}

// Path returns the path currently shown
func (r *FileRow) Path() string {
	return r.path
}

func (r *FileRow) toggled(checked bool) {
	if r.onToggled != nil && r.index >= 0 {
		r.onToggled(r.index, checked)
	}
}

// createUI creates the UI components
func (r *FileRow) createUI() {
	r.check = widget.NewCheck("", r.toggled)

	r.nameLabel = widget.NewLabel("")
	r.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	r.nameLabel.Truncation = fyne.TextTruncateEllipsis

	r.dirLabel = widget.NewLabel("")
	r.dirLabel.Importance = widget.LowImportance
	r.dirLabel.Truncation = fyne.TextTruncateEllipsis

	r.sizeLabel = widget.NewLabel("")
	r.sizeLabel.Alignment = fyne.TextAlignTrailing
	r.sizeLabel.TextStyle = fyne.TextStyle{Monospace: true}
}

// CreateRenderer creates the widget renderer
func (r *FileRow) CreateRenderer() fyne.WidgetRenderer {
	// Fixed width for the size column so rows line up
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(SizeLabelWidth, 0))
	size := container.NewStack(spacer, r.sizeLabel)

	text := container.NewGridWithColumns(2, r.nameLabel, r.dirLabel)
	content := container.NewBorder(nil, nil, r.check, size, text)

	return &fileRowRenderer{row: r, layout: content}
}

// fileRowRenderer renders the file row widget
type fileRowRenderer struct {
	row    *FileRow
	layout *fyne.Container
}

// Layout arranges the components
func (r *fileRowRenderer) Layout(size fyne.Size) {
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *fileRowRenderer) MinSize() fyne.Size {
	minSize := r.layout.MinSize()
	if minSize.Width < RowMinWidth {
		minSize.Width = RowMinWidth
	}
	if minSize.Height < RowMinHeight {
		minSize.Height = RowMinHeight
	}
	return minSize
}

// Refresh refreshes the renderer
func (r *fileRowRenderer) Refresh() {
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *fileRowRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *fileRowRenderer) Destroy() {}
