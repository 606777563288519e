package ui

import (
	"context"
	"errors"
	"image/color"
	"sort"
	"sync"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/input-collector/internal/collect"
	"github.com/ytget/input-collector/internal/config"
	"github.com/ytget/input-collector/internal/model"
	"github.com/ytget/input-collector/internal/transfer"
)

// ErrBusy is returned when an add runs while another one is in progress
var ErrBusy = errors.New("input form is busy")

// InputForm is the input file list of one kind with its buttons and status line
type InputForm struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	copier       transfer.Copier
	log          zerolog.Logger

	kind      string
	list      *model.FileList
	collector *collect.Collector
	busy      atomic.Bool

	selMu    sync.Mutex
	selected map[int]bool

	// UI components
	card         *widget.Card
	fileList     *widget.List
	addFilesBtn  *widget.Button
	addFolderBtn *widget.Button
	deleteBtn    *widget.Button
	clearBtn     *widget.Button
	statusLabel  *widget.Label
	content      fyne.CanvasObject

	onChanged func()
}

// NewInputForm creates an input form for kind. Questions are asked with
// dialogs over window.
func NewInputForm(window fyne.Window, kind string, settings *config.Settings, localization *Localization, copier transfer.Copier, log zerolog.Logger) *InputForm {
	f := &InputForm{
		window:       window,
		settings:     settings,
		localization: localization,
		copier:       copier,
		log:          log.With().Str("kind", kind).Logger(),
		list:         model.NewFileList(),
		selected:     make(map[int]bool),
	}
	f.collector = collect.NewCollector(f.list, NewDialogPrompter(window, localization), f.log)
	f.list.SetChangeCallback(f.onListChanged)

	f.createUI()
	f.SetKind(kind)
	return f
}

// SetPrompter replaces the folder and replace question handler
func (f *InputForm) SetPrompter(p collect.Prompter) {
	f.collector = collect.NewCollector(f.list, p, f.log)
}

// SetChangeCallback sets the function called after the list changed
func (f *InputForm) SetChangeCallback(callback func()) {
	f.onChanged = callback
}

// Container returns the widget to embed in a window
func (f *InputForm) Container() fyne.CanvasObject {
	return f.content
}

// SetKind sets the input kind and the group caption derived from it
func (f *InputForm) SetKind(kind string) {
	f.kind = kind
	f.card.SetTitle(f.localization.KindTitle(kind))
}

// Kind returns the input kind
func (f *InputForm) Kind() string {
	return f.kind
}

// Count returns the number of listed files
func (f *InputForm) Count() int {
	return f.list.Len()
}

// Paths returns the listed files in order
func (f *InputForm) Paths() []string {
	return f.list.Paths()
}

// List returns the underlying file list
func (f *InputForm) List() *model.FileList {
	return f.list
}

// Busy reports whether an add is running
func (f *InputForm) Busy() bool {
	return f.busy.Load()
}

// StatusText returns the localized status line for the current list
func (f *InputForm) StatusText() string {
	return f.localization.StatusText(f.list.Stats())
}

// AddPaths collects paths in the background. Questions are shown as dialogs.
func (f *InputForm) AddPaths(paths []string) {
	if len(paths) == 0 {
		return
	}
	go func() {
		if _, err := f.Collect(context.Background(), paths); err != nil && !errors.Is(err, ErrBusy) {
			f.log.Error().Err(err).Msg("adding input files failed")
			fyne.Do(func() {
				dialog.ShowError(err, f.window)
			})
		}
	}()
}

// Collect adds paths and blocks until done. It must not run on the UI
// goroutine while a DialogPrompter is in use.
func (f *InputForm) Collect(ctx context.Context, paths []string) (collect.Result, error) {
	if !f.busy.CompareAndSwap(false, true) {
		return collect.Result{}, ErrBusy
	}
	defer f.busy.Store(false)

	fyne.Do(func() { f.setCollecting(true) })
	defer fyne.Do(func() { f.setCollecting(false) })

	res, err := f.collector.Add(ctx, paths)
	if res.LastDir != "" {
		f.settings.SetInputDirectory(res.LastDir)
	}
	return res, err
}

// SetSelected marks the entry at index for deletion
func (f *InputForm) SetSelected(index int, selected bool) {
	f.selMu.Lock()
	defer f.selMu.Unlock()
	if selected {
		f.selected[index] = true
	} else {
		delete(f.selected, index)
	}
}

// SelectedIndices returns the marked entries in ascending order
func (f *InputForm) SelectedIndices() []int {
	f.selMu.Lock()
	defer f.selMu.Unlock()

	indices := make([]int, 0, len(f.selected))
	for i := range f.selected {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

func (f *InputForm) isSelected(index int) bool {
	f.selMu.Lock()
	defer f.selMu.Unlock()
	return f.selected[index]
}

func (f *InputForm) clearSelection() {
	f.selMu.Lock()
	f.selected = make(map[int]bool)
	f.selMu.Unlock()
}

// DeleteSelected removes the marked entries and returns how many were removed
func (f *InputForm) DeleteSelected() int {
	indices := f.SelectedIndices()
	f.clearSelection()
	removed := f.list.Remove(indices)
	if removed > 0 {
		f.log.Debug().Int("removed", removed).Msg("entries deleted")
	}
	return removed
}

// ClearAll empties the list
func (f *InputForm) ClearAll() {
	f.clearSelection()
	f.list.Clear()
}

// CopyFiles copies every listed file into target. On failure it returns the
// path of the file that could not be copied.
func (f *InputForm) CopyFiles(ctx context.Context, target string) (string, error) {
	paths := f.list.Paths()
	if len(paths) == 0 {
		return "", nil
	}
	if _, err := f.copier.CopyAll(ctx, paths, target); err != nil {
		return transfer.FailedPath(err), err
	}
	return "", nil
}

// RefreshTexts re-applies localized captions
func (f *InputForm) RefreshTexts() {
	f.card.SetTitle(f.localization.KindTitle(f.kind))
	f.addFilesBtn.SetText(f.localization.GetText(KeyAddFiles))
	f.addFolderBtn.SetText(f.localization.GetText(KeyAddFolder))
	f.deleteBtn.SetText(f.localization.GetText(KeyDelete))
	f.clearBtn.SetText(f.localization.GetText(KeyClear))
	f.updateStatus()
}

// createUI creates the form components
func (f *InputForm) createUI() {
	f.fileList = widget.NewList(
		func() int { return f.list.Len() },
		func() fyne.CanvasObject { return NewFileRow(f.SetSelected) },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			row, ok := obj.(*FileRow)
			if !ok {
				return
			}
			row.SetEntry(id, f.list.At(id), f.isSelected(id))
		},
	)

	f.addFilesBtn = widget.NewButton(f.localization.GetText(KeyAddFiles), f.onAddFiles)
	f.addFolderBtn = widget.NewButton(f.localization.GetText(KeyAddFolder), f.onAddFolder)
	f.deleteBtn = widget.NewButton(f.localization.GetText(KeyDelete), func() { f.DeleteSelected() })
	f.clearBtn = widget.NewButton(f.localization.GetText(KeyClear), f.ClearAll)

	f.statusLabel = widget.NewLabel("")
	f.statusLabel.TextStyle = fyne.TextStyle{Monospace: true}
	f.updateStatus()

	buttons := container.NewVBox(f.addFilesBtn, f.addFolderBtn, f.deleteBtn, f.clearBtn)
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(RowMinWidth, ListMinHeight))
	body := container.NewBorder(nil, f.statusLabel, nil, buttons, container.NewStack(spacer, f.fileList))

	f.card = widget.NewCard("", "", body)
	f.content = f.card
}

// setCollecting locks the buttons and shows a progress caption while an add runs
func (f *InputForm) setCollecting(collecting bool) {
	f.setButtonsEnabled(!collecting)
	if collecting {
		f.card.SetSubTitle(f.localization.GetText(KeyCollecting))
	} else {
		f.card.SetSubTitle("")
	}
}

func (f *InputForm) setButtonsEnabled(enabled bool) {
	for _, btn := range []*widget.Button{f.addFilesBtn, f.addFolderBtn, f.deleteBtn, f.clearBtn} {
		if enabled {
			btn.Enable()
		} else {
			btn.Disable()
		}
	}
}

// updateStatus refreshes the status line. Must run on the UI goroutine.
func (f *InputForm) updateStatus() {
	f.statusLabel.SetText(f.StatusText())
}

// onListChanged runs after every list mutation, possibly off the UI goroutine
func (f *InputForm) onListChanged() {
	fyne.Do(func() {
		f.fileList.Refresh()
		f.updateStatus()
		if f.onChanged != nil {
			f.onChanged()
		}
	})
}

// startLocation returns the remembered input folder as a dialog location
func (f *InputForm) startLocation() fyne.ListableURI {
	dir := f.settings.GetInputDirectory()
	if dir == "" {
		return nil
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		return nil
	}
	return lister
}

// onAddFiles handles the Add files button
func (f *InputForm) onAddFiles() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, f.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		f.AddPaths([]string{path})
	}, f.window)

	if location := f.startLocation(); location != nil {
		fd.SetLocation(location)
	}
	fd.Show()
}

// onAddFolder handles the Add folder button
func (f *InputForm) onAddFolder() {
	fd := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, f.window)
			return
		}
		if uri == nil {
			return
		}
		f.AddPaths([]string{uri.Path()})
	}, f.window)

	if location := f.startLocation(); location != nil {
		fd.SetLocation(location)
	}
	fd.Show()
}
