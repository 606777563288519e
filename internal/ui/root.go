package ui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/input-collector/internal/config"
	"github.com/ytget/input-collector/internal/model"
	"github.com/ytget/input-collector/internal/platform"
	"github.com/ytget/input-collector/internal/transfer"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	copier       transfer.Copier
	settings     *config.Settings
	localization *Localization
	log          zerolog.Logger

	forms    []*InputForm
	formsBox *fyne.Container

	workingDirEntry *widget.Entry
	browseBtn       *widget.Button
	openBtn         *widget.Button
	copyBtn         *widget.Button
	settingsBtn     *widget.Button

	// Copy progress
	copying     atomic.Bool
	progressMu  sync.Mutex
	copiedFiles int
	totalFiles  int
	progressBar *widget.ProgressBar

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, copier transfer.Copier, log zerolog.Logger) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		copier:       copier,
		settings:     settings,
		localization: localization,
		log:          log,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.copier.SetUpdateCallback(ui.onCopyUpdate)

	ui.setupUI()
	ui.log.Info().Strs("kinds", settings.GetFileKinds()).Msg("UI setup completed")
	return ui
}

// Forms returns the input forms in display order
func (ui *RootUI) Forms() []*InputForm {
	return ui.forms
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	ui.workingDirEntry = widget.NewEntry()
	ui.workingDirEntry.SetText(ui.settings.GetWorkingDirectory())
	ui.workingDirEntry.OnSubmitted = func(dir string) {
		ui.settings.SetWorkingDirectory(strings.TrimSpace(dir))
	}
	ui.browseBtn = widget.NewButton(IconFolder, ui.onBrowseWorkingDir)
	ui.openBtn = widget.NewButton(ui.localization.GetText(KeyOpenFolder), ui.onOpenWorkingDir)

	workingLabel := widget.NewLabel(ui.localization.GetText(KeyWorkingFolder) + ":")
	topPanel := container.NewBorder(nil, nil,
		container.NewHBox(ui.settingsBtn, workingLabel),
		container.NewHBox(ui.browseBtn, ui.openBtn),
		ui.workingDirEntry,
	)

	ui.formsBox = container.NewVBox()
	ui.rebuildForms()

	ui.copyBtn = widget.NewButton(ui.localization.GetText(KeyCopy), ui.onCopyClick)
	ui.copyBtn.Importance = widget.HighImportance
	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.TextFormatter = func() string {
		ui.progressMu.Lock()
		defer ui.progressMu.Unlock()
		return fmt.Sprintf(ProgressLabelFormat, ui.copiedFiles, ui.totalFiles)
	}
	ui.progressBar.Hide()

	ui.notificationLabel = widget.NewLabel(ui.localization.GetText(KeyDropHint))
	ui.notificationLabel.Importance = widget.LowImportance
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, ui.notificationLabel)

	bottomPanel := container.NewVBox(
		ui.progressBar,
		container.NewBorder(nil, nil, nil, ui.copyBtn, ui.notificationContainer),
	)

	content := container.NewBorder(
		topPanel,
		bottomPanel,
		nil,
		nil,
		container.NewVScroll(ui.formsBox),
	)
	ui.window.SetContent(content)
	ui.window.SetOnDropped(ui.onDropped)
}

// rebuildForms creates one input form per configured kind. Forms whose kind
// is still configured keep their lists.
func (ui *RootUI) rebuildForms() {
	existing := make(map[string]*InputForm, len(ui.forms))
	for _, form := range ui.forms {
		existing[form.Kind()] = form
	}

	forms := make([]*InputForm, 0)
	for _, kind := range ui.settings.GetFileKinds() {
		form, ok := existing[kind]
		if !ok {
			form = NewInputForm(ui.window, kind, ui.settings, ui.localization, ui.copier, ui.log)
		}
		forms = append(forms, form)
	}
	ui.forms = forms

	ui.formsBox.RemoveAll()
	for _, form := range ui.forms {
		ui.formsBox.Add(form.Container())
	}
	ui.formsBox.Refresh()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	quitItem := fyne.NewMenuItem(ui.localization.GetText(KeyQuit), ui.app.Quit)
	quitItem.IsQuit = true

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, fyne.NewMenuItemSeparator(), quitItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.openBtn.SetText(ui.localization.GetText(KeyOpenFolder))
	ui.copyBtn.SetText(ui.localization.GetText(KeyCopy))
	ui.notificationLabel.SetText(ui.localization.GetText(KeyDropHint))

	for _, form := range ui.forms {
		form.RefreshTexts()
	}
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.workingDirEntry.SetText(ui.settings.GetWorkingDirectory())
		ui.rebuildForms()
		ui.refreshUITexts()
		ui.createMenu()
	})
}

// onBrowseWorkingDir picks the working folder
func (ui *RootUI) onBrowseWorkingDir() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.workingDirEntry.SetText(uri.Path())
		ui.settings.SetWorkingDirectory(uri.Path())
	}, ui.window)
}

// onOpenWorkingDir reveals the working folder in the file manager
func (ui *RootUI) onOpenWorkingDir() {
	dir := ui.workingDir()
	if err := platform.OpenFolderInManager(dir); err != nil {
		ui.log.Error().Err(err).Str("folder", dir).Msg("cannot open working folder")
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningDir), err), ui.window)
	}
}

func (ui *RootUI) workingDir() string {
	dir := strings.TrimSpace(ui.workingDirEntry.Text)
	if dir == "" {
		dir = ui.settings.GetWorkingDirectory()
	}
	return dir
}

// onDropped adds dropped files to the form under the pointer
func (ui *RootUI) onDropped(pos fyne.Position, uris []fyne.URI) {
	paths := make([]string, 0, len(uris))
	for _, uri := range uris {
		if uri.Scheme() == "file" {
			paths = append(paths, uri.Path())
		}
	}
	if len(paths) == 0 {
		return
	}

	if form := ui.formAt(pos); form != nil {
		ui.log.Debug().Int("count", len(paths)).Str("kind", form.Kind()).Msg("files dropped")
		form.AddPaths(paths)
	}
}

// formAt returns the form containing pos, or the first form
func (ui *RootUI) formAt(pos fyne.Position) *InputForm {
	if len(ui.forms) == 0 {
		return nil
	}

	driver := ui.app.Driver()
	for _, form := range ui.forms {
		obj := form.Container()
		origin := driver.AbsolutePositionForObject(obj)
		size := obj.Size()
		if pos.X >= origin.X && pos.X < origin.X+size.Width &&
			pos.Y >= origin.Y && pos.Y < origin.Y+size.Height {
			return form
		}
	}
	return ui.forms[0]
}

// onCopyClick copies all forms into the working folder
func (ui *RootUI) onCopyClick() {
	target := ui.workingDir()
	ui.settings.SetWorkingDirectory(target)

	total := 0
	for _, form := range ui.forms {
		if form.Busy() {
			return
		}
		total += form.Count()
	}
	if total == 0 {
		dialog.ShowInformation(ui.localization.GetText(KeyCopy), ui.localization.GetText(KeyNothingToCopy), ui.window)
		return
	}

	if !ui.copying.CompareAndSwap(false, true) {
		return
	}

	ui.progressMu.Lock()
	ui.copiedFiles = 0
	ui.totalFiles = total
	ui.progressMu.Unlock()

	ui.copyBtn.Disable()
	ui.progressBar.SetValue(0)
	ui.progressBar.Show()
	ui.showNotification(ui.localization.GetText(KeyCopying), true)

	ui.copier.SetOverwrite(ui.settings.GetOverwrite())
	go ui.copyAll(context.Background(), target)
}

// copyAll runs the copy off the UI goroutine and reports the outcome
func (ui *RootUI) copyAll(ctx context.Context, target string) {
	defer ui.copying.Store(false)

	for _, form := range ui.forms {
		failedPath, err := form.CopyFiles(ctx, target)
		if err != nil {
			ui.log.Error().Err(err).Str("path", failedPath).Msg("copy aborted")
			fyne.Do(func() {
				ui.finishCopy()
				ui.showNotification(ui.localization.GetText(KeyCopyFailed)+" "+failedPath, false)
				ui.showCopyError(failedPath, err)
			})
			return
		}
	}

	fyne.Do(func() {
		ui.finishCopy()
		ui.showNotification(ui.localization.GetText(KeyCopyCompleted), false)
		ui.app.SendNotification(&fyne.Notification{
			Title:   ui.localization.GetText(KeyAppTitle),
			Content: ui.localization.GetText(KeyCopyCompleted),
		})

		if ui.settings.GetRevealOnComplete() {
			if err := platform.OpenFolderInManager(target); err != nil {
				ui.log.Warn().Err(err).Str("folder", target).Msg("cannot reveal working folder")
			}
		}
	})
}

func (ui *RootUI) finishCopy() {
	ui.copyBtn.Enable()
	ui.progressBar.Hide()
}

// showCopyError names the file that stopped the copy
func (ui *RootUI) showCopyError(failedPath string, err error) {
	if failedPath == "" {
		dialog.ShowError(err, ui.window)
		return
	}
	dialog.ShowError(fmt.Errorf("%s\n%s\n\n%v", ui.localization.GetText(KeyCopyFailed), failedPath, err), ui.window)
}

// onCopyUpdate advances the progress bar as files complete
func (ui *RootUI) onCopyUpdate(task *model.CopyTask) {
	if task.Status != model.CopyStatusCompleted {
		return
	}

	ui.progressMu.Lock()
	ui.copiedFiles++
	value := 0.0
	if ui.totalFiles > 0 {
		value = float64(ui.copiedFiles) / float64(ui.totalFiles)
	}
	ui.progressMu.Unlock()

	fyne.Do(func() {
		ui.progressBar.SetValue(value)
	})
}

// showNotification updates the line next to the Copy button
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationSpinner == nil {
		return
	}
	ui.notificationLabel.SetText(message)
	ui.notificationLabel.Importance = widget.MediumImportance
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Refresh()
}
