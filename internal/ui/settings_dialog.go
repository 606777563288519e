package ui

import (
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/input-collector/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	workingDirEntry *widget.Entry
	languageSelect  *widget.Select
	overwriteCheck  *widget.Check
	revealCheck     *widget.Check
	kindsEntry      *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog opens the settings dialog and calls onSaved after a save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.workingDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	workingDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.workingDirEntry)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.overwriteCheck = widget.NewCheck(l.GetText(KeyOverwrite), nil)
	sd.revealCheck = widget.NewCheck(l.GetText(KeyRevealAfterCopy), nil)

	sd.kindsEntry = widget.NewEntry()
	sd.kindsEntry.SetPlaceHolder("CSV, Image")

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyWorkingFolder)+":"),
		workingDirRow,
		sd.overwriteCheck,
		sd.revealCheck,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyInputKinds)+":"),
		sd.kindsEntry,

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.workingDirEntry.SetText(sd.settings.GetWorkingDirectory())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.overwriteCheck.SetChecked(sd.settings.GetOverwrite())
	sd.revealCheck.SetChecked(sd.settings.GetRevealOnComplete())
	sd.kindsEntry.SetText(strings.Join(sd.settings.GetFileKinds(), ", "))
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.workingDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply writes the dialog values to settings
func (sd *SettingsDialog) apply() {
	if dir := strings.TrimSpace(sd.workingDirEntry.Text); dir != "" {
		sd.settings.SetWorkingDirectory(dir)
	}

	sd.settings.SetOverwrite(sd.overwriteCheck.Checked)
	sd.settings.SetRevealOnComplete(sd.revealCheck.Checked)

	if kinds := config.ParseFileKinds(sd.kindsEntry.Text); len(kinds) > 0 {
		sd.settings.SetFileKinds(kinds)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}
