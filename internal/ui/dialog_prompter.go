package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/input-collector/internal/collect"
)

// DialogPrompter asks collection questions with modal Yes / No / Abort
// dialogs. Its methods block until the user answers, so they must be
// called from a goroutine other than the Fyne UI goroutine.
type DialogPrompter struct {
	window       fyne.Window
	localization *Localization
}

// NewDialogPrompter creates a prompter that shows dialogs over window
func NewDialogPrompter(window fyne.Window, localization *Localization) *DialogPrompter {
	return &DialogPrompter{
		window:       window,
		localization: localization,
	}
}

// ConfirmFolder asks whether all files in dir should be added
func (p *DialogPrompter) ConfirmFolder(ctx context.Context, dir string) (collect.Choice, error) {
	return p.ask(ctx, folderMessage(p.localization, dir), true)
}

// ConfirmReplace asks whether candidate should replace the listed existing entry
func (p *DialogPrompter) ConfirmReplace(ctx context.Context, existing, candidate string, canAbort bool) (collect.Choice, error) {
	return p.ask(ctx, replaceMessage(p.localization, existing, candidate), canAbort)
}

func folderMessage(l *Localization, dir string) string {
	return l.GetText(KeyIncludeFolder) + "\n\n" + dir
}

func replaceMessage(l *Localization, existing, candidate string) string {
	return l.GetText(KeyReplaceDuplicate) + "\n\n" + existing + "\n   " + l.GetText(KeyReplaceTo) + "\n" + candidate
}

// ask shows the question and waits for a button press or ctx cancellation
func (p *DialogPrompter) ask(ctx context.Context, message string, canAbort bool) (collect.Choice, error) {
	answer := make(chan collect.Choice, 1)
	var d *dialog.CustomDialog

	fyne.Do(func() {
		text := widget.NewLabel(message)
		text.Wrapping = fyne.TextWrapWord

		d = dialog.NewCustomWithoutButtons(p.localization.GetText(KeyConfirm), text, p.window)

		reply := func(choice collect.Choice) func() {
			return func() {
				d.Hide()
				select {
				case answer <- choice:
				default:
				}
			}
		}

		yesBtn := widget.NewButton(p.localization.GetText(KeyYes), reply(collect.ChoiceYes))
		yesBtn.Importance = widget.HighImportance
		buttons := []fyne.CanvasObject{
			yesBtn,
			widget.NewButton(p.localization.GetText(KeyNo), reply(collect.ChoiceNo)),
		}
		if canAbort {
			buttons = append(buttons, widget.NewButton(p.localization.GetText(KeyAbort), reply(collect.ChoiceAbort)))
		}
		d.SetButtons(buttons)

		d.Resize(fyne.NewSize(PromptDialogWidth, d.MinSize().Height))
		d.Show()
	})

	select {
	case choice := <-answer:
		return choice, nil
	case <-ctx.Done():
		fyne.Do(func() {
			if d != nil {
				d.Hide()
			}
		})
		return collect.ChoiceAbort, ctx.Err()
	}
}
