package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/ytget/input-collector/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyQuit             = "quit"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyBrowse           = "browse"
	KeyYes              = "yes"
	KeyNo               = "no"
	KeyAbort            = "abort"
	KeyConfirm          = "confirm"
	KeyAddFiles         = "add_files"
	KeyAddFolder        = "add_folder"
	KeyDelete           = "delete"
	KeyClear            = "clear"
	KeyCopy             = "copy"
	KeyOpenFolder       = "open_folder"
	KeyCSVFiles         = "csv_files"
	KeyKindFiles        = "kind_files"
	KeyWorkingFolder    = "working_folder"
	KeyInputKinds       = "input_kinds"
	KeyOverwrite        = "overwrite"
	KeyRevealAfterCopy  = "reveal_after_copy"
	KeyIncludeFolder    = "include_folder"
	KeyReplaceDuplicate = "replace_duplicate"
	KeyReplaceTo        = "replace_to"
	KeyStatusFormat     = "status_format"
	KeyApproxFormat     = "approx_format"
	KeyUnitKB           = "unit_kb"
	KeyUnitMB           = "unit_mb"
	KeyUnitGB           = "unit_gb"
	KeyUnitTB           = "unit_tb"
	KeyCopyFailed       = "copy_failed"
	KeyCopyCompleted    = "copy_completed"
	KeyNothingToCopy    = "nothing_to_copy"
	KeyCollecting       = "collecting"
	KeyCopying          = "copying"
	KeySettingsSaved    = "settings_saved"
	KeyErrorOpeningDir  = "error_opening_dir"
	KeyDropHint         = "drop_hint"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" picks the language
// from the LC_ALL, LC_MESSAGES or LANG environment variables.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = systemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

func systemLanguage() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := os.Getenv(name)
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		if len(value) >= 2 {
			return strings.ToLower(value[:2])
		}
	}
	return "en"
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ja": "日本語",
		"ru": "Русский",
	}
}

// KindTitle returns the group caption for an input kind
func (l *Localization) KindTitle(kind string) string {
	if kind == "CSV" {
		return l.GetText(KeyCSVFiles)
	}
	return fmt.Sprintf(l.GetText(KeyKindFiles), kind)
}

// StatusText renders stats as the status line under an input list
func (l *Localization) StatusText(stats model.Stats) string {
	line := fmt.Sprintf(l.GetText(KeyStatusFormat), stats.Count, l.groupDigits(stats.TotalText()))

	value, unit := model.ApproxSize(stats.TotalBytes)
	if unit == model.UnitNone {
		return line
	}
	return line + fmt.Sprintf(l.GetText(KeyApproxFormat), value, l.unitName(unit))
}

// groupDigits swaps the comma separators for the current language's one
func (l *Localization) groupDigits(commaGrouped string) string {
	if l.currentLanguage == "ru" {
		return strings.ReplaceAll(commaGrouped, ",", " ")
	}
	return commaGrouped
}

func (l *Localization) unitName(unit model.SizeUnit) string {
	switch unit {
	case model.UnitKB:
		return l.GetText(KeyUnitKB)
	case model.UnitMB:
		return l.GetText(KeyUnitMB)
	case model.UnitGB:
		return l.GetText(KeyUnitGB)
	case model.UnitTB:
		return l.GetText(KeyUnitTB)
	default:
		return ""
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Input Collector",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyQuit:             "Quit",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyBrowse:           "Browse",
		KeyYes:              "Yes",
		KeyNo:               "No",
		KeyAbort:            "Abort",
		KeyConfirm:          "Confirm",
		KeyAddFiles:         "Add files",
		KeyAddFolder:        "Add folder",
		KeyDelete:           "Delete",
		KeyClear:            "Clear",
		KeyCopy:             "Copy to working folder",
		KeyOpenFolder:       "Open",
		KeyCSVFiles:         "Other data (comma separated)",
		KeyKindFiles:        "%s files",
		KeyWorkingFolder:    "Working folder",
		KeyInputKinds:       "Input kinds (comma separated)",
		KeyOverwrite:        "Overwrite existing files",
		KeyRevealAfterCopy:  "Open working folder after copy",
		KeyIncludeFolder:    "Select all files in this folder?",
		KeyReplaceDuplicate: "A file with the same name is already listed. Replace it?",
		KeyReplaceTo:        "to",
		KeyStatusFormat:     "Files: %d  Total size: %s",
		KeyApproxFormat:     " (approx. %d %s)",
		KeyUnitKB:           "KB",
		KeyUnitMB:           "MB",
		KeyUnitGB:           "GB",
		KeyUnitTB:           "TB",
		KeyCopyFailed:       "Could not copy file:",
		KeyCopyCompleted:    "All files copied",
		KeyNothingToCopy:    "No input files",
		KeyCollecting:       "Adding files...",
		KeyCopying:          "Copying...",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyErrorOpeningDir:  "Error opening folder",
		KeyDropHint:         "Drop files or folders onto the window to add them",
	}

	// Japanese texts
	l.texts["ja"] = map[string]string{
		KeyAppTitle:         "入力ファイル収集",
		KeySettings:         "設定",
		KeyFile:             "ファイル",
		KeyLanguage:         "言語",
		KeyQuit:             "終了",
		KeySave:             "保存",
		KeyCancel:           "キャンセル",
		KeyBrowse:           "参照",
		KeyYes:              "はい",
		KeyNo:               "いいえ",
		KeyAbort:            "中止",
		KeyConfirm:          "確認",
		KeyAddFiles:         "ファイル追加",
		KeyAddFolder:        "フォルダ追加",
		KeyDelete:           "削除",
		KeyClear:            "クリア",
		KeyCopy:             "作業フォルダへコピー",
		KeyOpenFolder:       "開く",
		KeyCSVFiles:         "その他データ（カンマ区切り）",
		KeyKindFiles:        "%sファイル",
		KeyWorkingFolder:    "作業フォルダ",
		KeyInputKinds:       "入力種別（カンマ区切り）",
		KeyOverwrite:        "既存ファイルを上書きする",
		KeyRevealAfterCopy:  "コピー後に作業フォルダを開く",
		KeyIncludeFolder:    "フォルダ内のすべてのファイルを選択しますか?",
		KeyReplaceDuplicate: "ファイル名が重複しています。置き換えますか?",
		KeyReplaceTo:        "to",
		KeyStatusFormat:     "ファイル数 : %d  合計ファイルサイズ : %s",
		KeyApproxFormat:     " (約%d%s)",
		KeyUnitKB:           "キロバイト",
		KeyUnitMB:           "メガバイト",
		KeyUnitGB:           "ギガバイト",
		KeyUnitTB:           "テラバイト",
		KeyCopyFailed:       "ファイルをコピーできませんでした:",
		KeyCopyCompleted:    "すべてのファイルをコピーしました",
		KeyNothingToCopy:    "入力ファイルがありません",
		KeyCollecting:       "ファイルを追加中...",
		KeyCopying:          "コピー中...",
		KeySettingsSaved:    "設定を保存しました",
		KeyErrorOpeningDir:  "フォルダを開けません",
		KeyDropHint:         "ファイルやフォルダをウィンドウにドロップして追加できます",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Сбор входных файлов",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyQuit:             "Выход",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyBrowse:           "Обзор",
		KeyYes:              "Да",
		KeyNo:               "Нет",
		KeyAbort:            "Прервать",
		KeyConfirm:          "Подтверждение",
		KeyAddFiles:         "Добавить файлы",
		KeyAddFolder:        "Добавить папку",
		KeyDelete:           "Удалить",
		KeyClear:            "Очистить",
		KeyCopy:             "Копировать в рабочую папку",
		KeyOpenFolder:       "Открыть",
		KeyCSVFiles:         "Прочие данные (через запятую)",
		KeyKindFiles:        "Файлы %s",
		KeyWorkingFolder:    "Рабочая папка",
		KeyInputKinds:       "Типы входных данных (через запятую)",
		KeyOverwrite:        "Перезаписывать существующие файлы",
		KeyRevealAfterCopy:  "Открыть рабочую папку после копирования",
		KeyIncludeFolder:    "Выбрать все файлы в этой папке?",
		KeyReplaceDuplicate: "Файл с таким именем уже есть в списке. Заменить?",
		KeyReplaceTo:        "на",
		KeyStatusFormat:     "Файлов: %d  Общий размер: %s",
		KeyApproxFormat:     " (примерно %d %s)",
		KeyUnitKB:           "КБ",
		KeyUnitMB:           "МБ",
		KeyUnitGB:           "ГБ",
		KeyUnitTB:           "ТБ",
		KeyCopyFailed:       "Не удалось скопировать файл:",
		KeyCopyCompleted:    "Все файлы скопированы",
		KeyNothingToCopy:    "Нет входных файлов",
		KeyCollecting:       "Добавление файлов...",
		KeyCopying:          "Копирование...",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyErrorOpeningDir:  "Ошибка открытия папки",
		KeyDropHint:         "Перетащите файлы или папки в окно, чтобы добавить их",
	}
}
