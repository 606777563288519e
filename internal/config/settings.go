package config

import (
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ytget/input-collector/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyInputDir       = "input_directory"
	KeyWorkingDir     = "working_directory"
	KeyLanguage       = "app_language"
	KeyOverwrite      = "overwrite_existing"
	KeyRevealComplete = "reveal_after_copy"
	KeyFileKinds      = "file_kinds"
)

// Default values
const (
	DefaultLanguage       = "system"
	DefaultOverwrite      = false
	DefaultRevealComplete = true
	DefaultFileKinds      = "CSV"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetInputDirectory returns the folder the next file dialog opens in.
// Falls back to the working directory when nothing was picked yet.
func (s *Settings) GetInputDirectory() string {
	dir := s.app.Preferences().String(KeyInputDir)
	if dir == "" {
		return s.GetWorkingDirectory()
	}
	return dir
}

// SetInputDirectory remembers the folder of the last added input
func (s *Settings) SetInputDirectory(dir string) {
	if dir == "" {
		return
	}
	s.app.Preferences().SetString(KeyInputDir, dir)
}

// GetWorkingDirectory returns the folder input files are copied into
func (s *Settings) GetWorkingDirectory() string {
	dir := s.app.Preferences().String(KeyWorkingDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDocumentsDir()
		if err != nil {
			defaultDir = "."
		}
		s.SetWorkingDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetWorkingDirectory sets the working directory
func (s *Settings) SetWorkingDirectory(dir string) {
	s.app.Preferences().SetString(KeyWorkingDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetOverwrite reports whether copying may replace files in the working folder
func (s *Settings) GetOverwrite() bool {
	return s.app.Preferences().BoolWithFallback(KeyOverwrite, DefaultOverwrite)
}

// SetOverwrite sets whether copying may replace existing files
func (s *Settings) SetOverwrite(overwrite bool) {
	s.app.Preferences().SetBool(KeyOverwrite, overwrite)
}

// GetRevealOnComplete returns whether to open the working folder after a copy
func (s *Settings) GetRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealComplete, DefaultRevealComplete)
}

// SetRevealOnComplete sets whether to open the working folder after a copy
func (s *Settings) SetRevealOnComplete(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealComplete, reveal)
}

// GetFileKinds returns the input kinds, one input form per kind.
// Stored as a comma separated list.
func (s *Settings) GetFileKinds() []string {
	kinds := ParseFileKinds(s.app.Preferences().StringWithFallback(KeyFileKinds, DefaultFileKinds))
	if len(kinds) == 0 {
		return ParseFileKinds(DefaultFileKinds)
	}
	return kinds
}

// SetFileKinds stores the input kinds
func (s *Settings) SetFileKinds(kinds []string) {
	s.app.Preferences().SetString(KeyFileKinds, strings.Join(kinds, ","))
}

// ParseFileKinds splits a comma separated list, dropping blanks and repeats
func ParseFileKinds(value string) []string {
	seen := make(map[string]bool)
	kinds := make([]string, 0)
	for _, part := range strings.Split(value, ",") {
		kind := strings.TrimSpace(part)
		if kind == "" || seen[kind] {
			continue
		}
		seen[kind] = true
		kinds = append(kinds, kind)
	}
	return kinds
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ja":     "日本語",
		"ru":     "Русский",
	}
}
