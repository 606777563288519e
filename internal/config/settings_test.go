package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestWorkingDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetWorkingDirectory()
	if dir == "" {
		t.Error("Working directory should not be empty")
	}

	customDir := "/custom/work"
	settings.SetWorkingDirectory(customDir)

	if got := settings.GetWorkingDirectory(); got != customDir {
		t.Errorf("Expected working directory %s, got %s", customDir, got)
	}
}

func TestInputDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	settings.SetWorkingDirectory("/work")

	// Falls back to the working directory
	assert.Equal(t, "/work", settings.GetInputDirectory())

	settings.SetInputDirectory("/data/in")
	assert.Equal(t, "/data/in", settings.GetInputDirectory())

	// Empty value does not reset it
	settings.SetInputDirectory("")
	assert.Equal(t, "/data/in", settings.GetInputDirectory())
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ja")
	if got := settings.GetLanguage(); got != "ja" {
		t.Errorf("Expected language 'ja', got %s", got)
	}
}

func TestOverwriteAndReveal(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	assert.Equal(t, DefaultOverwrite, settings.GetOverwrite())
	assert.Equal(t, DefaultRevealComplete, settings.GetRevealOnComplete())

	settings.SetOverwrite(true)
	settings.SetRevealOnComplete(false)

	assert.True(t, settings.GetOverwrite())
	assert.False(t, settings.GetRevealOnComplete())
}

func TestFileKinds(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	assert.Equal(t, []string{"CSV"}, settings.GetFileKinds())

	settings.SetFileKinds([]string{"CSV", "Image"})
	assert.Equal(t, []string{"CSV", "Image"}, settings.GetFileKinds())

	settings.SetFileKinds(nil)
	assert.Equal(t, []string{"CSV"}, settings.GetFileKinds())
}

func TestParseFileKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single", "CSV", []string{"CSV"}},
		{"spaces", " CSV , Image ", []string{"CSV", "Image"}},
		{"repeats", "CSV,CSV,Log", []string{"CSV", "Log"}},
		{"blanks", ",, ,", []string{}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFileKinds(tt.input))
		})
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ja", "ru"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
