package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/input-collector/internal/model"
)

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()
	assert.Equal(t, "en", l.GetCurrentLanguage())
	assert.Equal(t, "Add files", l.GetText(KeyAddFiles))

	// Unknown language keeps the current one
	l.SetLanguage("xx")
	assert.Equal(t, "en", l.GetCurrentLanguage())

	// Unknown key returns the key
	assert.Equal(t, "no_such_key", l.GetText("no_such_key"))
}

func TestLocalization_SystemLanguage(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "ja_JP.UTF-8")

	l := NewLocalization()
	l.SetLanguage("system")
	assert.Equal(t, "ja", l.GetCurrentLanguage())

	t.Setenv("LANG", "C")
	l = NewLocalization()
	l.SetLanguage("system")
	assert.Equal(t, "en", l.GetCurrentLanguage())
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]
	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !assert.True(t, ok, "missing table for %s", code) {
			continue
		}
		for key := range english {
			assert.Contains(t, texts, key, "language %s lacks %s", code, key)
		}
	}
}

func TestKindTitle(t *testing.T) {
	l := NewLocalization()
	assert.Equal(t, "Other data (comma separated)", l.KindTitle("CSV"))
	assert.Equal(t, "Image files", l.KindTitle("Image"))

	l.SetLanguage("ja")
	assert.Equal(t, "その他データ（カンマ区切り）", l.KindTitle("CSV"))
	assert.Equal(t, "Imageファイル", l.KindTitle("Image"))
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		lang  string
		stats model.Stats
		want  string
	}{
		{"en", model.Stats{}, "Files: 0  Total size: 0"},
		{"en", model.Stats{Count: 2, TotalBytes: 1023}, "Files: 2  Total size: 1,023"},
		{"en", model.Stats{Count: 3, TotalBytes: 1536}, "Files: 3  Total size: 1,536 (approx. 1 KB)"},
		{"en", model.Stats{Count: 1, TotalBytes: 5 * model.GiB}, "Files: 1  Total size: 5,368,709,120 (approx. 5 GB)"},
		{"ja", model.Stats{Count: 1, TotalBytes: 2 * model.MiB}, "ファイル数 : 1  合計ファイルサイズ : 2,097,152 (約2メガバイト)"},
		{"ru", model.Stats{Count: 4, TotalBytes: 1234567}, "Файлов: 4  Общий размер: 1 234 567 (примерно 1 МБ)"},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.want, func(t *testing.T) {
			l := NewLocalization()
			l.SetLanguage(tt.lang)
			assert.Equal(t, tt.want, l.StatusText(tt.stats))
		})
	}
}

func TestStatusText_MatchesSummaryInEnglish(t *testing.T) {
	l := NewLocalization()
	for _, total := range []int64{0, 999, 4096, 3 * model.MiB, 7 * model.TiB} {
		stats := model.Stats{Count: 7, TotalBytes: total}
		assert.Equal(t, stats.Summary(), l.StatusText(stats))
	}
}

func TestPromptMessages(t *testing.T) {
	l := NewLocalization()
	assert.Equal(t, "Select all files in this folder?\n\n/data/in", folderMessage(l, "/data/in"))
	assert.Equal(t,
		"A file with the same name is already listed. Replace it?\n\n/a/x.csv\n   to\n/b/x.csv",
		replaceMessage(l, "/a/x.csv", "/b/x.csv"))
}
