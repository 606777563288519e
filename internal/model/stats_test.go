package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproxSize(t *testing.T) {
	tests := []struct {
		total         int64
		expectedValue int64
		expectedUnit  SizeUnit
	}{
		{0, 0, UnitNone},
		{1, 0, UnitNone},
		{1023, 0, UnitNone},
		{1024, 1, UnitKB},
		{1536, 1, UnitKB},
		{1048575, 1023, UnitKB},
		{1048576, 1, UnitMB},
		{5 * MiB, 5, UnitMB},
		{1073741823, 1023, UnitMB},
		{1073741824, 1, UnitGB},
		{TiB - 1, 1023, UnitGB},
		{TiB, 1, UnitTB},
		{3 * TiB, 3, UnitTB},
		{2048 * TiB, 2048, UnitTB},
	}

	for _, test := range tests {
		value, unit := ApproxSize(test.total)
		assert.Equal(t, test.expectedValue, value, "ApproxSize(%d) value", test.total)
		assert.Equal(t, test.expectedUnit, unit, "ApproxSize(%d) unit", test.total)
	}
}

func TestSizeUnit_String(t *testing.T) {
	assert.Equal(t, "", UnitNone.String())
	assert.Equal(t, "KB", UnitKB.String())
	assert.Equal(t, "MB", UnitMB.String())
	assert.Equal(t, "GB", UnitGB.String())
	assert.Equal(t, "TB", UnitTB.String())
}

func TestStats_Summary(t *testing.T) {
	tests := []struct {
		stats    Stats
		expected string
	}{
		{Stats{}, "Files: 0  Total size: 0"},
		{Stats{Count: 1, TotalBytes: 999}, "Files: 1  Total size: 999"},
		{Stats{Count: 2, TotalBytes: 1536}, "Files: 2  Total size: 1,536 (approx. 1 KB)"},
		{Stats{Count: 3, TotalBytes: 1234567}, "Files: 3  Total size: 1,234,567 (approx. 1 MB)"},
		{Stats{Count: 4, TotalBytes: 3 * GiB}, "Files: 4  Total size: 3,221,225,472 (approx. 3 GB)"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.stats.Summary())
	}
}

func TestComputeStats(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "small.bin")
	large := filepath.Join(dir, "large.bin")
	require.NoError(t, os.WriteFile(small, make([]byte, 100), 0o644))
	require.NoError(t, os.WriteFile(large, make([]byte, 2048), 0o644))
	missing := filepath.Join(dir, "gone.bin")

	stats := ComputeStats([]string{small, large, missing})
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, int64(2148), stats.TotalBytes)

	l := newListOf(small, large)
	assert.Equal(t, Stats{Count: 2, TotalBytes: 2148}, l.Stats())
}
