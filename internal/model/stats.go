package model

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
)

// Size bucket thresholds (binary units)
const (
	KiB int64 = 1 << 10
	MiB int64 = 1 << 20
	GiB int64 = 1 << 30
	TiB int64 = 1 << 40
)

// SizeUnit is the unit of an approximate size
type SizeUnit int

const (
	// UnitNone means the total is small enough to show in bytes only
	UnitNone SizeUnit = iota
	UnitKB
	UnitMB
	UnitGB
	UnitTB
)

// String returns the unit suffix used in summaries
func (u SizeUnit) String() string {
	switch u {
	case UnitKB:
		return "KB"
	case UnitMB:
		return "MB"
	case UnitGB:
		return "GB"
	case UnitTB:
		return "TB"
	default:
		return ""
	}
}

// Stats holds the aggregate figures shown under an input list
type Stats struct {
	Count      int
	TotalBytes int64
}

// ComputeStats sums the sizes of paths. A path that cannot be stat-ed
// contributes zero bytes but is still counted.
func ComputeStats(paths []string) Stats {
	stats := Stats{Count: len(paths)}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		stats.TotalBytes += info.Size()
	}
	return stats
}

// Stats computes the statistics of the current list entries
func (l *FileList) Stats() Stats {
	return ComputeStats(l.Paths())
}

// ApproxSize maps total to a whole number of the largest unit it reaches.
// Totals below 1 KiB return UnitNone. Totals of 1 PiB and more stay in TB.
func ApproxSize(total int64) (int64, SizeUnit) {
	switch {
	case total < KiB:
		return 0, UnitNone
	case total < MiB:
		return total / KiB, UnitKB
	case total < GiB:
		return total / MiB, UnitMB
	case total < TiB:
		return total / GiB, UnitGB
	default:
		return total / TiB, UnitTB
	}
}

// TotalText returns the exact total with thousands separators
func (s Stats) TotalText() string {
	return humanize.Comma(s.TotalBytes)
}

// ApproxText returns the bucketed size such as "12 MB", or "" below 1 KiB
func (s Stats) ApproxText() string {
	value, unit := ApproxSize(s.TotalBytes)
	if unit == UnitNone {
		return ""
	}
	return fmt.Sprintf("%d %s", value, unit)
}

// Summary returns the English status line, e.g.
// "Files: 3  Total size: 1,536 (approx. 1 KB)"
func (s Stats) Summary() string {
	line := fmt.Sprintf("Files: %d  Total size: %s", s.Count, s.TotalText())
	if approx := s.ApproxText(); approx != "" {
		line += " (approx. " + approx + ")"
	}
	return line
}
