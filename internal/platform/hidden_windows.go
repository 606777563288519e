//go:build windows
// +build windows

package platform

import (
	"golang.org/x/sys/windows"
)

// hasHiddenAttribute reports whether path carries the Windows hidden attribute
func hasHiddenAttribute(path string) bool {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false
	}
	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0
}
