//go:build !windows
// +build !windows

package platform

// hasHiddenAttribute is always false: only the leading dot marks hidden entries here
func hasHiddenAttribute(string) bool {
	return false
}
