// Package platform isolates OS-specific behavior: standard directories,
// folder listing rules for input collection, and revealing folders in the
// system file manager.
package platform
