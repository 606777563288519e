package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// FolderEntry is one child of a folder as seen by input collection
type FolderEntry struct {
	Path  string
	Name  string
	IsDir bool
}

// OpenFolderInManager opens dir in the system file manager
func OpenFolderInManager(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("folder does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a folder: %s", dir)
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		// explorer.exe exits with status 1 even on success
		_ = exec.Command(ExplorerCommand, absPath).Run()
		return nil
	case OSLinux:
		return openFolderLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFolderLinux tries xdg-open first, then the common file managers
func openFolderLinux(dir string) error {
	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist.
// An existing path that is not a directory is an error.
func CreateDirectoryIfNotExists(dirPath string) error {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a folder: %s", dirPath)
	}
	return nil
}

// GetHomeDocumentsDir returns the user's Documents directory, or the home
// directory when there is no Documents folder
func GetHomeDocumentsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	documents := filepath.Join(homeDir, "Documents")
	if info, err := os.Stat(documents); err == nil && info.IsDir() {
		return documents, nil
	}
	return homeDir, nil
}

// IsHiddenName reports whether a file name denotes a hidden entry.
// "." and ".." are not hidden.
func IsHiddenName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}

// IsReadable reports whether path can be opened for reading
func IsReadable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// ListFolder returns the files and sub-folders of dir that input collection
// may visit, sorted by name ignoring case. Symbolic links, hidden entries,
// unreadable entries and anything that is neither a regular file nor a
// directory are left out.
func ListFolder(dir string) ([]FolderEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	result := make([]FolderEntry, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if IsHiddenName(name) || hasHiddenAttribute(filepath.Join(dir, name)) {
			continue
		}

		mode := entry.Type()
		if mode&os.ModeSymlink != 0 {
			continue
		}
		if !mode.IsRegular() && !mode.IsDir() {
			continue
		}

		path := filepath.Join(dir, name)
		if !IsReadable(path) {
			continue
		}

		result = append(result, FolderEntry{
			Path:  path,
			Name:  name,
			IsDir: entry.IsDir(),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := strings.ToLower(result[i].Name), strings.ToLower(result[j].Name)
		if a != b {
			return a < b
		}
		return result[i].Name < result[j].Name
	})

	return result, nil
}
