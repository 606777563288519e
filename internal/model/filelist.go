package model

import (
	"fmt"
	"path/filepath"
	"sync"
)

// FileList is the ordered list of input file paths shown by an input form.
// Entries are unique by file name: adding a path whose base name is already
// present goes through FindDuplicate and Replace instead of Append.
// Safe for concurrent use.
type FileList struct {
	mu       sync.RWMutex
	paths    []string
	onChange func()
}

// NewFileList creates an empty file list
func NewFileList() *FileList {
	return &FileList{
		paths: make([]string, 0),
	}
}

// SetChangeCallback sets the function called after every mutation.
// The callback runs without the list lock held.
func (l *FileList) SetChangeCallback(callback func()) {
	l.mu.Lock()
	l.onChange = callback
	l.mu.Unlock()
}

// Len returns the number of entries
func (l *FileList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.paths)
}

// At returns the path at index i, or "" when i is out of range
func (l *FileList) At(i int) string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i < 0 || i >= len(l.paths) {
		return ""
	}
	return l.paths[i]
}

// Paths returns a copy of all entries in list order
func (l *FileList) Paths() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]string, len(l.paths))
	copy(result, l.paths)
	return result
}

// FindDuplicate returns the index of the first entry that has the same full
// path or the same file name as path, or -1 when there is none.
func (l *FileList) FindDuplicate(path string) int {
	name := filepath.Base(path)

	l.mu.RLock()
	defer l.mu.RUnlock()

	for i, existing := range l.paths {
		if existing == path {
			return i
		}
		if filepath.Base(existing) == name {
			return i
		}
	}
	return -1
}

// Append adds path to the end of the list. It does not check for duplicates.
func (l *FileList) Append(path string) {
	l.mu.Lock()
	l.paths = append(l.paths, path)
	l.mu.Unlock()

	l.notifyChange()
}

// Replace overwrites the entry at index i with path, keeping its position
func (l *FileList) Replace(i int, path string) error {
	l.mu.Lock()
	if i < 0 || i >= len(l.paths) {
		n := len(l.paths)
		l.mu.Unlock()
		return fmt.Errorf("index %d out of range [0,%d)", i, n)
	}
	l.paths[i] = path
	l.mu.Unlock()

	l.notifyChange()
	return nil
}

// Remove deletes exactly the entries at the given indices and keeps the
// remaining entries in their original order. Indices that are out of range
// or repeated are ignored. It returns the number of entries removed.
func (l *FileList) Remove(indices []int) int {
	l.mu.Lock()
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(l.paths) {
			drop[i] = true
		}
	}
	if len(drop) == 0 {
		l.mu.Unlock()
		return 0
	}

	kept := make([]string, 0, len(l.paths)-len(drop))
	for i, path := range l.paths {
		if !drop[i] {
			kept = append(kept, path)
		}
	}
	l.paths = kept
	l.mu.Unlock()

	l.notifyChange()
	return len(drop)
}

// Clear removes all entries
func (l *FileList) Clear() {
	l.mu.Lock()
	l.paths = make([]string, 0)
	l.mu.Unlock()

	l.notifyChange()
}

// notifyChange calls the change callback if set
func (l *FileList) notifyChange() {
	l.mu.RLock()
	callback := l.onChange
	l.mu.RUnlock()

	if callback != nil {
		callback()
	}
}
