package organizer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileEntry is a regular file found directly in the target directory
type FileEntry struct {
	Path string `json:"path" yaml:"path"` // absolute
	Name string `json:"name" yaml:"name"`
	Stem string `json:"stem" yaml:"stem"` // name without the final extension
	Ext  string `json:"ext" yaml:"ext"`   // lowercase with leading dot, "" when none
	Size int64  `json:"size" yaml:"size"`
}

// NewFileEntry builds an entry for name inside dir
func NewFileEntry(dir, name string, size int64) FileEntry {
	stem, ext := SplitName(name)
	return FileEntry{
		Path: filepath.Join(dir, name),
		Name: name,
		Stem: stem,
		Ext:  ext,
		Size: size,
	}
}

// SplitName splits a filename at its last dot. A leading dot does not start an
// extension (".bashrc" has none), and a trailing dot yields no extension.
func SplitName(name string) (stem, ext string) {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return name, ""
	}
	if idx == len(name)-1 {
		return name[:idx], ""
	}
	return name[:idx], strings.ToLower(name[idx:])
}

// ScanDir lists the regular files directly inside dir, sorted by name.
// Directories, symlinks and other special files are left out.
func ScanDir(dir string) ([]FileEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	entries := make([]FileEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if !de.Type().IsRegular() {
			continue
		}
		info, err := de.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		entries = append(entries, NewFileEntry(dir, de.Name(), info.Size()))
	}
	return entries, nil
}
