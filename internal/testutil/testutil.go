// Package testutil provides test helpers and fixtures for tidyfiles tests.
// All file operations use t.TempDir() for safe, isolated testing.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
)

// TestFixture is a scratch directory to organize
type TestFixture struct {
	T       *testing.T
	RootDir string // Root temp directory (auto-cleaned)
}

// NewFixture creates an empty fixture directory
func NewFixture(t *testing.T) *TestFixture {
	t.Helper()
	return &TestFixture{T: t, RootDir: t.TempDir()}
}

// NewFixtureWithFiles creates a fixture holding the named files. Each file's
// content is its own name so moved files can be identified.
func NewFixtureWithFiles(t *testing.T, names ...string) *TestFixture {
	t.Helper()
	f := NewFixture(t)
	f.CreateFiles(names...)
	return f
}

// =============================================================================
// File Creation Helpers
// =============================================================================

// CreateFile creates a file with specified content and returns its path
func (f *TestFixture) CreateFile(relPath string, content []byte) string {
	f.T.Helper()

	fullPath := filepath.Join(f.RootDir, relPath)
	dir := filepath.Dir(fullPath)

	if err := os.MkdirAll(dir, 0755); err != nil {
		f.T.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		f.T.Fatalf("failed to create file %s: %v", fullPath, err)
	}

	return fullPath
}

// CreateFiles creates one file per relative path, with the path as content
func (f *TestFixture) CreateFiles(relPaths ...string) {
	f.T.Helper()
	for _, rel := range relPaths {
		f.CreateFile(rel, []byte(rel))
	}
}

// =============================================================================
// Directory Helpers
// =============================================================================

// CreateDir creates a directory and returns its path
func (f *TestFixture) CreateDir(relPath string) string {
	f.T.Helper()

	fullPath := filepath.Join(f.RootDir, relPath)
	if err := os.MkdirAll(fullPath, 0755); err != nil {
		f.T.Fatalf("failed to create directory %s: %v", fullPath, err)
	}

	return fullPath
}

// CreateReadOnlyDir creates a directory nothing can be moved into
func (f *TestFixture) CreateReadOnlyDir(relPath string) string {
	f.T.Helper()

	dirPath := f.CreateDir(relPath)
	if err := os.Chmod(dirPath, 0555); err != nil {
		f.T.Fatalf("failed to chmod directory %s: %v", dirPath, err)
	}

	// Restore permissions so TempDir cleanup works
	f.T.Cleanup(func() {
		os.Chmod(dirPath, 0755)
	})

	return dirPath
}

// CreateSymlink creates a symbolic link at linkPath pointing to target
func (f *TestFixture) CreateSymlink(target, linkPath string) string {
	f.T.Helper()

	fullLinkPath := filepath.Join(f.RootDir, linkPath)
	if err := os.Symlink(target, fullLinkPath); err != nil {
		f.T.Skipf("symlinks not supported: %v", err)
	}
	return fullLinkPath
}

// =============================================================================
// Path Helpers
// =============================================================================

// Path returns the full path for a relative path within the fixture
func (f *TestFixture) Path(relPath ...string) string {
	return filepath.Join(append([]string{f.RootDir}, relPath...)...)
}

// Entries returns the sorted names directly inside relDir ("" for the root)
func (f *TestFixture) Entries(relDir string) []string {
	f.T.Helper()

	dirEntries, err := os.ReadDir(f.Path(relDir))
	if err != nil {
		f.T.Fatalf("failed to read %s: %v", relDir, err)
	}
	names := make([]string, 0, len(dirEntries))
	for _, de := range dirEntries {
		names = append(names, de.Name())
	}
	sort.Strings(names)
	return names
}

// =============================================================================
// Assertion Helpers
// =============================================================================

// FileExists checks if a file exists. Relative paths are taken from RootDir.
func (f *TestFixture) FileExists(path string) bool {
	if !filepath.IsAbs(path) {
		path = f.Path(path)
	}
	_, err := os.Lstat(path)
	return err == nil
}

// AssertFileExists fails the test if the file doesn't exist
func (f *TestFixture) AssertFileExists(path string) {
	f.T.Helper()
	if !f.FileExists(path) {
		f.T.Errorf("expected file to exist: %s", path)
	}
}

// AssertFileNotExists fails the test if the file exists
func (f *TestFixture) AssertFileNotExists(path string) {
	f.T.Helper()
	if f.FileExists(path) {
		f.T.Errorf("expected file to not exist: %s", path)
	}
}

// AssertIsDir fails if path is not a directory
func (f *TestFixture) AssertIsDir(path string) {
	f.T.Helper()
	info, err := os.Stat(path)
	if err != nil {
		f.T.Errorf("failed to stat %s: %v", path, err)
		return
	}
	if !info.IsDir() {
		f.T.Errorf("expected %s to be a directory", path)
	}
}

// AssertFileContent fails if the file at path does not hold want
func (f *TestFixture) AssertFileContent(path, want string) {
	f.T.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		f.T.Errorf("failed to read %s: %v", path, err)
		return
	}
	if string(data) != want {
		f.T.Errorf("file %s has content %q, want %q", path, data, want)
	}
}

// =============================================================================
// Utility Functions
// =============================================================================

// CountFiles returns the number of files in a directory (recursive)
func CountFiles(path string) (int, error) {
	var count int
	err := filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			count++
		}
		return nil
	})
	return count, err
}

// IsRoot returns true if running as root/admin
func IsRoot() bool {
	return os.Geteuid() == 0
}

// SkipIfRoot skips the test if running as root
func SkipIfRoot(t *testing.T) {
	t.Helper()
	if IsRoot() {
		t.Skip("skipping test when running as root")
	}
}

// SkipOnWindows skips tests that depend on POSIX permissions
func SkipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("skipping test on windows")
	}
}
