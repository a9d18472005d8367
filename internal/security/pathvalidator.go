package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fenilsonani/tidyfiles/internal/platform"
)

var (
	ErrNotFound      = errors.New("directory does not exist")
	ErrNotDirectory  = errors.New("not a directory")
	ErrProtectedPath = errors.New("refusing to organize protected path")
)

// PathValidator decides whether a directory may be organized
type PathValidator struct {
	protectedPaths []string
}

// NewPathValidator creates a PathValidator with the platform's protected
// system directories plus any extra paths
func NewPathValidator(extra ...string) *PathValidator {
	pv := &PathValidator{}
	for _, p := range platform.DefaultProtectedPaths() {
		pv.AddProtectedPath(p)
	}
	for _, p := range extra {
		pv.AddProtectedPath(p)
	}
	return pv
}

// ValidateDirectory resolves input to an absolute, existing, non-protected
// directory. An empty input means the current directory.
func (pv *PathValidator) ValidateDirectory(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		input = "."
	}

	absPath, err := filepath.Abs(input)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", input, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, absPath)
		}
		return "", fmt.Errorf("failed to stat %s: %w", absPath, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, absPath)
	}

	// Resolve symlinks so a link into /etc is treated like /etc itself
	resolvedPath, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve symlinks: %w", err)
	}

	if err := pv.checkProtectedPaths(filepath.Clean(resolvedPath)); err != nil {
		return "", err
	}
	if resolvedPath != absPath {
		if err := pv.checkProtectedPaths(absPath); err != nil {
			return "", err
		}
	}

	return absPath, nil
}

// checkProtectedPaths rejects protected directories and their direct children
func (pv *PathValidator) checkProtectedPaths(cleanPath string) error {
	for _, protected := range pv.protectedPaths {
		if cleanPath == protected {
			return fmt.Errorf("%w: %s", ErrProtectedPath, cleanPath)
		}

		// /usr/bin is as critical as /usr; /usr/local/share/x is not checked
		prefix := protected + string(filepath.Separator)
		if protected != string(filepath.Separator) && strings.HasPrefix(cleanPath, prefix) {
			rel, _ := filepath.Rel(protected, cleanPath)
			if !strings.Contains(rel, string(filepath.Separator)) {
				return fmt.Errorf("%w: %s", ErrProtectedPath, cleanPath)
			}
		}
	}

	return nil
}

// IsProtectedPath checks if a path is a protected directory or lies inside one
func (pv *PathValidator) IsProtectedPath(path string) bool {
	cleanPath := filepath.Clean(path)
	for _, protected := range pv.protectedPaths {
		if cleanPath == protected {
			return true
		}
		if protected != string(filepath.Separator) && strings.HasPrefix(cleanPath, protected+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// AddProtectedPath adds a custom protected path
func (pv *PathValidator) AddProtectedPath(path string) {
	if strings.TrimSpace(path) == "" {
		return
	}
	cleanPath := filepath.Clean(path)
	for _, existing := range pv.protectedPaths {
		if existing == cleanPath {
			return
		}
	}
	pv.protectedPaths = append(pv.protectedPaths, cleanPath)
}

// ProtectedPaths returns a copy of the protected path list
func (pv *PathValidator) ProtectedPaths() []string {
	return append([]string(nil), pv.protectedPaths...)
}
