package security

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidateDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "file.txt")
	if err := os.WriteFile(filePath, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	pv := NewPathValidator()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:  "existing directory",
			input: tmpDir,
		},
		{
			name:    "missing directory",
			input:   filepath.Join(tmpDir, "missing"),
			wantErr: ErrNotFound,
		},
		{
			name:    "regular file",
			input:   filePath,
			wantErr: ErrNotDirectory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pv.ValidateDirectory(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !filepath.IsAbs(got) {
				t.Errorf("expected absolute path, got %s", got)
			}
		})
	}
}

func TestValidateDirectory_EmptyMeansCurrent(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}

	got, err := NewPathValidator().ValidateDirectory("  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != wd {
		t.Errorf("expected %s, got %s", wd, got)
	}
}

func TestValidateDirectory_CustomProtectedPath(t *testing.T) {
	tmpDir := t.TempDir()
	child := filepath.Join(tmpDir, "photos")
	deep := filepath.Join(child, "2024", "trip")
	if err := os.MkdirAll(deep, 0755); err != nil {
		t.Fatalf("failed to create dirs: %v", err)
	}

	resolved, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("EvalSymlinks failed: %v", err)
	}
	pv := NewPathValidator(resolved)

	if _, err := pv.ValidateDirectory(tmpDir); !errors.Is(err, ErrProtectedPath) {
		t.Errorf("protected dir should be rejected, got %v", err)
	}
	if _, err := pv.ValidateDirectory(child); !errors.Is(err, ErrProtectedPath) {
		t.Errorf("direct child of protected dir should be rejected, got %v", err)
	}
	if _, err := pv.ValidateDirectory(deep); err != nil {
		t.Errorf("deeper directory should be allowed, got %v", err)
	}
}

func TestValidateDirectory_SymlinkIntoProtected(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "target")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatalf("failed to create target: %v", err)
	}
	link := filepath.Join(tmpDir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	resolvedTarget, err := filepath.EvalSymlinks(target)
	if err != nil {
		t.Fatalf("EvalSymlinks failed: %v", err)
	}

	pv := &PathValidator{}
	pv.AddProtectedPath(resolvedTarget)

	if _, err := pv.ValidateDirectory(link); !errors.Is(err, ErrProtectedPath) {
		t.Errorf("symlink to protected dir should be rejected, got %v", err)
	}
}

func TestIsProtectedPath(t *testing.T) {
	pv := &PathValidator{}
	pv.AddProtectedPath("/usr")
	pv.AddProtectedPath("/")

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"exact match", "/usr", true},
		{"nested path", "/usr/local/bin", true},
		{"trailing slash", "/usr/", true},
		{"root", "/", true},
		{"similar prefix", "/usrdata", false},
		{"unrelated", "/home/user/Downloads", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pv.IsProtectedPath(tt.path); got != tt.expected {
				t.Errorf("IsProtectedPath(%s) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestAddProtectedPath_Dedupes(t *testing.T) {
	pv := &PathValidator{}
	pv.AddProtectedPath("/data/")
	pv.AddProtectedPath("/data")
	pv.AddProtectedPath("")

	paths := pv.ProtectedPaths()
	if len(paths) != 1 || paths[0] != "/data" {
		t.Errorf("unexpected protected paths: %v", paths)
	}
}
