package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetect(t *testing.T) {
	p := Detect()
	if p != MacOS && p != Linux && p != Unknown {
		t.Errorf("unexpected platform %q", p)
	}
}

func TestGetInfo(t *testing.T) {
	info, err := GetInfo()
	if err != nil {
		t.Fatalf("GetInfo failed: %v", err)
	}
	if info.HomeDir == "" {
		t.Error("expected a home directory")
	}
	if filepath.Base(info.ConfigDir) != AppName {
		t.Errorf("config dir should end with %s, got %s", AppName, info.ConfigDir)
	}
	if info.DataDir != filepath.Join(info.ConfigDir, "data") {
		t.Errorf("unexpected data dir %s", info.DataDir)
	}
}

func TestGetUserConfigDir_XDG(t *testing.T) {
	if Detect() != Linux {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	dir, err := GetUserConfigDir()
	if err != nil {
		t.Fatalf("GetUserConfigDir failed: %v", err)
	}
	if dir != "/custom/config" {
		t.Errorf("expected /custom/config, got %s", dir)
	}

	data, err := DefaultDataDir()
	if err != nil {
		t.Fatalf("DefaultDataDir failed: %v", err)
	}
	if data != "/custom/config/tidyfiles/data" {
		t.Errorf("unexpected data dir %s", data)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/Downloads", filepath.Join(home, "Downloads")},
		{"/tmp/x", "/tmp/x"},
		{"relative", "relative"},
		{"~user/x", "~user/x"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandHome(tt.in)
			if err != nil {
				t.Fatalf("ExpandHome(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsProtectedPath(t *testing.T) {
	if Detect() == Unknown {
		t.Skip("no platform protected paths")
	}
	if !IsProtectedPath("/") {
		t.Error("/ should be protected")
	}
	if !IsProtectedPath("/usr/") {
		t.Error("/usr/ should be protected after cleaning")
	}
	if IsProtectedPath(t.TempDir()) {
		t.Error("temp dir should not be protected")
	}
}
