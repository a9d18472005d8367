package platform

import (
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
)

// AppName is the directory name used under the user config dir
const AppName = "tidyfiles"

// Platform represents the operating system platform
type Platform string

const (
	MacOS   Platform = "darwin"
	Linux   Platform = "linux"
	Unknown Platform = "unknown"
)

// Info contains platform-specific information and paths
type Info struct {
	OS             Platform
	HomeDir        string
	Username       string
	ConfigDir      string // <user config dir>/tidyfiles
	DataDir        string // table files searched after ./data
	DownloadsDir   string
	ProtectedPaths []string // system directories that are never organized
}

// Detect returns the current platform
func Detect() Platform {
	switch runtime.GOOS {
	case "darwin":
		return MacOS
	case "linux":
		return Linux
	default:
		return Unknown
	}
}

// GetInfo returns platform-specific information
func GetInfo() (*Info, error) {
	currentUser, err := user.Current()
	if err != nil {
		return nil, err
	}

	homeDir := currentUser.HomeDir
	username := currentUser.Username

	var info *Info
	switch Detect() {
	case MacOS:
		info = getMacOSInfo(homeDir, username)
	case Linux:
		info = getLinuxInfo(homeDir, username)
	default:
		info = &Info{
			OS:           Unknown,
			HomeDir:      homeDir,
			Username:     username,
			DownloadsDir: filepath.Join(homeDir, "Downloads"),
		}
	}

	configDir, err := GetUserConfigDir()
	if err != nil {
		return nil, err
	}
	info.ConfigDir = filepath.Join(configDir, AppName)
	info.DataDir = filepath.Join(info.ConfigDir, "data")

	return info, nil
}

// GetUserConfigDir returns the user's config directory
func GetUserConfigDir() (string, error) {
	switch Detect() {
	case MacOS:
		currentUser, err := user.Current()
		if err != nil {
			return "", err
		}
		return filepath.Join(currentUser.HomeDir, "Library", "Application Support"), nil
	case Linux:
		// Try XDG_CONFIG_HOME first
		if configDir := os.Getenv("XDG_CONFIG_HOME"); configDir != "" {
			return configDir, nil
		}
		currentUser, err := user.Current()
		if err != nil {
			return "", err
		}
		return filepath.Join(currentUser.HomeDir, ".config"), nil
	default:
		return os.UserConfigDir()
	}
}

// DefaultDataDir returns <user config dir>/tidyfiles/data
func DefaultDataDir() (string, error) {
	configDir, err := GetUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, AppName, "data"), nil
}

// ExpandHome replaces a leading "~" with the user's home directory
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return homeDir, nil
	}
	return filepath.Join(homeDir, path[2:]), nil
}

// DefaultProtectedPaths returns the system directories for the current
// platform that are never organized
func DefaultProtectedPaths() []string {
	switch Detect() {
	case MacOS:
		return macOSProtectedPaths()
	case Linux:
		return linuxProtectedPaths()
	default:
		return []string{string(filepath.Separator)}
	}
}

// IsProtectedPath checks if a path is exactly one of the platform's protected directories
func IsProtectedPath(path string) bool {
	cleanPath := filepath.Clean(path)
	for _, protected := range DefaultProtectedPaths() {
		if cleanPath == protected {
			return true
		}
	}
	return false
}

// Errors
var (
	ErrUnsupportedPlatform = &PlatformError{"unsupported platform"}
)

// PlatformError represents a platform-related error
type PlatformError struct {
	Message string
}

func (e *PlatformError) Error() string {
	return e.Message
}
