package platform

import "path/filepath"

// getMacOSInfo returns platform-specific information for macOS
func getMacOSInfo(homeDir, username string) *Info {
	return &Info{
		OS:             MacOS,
		HomeDir:        homeDir,
		Username:       username,
		DownloadsDir:   filepath.Join(homeDir, "Downloads"),
		ProtectedPaths: macOSProtectedPaths(),
	}
}

func macOSProtectedPaths() []string {
	return []string{
		"/",
		"/bin",
		"/dev",
		"/etc",
		"/sbin",
		"/usr",
		"/var",
		"/private",
		"/System",
		"/Applications",
		"/Library",
		"/Volumes",
	}
}
