package platform

import "path/filepath"

// getLinuxInfo returns platform-specific information for Linux
func getLinuxInfo(homeDir, username string) *Info {
	return &Info{
		OS:             Linux,
		HomeDir:        homeDir,
		Username:       username,
		DownloadsDir:   filepath.Join(homeDir, "Downloads"),
		ProtectedPaths: linuxProtectedPaths(),
	}
}

func linuxProtectedPaths() []string {
	return []string{
		"/",
		"/bin",
		"/boot",
		"/dev",
		"/etc",
		"/lib",
		"/lib64",
		"/proc",
		"/run",
		"/sbin",
		"/sys",
		"/usr",
		"/var",
	}
}
