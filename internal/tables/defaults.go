package tables

// DefaultStopWords returns the built-in stop words used when no ignoreTokens
// file is found
func DefaultStopWords() []string {
	return []string{
		"official", "lyrics", "video", "audio", "hd", "remix", "mv", "live", "youtube",
		"ft", "feat", "2025", "720p", "1080", "1080p", "best", "song", "songs", "360p", "featuring",
		"www", "com", "net", "org", "sample", "256k", "season", "episode", "lyric", "music",
	}
}

// DefaultCategories returns the built-in category table
func DefaultCategories() map[string][]string {
	return map[string][]string{
		"Images": {
			".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".webp", ".heic", ".heif",
			".svg", ".ico", ".jfif", ".raw", ".arw", ".cr2", ".nef", ".orf", ".dng",
		},
		"Videos": {
			".mp4", ".mov", ".avi", ".mkv", ".wmv", ".flv", ".webm", ".mpeg", ".mpg",
			".3gp", ".m4v", ".ts", ".mts", ".vob",
		},
		"Audio": {
			".mp3", ".wav", ".flac", ".aac", ".ogg", ".wma", ".m4a", ".opus", ".aiff",
			".mid", ".midi",
		},
		"Documents": {
			".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt", ".csv", ".xlsx", ".xls",
			".ppt", ".pptx", ".epub", ".md", ".tex", ".pages", ".numbers", ".key",
		},
		"Archives": {
			".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz", ".iso", ".dmg", ".tgz", ".cab",
		},
		"Code": {
			".py", ".js", ".html", ".css", ".c", ".cpp", ".h", ".hpp", ".java", ".sh",
			".ts", ".php", ".rb", ".go", ".swift", ".kt", ".rs", ".lua", ".sql", ".json",
			".xml", ".yml", ".yaml", ".cs", ".vb", ".pl", ".asm", ".bat", ".cmd",
		},
		"Fonts":      {".ttf", ".otf", ".woff", ".woff2", ".eot", ".fon"},
		"3D_Models":  {".obj", ".fbx", ".stl", ".blend", ".3ds", ".dae", ".ply", ".gltf", ".glb"},
		"Subtitles":  {".srt", ".vtt", ".ass", ".ssa", ".sub"},
		"Configs":    {".ini", ".cfg", ".conf", ".jsonc", ".toml", ".env", ".properties"},
		"DiskImages": {".iso", ".img", ".vhd", ".vhdx", ".vdi", ".vmdk"},
		"Packages":   {".deb", ".rpm", ".apk", ".jar", ".whl", ".gem", ".msi"},
		"Other":      {},
	}
}

// DefaultDangerousExts returns executable, script and macro formats that type
// sorting never moves
func DefaultDangerousExts() []string {
	return []string{
		".exe", ".dll", ".com", ".msi", ".bin", ".sys",
		".bat", ".cmd", ".vbs", ".js", ".jse", ".wsf", ".wsh",
		".ps1", ".psm1", ".sh", ".bash", ".zsh",
		".lnk", ".inf", ".msu", ".msp",
		".docm", ".xlsm", ".pptm",
		".scr", ".pif", ".jar", ".reg",
	}
}
