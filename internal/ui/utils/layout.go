package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fenilsonani/tidyfiles/internal/ui/styles"
)

const (
	// MinTerminalWidth is the minimum recommended terminal width
	MinTerminalWidth = 80
	// MinTerminalHeight is the minimum recommended terminal height
	MinTerminalHeight = 24
)

// TruncatePath shortens path to maxWidth by dropping leading directories.
// The file name is always kept, cut from the left if it alone is too long.
func TruncatePath(path string, maxWidth int) string {
	if len(path) <= maxWidth {
		return path
	}
	if maxWidth < 10 {
		return "..."
	}

	sep := string(filepath.Separator)
	parts := strings.Split(filepath.Clean(path), sep)
	for i := 1; i < len(parts); i++ {
		candidate := "..." + sep + strings.Join(parts[i:], sep)
		if len(candidate) <= maxWidth {
			return candidate
		}
	}

	name := parts[len(parts)-1]
	return "..." + name[len(name)-(maxWidth-3):]
}

// CalculatePageSize calculates the number of items that can fit on a page
// given the terminal height and reserved space for headers/footers
func CalculatePageSize(terminalHeight int) int {
	// Title, header, help and status bar
	const reservedLines = 10

	pageSize := terminalHeight - reservedLines
	if pageSize < 5 {
		pageSize = 5 // Minimum page size
	}

	return pageSize
}

// IsTerminalTooSmall checks if the terminal is below minimum recommended size
func IsTerminalTooSmall(width, height int) bool {
	return width < MinTerminalWidth || height < MinTerminalHeight
}

// GetSizeWarningBanner returns a warning banner if terminal is too small
func GetSizeWarningBanner(width, height int) string {
	if !IsTerminalTooSmall(width, height) {
		return ""
	}

	warning := "⚠️  Terminal too small! Recommended: 80x24 or larger"
	if width > 0 && height > 0 {
		warning += styles.DimStyle.Render(" (current: ") +
			styles.WarningStyle.Render(fmt.Sprintf("%dx%d", width, height)) +
			styles.DimStyle.Render(")")
	}

	return styles.WarningStyle.Render(warning) + "\n\n"
}

// TruncateString truncates a string to maxLen, adding ellipsis if needed
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return "..."
	}
	return s[:maxLen-3] + "..."
}

// VisibleRange returns the [start, end) slice of total lines to show when the
// view is scrolled to offset. offset is clamped so the last page stays full.
func VisibleRange(total, offset, pageSize int) (start, end int) {
	if pageSize <= 0 || total <= pageSize {
		return 0, total
	}
	if offset > total-pageSize {
		offset = total - pageSize
	}
	if offset < 0 {
		offset = 0
	}
	return offset, offset + pageSize
}
