package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fenilsonani/tidyfiles/internal/ui/styles"
	"github.com/fenilsonani/tidyfiles/pkg/utils"
)

// StatusBar represents a status bar component that displays at the bottom of views
type StatusBar struct {
	viewName  string
	directory string
	files     int
	size      int64
	dryRun    bool
	shortcuts map[string]string
}

// NewStatusBar creates a new status bar
func NewStatusBar() *StatusBar {
	return &StatusBar{
		shortcuts: make(map[string]string),
	}
}

// SetView sets the current view name
func (s *StatusBar) SetView(viewName string) {
	s.viewName = viewName
}

// SetDirectory sets the directory being worked on
func (s *StatusBar) SetDirectory(dir string) {
	s.directory = dir
}

// SetCounts sets the file count and total size shown next to the directory
func (s *StatusBar) SetCounts(files int, size int64) {
	s.files = files
	s.size = size
}

// SetDryRun marks the session as a dry run
func (s *StatusBar) SetDryRun(dryRun bool) {
	s.dryRun = dryRun
}

// SetShortcuts sets the shortcuts to display
func (s *StatusBar) SetShortcuts(shortcuts map[string]string) {
	s.shortcuts = shortcuts
}

// Render renders the status bar with the given width
func (s *StatusBar) Render(width int) string {
	if width <= 0 {
		width = 80
	}

	var parts []string

	if s.viewName != "" {
		parts = append(parts, styles.BoldStyle.Render(s.viewName))
	}
	if s.directory != "" {
		parts = append(parts, s.directory)
	}
	if s.files > 0 {
		parts = append(parts, utils.Files(s.files))
	}
	if s.size > 0 {
		parts = append(parts, styles.FileSizeStyle.Render(utils.FormatBytes(s.size)))
	}
	if s.dryRun {
		parts = append(parts, styles.WarningStyle.Render("DRY RUN"))
	}

	leftSide := strings.Join(parts, " • ")

	// Shortcuts (right side)
	var shortcutParts []string
	orderedKeys := []string{"↑/↓", "0-9", "enter", "i", "?", "esc", "q"}

	for _, key := range orderedKeys {
		if desc, ok := s.shortcuts[key]; ok {
			shortcutParts = append(shortcutParts, fmt.Sprintf("%s:%s",
				styles.DimStyle.Render(key), desc))
		}
	}

	var rest []string
	for key := range s.shortcuts {
		found := false
		for _, orderedKey := range orderedKeys {
			if key == orderedKey {
				found = true
				break
			}
		}
		if !found {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		shortcutParts = append(shortcutParts, fmt.Sprintf("%s:%s",
			styles.DimStyle.Render(key), s.shortcuts[key]))
	}

	rightSide := strings.Join(shortcutParts, " ")

	leftLen := lipgloss.Width(leftSide)
	rightLen := lipgloss.Width(rightSide)
	spacing := width - leftLen - rightLen - 2 // -2 for padding

	if spacing < 1 {
		// Not enough room for shortcuts
		if width-leftLen-5 < rightLen {
			rightSide = ""
		}
		spacing = 1
	}

	statusLine := leftSide + strings.Repeat(" ", spacing) + rightSide

	statusBarStyle := lipgloss.NewStyle().
		Foreground(styles.Text).
		Background(styles.BgDark).
		Padding(0, 1).
		Width(width)

	return statusBarStyle.Render(statusLine)
}

// RenderSimple renders a simple status bar with just a message
func RenderSimple(message string, width int) string {
	if width <= 0 {
		width = 80
	}

	statusBarStyle := lipgloss.NewStyle().
		Foreground(styles.Text).
		Background(styles.BgDark).
		Padding(0, 1).
		Width(width)

	return statusBarStyle.Render(message)
}
