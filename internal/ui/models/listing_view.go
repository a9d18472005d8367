package models

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fenilsonani/tidyfiles/internal/organizer"
	"github.com/fenilsonani/tidyfiles/internal/ui/components"
	"github.com/fenilsonani/tidyfiles/internal/ui/styles"
	uiutils "github.com/fenilsonani/tidyfiles/internal/ui/utils"
)

// ListingViewModel shows a scrollable category listing
type ListingViewModel struct {
	listing *organizer.Listing
	err     error
	lines   []string
	offset  int
	width   int
	height  int
}

// NewListingViewModel creates a listing view. err is shown instead of the
// listing when the directory could not be read.
func NewListingViewModel(listing *organizer.Listing, err error, width, height int) *ListingViewModel {
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	m := &ListingViewModel{listing: listing, err: err, width: width, height: height}
	m.layout()
	return m
}

func (m *ListingViewModel) layout() {
	if m.listing != nil {
		m.lines = components.ListingLines(m.listing, m.width)
	}
}

// Init initializes the view
func (m *ListingViewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *ListingViewModel) Update(msg tea.Msg) (*ListingViewModel, tea.Cmd) {
	pageSize := uiutils.CalculatePageSize(m.height)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.offset > 0 {
				m.offset--
			}
		case "down", "j":
			if m.offset < len(m.lines)-pageSize {
				m.offset++
			}
		case "pgup", "ctrl+b":
			m.offset -= pageSize
			if m.offset < 0 {
				m.offset = 0
			}
		case "pgdown", "ctrl+f", " ":
			m.offset, _ = uiutils.VisibleRange(len(m.lines), m.offset+pageSize, pageSize)
		case "enter":
			return m, back
		}
	}

	return m, nil
}

// View renders the listing
func (m *ListingViewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("📂 Files"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(styles.ErrorStyle.Render("✗ " + m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(styles.HelpStyle.Render("Press enter to return"))
		return b.String()
	}

	b.WriteString(styles.FilePathStyle.Render(uiutils.TruncatePath(m.listing.Directory, m.width-2)))
	b.WriteString("\n\n")

	start, end := uiutils.VisibleRange(len(m.lines), m.offset, uiutils.CalculatePageSize(m.height))
	for _, line := range m.lines[start:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if end < len(m.lines) {
		b.WriteString(styles.DimStyle.Render("  ↓ more"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("Press enter to return"))

	return b.String()
}
