package models

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fenilsonani/tidyfiles/internal/ui/styles"
)

// MenuID identifies which menu a selection came from
type MenuID int

const (
	MenuMain MenuID = iota
	MenuMode
)

// Main menu choices
const (
	MainExit = iota
	MainByType
	MainByName
)

// Mode menu choices
const (
	ModeBack = iota
	ModeList
	ModeOrganize
	ModeChangeDirectory
)

// MenuViewModel is a numbered menu. Items are chosen by number or by
// moving the cursor and pressing enter.
type MenuViewModel struct {
	id       MenuID
	title    string
	subtitle string
	items    []string
	cursor   int
	err      string
}

// NewMenuViewModel creates a menu whose items are numbered from 0
func NewMenuViewModel(id MenuID, title string, items []string) *MenuViewModel {
	return &MenuViewModel{
		id:    id,
		title: title,
		items: items,
	}
}

// NewMainMenu creates the top-level menu
func NewMainMenu() *MenuViewModel {
	return NewMenuViewModel(MenuMain, "Choose an operation:", []string{
		"Exit",
		"Organize by type",
		"Organize by name",
	})
}

// NewModeMenu creates the submenu shown once a mode and directory are chosen
func NewModeMenu(title, directory string) *MenuViewModel {
	m := NewMenuViewModel(MenuMode, title, []string{
		"Back to main menu",
		"List files",
		"Organize files",
		"Change directory",
	})
	m.subtitle = directory
	return m
}

// SetSubtitle sets the line shown under the title
func (m *MenuViewModel) SetSubtitle(s string) {
	m.subtitle = s
}

// Init initializes the menu
func (m *MenuViewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *MenuViewModel) Update(msg tea.Msg) (*MenuViewModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.err = ""
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		m.err = ""
	case "enter":
		return m, m.choose(m.cursor)
	default:
		if n, err := strconv.Atoi(key.String()); err == nil {
			if n >= 0 && n < len(m.items) {
				m.cursor = n
				return m, m.choose(n)
			}
		}
		if key.Type == tea.KeyRunes {
			m.err = fmt.Sprintf("Invalid input. Please enter a number between 0 and %d.", len(m.items)-1)
		}
	}

	return m, nil
}

func (m *MenuViewModel) choose(n int) tea.Cmd {
	m.err = ""
	id := m.id
	return func() tea.Msg {
		return MenuSelectedMsg{Menu: id, Choice: n}
	}
}

// View renders the menu
func (m *MenuViewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(m.title))
	b.WriteString("\n")
	if m.subtitle != "" {
		b.WriteString(styles.FilePathStyle.Render(m.subtitle))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		line := fmt.Sprintf("%d. %s", i, item)
		if i == m.cursor {
			b.WriteString(styles.SelectedStyle.Render("› " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
		if i == 0 {
			b.WriteString(styles.DimStyle.Render("  -----"))
			b.WriteString("\n")
		}
	}

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(m.err))
		b.WriteString("\n")
	}

	return b.String()
}
