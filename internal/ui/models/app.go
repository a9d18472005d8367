package models

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fenilsonani/tidyfiles/internal/organizer"
	"github.com/fenilsonani/tidyfiles/internal/ui/components"
	"github.com/fenilsonani/tidyfiles/internal/ui/styles"
	uiutils "github.com/fenilsonani/tidyfiles/internal/ui/utils"
)

// ViewState represents the current view in the app
type ViewState int

const (
	ViewMainMenu ViewState = iota
	ViewModeMenu
	ViewDirectoryPrompt
	ViewQueryPrompt
	ViewListing
	ViewRunning
	ViewResult
	ViewHelp
)

// AppModel is the root model for the interactive TUI
type AppModel struct {
	// Current state
	state         ViewState
	previousState ViewState // For back navigation

	// Shared data
	organizer *organizer.Organizer
	mode      organizer.Mode
	directory string
	quitting  bool

	// View models
	mainMenu    *MenuViewModel
	modeMenu    *MenuViewModel
	dirPrompt   *PromptViewModel
	queryPrompt *PromptViewModel
	listingView *ListingViewModel
	runView     *RunViewModel
	resultView  *ResultViewModel

	statusBar *components.StatusBar
	settings  *components.InfoPanel

	// UI state
	width  int
	height int
}

// NewAppModel creates a new app model. A non-empty directory is used as the
// starting directory without prompting.
func NewAppModel(org *organizer.Organizer, directory string) *AppModel {
	opts := org.Options()

	bar := components.NewStatusBar()
	bar.SetDryRun(opts.DryRun)

	return &AppModel{
		state:     ViewMainMenu,
		organizer: org,
		directory: directory,
		mainMenu:  NewMainMenu(),
		statusBar: bar,
		settings:  components.SettingsPanel(opts, org.Tables(), 80),
	}
}

// State returns the current view
func (m *AppModel) State() ViewState {
	return m.state
}

// Directory returns the directory being organized
func (m *AppModel) Directory() string {
	return m.directory
}

// Init initializes the model
func (m *AppModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.settings.SetWidth(msg.Width)

	case MenuSelectedMsg:
		return m, m.handleMenu(msg)

	case PromptSubmittedMsg:
		return m, m.handlePrompt(msg)

	case RunCompleteMsg:
		if errors.Is(msg.Err, organizer.ErrInvalidFolderName) {
			// Let the user pick another name
			m.queryPrompt.SetError(msg.Err)
			m.state = ViewQueryPrompt
			return m, nil
		}
		m.resultView = NewResultViewModel(msg.Report, msg.Err)
		m.statusBar.SetCounts(0, 0)
		m.state = ViewResult
		return m, nil

	case BackMsg:
		m.state = ViewModeMenu
		return m, nil
	}

	// Delegate to current view
	return m.delegateUpdate(msg)
}

// handleKey processes global keys. Prompts receive every key except ctrl+c
// and esc so that "q" and "?" can be typed.
func (m *AppModel) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	typing := m.state == ViewDirectoryPrompt || m.state == ViewQueryPrompt

	switch msg.String() {
	case "ctrl+c":
		if m.state != ViewRunning {
			m.quitting = true
			return tea.Quit, true
		}
		return nil, true
	case "q":
		if typing {
			return nil, false
		}
		if m.state != ViewRunning {
			m.quitting = true
			return tea.Quit, true
		}
		return nil, true
	case "?":
		if m.state == ViewHelp {
			m.state = m.previousState
			return nil, true
		}
		if typing || m.state == ViewRunning {
			return nil, false
		}
		m.previousState = m.state
		m.state = ViewHelp
		return nil, true
	case "i":
		if m.state == ViewModeMenu {
			m.settings.Toggle()
			return nil, true
		}
	case "esc":
		switch m.state {
		case ViewHelp:
			m.state = m.previousState
		case ViewModeMenu:
			if m.settings.IsVisible() {
				m.settings.SetVisible(false)
			} else {
				m.state = ViewMainMenu
			}
		case ViewDirectoryPrompt:
			if m.directory == "" {
				m.state = ViewMainMenu
			} else {
				m.state = ViewModeMenu
			}
		case ViewQueryPrompt, ViewListing, ViewResult:
			m.state = ViewModeMenu
		}
		return nil, true
	}

	if m.state == ViewHelp {
		// Any other key closes help
		m.state = m.previousState
		return nil, true
	}

	return nil, false
}

func (m *AppModel) handleMenu(msg MenuSelectedMsg) tea.Cmd {
	switch msg.Menu {
	case MenuMain:
		switch msg.Choice {
		case MainExit:
			m.quitting = true
			return tea.Quit
		case MainByType:
			m.mode = organizer.ModeByType
		case MainByName:
			m.mode = organizer.ModeByName
		}
		if m.directory == "" {
			m.promptDirectory()
		} else {
			m.showModeMenu()
		}

	case MenuMode:
		switch msg.Choice {
		case ModeBack:
			m.state = ViewMainMenu
		case ModeList:
			listing, err := m.organizer.List(m.directory)
			if err == nil {
				m.statusBar.SetCounts(listing.Total, listing.TotalSize)
			}
			m.listingView = NewListingViewModel(listing, err, m.width, m.height)
			m.state = ViewListing
		case ModeOrganize:
			if m.mode == organizer.ModeByName {
				m.queryPrompt = NewQueryPrompt()
				m.state = ViewQueryPrompt
				return nil
			}
			return m.startRun("")
		case ModeChangeDirectory:
			m.promptDirectory()
		}
	}
	return nil
}

func (m *AppModel) handlePrompt(msg PromptSubmittedMsg) tea.Cmd {
	switch msg.Prompt {
	case PromptDirectory:
		m.directory = msg.Value
		m.statusBar.SetCounts(0, 0)
		m.showModeMenu()
	case PromptQuery:
		return m.startRun(msg.Value)
	}
	return nil
}

func (m *AppModel) promptDirectory() {
	m.dirPrompt = NewDirectoryPrompt(m.organizer.ResolveDirectory)
	m.state = ViewDirectoryPrompt
}

func (m *AppModel) showModeMenu() {
	title := "Organize by type"
	if m.mode == organizer.ModeByName {
		title = "Organize by name"
	}
	m.modeMenu = NewModeMenu(title, m.directory)
	m.statusBar.SetDirectory(m.directory)
	m.state = ViewModeMenu
}

func (m *AppModel) startRun(query string) tea.Cmd {
	m.runView = NewRunViewModel(m.organizer, m.mode, m.directory, query)
	m.state = ViewRunning
	return m.runView.Init()
}

// delegateUpdate delegates the update to the current view
func (m *AppModel) delegateUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.state {
	case ViewMainMenu:
		m.mainMenu, cmd = m.mainMenu.Update(msg)
	case ViewModeMenu:
		if m.modeMenu != nil {
			m.modeMenu, cmd = m.modeMenu.Update(msg)
		}
	case ViewDirectoryPrompt:
		if m.dirPrompt != nil {
			m.dirPrompt, cmd = m.dirPrompt.Update(msg)
		}
	case ViewQueryPrompt:
		if m.queryPrompt != nil {
			m.queryPrompt, cmd = m.queryPrompt.Update(msg)
		}
	case ViewListing:
		if m.listingView != nil {
			m.listingView, cmd = m.listingView.Update(msg)
		}
	case ViewRunning:
		if m.runView != nil {
			m.runView, cmd = m.runView.Update(msg)
		}
	case ViewResult:
		if m.resultView != nil {
			m.resultView, cmd = m.resultView.Update(msg)
		}
	}

	return m, cmd
}

// View renders the current view
func (m *AppModel) View() string {
	if m.quitting {
		return styles.SuccessStyle.Render("Good Bye") + "\n"
	}

	var b strings.Builder
	b.WriteString(uiutils.GetSizeWarningBanner(m.width, m.height))
	b.WriteString(m.renderHeader())

	switch m.state {
	case ViewMainMenu:
		b.WriteString(m.mainMenu.View())
	case ViewModeMenu:
		if m.settings.IsVisible() {
			b.WriteString(m.settings.Render())
		} else {
			b.WriteString(m.modeMenu.View())
		}
	case ViewDirectoryPrompt:
		b.WriteString(m.dirPrompt.View())
	case ViewQueryPrompt:
		b.WriteString(m.queryPrompt.View())
	case ViewListing:
		b.WriteString(m.listingView.View())
	case ViewRunning:
		b.WriteString(m.runView.View())
	case ViewResult:
		b.WriteString(m.resultView.View())
	case ViewHelp:
		b.WriteString(m.renderHelp())
	}

	b.WriteString("\n")
	if m.state == ViewRunning {
		b.WriteString(components.RenderSimple("Organizing, please wait...", m.width))
		return b.String()
	}

	m.statusBar.SetView(m.viewName())
	m.statusBar.SetShortcuts(m.shortcuts())
	b.WriteString(m.statusBar.Render(m.width))

	return b.String()
}

func (m *AppModel) renderHeader() string {
	return styles.TitleStyle.Render("TidyFiles") + "\n"
}

func (m *AppModel) viewName() string {
	switch m.state {
	case ViewMainMenu:
		return "Main menu"
	case ViewModeMenu, ViewListing, ViewRunning, ViewResult, ViewQueryPrompt:
		if m.mode == organizer.ModeByName {
			return "By name"
		}
		return "By type"
	case ViewDirectoryPrompt:
		return "Directory"
	case ViewHelp:
		return "Help"
	}
	return ""
}

func (m *AppModel) shortcuts() map[string]string {
	switch m.state {
	case ViewMainMenu:
		return map[string]string{"↑/↓": "move", "0-9": "choose", "?": "help", "q": "quit"}
	case ViewModeMenu:
		return map[string]string{"↑/↓": "move", "0-9": "choose", "i": "settings", "esc": "back", "q": "quit"}
	case ViewDirectoryPrompt, ViewQueryPrompt:
		return map[string]string{"enter": "submit", "esc": "back"}
	case ViewListing:
		return map[string]string{"↑/↓": "scroll", "enter": "return", "q": "quit"}
	case ViewResult:
		return map[string]string{"enter": "return", "q": "quit"}
	}
	return map[string]string{}
}

// renderHelp renders the help view for the view it was opened from
func (m *AppModel) renderHelp() string {
	var b strings.Builder

	viewName := "General"
	helpContent := m.getHelpForGeneral()
	if m.previousState == ViewModeMenu {
		viewName = "Organize"
		helpContent = m.getHelpForModeMenu()
	}

	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("Help - %s", viewName)))
	b.WriteString("\n\n")
	b.WriteString(helpContent)
	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("Press any key to close"))

	return b.String()
}

func (m *AppModel) getHelpForModeMenu() string {
	return `Work with the chosen directory.

Options:
  0  - Back to the main menu
  1  - List files grouped by category
  2  - Organize the files
  3  - Choose another directory

By type, files move into folders named after their category
(Images, Documents, ...). Executables and scripts are never moved.

By name, enter a word to gather every file containing it, or leave
the prompt empty to detect names shared by several files.

Press i to see the active settings.`
}

func (m *AppModel) getHelpForGeneral() string {
	return `TidyFiles - Interactive Mode Help

Global Shortcuts:
  ?       - Toggle this help
  esc     - Go back / Close help
  q       - Quit (outside of prompts)
  ctrl+c  - Quit

Files are only moved inside the chosen directory. Existing files
are never overwritten.`
}

func back() tea.Msg {
	return BackMsg{}
}

// MenuSelectedMsg reports a menu choice
type MenuSelectedMsg struct {
	Menu   MenuID
	Choice int
}

// PromptSubmittedMsg carries an accepted prompt value
type PromptSubmittedMsg struct {
	Prompt PromptID
	Value  string
}

// RunCompleteMsg carries the outcome of an organize operation
type RunCompleteMsg struct {
	Report *organizer.Report
	Err    error
}

// BackMsg returns to the mode menu
type BackMsg struct{}
