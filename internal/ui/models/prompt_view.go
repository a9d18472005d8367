package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fenilsonani/tidyfiles/internal/ui/styles"
)

// PromptID identifies which prompt a value came from
type PromptID int

const (
	PromptDirectory PromptID = iota
	PromptQuery
)

// PromptViewModel asks for one line of input. The validate function may
// rewrite the value; an error keeps the prompt open so the user can retry.
type PromptViewModel struct {
	id       PromptID
	title    string
	hint     string
	input    textinput.Model
	validate func(string) (string, error)
	err      error
}

// NewPromptViewModel creates a focused prompt
func NewPromptViewModel(id PromptID, title, hint string, validate func(string) (string, error)) *PromptViewModel {
	ti := textinput.New()
	ti.Prompt = ">>: "
	ti.CharLimit = 4096
	ti.Width = 60
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()

	return &PromptViewModel{
		id:       id,
		title:    title,
		hint:     hint,
		input:    ti,
		validate: validate,
	}
}

// NewDirectoryPrompt asks for the directory to organize
func NewDirectoryPrompt(validate func(string) (string, error)) *PromptViewModel {
	return NewPromptViewModel(PromptDirectory,
		"Enter the directory path:",
		"Leave empty for the current directory. ~ expands to your home directory.",
		validate)
}

// NewQueryPrompt asks for an optional search string in name mode
func NewQueryPrompt() *PromptViewModel {
	return NewPromptViewModel(PromptQuery,
		"Enter a name to group by:",
		"Leave empty to detect common names automatically.",
		nil)
}

// SetError shows err under the input
func (m *PromptViewModel) SetError(err error) {
	m.err = err
}

// Init initializes the prompt
func (m *PromptViewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *PromptViewModel) Update(msg tea.Msg) (*PromptViewModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		value := m.input.Value()
		if m.validate != nil {
			v, err := m.validate(value)
			if err != nil {
				m.err = err
				return m, nil
			}
			value = v
		}
		m.err = nil
		id := m.id
		return m, func() tea.Msg {
			return PromptSubmittedMsg{Prompt: id, Value: value}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt
func (m *PromptViewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(styles.ErrorStyle.Render("✗ " + m.err.Error()))
		b.WriteString("\n")
		b.WriteString(styles.HelpStyle.Render("Please try again."))
		b.WriteString("\n")
	} else if m.hint != "" {
		b.WriteString(styles.HelpStyle.Render(m.hint))
		b.WriteString("\n")
	}

	return b.String()
}
