package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fenilsonani/tidyfiles/internal/organizer"
	"github.com/fenilsonani/tidyfiles/internal/tables"
	"github.com/fenilsonani/tidyfiles/internal/ui/styles"
)

// InfoPanel represents a contextual information panel
type InfoPanel struct {
	title   string
	content []InfoItem
	visible bool
	width   int
}

// InfoItem represents a single piece of information
type InfoItem struct {
	Label string
	Value string
}

// NewInfoPanel creates a new info panel
func NewInfoPanel(title string, width int) *InfoPanel {
	return &InfoPanel{
		title: title,
		width: width,
	}
}

// AddItem adds an information item to the panel
func (p *InfoPanel) AddItem(label, value string) {
	p.content = append(p.content, InfoItem{Label: label, Value: value})
}

// Items returns the panel's items
func (p *InfoPanel) Items() []InfoItem {
	return p.content
}

// SetVisible sets the visibility of the panel
func (p *InfoPanel) SetVisible(visible bool) {
	p.visible = visible
}

// IsVisible returns whether the panel is visible
func (p *InfoPanel) IsVisible() bool {
	return p.visible
}

// Toggle toggles the visibility of the panel
func (p *InfoPanel) Toggle() {
	p.visible = !p.visible
}

// SetWidth sets the width of the panel
func (p *InfoPanel) SetWidth(width int) {
	p.width = width
}

// Render renders the info panel
func (p *InfoPanel) Render() string {
	if !p.visible || len(p.content) == 0 {
		return ""
	}

	// Half the terminal, clamped to 40..80
	panelWidth := p.width / 2
	if panelWidth < 40 {
		panelWidth = 40
	}
	if panelWidth > 80 {
		panelWidth = 80
	}

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(styles.Primary).
		Padding(1, 2).
		Width(panelWidth)

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		Underline(true)
	labelStyle := lipgloss.NewStyle().
		Foreground(styles.Secondary).
		Bold(true)
	valueStyle := lipgloss.NewStyle().
		Foreground(styles.Text)

	var content strings.Builder
	content.WriteString(titleStyle.Render(p.title))
	content.WriteString("\n\n")

	for i, item := range p.content {
		content.WriteString(labelStyle.Render(item.Label) + ": ")
		content.WriteString(valueStyle.Render(item.Value))
		if i < len(p.content)-1 {
			content.WriteString("\n")
		}
	}

	content.WriteString("\n\n")
	content.WriteString(styles.HelpStyle.Render("Press 'i' or 'esc' to close"))

	return panelStyle.Render(content.String())
}

// SettingsPanel describes the effective organizer settings and where each
// table was loaded from
func SettingsPanel(opts organizer.Options, t *tables.Tables, width int) *InfoPanel {
	panel := NewInfoPanel("Settings", width)

	panel.AddItem("Dry run", fmt.Sprintf("%t", opts.DryRun))
	panel.AddItem("Min token length", fmt.Sprintf("%d", opts.Rank.MinTokenLength))
	panel.AddItem("Min group size", fmt.Sprintf("%d", opts.Rank.MinGroupSize))
	panel.AddItem("Max groups", fmt.Sprintf("%d", opts.Rank.MaxGroups))
	panel.AddItem("Token counting", string(opts.Rank.Policy))
	panel.AddItem("Skip dangerous by name", fmt.Sprintf("%t", opts.NameModeDenylist))
	if t != nil {
		panel.AddItem("Stop words", t.StopWordsSource.String())
		panel.AddItem("Categories", t.CategoriesSource.String())
		panel.AddItem("Dangerous extensions", t.DangerousSource.String())
	}

	return panel
}
