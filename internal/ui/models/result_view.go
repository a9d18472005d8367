package models

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fenilsonani/tidyfiles/internal/organizer"
	"github.com/fenilsonani/tidyfiles/internal/ui/styles"
	"github.com/fenilsonani/tidyfiles/pkg/utils"
)

// ResultViewModel shows the outcome of an organize run
type ResultViewModel struct {
	report *organizer.Report
	err    error
}

// NewResultViewModel creates a result view. err replaces the report when the
// run could not start.
func NewResultViewModel(report *organizer.Report, err error) *ResultViewModel {
	return &ResultViewModel{report: report, err: err}
}

// Init initializes the result view
func (m *ResultViewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *ResultViewModel) Update(msg tea.Msg) (*ResultViewModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		return m, back
	}
	return m, nil
}

// View renders the result view
func (m *ResultViewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("✨ Organize Summary"))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(styles.ErrorStyle.Render("✗ " + m.err.Error()))
		b.WriteString("\n")

	case m.report.NoMatches:
		b.WriteString(styles.WarningStyle.Render(fmt.Sprintf("No files matched %q.", m.report.Query)))
		b.WriteString("\n")

	default:
		m.renderReport(&b)
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("Press enter to return"))

	return b.String()
}

func (m *ResultViewModel) renderReport(b *strings.Builder) {
	r := m.report

	verb := "Moved"
	if r.DryRun {
		verb = "Would move"
	}
	b.WriteString(styles.SuccessStyle.Render(fmt.Sprintf("✓ %s %s", verb, utils.Files(r.Moved))))
	b.WriteString("\n")
	if r.Skipped > 0 {
		b.WriteString(styles.WarningStyle.Render(fmt.Sprintf("⚠ Skipped %s", utils.Files(r.Skipped))))
		b.WriteString("\n")
	}

	if len(r.Groups) > 0 {
		b.WriteString("\n")
		for _, g := range r.Groups {
			name := styles.CategoryStyle(g.Name).Render(g.Name)
			switch {
			case g.Failed:
				b.WriteString(fmt.Sprintf("  %s %s\n", name, styles.ErrorStyle.Render("folder could not be created")))
			case g.Moved == 0 && g.Note != "":
				b.WriteString(fmt.Sprintf("  %s %s\n", name, styles.DimStyle.Render(g.Note)))
			default:
				b.WriteString(fmt.Sprintf("  %s %s\n", name, utils.Files(g.Moved)))
			}
		}
	}

	if len(r.SkippedNames) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.BoldStyle.Render("Skipped files:"))
		b.WriteString("\n")
		for _, name := range r.SkippedNames {
			b.WriteString("  - " + name + "\n")
		}
	}

	if summary := organizer.FormatSkipSummary(r.Issues); summary != "" {
		b.WriteString(summary)
	}

	if r.DryRun {
		b.WriteString("\n")
		b.WriteString(styles.InfoStyle.Render("Note: This was a dry run. No files were actually moved."))
		b.WriteString("\n")
	}
}
