package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fenilsonani/tidyfiles/internal/organizer"
	"github.com/fenilsonani/tidyfiles/internal/ui/models"
)

// RunInteractive starts the interactive TUI mode. directory may be empty, in
// which case the user is asked for one after choosing a mode.
func RunInteractive(org *organizer.Organizer, directory string) error {
	if directory != "" {
		resolved, err := org.ResolveDirectory(directory)
		if err != nil {
			return err
		}
		directory = resolved
	}

	m := models.NewAppModel(org, directory)

	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running interactive mode: %w", err)
	}

	return nil
}
