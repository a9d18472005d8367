package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fenilsonani/tidyfiles/internal/organizer"
	"github.com/fenilsonani/tidyfiles/internal/progress"
	"github.com/fenilsonani/tidyfiles/internal/ui/styles"
)

const progressBarWidth = 30

// RunViewModel shows a spinner and live progress while an organize operation
// runs
type RunViewModel struct {
	org       *organizer.Organizer
	mode      organizer.Mode
	directory string
	query     string
	spinner   spinner.Model
	tracker   *progress.Tracker
	updates   <-chan progress.MoveProgress
	current   progress.MoveProgress
	startTime time.Time
}

// NewRunViewModel creates a run view for one operation. The organizer reports
// its progress to the view until the next run view replaces it.
func NewRunViewModel(org *organizer.Organizer, mode organizer.Mode, directory, query string) *RunViewModel {
	tracker := progress.NewTracker()
	org.WithProgress(tracker)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SelectedStyle

	return &RunViewModel{
		org:       org,
		mode:      mode,
		directory: directory,
		query:     query,
		spinner:   s,
		tracker:   tracker,
		updates:   tracker.Subscribe(),
		startTime: time.Now(),
	}
}

// Init starts the spinner, the operation and the progress listener. The
// listener ends once perform closes the subscription.
func (m *RunViewModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.perform,
		m.waitForProgress,
	)
}

// Update handles messages
func (m *RunViewModel) Update(msg tea.Msg) (*RunViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ProgressMsg:
		m.current = msg.Progress
		return m, m.waitForProgress
	}
	return m, nil
}

// View renders the run view
func (m *RunViewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("🗂  Organizing"))
	b.WriteString("\n\n")
	b.WriteString(m.spinner.View())
	if m.mode == organizer.ModeByType {
		b.WriteString(" Sorting files by type... ")
	} else {
		b.WriteString(" Grouping files by name... ")
	}
	b.WriteString(styles.DimStyle.Render(fmt.Sprintf("(%s)", time.Since(m.startTime).Round(time.Second))))
	b.WriteString("\n")

	if bar := styles.ProgressBar(m.current.Handled(), m.current.Total, progressBarWidth); bar != "" {
		b.WriteString(bar)
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf(" %d/%d", m.current.Handled(), m.current.Total)))
		b.WriteString("\n")
	}
	b.WriteString(styles.InfoStyle.Render(progress.FormatMoveProgress(m.current)))
	b.WriteString("\n\n")
	b.WriteString(styles.FilePathStyle.Render(m.directory))
	b.WriteString("\n")

	return b.String()
}

// perform runs the operation and closes the progress subscription
func (m *RunViewModel) perform() tea.Msg {
	defer m.tracker.Unsubscribe(m.updates)

	var (
		report *organizer.Report
		err    error
	)
	if m.mode == organizer.ModeByType {
		report, err = m.org.OrganizeByType(m.directory)
	} else {
		report, err = m.org.OrganizeByName(m.directory, m.query)
	}
	return RunCompleteMsg{Report: report, Err: err}
}

// waitForProgress delivers the next progress update. It returns nil once the
// subscription is closed, which ends the listener.
func (m *RunViewModel) waitForProgress() tea.Msg {
	p, ok := <-m.updates
	if !ok {
		return nil
	}
	return ProgressMsg{Progress: p}
}

// ProgressMsg carries a progress snapshot of the running operation
type ProgressMsg struct {
	Progress progress.MoveProgress
}
