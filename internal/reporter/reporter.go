package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fenilsonani/tidyfiles/internal/organizer"
	"github.com/fenilsonani/tidyfiles/pkg/utils"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
	FormatSummary OutputFormat = "summary"
)

// ParseFormat validates a format name. Empty means summary.
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatSummary, nil
	case FormatTable, FormatJSON, FormatYAML, FormatSummary:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want summary, table, json or yaml)", s)
	}
}

// Reporter handles report generation
type Reporter struct {
	writer io.Writer
	format OutputFormat
}

// New creates a new Reporter
func New(writer io.Writer, format OutputFormat) *Reporter {
	return &Reporter{
		writer: writer,
		format: format,
	}
}

// Report writes the outcome of an organize run
func (r *Reporter) Report(report *organizer.Report) error {
	switch r.format {
	case FormatTable:
		return r.reportTable(report)
	case FormatJSON:
		return r.encodeJSON(report)
	case FormatYAML:
		return r.encodeYAML(report)
	case FormatSummary:
		return r.reportSummary(report)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

// Listing writes a directory listing
func (r *Reporter) Listing(listing *organizer.Listing) error {
	switch r.format {
	case FormatTable:
		return r.listingTable(listing)
	case FormatJSON:
		return r.encodeJSON(listing)
	case FormatYAML:
		return r.encodeYAML(listing)
	case FormatSummary:
		return r.listingSummary(listing)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

// reportSummary generates a summary report
func (r *Reporter) reportSummary(report *organizer.Report) error {
	title := "=== Organize Summary ==="
	if report.DryRun {
		title = "=== Organize Summary (dry run) ==="
	}
	fmt.Fprintln(r.writer, title)
	fmt.Fprintf(r.writer, "Directory: %s\n", report.Directory)
	fmt.Fprintf(r.writer, "Mode: %s\n", describeMode(report))

	if report.NoMatches {
		fmt.Fprintf(r.writer, "\nNo files matched %q.\n", report.Query)
		return nil
	}

	verb := "Moved"
	if report.DryRun {
		verb = "Would move"
	}
	fmt.Fprintf(r.writer, "%s: %s\n", verb, utils.Files(report.Moved))
	fmt.Fprintf(r.writer, "Skipped: %s\n", utils.Files(report.Skipped))

	if len(report.Groups) > 0 {
		fmt.Fprintf(r.writer, "\nFolders:\n")
		for _, g := range report.Groups {
			fmt.Fprintf(r.writer, "  %s: %s\n", g.Name, describeGroup(g))
		}
	}

	if len(report.SkippedNames) > 0 {
		fmt.Fprintf(r.writer, "\nSkipped files:\n")
		for _, name := range report.SkippedNames {
			fmt.Fprintf(r.writer, "  - %s\n", name)
		}
	}

	if summary := organizer.FormatSkipSummary(report.Issues); summary != "" {
		fmt.Fprint(r.writer, summary)
	}

	return nil
}

// reportTable generates a table with one row per planned, completed or skipped file
func (r *Reporter) reportTable(report *organizer.Report) error {
	fmt.Fprintf(r.writer, "%-40s | %-20s | %s\n", "File", "Folder", "Status")
	fmt.Fprintf(r.writer, "%s\n", strings.Repeat("-", 80))

	status := "moved"
	if report.DryRun {
		status = "planned"
	}
	for _, m := range report.Moves {
		fmt.Fprintf(r.writer, "%-40s | %-20s | %s\n", truncate(filepath.Base(m.From), 40), truncate(m.Group, 20), status)
	}
	for _, issue := range report.Issues {
		fmt.Fprintf(r.writer, "%-40s | %-20s | %s\n",
			truncate(filepath.Base(issue.Path), 40), truncate(issue.Group, 20), strings.ToLower(issue.Reason.String()))
	}

	fmt.Fprintf(r.writer, "%s\n", strings.Repeat("-", 80))
	fmt.Fprintf(r.writer, "Total: %d moved, %d skipped\n", report.Moved, report.Skipped)

	return nil
}

func (r *Reporter) listingSummary(listing *organizer.Listing) error {
	fmt.Fprintf(r.writer, "=== %s ===\n", listing.Directory)
	for _, g := range listing.Groups {
		fmt.Fprintf(r.writer, "%s (%s, %s)\n", g.Category, utils.Files(len(g.Files)), utils.FormatBytes(g.Size))
		for _, f := range g.Files {
			fmt.Fprintf(r.writer, "  %s\n", f.Name)
		}
	}
	fmt.Fprintf(r.writer, "Total: %s\n", utils.Files(listing.Total))
	return nil
}

func (r *Reporter) listingTable(listing *organizer.Listing) error {
	fmt.Fprintf(r.writer, "%-40s | %-12s | %s\n", "File", "Size", "Category")
	fmt.Fprintf(r.writer, "%s\n", strings.Repeat("-", 70))
	for _, g := range listing.Groups {
		for _, f := range g.Files {
			fmt.Fprintf(r.writer, "%-40s | %-12s | %s\n", truncate(f.Name, 40), utils.FormatBytes(f.Size), g.Category)
		}
	}
	fmt.Fprintf(r.writer, "%s\n", strings.Repeat("-", 70))
	fmt.Fprintf(r.writer, "Total: %s, %s\n", utils.Files(listing.Total), utils.FormatBytes(listing.TotalSize))
	return nil
}

func (r *Reporter) encodeJSON(v interface{}) error {
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (r *Reporter) encodeYAML(v interface{}) error {
	encoder := yaml.NewEncoder(r.writer)
	defer encoder.Close()
	return encoder.Encode(v)
}

// SaveToFile saves the report to a file
func SaveToFile(report *organizer.Report, path string, format OutputFormat) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return New(file, format).Report(report)
}

func describeMode(report *organizer.Report) string {
	switch {
	case report.Mode == organizer.ModeByType:
		return "by type"
	case report.Query != "":
		return fmt.Sprintf("by name (%q)", report.Query)
	default:
		return "by name (auto-detect)"
	}
}

func describeGroup(g organizer.GroupResult) string {
	if g.Failed {
		return "folder could not be created"
	}
	if g.Moved == 0 && g.Skipped == 0 && g.Note != "" {
		return g.Note
	}

	s := fmt.Sprintf("%d moved", g.Moved)
	if g.Skipped > 0 {
		s += fmt.Sprintf(", %d skipped", g.Skipped)
	}
	if g.Created {
		s += " (new)"
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-(max-3):]
}
