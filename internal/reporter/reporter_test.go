package reporter

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/fenilsonani/tidyfiles/internal/organizer"
)

func sampleReport() *organizer.Report {
	return &organizer.Report{
		RunID:     "run-1",
		Mode:      organizer.ModeByType,
		Directory: "/data/downloads",
		Groups: []organizer.GroupResult{
			{Name: "Documents", Matched: 1, Moved: 1, Created: true},
		},
		Moves: []organizer.Move{
			{From: "/data/downloads/report.txt", To: "/data/downloads/Documents/report.txt", Group: "Documents"},
		},
		Issues: []*organizer.MoveError{
			{Path: "/data/downloads/report.exe", Reason: organizer.SkipDangerous},
		},
		Moved:        1,
		Skipped:      1,
		SkippedNames: []string{"report.exe"},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"", FormatSummary, false},
		{"summary", FormatSummary, false},
		{"TABLE", FormatTable, false},
		{"json", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReportSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf, FormatSummary).Report(sampleReport()); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Organize Summary",
		"Mode: by type",
		"Moved: 1 file",
		"Skipped: 1 file",
		"Documents: 1 moved (new)",
		"- report.exe",
		"Dangerous extension: 1 files",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestReportSummary_DryRunAndNoMatches(t *testing.T) {
	report := &organizer.Report{Mode: organizer.ModeByName, Query: "zzz", DryRun: true, NoMatches: true}

	var buf bytes.Buffer
	if err := New(&buf, FormatSummary).Report(report); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "(dry run)") {
		t.Errorf("expected dry run marker:\n%s", out)
	}
	if !strings.Contains(out, `No files matched "zzz"`) {
		t.Errorf("expected no-match message:\n%s", out)
	}
}

func TestReportTable(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf, FormatTable).Report(sampleReport()); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "report.txt") || !strings.Contains(out, "moved") {
		t.Errorf("table missing moved row:\n%s", out)
	}
	if !strings.Contains(out, "dangerous extension") {
		t.Errorf("table missing skipped row:\n%s", out)
	}
	if !strings.Contains(out, "Total: 1 moved, 1 skipped") {
		t.Errorf("table missing total:\n%s", out)
	}
}

func TestReportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf, FormatJSON).Report(sampleReport()); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["run_id"] != "run-1" {
		t.Errorf("unexpected run_id: %v", decoded["run_id"])
	}
	issues, ok := decoded["issues"].([]interface{})
	if !ok || len(issues) != 1 {
		t.Fatalf("expected one issue, got %v", decoded["issues"])
	}
	issue := issues[0].(map[string]interface{})
	if issue["reason"] != "Dangerous extension" {
		t.Errorf("unexpected issue reason: %v", issue["reason"])
	}
}

func TestReportYAML(t *testing.T) {
	report := sampleReport()
	report.Issues = append(report.Issues, &organizer.MoveError{
		Path:     "/data/downloads/locked.txt",
		Reason:   organizer.SkipMoveFailed,
		Cause:    organizer.CausePermissionDenied,
		Original: errors.New("permission denied"),
	})

	var buf bytes.Buffer
	if err := New(&buf, FormatYAML).Report(report); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	var decoded struct {
		Moved  int `yaml:"moved"`
		Issues []struct {
			Reason string `yaml:"reason"`
			Cause  string `yaml:"cause"`
			Error  string `yaml:"error"`
		} `yaml:"issues"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if decoded.Moved != 1 {
		t.Errorf("expected moved 1, got %d", decoded.Moved)
	}
	if len(decoded.Issues) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(decoded.Issues))
	}
	if decoded.Issues[1].Cause != "Permission denied" || decoded.Issues[1].Error != "permission denied" {
		t.Errorf("unexpected issue: %+v", decoded.Issues[1])
	}
}

func TestListingFormats(t *testing.T) {
	listing := &organizer.Listing{
		Directory: "/data",
		Groups: []organizer.ListingGroup{
			{Category: "Images", Files: []organizer.FileEntry{{Name: "a.jpg", Size: 2048}}, Size: 2048},
		},
		Total:     1,
		TotalSize: 2048,
	}

	var summary bytes.Buffer
	if err := New(&summary, FormatSummary).Listing(listing); err != nil {
		t.Fatalf("Listing failed: %v", err)
	}
	if !strings.Contains(summary.String(), "Images (1 file, 2.00 KB)") {
		t.Errorf("unexpected summary:\n%s", summary.String())
	}

	var table bytes.Buffer
	if err := New(&table, FormatTable).Listing(listing); err != nil {
		t.Fatalf("Listing failed: %v", err)
	}
	if !strings.Contains(table.String(), "Total: 1 file, 2.00 KB") {
		t.Errorf("unexpected table:\n%s", table.String())
	}

	var js bytes.Buffer
	if err := New(&js, FormatJSON).Listing(listing); err != nil {
		t.Fatalf("Listing failed: %v", err)
	}
	if !strings.Contains(js.String(), `"category": "Images"`) {
		t.Errorf("unexpected json:\n%s", js.String())
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if err := New(&bytes.Buffer{}, OutputFormat("xml")).Report(sampleReport()); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestSaveToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := SaveToFile(sampleReport(), path, FormatJSON); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if !json.Valid(data) {
		t.Errorf("saved report is not valid JSON:\n%s", data)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("unexpected %q", got)
	}
	if got := truncate("a-very-long-file-name.txt", 10); got != "...ame.txt" {
		t.Errorf("unexpected %q", got)
	}
}
