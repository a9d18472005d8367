package organizer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fenilsonani/tidyfiles/internal/progress"
)

type folderState struct {
	err     error
	created bool
}

// run holds the state of one organize operation. In dry-run mode planned
// moves are tracked here instead of being performed.
type run struct {
	o       *Organizer
	dir     string
	report  *Report
	logger  *slog.Logger
	tracker *progress.Tracker

	groups   map[string]int          // group name -> index in report.Groups
	folders  map[string]*folderState // folder path -> outcome of ensureFolder
	claimed  map[string]struct{}     // names moved away (dry run) or rejected
	planned  map[string]struct{}     // destinations taken by planned moves
	rejected map[string]struct{}     // dangerous files already reported
}

func newRun(o *Organizer, report *Report, logger *slog.Logger) *run {
	tracker := o.tracker
	if tracker == nil {
		tracker = progress.NewTracker()
	}
	tracker.Start(report.DryRun)

	return &run{
		o:        o,
		tracker:  tracker,
		dir:      report.Directory,
		report:   report,
		logger:   logger,
		groups:   make(map[string]int),
		folders:  make(map[string]*folderState),
		claimed:  make(map[string]struct{}),
		planned:  make(map[string]struct{}),
		rejected: make(map[string]struct{}),
	}
}

func (r *run) dryRun() bool {
	return r.o.opts.DryRun
}

// scan lists the directory as it is now, minus files a dry run already moved
func (r *run) scan() ([]FileEntry, error) {
	entries, err := ScanDir(r.dir)
	if err != nil {
		return nil, err
	}
	if len(r.claimed) == 0 {
		return entries, nil
	}

	live := entries[:0]
	for _, e := range entries {
		if _, gone := r.claimed[e.Name]; !gone {
			live = append(live, e)
		}
	}
	return live, nil
}

func (r *run) fail(err error) error {
	r.tracker.Finish(err)
	return err
}

func (r *run) finish() *Report {
	r.tracker.Finish(nil)
	r.report.Duration = time.Since(r.report.StartedAt)
	r.logger.Info("Finished",
		"moved", r.report.Moved,
		"skipped", r.report.Skipped,
		"groups", len(r.report.Groups),
		"duration", r.report.Duration)
	return r.report
}

// ============================================================================
// Name mode
// ============================================================================

// materialize re-scans the directory for every ranked token and moves the
// files whose name contains it into <dir>/<token>
func (r *run) materialize(ranked []RankedToken) {
	minSize := r.o.opts.Rank.MinGroupSize
	stopWords := r.o.tables.StopWords

	for _, rt := range ranked {
		gi := r.group(rt.Token)
		r.report.Groups[gi].Count = rt.Count

		if stopWords.Has(rt.Token) {
			r.report.Groups[gi].Note = "stop word"
			continue
		}

		entries, err := r.scan()
		if err != nil {
			r.logger.Warn("Re-scan failed, stopping", "token", rt.Token, "error", err)
			r.report.Groups[gi].Note = "re-scan failed"
			return
		}

		var matches []FileEntry
		for _, e := range entries {
			if strings.Contains(asciiLower(e.Name), rt.Token) {
				matches = append(matches, e)
			}
		}
		matches = r.filterDangerous(matches, rt.Token)
		r.report.Groups[gi].Matched = len(matches)

		if len(matches) < minSize {
			r.logger.Debug("Too few files left for token", "token", rt.Token, "matched", len(matches))
			r.report.Groups[gi].Note = fmt.Sprintf("fewer than %d files left", minSize)
			continue
		}

		folder, ok := r.prepareGroup(gi, rt.Token)
		if !ok {
			continue
		}
		for _, e := range matches {
			r.move(e, folder, rt.Token)
		}
	}
}

// moveByQuery moves every file whose name contains query into folderName.
// One match is enough.
func (r *run) moveByQuery(entries []FileEntry, query, folderName string) {
	needle := strings.ToLower(query)

	var matches []FileEntry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Name), needle) {
			matches = append(matches, e)
		}
	}

	if len(matches) == 0 {
		r.logger.Info("No files match query", "query", query)
		r.report.NoMatches = true
		return
	}

	gi := r.group(folderName)
	matches = r.filterDangerous(matches, folderName)
	r.report.Groups[gi].Matched = len(matches)
	if len(matches) == 0 {
		r.report.Groups[gi].Note = "only dangerous files matched"
		return
	}

	folder, ok := r.prepareGroup(gi, folderName)
	if !ok {
		return
	}
	for _, e := range matches {
		r.move(e, folder, folderName)
	}
}

// filterDangerous drops denylisted files when name mode honors the denylist.
// Each dropped file is reported once per run.
func (r *run) filterDangerous(matches []FileEntry, group string) []FileEntry {
	if !r.o.opts.NameModeDenylist {
		return matches
	}

	safe := matches[:0]
	for _, e := range matches {
		if !r.o.tables.Dangerous.Has(e.Ext) {
			safe = append(safe, e)
			continue
		}
		if _, seen := r.rejected[e.Name]; seen {
			continue
		}
		r.rejected[e.Name] = struct{}{}
		r.skip(e, &MoveError{Path: e.Path, Group: group, Reason: SkipDangerous})
	}
	return safe
}

// prepareGroup creates the folder for a name group. A failure is recorded
// against the group and does not count any file as skipped.
func (r *run) prepareGroup(gi int, name string) (string, bool) {
	folder, created, err := r.ensureFolder(name)
	if err != nil {
		issue := CategorizeError(folder, SkipFolderCreateFailed, err)
		issue.Dest = folder
		issue.Group = name
		r.report.Issues = append(r.report.Issues, issue)
		r.report.Groups[gi].Failed = true
		r.report.Groups[gi].Note = issue.Cause.String()
		r.logger.Warn("Failed to create folder", "folder", name, "error", err)
		return "", false
	}
	r.report.Groups[gi].Created = created
	return folder, true
}

// ============================================================================
// Type mode
// ============================================================================

// classify moves each file into the folder of its extension category
func (r *run) classify(entries []FileEntry) {
	t := r.o.tables

	for _, e := range entries {
		if t.Dangerous.Has(e.Ext) {
			r.skip(e, &MoveError{Path: e.Path, Reason: SkipDangerous})
			continue
		}

		category := t.Categories.CategoryFor(e.Ext)
		gi := r.group(category)
		r.report.Groups[gi].Matched++

		folder, created, err := r.ensureFolder(category)
		if err != nil {
			issue := CategorizeError(e.Path, SkipFolderCreateFailed, err)
			issue.Dest = folder
			issue.Group = category
			r.report.Groups[gi].Failed = true
			r.skip(e, issue)
			continue
		}
		if created {
			r.report.Groups[gi].Created = true
		}
		r.move(e, folder, category)
	}
}

// ============================================================================
// Shared helpers
// ============================================================================

// group returns the index of the named group, adding it on first use
func (r *run) group(name string) int {
	if gi, ok := r.groups[name]; ok {
		return gi
	}
	r.report.Groups = append(r.report.Groups, GroupResult{Name: name})
	gi := len(r.report.Groups) - 1
	r.groups[name] = gi
	r.tracker.Group(name)
	return gi
}

// ensureFolder makes <dir>/<name> exist as a directory. created is true only
// for the call that created (or, in a dry run, planned) it.
func (r *run) ensureFolder(name string) (path string, created bool, err error) {
	path = filepath.Join(r.dir, name)
	if st, ok := r.folders[path]; ok {
		return path, false, st.err
	}

	st := &folderState{}
	st.created, st.err = r.makeFolder(name, path)
	r.folders[path] = st
	return path, st.created, st.err
}

func (r *run) makeFolder(name, path string) (bool, error) {
	if !validFolderName(name) {
		return false, fmt.Errorf("%w: %q", ErrInvalidFolderName, name)
	}

	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return false, fmt.Errorf("%s: %w", path, errPathOccupied)
		}
		return false, nil
	case !os.IsNotExist(err):
		return false, err
	}

	if r.dryRun() {
		r.logger.Debug("Would create folder", "folder", name)
		return true, nil
	}
	if err := os.Mkdir(path, 0o755); err != nil {
		return false, err
	}
	r.logger.Debug("Created folder", "folder", name)
	return true, nil
}

// move relocates e into folder without ever replacing an existing file
func (r *run) move(e FileEntry, folder, group string) bool {
	dest := filepath.Join(folder, e.Name)

	if r.destinationTaken(dest) {
		r.skip(e, &MoveError{Path: e.Path, Dest: dest, Group: group, Reason: SkipConflict})
		return false
	}

	if r.dryRun() {
		r.claimed[e.Name] = struct{}{}
		r.planned[dest] = struct{}{}
	} else if err := os.Rename(e.Path, dest); err != nil {
		issue := CategorizeError(e.Path, SkipMoveFailed, err)
		issue.Dest = dest
		issue.Group = group
		r.skip(e, issue)
		return false
	}

	r.report.Moved++
	r.report.Moves = append(r.report.Moves, Move{From: e.Path, To: dest, Group: group})
	if gi, ok := r.groups[group]; ok {
		r.report.Groups[gi].Moved++
	}
	r.tracker.Moved(e.Name)
	r.logger.Debug("Moved file", "file", e.Name, "group", group)
	return true
}

func (r *run) destinationTaken(dest string) bool {
	if _, ok := r.planned[dest]; ok {
		return true
	}
	_, err := os.Lstat(dest)
	return err == nil
}

func (r *run) skip(e FileEntry, issue *MoveError) {
	r.report.Skipped++
	r.report.SkippedNames = append(r.report.SkippedNames, e.Name)
	r.tracker.Skipped(e.Name)
	r.report.Issues = append(r.report.Issues, issue)
	if issue.Group != "" {
		if gi, ok := r.groups[issue.Group]; ok {
			r.report.Groups[gi].Skipped++
		}
	}

	switch issue.Reason {
	case SkipDangerous, SkipConflict:
		r.logger.Info("Skipped file", "file", e.Name, "reason", issue.Reason.String())
	default:
		r.logger.Warn("Skipped file", "file", e.Name, "reason", issue.Reason.String(), "error", issue.Original)
	}
}

// SanitizeFolderName turns a search string into a folder name by replacing
// path separators with underscores
func SanitizeFolderName(query string) string {
	return strings.NewReplacer("/", "_", `\`, "_").Replace(query)
}

func validFolderName(name string) bool {
	if strings.Trim(name, ".") == "" {
		return false
	}
	return !strings.ContainsAny(name, "/\\\x00")
}
