// Package organizer sorts the files of a single directory into sub-folders,
// either by extension category or by a name token shared between files.
package organizer

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fenilsonani/tidyfiles/internal/logging"
	"github.com/fenilsonani/tidyfiles/internal/platform"
	"github.com/fenilsonani/tidyfiles/internal/progress"
	"github.com/fenilsonani/tidyfiles/internal/security"
	"github.com/fenilsonani/tidyfiles/internal/tables"
)

// Options configures an Organizer
type Options struct {
	Rank   RankOptions
	DryRun bool

	// NameModeDenylist skips dangerous extensions in name mode too
	NameModeDenylist bool

	// ProtectedPaths are refused in addition to the platform's system directories
	ProtectedPaths []string
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{Rank: DefaultRankOptions()}
}

// DirectoryValidator resolves user input to a directory that may be organized
type DirectoryValidator interface {
	ValidateDirectory(input string) (string, error)
}

// Organizer runs organize operations against immutable tables
type Organizer struct {
	tables    *tables.Tables
	opts      Options
	validator DirectoryValidator
	tracker   *progress.Tracker
	logger    *slog.Logger
}

// New creates an Organizer. A nil tables value uses the built-in tables and a
// nil logger discards output.
func New(t *tables.Tables, opts Options, logger *slog.Logger) *Organizer {
	if t == nil {
		t = tables.Defaults()
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	opts.Rank = opts.Rank.withDefaults()

	return &Organizer{
		tables:    t,
		opts:      opts,
		validator: security.NewPathValidator(opts.ProtectedPaths...),
		logger:    logger,
	}
}

// WithValidator replaces the directory validator
func (o *Organizer) WithValidator(v DirectoryValidator) *Organizer {
	o.validator = v
	return o
}

// WithProgress reports each run to t. Runs must not overlap while a tracker
// is set.
func (o *Organizer) WithProgress(t *progress.Tracker) *Organizer {
	o.tracker = t
	return o
}

// Options returns the effective options
func (o *Organizer) Options() Options {
	return o.opts
}

// Tables returns the tables the organizer runs on
func (o *Organizer) Tables() *tables.Tables {
	return o.tables
}

// ResolveDirectory expands "~", makes input absolute and validates it.
// Empty input means the current directory.
func (o *Organizer) ResolveDirectory(input string) (string, error) {
	expanded, err := platform.ExpandHome(strings.TrimSpace(input))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDirectoryInvalid, err)
	}

	dir, err := o.validator.ValidateDirectory(expanded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDirectoryInvalid, err)
	}
	return dir, nil
}

// OrganizeByType moves every regular file in dir into a folder named after its
// extension category. Dangerous extensions are never moved.
func (o *Organizer) OrganizeByType(dir string) (*Report, error) {
	r, err := o.begin(ModeByType, dir, "")
	if err != nil {
		return nil, err
	}

	entries, err := r.scan()
	if err != nil {
		return nil, r.fail(fmt.Errorf("%w: %v", ErrDirectoryInvalid, err))
	}
	r.tracker.Scanned(len(entries))
	r.classify(entries)

	return r.finish(), nil
}

// OrganizeByName groups files by name. With an empty query the group names are
// detected from the filenames; otherwise every file whose name contains query
// (case-insensitive) is moved into a folder named after it. Any non-empty
// query is taken literally, whitespace included.
func (o *Organizer) OrganizeByName(dir, query string) (*Report, error) {
	var folderName string
	if query != "" {
		folderName = SanitizeFolderName(query)
		if !validFolderName(folderName) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFolderName, query)
		}
	}

	r, err := o.begin(ModeByName, dir, query)
	if err != nil {
		return nil, err
	}

	entries, err := r.scan()
	if err != nil {
		return nil, r.fail(fmt.Errorf("%w: %v", ErrDirectoryInvalid, err))
	}
	r.tracker.Scanned(len(entries))

	if query != "" {
		r.moveByQuery(entries, query, folderName)
	} else {
		ranked := Rank(entries, o.tables.StopWords, o.opts.Rank)
		r.report.Tokens = ranked
		r.logger.Info("Detected name tokens", "count", len(ranked))
		r.materialize(ranked)
	}

	return r.finish(), nil
}

// List groups the files of dir by display category
func (o *Organizer) List(dir string) (*Listing, error) {
	resolved, err := o.ResolveDirectory(dir)
	if err != nil {
		return nil, err
	}
	return BuildListing(resolved, o.tables)
}

func (o *Organizer) begin(mode Mode, dir, query string) (*run, error) {
	resolved, err := o.ResolveDirectory(dir)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:     uuid.NewString(),
		Mode:      mode,
		Directory: resolved,
		Query:     query,
		DryRun:    o.opts.DryRun,
		StartedAt: time.Now(),
	}

	logger := o.logger.With("run_id", report.RunID, "mode", string(mode))
	logger.Info("Organizing directory", "dir", resolved, "dry_run", o.opts.DryRun)

	return newRun(o, report, logger), nil
}
