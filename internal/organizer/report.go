package organizer

import (
	"encoding/json"
	"time"
)

// Mode identifies the organizing strategy of a run
type Mode string

const (
	ModeByType Mode = "type"
	ModeByName Mode = "name"
)

// Move is one planned or completed relocation
type Move struct {
	From  string `json:"from" yaml:"from"`
	To    string `json:"to" yaml:"to"`
	Group string `json:"group" yaml:"group"`
}

// GroupResult describes one destination folder
type GroupResult struct {
	Name    string `json:"name" yaml:"name"`
	Count   int    `json:"count,omitempty" yaml:"count,omitempty"` // token frequency, name detection only
	Matched int    `json:"matched" yaml:"matched"`
	Moved   int    `json:"moved" yaml:"moved"`
	Skipped int    `json:"skipped" yaml:"skipped"`
	Created bool   `json:"created" yaml:"created"`
	Failed  bool   `json:"failed,omitempty" yaml:"failed,omitempty"`
	Note    string `json:"note,omitempty" yaml:"note,omitempty"`
}

// Report is the outcome of one organize operation
type Report struct {
	RunID     string        `json:"run_id" yaml:"run_id"`
	Mode      Mode          `json:"mode" yaml:"mode"`
	Directory string        `json:"directory" yaml:"directory"`
	Query     string        `json:"query,omitempty" yaml:"query,omitempty"`
	DryRun    bool          `json:"dry_run" yaml:"dry_run"`
	StartedAt time.Time     `json:"started_at" yaml:"started_at"`
	Duration  time.Duration `json:"duration" yaml:"duration"`

	Tokens []RankedToken `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	Groups []GroupResult `json:"groups" yaml:"groups"`
	Moves  []Move        `json:"moves" yaml:"moves"`
	Issues []*MoveError  `json:"issues,omitempty" yaml:"issues,omitempty"`

	Moved        int      `json:"moved" yaml:"moved"`
	Skipped      int      `json:"skipped" yaml:"skipped"`
	SkippedNames []string `json:"skipped_names,omitempty" yaml:"skipped_names,omitempty"`
	NoMatches    bool     `json:"no_matches,omitempty" yaml:"no_matches,omitempty"`
}

// HasIssues reports whether anything was skipped or any folder failed
func (r *Report) HasIssues() bool {
	return len(r.Issues) > 0
}

// FailedGroups returns the groups whose folder could not be created
func (r *Report) FailedGroups() []GroupResult {
	var failed []GroupResult
	for _, g := range r.Groups {
		if g.Failed {
			failed = append(failed, g)
		}
	}
	return failed
}

type moveErrorView struct {
	Path   string `json:"path" yaml:"path"`
	Dest   string `json:"dest,omitempty" yaml:"dest,omitempty"`
	Group  string `json:"group,omitempty" yaml:"group,omitempty"`
	Reason string `json:"reason" yaml:"reason"`
	Cause  string `json:"cause,omitempty" yaml:"cause,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

func (e *MoveError) view() moveErrorView {
	v := moveErrorView{
		Path:   e.Path,
		Dest:   e.Dest,
		Group:  e.Group,
		Reason: e.Reason.String(),
		Cause:  e.Cause.String(),
	}
	if e.Original != nil {
		v.Error = e.Original.Error()
	}
	return v
}

// MarshalJSON encodes the error as a flat object
func (e *MoveError) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.view())
}

// MarshalYAML encodes the error as a flat mapping
func (e *MoveError) MarshalYAML() (interface{}, error) {
	return e.view(), nil
}
