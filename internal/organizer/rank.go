package organizer

import (
	"fmt"
	"sort"

	"github.com/fenilsonani/tidyfiles/internal/tables"
)

const (
	DefaultMinGroupSize = 2
	DefaultMaxGroups    = 10
)

// CountPolicy controls how token frequencies are counted
type CountPolicy string

const (
	// PerFile counts each distinct token at most once per filename
	PerFile CountPolicy = "per_file"
	// PerOccurrence counts every emitted occurrence, including a whole stem
	// that repeats one of its own runs
	PerOccurrence CountPolicy = "per_occurrence"
)

// ParseCountPolicy validates a policy name. Empty means PerFile.
func ParseCountPolicy(s string) (CountPolicy, error) {
	switch p := CountPolicy(s); p {
	case "":
		return PerFile, nil
	case PerFile, PerOccurrence:
		return p, nil
	default:
		return "", fmt.Errorf("unknown token count policy %q (want %s or %s)", s, PerFile, PerOccurrence)
	}
}

// RankOptions tunes token detection
type RankOptions struct {
	MinTokenLength int
	MinGroupSize   int
	MaxGroups      int
	Policy         CountPolicy
}

// DefaultRankOptions returns the default detection settings
func DefaultRankOptions() RankOptions {
	return RankOptions{
		MinTokenLength: DefaultMinTokenLength,
		MinGroupSize:   DefaultMinGroupSize,
		MaxGroups:      DefaultMaxGroups,
		Policy:         PerFile,
	}
}

func (o RankOptions) withDefaults() RankOptions {
	d := DefaultRankOptions()
	if o.MinTokenLength < 1 {
		o.MinTokenLength = d.MinTokenLength
	}
	if o.MinGroupSize < 1 {
		o.MinGroupSize = d.MinGroupSize
	}
	if o.MaxGroups < 1 {
		o.MaxGroups = d.MaxGroups
	}
	if o.Policy == "" {
		o.Policy = d.Policy
	}
	return o
}

// RankedToken is a candidate group name and how often it was seen
type RankedToken struct {
	Token string `json:"token" yaml:"token"`
	Count int    `json:"count" yaml:"count"`
}

// Rank counts tokens across entries and returns those seen at least
// MinGroupSize times, most frequent first. Ties keep first-seen order.
// At most MaxGroups tokens are returned.
func Rank(entries []FileEntry, stopWords tables.StringSet, opts RankOptions) []RankedToken {
	opts = opts.withDefaults()

	counts := make(map[string]int)
	var order []string

	for _, entry := range entries {
		var toks []string
		if opts.Policy == PerOccurrence {
			toks = tokenOccurrences(entry.Stem, stopWords, opts.MinTokenLength)
		} else {
			toks = ExtractTokens(entry.Stem, stopWords, opts.MinTokenLength)
		}

		for _, tok := range toks {
			if _, ok := counts[tok]; !ok {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}

	ranked := make([]RankedToken, 0, len(order))
	for _, tok := range order {
		if counts[tok] >= opts.MinGroupSize {
			ranked = append(ranked, RankedToken{Token: tok, Count: counts[tok]})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > opts.MaxGroups {
		ranked = ranked[:opts.MaxGroups]
	}
	return ranked
}
