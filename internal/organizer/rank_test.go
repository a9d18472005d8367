package organizer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fenilsonani/tidyfiles/internal/tables"
)

func entriesFor(names ...string) []FileEntry {
	entries := make([]FileEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, NewFileEntry("/photos", name, 0))
	}
	return entries
}

func TestRank_Threshold(t *testing.T) {
	entries := entriesFor("trip_photo1.jpg", "trip_photo2.jpg", "invoice.pdf")

	ranked := Rank(entries, tables.StringSet{}, DefaultRankOptions())

	require.Len(t, ranked, 1)
	assert.Equal(t, RankedToken{Token: "trip", Count: 2}, ranked[0])
}

func TestRank_OrderByCountThenFirstSeen(t *testing.T) {
	entries := entriesFor(
		"alpha_beach.jpg",
		"alpha_cabin.jpg",
		"beach_cabin.jpg",
		"beach_dunes.jpg",
	)

	ranked := Rank(entries, tables.StringSet{}, DefaultRankOptions())

	assert.Equal(t, []RankedToken{
		{Token: "beach", Count: 3},
		{Token: "alpha", Count: 2},
		{Token: "cabin", Count: 2},
	}, ranked)
}

func TestRank_StopWordsExcluded(t *testing.T) {
	entries := entriesFor("live_concert.mp3", "live_session.mp3")

	ranked := Rank(entries, tables.NewStringSet("live"), DefaultRankOptions())
	assert.Empty(t, ranked)
}

func TestRank_CountPolicy(t *testing.T) {
	entries := entriesFor("beach.jpg", "sunset.jpg")

	perFile := Rank(entries, tables.StringSet{}, DefaultRankOptions())
	assert.Empty(t, perFile, "a single file never reaches the threshold per file")

	opts := DefaultRankOptions()
	opts.Policy = PerOccurrence
	perOccurrence := Rank(entries, tables.StringSet{}, opts)
	assert.Equal(t, []RankedToken{
		{Token: "beach", Count: 2},
		{Token: "sunset", Count: 2},
	}, perOccurrence)
}

func TestRank_CappedAtMaxGroups(t *testing.T) {
	var names []string
	for i := 0; i < 12; i++ {
		tok := fmt.Sprintf("group%02d", i)
		names = append(names, tok+"_a.txt", tok+"_b.txt")
	}

	ranked := Rank(entriesFor(names...), tables.StringSet{}, DefaultRankOptions())

	require.Len(t, ranked, DefaultMaxGroups)
	assert.Equal(t, "group00", ranked[0].Token)
	assert.Equal(t, "group09", ranked[9].Token)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil, tables.StringSet{}, DefaultRankOptions()))
}

func TestParseCountPolicy(t *testing.T) {
	p, err := ParseCountPolicy("")
	require.NoError(t, err)
	assert.Equal(t, PerFile, p)

	p, err = ParseCountPolicy("per_occurrence")
	require.NoError(t, err)
	assert.Equal(t, PerOccurrence, p)

	_, err = ParseCountPolicy("sometimes")
	assert.Error(t, err)
}
