package organizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fenilsonani/tidyfiles/internal/tables"
)

func TestExtractTokens(t *testing.T) {
	stop := tables.NewStringSet("official", "video", "2025")

	tests := []struct {
		name string
		stem string
		want []string
	}{
		{"runs and whole stem", "trip_photo1", []string{"trip", "photo1", "trip_photo1"}},
		{"stop words dropped", "Official_Video_Trip", []string{"trip", "official_video_trip"}},
		{"lowercased", "HOLIDAY", []string{"holiday"}},
		{"short stem", "abc", nil},
		{"short runs, long stem", "a-b-c-d-e", []string{"a-b-c-d-e"}},
		{"run resets at boundary", "ab_cdef", []string{"cdef", "ab_cdef"}},
		{"digits count", "IMG_20240101", []string{"20240101", "img_20240101"}},
		{"stop word as whole stem", "2025", nil},
		{"non-ascii is a boundary", "Café2024", []string{"2024", "café2024"}},
		{"empty", "", nil},
		{"duplicates kept once", "beach-beach", []string{"beach", "beach-beach"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractTokens(tt.stem, stop, DefaultMinTokenLength)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractTokens_MinLength(t *testing.T) {
	got := ExtractTokens("ab_cd", tables.StringSet{}, 2)
	assert.Equal(t, []string{"ab", "cd", "ab_cd"}, got)

	got = ExtractTokens("ab_cd", tables.StringSet{}, 6)
	assert.Empty(t, got)
}

func TestTokenOccurrences_KeepsRepeats(t *testing.T) {
	got := tokenOccurrences("beach", tables.StringSet{}, DefaultMinTokenLength)
	assert.Equal(t, []string{"beach", "beach"}, got)

	got = tokenOccurrences("beach-beach", tables.StringSet{}, DefaultMinTokenLength)
	assert.Equal(t, []string{"beach", "beach", "beach-beach"}, got)
}

func TestAsciiLower(t *testing.T) {
	assert.Equal(t, "abc123", asciiLower("ABC123"))
	assert.Equal(t, "already", asciiLower("already"))
	assert.Equal(t, "Ünï", asciiLower("Ünï"), "non-ASCII letters are left alone")
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		name     string
		wantStem string
		wantExt  string
	}{
		{"photo.JPG", "photo", ".jpg"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{".bashrc", ".bashrc", ""},
		{"README", "README", ""},
		{"trailing.", "trailing", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stem, ext := SplitName(tt.name)
			assert.Equal(t, tt.wantStem, stem)
			assert.Equal(t, tt.wantExt, ext)
		})
	}
}
