package components

import (
	"strings"
	"testing"

	"github.com/fenilsonani/tidyfiles/internal/organizer"
)

func TestListingLines(t *testing.T) {
	listing := &organizer.Listing{
		Directory: "/data",
		Groups: []organizer.ListingGroup{
			{
				Category: "Images",
				Files: []organizer.FileEntry{
					{Name: "a.jpg", Size: 10},
					{Name: "b.png", Size: 20},
				},
				Size: 30,
			},
		},
		Total:     2,
		TotalSize: 30,
	}

	out := strings.Join(ListingLines(listing, 80), "\n")

	for _, want := range []string{"Images (2 files, 30 B)", "├── a.jpg", "╰── b.png", "Total: 2 files | 30 B"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
}

func TestListingLinesEmpty(t *testing.T) {
	lines := ListingLines(&organizer.Listing{Directory: "/empty"}, 0)
	if len(lines) != 1 || !strings.Contains(lines[0], "No files") {
		t.Errorf("unexpected lines for empty listing: %v", lines)
	}
}
