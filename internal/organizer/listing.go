package organizer

import (
	"github.com/fenilsonani/tidyfiles/internal/tables"
)

// DisplayOrder is the order categories are listed in. Any other category is
// shown under Other.
var DisplayOrder = []string{"Images", "Videos", "Audio", "Documents", "Archives", "Code", tables.OtherCategory}

// ListingGroup is the files of one display category
type ListingGroup struct {
	Category string      `json:"category" yaml:"category"`
	Files    []FileEntry `json:"files" yaml:"files"`
	Size     int64       `json:"size" yaml:"size"`
}

// Listing is a read-only view of a directory grouped by category
type Listing struct {
	Directory string         `json:"directory" yaml:"directory"`
	Groups    []ListingGroup `json:"groups" yaml:"groups"`
	Total     int            `json:"total" yaml:"total"`
	TotalSize int64          `json:"total_size" yaml:"total_size"`
}

// BuildListing scans dir and groups its regular files by display category.
// Empty categories are left out.
func BuildListing(dir string, t *tables.Tables) (*Listing, error) {
	if t == nil {
		t = tables.Defaults()
	}

	entries, err := ScanDir(dir)
	if err != nil {
		return nil, err
	}

	shown := make(map[string]bool, len(DisplayOrder))
	for _, name := range DisplayOrder {
		shown[name] = true
	}

	buckets := make(map[string]*ListingGroup, len(DisplayOrder))
	for _, e := range entries {
		category := t.Categories.CategoryFor(e.Ext)
		if !shown[category] {
			category = tables.OtherCategory
		}

		g, ok := buckets[category]
		if !ok {
			g = &ListingGroup{Category: category}
			buckets[category] = g
		}
		g.Files = append(g.Files, e)
		g.Size += e.Size
	}

	listing := &Listing{Directory: dir, Total: len(entries)}
	for _, name := range DisplayOrder {
		if g, ok := buckets[name]; ok {
			listing.Groups = append(listing.Groups, *g)
			listing.TotalSize += g.Size
		}
	}
	return listing, nil
}
