package components

import (
	"fmt"
	"strings"

	"github.com/fenilsonani/tidyfiles/internal/organizer"
	"github.com/fenilsonani/tidyfiles/internal/ui/styles"
	uiutils "github.com/fenilsonani/tidyfiles/internal/ui/utils"
	"github.com/fenilsonani/tidyfiles/pkg/utils"
)

// ListingLines renders a listing as a colored tree, one category per block
func ListingLines(listing *organizer.Listing, width int) []string {
	if width <= 0 {
		width = 80
	}

	var lines []string
	if len(listing.Groups) == 0 {
		return append(lines, styles.DimStyle.Render("No files in this directory."))
	}

	for _, g := range listing.Groups {
		header := fmt.Sprintf("╭─ %s (%s, %s)", g.Category, utils.Files(len(g.Files)), utils.FormatBytes(g.Size))
		lines = append(lines, styles.CategoryStyle(g.Category).Render(header))

		for i, f := range g.Files {
			connector := "├──"
			if i == len(g.Files)-1 {
				connector = "╰──"
			}
			size := " (" + utils.FormatBytes(f.Size) + ")"
			name := uiutils.TruncateString(f.Name, width-len(size)-5)
			lines = append(lines, fmt.Sprintf("%s %s%s", connector, name, styles.DimStyle.Render(size)))
		}
		lines = append(lines, "")
	}

	lines = append(lines, strings.Repeat("═", min(width, 56)))
	lines = append(lines, styles.BoldStyle.Render(fmt.Sprintf("Total: %s | %s",
		utils.Files(listing.Total), utils.FormatBytes(listing.TotalSize))))
	return lines
}
