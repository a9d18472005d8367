package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/fenilsonani/tidyfiles/internal/organizer"
	"github.com/fenilsonani/tidyfiles/internal/ui/components"
	"github.com/fenilsonani/tidyfiles/internal/ui/styles"
)

const defaultWidth = 80

// TerminalWidth returns the width of stdout, or 80 when it is not a terminal
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// PrintListing writes a listing sized to the terminal
func PrintListing(w io.Writer, listing *organizer.Listing) {
	fmt.Fprintln(w, styles.TitleStyle.Render("📂 "+listing.Directory))
	for _, line := range components.ListingLines(listing, TerminalWidth()) {
		fmt.Fprintln(w, line)
	}
}
