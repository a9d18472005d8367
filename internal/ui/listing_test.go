package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fenilsonani/tidyfiles/internal/organizer"
)

func TestPrintListing(t *testing.T) {
	var buf bytes.Buffer
	PrintListing(&buf, &organizer.Listing{Directory: "/empty"})

	if !strings.Contains(buf.String(), "/empty") {
		t.Errorf("expected directory header:\n%s", buf.String())
	}
}
