package utils

import (
	"strings"
	"testing"
)

func TestTruncatePath(t *testing.T) {
	short := "/home/user/file.txt"
	if got := TruncatePath(short, 40); got != short {
		t.Errorf("TruncatePath(%q) = %q", short, got)
	}

	long := "/home/user/very/deeply/nested/directory/structure/file.txt"
	got := TruncatePath(long, 30)
	if len(got) > 30 {
		t.Errorf("TruncatePath result too long: %q (%d)", got, len(got))
	}
	if !strings.HasSuffix(got, "file.txt") {
		t.Errorf("TruncatePath should keep the file name: %q", got)
	}

	if got := TruncatePath(long, 5); got != "..." {
		t.Errorf("expected ellipsis for tiny width, got %q", got)
	}
}

func TestCalculatePageSize(t *testing.T) {
	if got := CalculatePageSize(40); got != 30 {
		t.Errorf("CalculatePageSize(40) = %d, want 30", got)
	}
	if got := CalculatePageSize(8); got != 5 {
		t.Errorf("CalculatePageSize(8) = %d, want minimum 5", got)
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		total, offset, page int
		start, end          int
	}{
		{total: 3, offset: 0, page: 10, start: 0, end: 3},
		{total: 20, offset: 0, page: 5, start: 0, end: 5},
		{total: 20, offset: 7, page: 5, start: 7, end: 12},
		{total: 20, offset: 30, page: 5, start: 15, end: 20},
		{total: 20, offset: -2, page: 5, start: 0, end: 5},
	}

	for _, tt := range tests {
		start, end := VisibleRange(tt.total, tt.offset, tt.page)
		if start != tt.start || end != tt.end {
			t.Errorf("VisibleRange(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.total, tt.offset, tt.page, start, end, tt.start, tt.end)
		}
	}
}

func TestGetSizeWarningBanner(t *testing.T) {
	if GetSizeWarningBanner(120, 40) != "" {
		t.Error("expected no banner for a large terminal")
	}
	if !strings.Contains(GetSizeWarningBanner(40, 10), "Terminal too small") {
		t.Error("expected banner for a small terminal")
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("hello world", 8); got != "hello..." {
		t.Errorf("TruncateString = %q", got)
	}
	if got := TruncateString("hi", 8); got != "hi" {
		t.Errorf("TruncateString = %q", got)
	}
}
