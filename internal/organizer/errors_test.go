package organizer

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"
	"testing"
)

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		cause FailureCause
	}{
		{
			name:  "EACCES - permission denied",
			err:   syscall.EACCES,
			cause: CausePermissionDenied,
		},
		{
			name:  "EPERM - operation not permitted",
			err:   syscall.EPERM,
			cause: CausePermissionDenied,
		},
		{
			name:  "EXDEV - cross device",
			err:   &os.LinkError{Op: "rename", Old: "/a/x", New: "/b/x", Err: syscall.EXDEV},
			cause: CauseCrossDevice,
		},
		{
			name:  "ENOENT - file not found",
			err:   syscall.ENOENT,
			cause: CauseNotFound,
		},
		{
			name:  "EBUSY - resource busy",
			err:   syscall.EBUSY,
			cause: CauseFileInUse,
		},
		{
			name:  "ENOTDIR - not a directory",
			err:   &os.PathError{Op: "mkdir", Path: "/x/trip", Err: syscall.ENOTDIR},
			cause: CauseNotDirectory,
		},
		{
			name:  "occupied folder path",
			err:   fmt.Errorf("/x/trip: %w", errPathOccupied),
			cause: CauseNotDirectory,
		},
		{
			name:  "wrapped EACCES",
			err:   fmt.Errorf("failed to move: %w", syscall.EACCES),
			cause: CausePermissionDenied,
		},
		{
			name:  "os.ErrNotExist",
			err:   os.ErrNotExist,
			cause: CauseNotFound,
		},
		{
			name:  "generic error",
			err:   errors.New("something went wrong"),
			cause: CauseUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CategorizeError("/x/file.txt", SkipMoveFailed, tt.err)
			if got == nil {
				t.Fatal("expected MoveError, got nil")
			}
			if got.Cause != tt.cause {
				t.Errorf("cause = %v, want %v", got.Cause, tt.cause)
			}
			if got.Reason != SkipMoveFailed {
				t.Errorf("reason = %v, want %v", got.Reason, SkipMoveFailed)
			}
			if !errors.Is(got, tt.err) {
				t.Error("MoveError should unwrap to the original error")
			}
		})
	}
}

func TestCategorizeError_Nil(t *testing.T) {
	if got := CategorizeError("/x", SkipMoveFailed, nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestSkipReasonString(t *testing.T) {
	tests := []struct {
		reason SkipReason
		want   string
	}{
		{SkipDangerous, "Dangerous extension"},
		{SkipConflict, "Destination exists"},
		{SkipMoveFailed, "Move failed"},
		{SkipFolderCreateFailed, "Folder create failed"},
		{SkipReason(99), "Unspecified reason"},
	}

	for _, tt := range tests {
		if got := tt.reason.String(); got != tt.want {
			t.Errorf("SkipReason(%d).String() = %q, want %q", tt.reason, got, tt.want)
		}
	}
}

func TestMoveErrorUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *MoveError
		want string
	}{
		{
			name: "dangerous",
			err:  &MoveError{Path: "/d/setup.exe", Reason: SkipDangerous},
			want: "dangerous file: /d/setup.exe",
		},
		{
			name: "conflict",
			err:  &MoveError{Path: "/d/a.txt", Dest: "/d/Documents/a.txt", Reason: SkipConflict},
			want: "Already exists in destination: /d/Documents/a.txt",
		},
		{
			name: "occupied folder",
			err:  &MoveError{Path: "/d/trip", Dest: "/d/trip", Reason: SkipFolderCreateFailed, Cause: CauseNotDirectory},
			want: "a file with that name exists",
		},
		{
			name: "permission denied",
			err:  &MoveError{Path: "/d/a.txt", Reason: SkipMoveFailed, Cause: CausePermissionDenied},
			want: "Permission denied: /d/a.txt",
		},
		{
			name: "unknown move failure",
			err:  &MoveError{Path: "/d/a.txt", Reason: SkipMoveFailed, Cause: CauseUnknown, Original: errors.New("boom")},
			want: "Error moving /d/a.txt: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.UserMessage(); !strings.Contains(got, tt.want) {
				t.Errorf("UserMessage() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestGroupErrors(t *testing.T) {
	issues := []*MoveError{
		{Path: "/a", Reason: SkipDangerous},
		{Path: "/b", Reason: SkipConflict},
		{Path: "/c", Reason: SkipDangerous},
	}

	grouped := GroupErrors(issues)
	if len(grouped[SkipDangerous]) != 2 {
		t.Errorf("expected 2 dangerous, got %d", len(grouped[SkipDangerous]))
	}
	if len(grouped[SkipConflict]) != 1 {
		t.Errorf("expected 1 conflict, got %d", len(grouped[SkipConflict]))
	}
}

func TestFormatSkipSummary(t *testing.T) {
	if got := FormatSkipSummary(nil); got != "" {
		t.Errorf("expected empty summary, got %q", got)
	}

	summary := FormatSkipSummary([]*MoveError{
		{Path: "/a", Reason: SkipConflict},
		{Path: "/b", Reason: SkipDangerous},
		{Path: "/c", Reason: SkipDangerous},
		{Path: "/d", Reason: SkipMoveFailed, Cause: CausePermissionDenied},
	})

	for _, want := range []string{
		"Issues encountered",
		"Dangerous extension: 2 files",
		"Destination exists: 1 files",
		"└─ Move failed: 1 files",
		"check write permissions",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}

	if strings.Index(summary, "Dangerous") > strings.Index(summary, "Destination exists") {
		t.Error("reasons should be listed in a fixed order")
	}
}
