package organizer

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"syscall"
)

var (
	// ErrDirectoryInvalid is returned when the target directory is missing,
	// not a directory or protected. Nothing is touched.
	ErrDirectoryInvalid = errors.New("invalid directory")

	// ErrInvalidFolderName is returned when a search string cannot be used as a
	// folder name after sanitizing
	ErrInvalidFolderName = errors.New("invalid folder name")

	errPathOccupied = errors.New("path exists and is not a directory")
)

// SkipReason categorizes why a file or group was not moved
type SkipReason int

const (
	SkipDangerous SkipReason = iota
	SkipConflict
	SkipMoveFailed
	SkipFolderCreateFailed
)

// String returns a human-readable skip reason
func (r SkipReason) String() string {
	switch r {
	case SkipDangerous:
		return "Dangerous extension"
	case SkipConflict:
		return "Destination exists"
	case SkipMoveFailed:
		return "Move failed"
	case SkipFolderCreateFailed:
		return "Folder create failed"
	default:
		return "Unspecified reason"
	}
}

// FailureCause narrows down a filesystem failure
type FailureCause int

const (
	CauseNone FailureCause = iota
	CausePermissionDenied
	CauseCrossDevice
	CauseNotFound
	CauseFileInUse
	CauseNotDirectory
	CauseUnknown
)

// String returns a human-readable failure cause
func (c FailureCause) String() string {
	switch c {
	case CauseNone:
		return ""
	case CausePermissionDenied:
		return "Permission denied"
	case CauseCrossDevice:
		return "Cross-device move"
	case CauseNotFound:
		return "File not found"
	case CauseFileInUse:
		return "File is in use"
	case CauseNotDirectory:
		return "Not a directory"
	default:
		return "Unknown error"
	}
}

// MoveError records one skipped file, or one group whose folder could not be created
type MoveError struct {
	Path     string // source file, or the folder for group-level failures
	Dest     string // destination file, or the folder that could not be created
	Group    string
	Reason   SkipReason
	Cause    FailureCause
	Original error
}

// Error implements the error interface
func (e *MoveError) Error() string {
	if e.Original == nil {
		return fmt.Sprintf("%s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("%s: %s (%v)", e.Path, e.Reason, e.Original)
}

// Unwrap returns the underlying filesystem error
func (e *MoveError) Unwrap() error {
	return e.Original
}

// UserMessage returns a user-friendly message
func (e *MoveError) UserMessage() string {
	switch e.Reason {
	case SkipDangerous:
		return fmt.Sprintf("⚠️  Skipped potentially dangerous file: %s", e.Path)
	case SkipConflict:
		return fmt.Sprintf("ℹ️  Already exists in destination: %s", e.Dest)
	case SkipFolderCreateFailed:
		if e.Cause == CauseNotDirectory {
			return fmt.Sprintf("❌ Cannot create folder %s: a file with that name exists", e.Dest)
		}
		return fmt.Sprintf("❌ Cannot create folder %s: %v", e.Dest, e.Original)
	case SkipMoveFailed:
		switch e.Cause {
		case CausePermissionDenied:
			return fmt.Sprintf("⚠️  Permission denied: %s", e.Path)
		case CauseCrossDevice:
			return fmt.Sprintf("⚠️  Cannot move across devices: %s", e.Path)
		case CauseNotFound:
			return fmt.Sprintf("ℹ️  File disappeared before it could be moved: %s", e.Path)
		case CauseFileInUse:
			return fmt.Sprintf("⚠️  File is being used: %s (close the application and try again)", e.Path)
		}
	}
	return fmt.Sprintf("❌ Error moving %s: %v", e.Path, e.Original)
}

// CategorizeError builds a MoveError whose Cause is derived from err
func CategorizeError(path string, reason SkipReason, err error) *MoveError {
	if err == nil {
		return nil
	}

	moveErr := &MoveError{
		Path:     path,
		Reason:   reason,
		Original: err,
		Cause:    causeOf(err),
	}
	return moveErr
}

func causeOf(err error) FailureCause {
	if errors.Is(err, errPathOccupied) {
		return CauseNotDirectory
	}
	if os.IsNotExist(err) {
		return CauseNotFound
	}
	if os.IsPermission(err) {
		return CausePermissionDenied
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.EACCES, syscall.EPERM:
			return CausePermissionDenied
		case syscall.EXDEV:
			return CauseCrossDevice
		case syscall.EBUSY, syscall.ETXTBSY:
			return CauseFileInUse
		case syscall.ENOENT:
			return CauseNotFound
		case syscall.ENOTDIR, syscall.EEXIST:
			return CauseNotDirectory
		}
	}
	return CauseUnknown
}

// GroupErrors groups issues by skip reason
func GroupErrors(issues []*MoveError) map[SkipReason][]*MoveError {
	grouped := make(map[SkipReason][]*MoveError)
	for _, issue := range issues {
		grouped[issue.Reason] = append(grouped[issue.Reason], issue)
	}
	return grouped
}

// FormatSkipSummary creates a user-friendly summary of issues grouped by reason
func FormatSkipSummary(issues []*MoveError) string {
	if len(issues) == 0 {
		return ""
	}

	grouped := GroupErrors(issues)
	reasons := make([]SkipReason, 0, len(grouped))
	for reason := range grouped {
		reasons = append(reasons, reason)
	}
	sort.Slice(reasons, func(i, j int) bool { return reasons[i] < reasons[j] })

	var b strings.Builder
	b.WriteString("\n⚠️  Issues encountered:\n")

	for i, reason := range reasons {
		branch, stem := "├─", "│"
		if i == len(reasons)-1 {
			branch, stem = "└─", " "
		}

		items := grouped[reason]
		noun := "files"
		if reason == SkipFolderCreateFailed {
			noun = "items"
		}
		fmt.Fprintf(&b, "   %s %s: %d %s\n", branch, reason, len(items), noun)

		switch reason {
		case SkipDangerous:
			fmt.Fprintf(&b, "   %s  └─ Tip: executables and scripts are never sorted by type\n", stem)
		case SkipConflict:
			fmt.Fprintf(&b, "   %s  └─ Tip: rename or remove the existing copy and run again\n", stem)
		case SkipMoveFailed:
			if countCause(items, CausePermissionDenied) > 0 {
				fmt.Fprintf(&b, "   %s  └─ Tip: check write permissions on the directory\n", stem)
			}
		case SkipFolderCreateFailed:
			if countCause(items, CauseNotDirectory) > 0 {
				fmt.Fprintf(&b, "   %s  └─ Tip: a file is in the way of the folder name\n", stem)
			}
		}
	}

	return b.String()
}

func countCause(issues []*MoveError, cause FailureCause) int {
	n := 0
	for _, issue := range issues {
		if issue.Cause == cause {
			n++
		}
	}
	return n
}
