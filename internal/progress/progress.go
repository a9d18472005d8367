package progress

import (
	"fmt"
	"sync"
	"time"
)

// Phase represents the current phase of an organize run
type Phase string

const (
	PhaseScanning Phase = "scanning"
	PhaseMoving   Phase = "moving"
	PhaseComplete Phase = "complete"
	PhaseError    Phase = "error"
)

// MoveProgress is a snapshot of an organize run
type MoveProgress struct {
	Phase       Phase
	Group       string
	CurrentFile string
	Total       int
	Moved       int
	Skipped     int
	Groups      int
	DryRun      bool
	StartTime   time.Time
	Error       error
}

// Tracker provides thread-safe progress reporting. The organizer writes to it
// while a run is in flight and the UI reads snapshots.
type Tracker struct {
	mu        sync.RWMutex
	current   MoveProgress
	listeners []chan MoveProgress
}

// NewTracker creates a new tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// Subscribe returns a channel that receives progress updates
func (t *Tracker) Subscribe() <-chan MoveProgress {
	t.mu.Lock()
	defer t.mu.Unlock()

	ch := make(chan MoveProgress, 10)
	t.listeners = append(t.listeners, ch)
	return ch
}

// Unsubscribe closes and removes a listener channel
func (t *Tracker) Unsubscribe(ch <-chan MoveProgress) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, listener := range t.listeners {
		if listener == ch {
			close(listener)
			t.listeners = append(t.listeners[:i], t.listeners[i+1:]...)
			return
		}
	}
}

// Start resets the tracker for a new run
func (t *Tracker) Start(dryRun bool) {
	t.publish(func(p *MoveProgress) {
		*p = MoveProgress{Phase: PhaseScanning, DryRun: dryRun, StartTime: time.Now()}
	})
}

// Scanned records how many files the run started with
func (t *Tracker) Scanned(total int) {
	t.publish(func(p *MoveProgress) {
		p.Total = total
	})
}

// Handled returns how many scanned files were moved or skipped so far
func (p MoveProgress) Handled() int {
	return p.Moved + p.Skipped
}

// Group records that a new destination folder is being filled
func (t *Tracker) Group(name string) {
	t.publish(func(p *MoveProgress) {
		p.Phase = PhaseMoving
		p.Group = name
		p.Groups++
	})
}

// Moved records one moved (or planned) file
func (t *Tracker) Moved(file string) {
	t.publish(func(p *MoveProgress) {
		p.Phase = PhaseMoving
		p.CurrentFile = file
		p.Moved++
	})
}

// Skipped records one skipped file
func (t *Tracker) Skipped(file string) {
	t.publish(func(p *MoveProgress) {
		p.CurrentFile = file
		p.Skipped++
	})
}

// Finish marks the run complete, or failed when err is non-nil
func (t *Tracker) Finish(err error) {
	t.publish(func(p *MoveProgress) {
		p.Phase = PhaseComplete
		p.CurrentFile = ""
		if err != nil {
			p.Phase = PhaseError
			p.Error = err
		}
	})
}

// Snapshot returns the current progress
func (t *Tracker) Snapshot() MoveProgress {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

// publish applies update and notifies listeners. Sends happen under the lock
// so Unsubscribe never closes a channel mid-send.
func (t *Tracker) publish(update func(*MoveProgress)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	update(&t.current)
	snapshot := t.current

	// Notify all listeners (non-blocking)
	for _, listener := range t.listeners {
		select {
		case listener <- snapshot:
		default:
			// Skip if channel is full
		}
	}
}

// FormatMoveProgress returns a human-readable progress line
func FormatMoveProgress(p MoveProgress) string {
	if p.StartTime.IsZero() {
		return "Preparing..."
	}

	elapsed := time.Since(p.StartTime)
	verb := "Moved"
	if p.DryRun {
		verb = "Planned"
	}

	switch p.Phase {
	case PhaseScanning:
		return fmt.Sprintf("Scanning directory... [%s]", FormatDuration(elapsed))
	case PhaseMoving:
		return fmt.Sprintf("%s %d files into %d folders, %d skipped - %s [%s]",
			verb, p.Moved, p.Groups, p.Skipped, p.Group, FormatDuration(elapsed))
	case PhaseComplete:
		return fmt.Sprintf("Done: %s %d files, %d skipped in %s",
			verb, p.Moved, p.Skipped, FormatDuration(elapsed))
	case PhaseError:
		return fmt.Sprintf("Error: %v", p.Error)
	default:
		return "Preparing..."
	}
}

// FormatDuration formats duration in human-readable format
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)

	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%dm%ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
