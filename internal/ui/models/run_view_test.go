package models

import (
	"strings"
	"testing"

	"github.com/fenilsonani/tidyfiles/internal/organizer"
	"github.com/fenilsonani/tidyfiles/internal/progress"
	"github.com/fenilsonani/tidyfiles/internal/testutil"
)

func TestRunViewFollowsProgress(t *testing.T) {
	f := testutil.NewFixtureWithFiles(t, "a.jpg", "b.pdf", "setup.exe")
	org := organizer.New(nil, organizer.DefaultOptions(), nil)
	m := NewRunViewModel(org, organizer.ModeByType, f.RootDir, "")

	done, ok := m.perform().(RunCompleteMsg)
	if !ok || done.Err != nil {
		t.Fatalf("expected a successful run, got %#v", done)
	}

	// Buffered updates are delivered until the closed subscription ends the listener
	updates := 0
	for msg := m.waitForProgress(); msg != nil; updates++ {
		m, _ = m.Update(msg)
		msg = m.waitForProgress()
	}
	if updates == 0 {
		t.Fatal("expected progress updates")
	}

	if m.current.Phase != progress.PhaseComplete {
		t.Errorf("expected complete phase, got %s", m.current.Phase)
	}
	if m.current.Total != 3 || m.current.Handled() != 3 {
		t.Errorf("expected 3/3 handled, got %d/%d", m.current.Handled(), m.current.Total)
	}

	view := m.View()
	if !strings.Contains(view, "3/3") {
		t.Errorf("expected progress count in view:\n%s", view)
	}
	if !strings.Contains(view, "Done: Moved 2 files, 1 skipped") {
		t.Errorf("expected final progress line in view:\n%s", view)
	}
}

func TestRunViewListenerEndsWithoutRun(t *testing.T) {
	f := testutil.NewFixture(t)
	org := organizer.New(nil, organizer.DefaultOptions(), nil)
	m := NewRunViewModel(org, organizer.ModeByName, f.RootDir, "..")

	done := m.perform().(RunCompleteMsg)
	if done.Err == nil {
		t.Fatal("expected an invalid folder name error")
	}
	if msg := m.waitForProgress(); msg != nil {
		t.Errorf("expected no progress for a rejected query, got %#v", msg)
	}
}
