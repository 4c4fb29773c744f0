package update

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/achieversos/achievers/internal/habit"
	"github.com/achieversos/achievers/internal/storage"
)

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(testNow)
	if m.CurrentView != ViewDaily {
		t.Fatalf("expected default view %q, got %q", ViewDaily, m.CurrentView)
	}
	if m.SelectedDate != "2025-06-10" {
		t.Fatalf("expected selected date today, got %q", m.SelectedDate)
	}
	if m.Keys.Quit != "q" || m.Keys.Palette != "/" {
		t.Fatalf("unexpected key map: %+v", m.Keys)
	}
}

func TestLoadsStateFromStore(t *testing.T) {
	store := storage.NewMemoryStore()
	seed := habit.NewState()
	seed.StartDay("2025-06-10")
	seed.Toggle("2025-06-10", "read")
	if err := store.Save(context.Background(), seed); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	m := NewModelWithConfig(store, nil, DefaultRuntimeConfig(), testNow)
	if !m.State.IsStarted("2025-06-10") || !m.State.HasCompleted("2025-06-10", "read") {
		t.Fatalf("expected state loaded from store, got %+v", m.State)
	}
}

func TestKeySwitchesView(t *testing.T) {
	m := NewModel(testNow)
	updated, _ := m.Update(keyMsg("2"))
	next := updated.(Model)
	if next.CurrentView != ViewWeekly {
		t.Fatalf("expected weekly view, got %q", next.CurrentView)
	}
	updated, _ = next.Update(keyMsg("4"))
	next = updated.(Model)
	if next.CurrentView != ViewYearly {
		t.Fatalf("expected yearly view, got %q", next.CurrentView)
	}
}

func TestSelectDateForcesDailyView(t *testing.T) {
	m := NewModel(testNow)
	updated, _ := m.Update(SwitchViewMsg{View: ViewMonthly})
	next := updated.(Model)
	updated, _ = next.Update(SelectDateMsg{Date: "2025-06-01"})
	next = updated.(Model)
	if next.SelectedDate != "2025-06-01" || next.CurrentView != ViewDaily {
		t.Fatalf("expected daily view on 2025-06-01, got %q %q", next.CurrentView, next.SelectedDate)
	}
}

func TestArrowKeysMoveSelectedDate(t *testing.T) {
	m := NewModel(testNow)
	updated, _ := m.Update(keyMsg("h"))
	next := updated.(Model)
	if next.SelectedDate != "2025-06-09" {
		t.Fatalf("expected previous day, got %q", next.SelectedDate)
	}
	updated, _ = next.Update(keyMsg("l"))
	next = updated.(Model)
	if next.SelectedDate != "2025-06-10" {
		t.Fatalf("expected next day, got %q", next.SelectedDate)
	}
}

func TestToggleBlockedWhileDormant(t *testing.T) {
	m := NewModel(testNow)
	updated, cmd := m.Update(keyMsg(" "))
	next := updated.(Model)
	if cmd != nil {
		t.Fatal("expected no persistence for blocked toggle")
	}
	if !next.Status.IsError {
		t.Fatalf("expected dormant error status, got %+v", next.Status)
	}
	if len(next.State.History) != 0 {
		t.Fatalf("expected no history mutation, got %+v", next.State.History)
	}
}

func TestStartThenToggleHabit(t *testing.T) {
	store := storage.NewMemoryStore()
	m := NewModelWithConfig(store, nil, DefaultRuntimeConfig(), testNow)

	updated, cmd := m.Update(keyMsg("s"))
	next := updated.(Model)
	if !next.State.IsStarted("2025-06-10") {
		t.Fatal("expected day started")
	}
	if cmd == nil {
		t.Fatal("expected persistence command after start")
	}
	cmd()

	// Move cursor to the third habit and toggle it.
	updated, _ = next.Update(keyMsg("j"))
	next = updated.(Model)
	updated, _ = next.Update(keyMsg("j"))
	next = updated.(Model)
	updated, cmd = next.Update(keyMsg(" "))
	next = updated.(Model)
	if !next.State.HasCompleted("2025-06-10", "study") {
		t.Fatalf("expected study toggled, got %+v", next.State.History)
	}
	if cmd == nil {
		t.Fatal("expected persistence command after toggle")
	}
	cmd()
	if store.Saves != 2 {
		t.Fatalf("expected 2 saves, got %d", store.Saves)
	}

	persisted := store.Load(context.Background())
	if !persisted.HasCompleted("2025-06-10", "study") {
		t.Fatalf("expected toggle persisted, got %+v", persisted.History)
	}
}

func TestToggleTwiceRestoresState(t *testing.T) {
	m := NewModel(testNow)
	updated, _ := m.Update(keyMsg("s"))
	next := updated.(Model)

	updated, _ = next.Update(keyMsg(" "))
	next = updated.(Model)
	if !next.State.HasCompleted("2025-06-10", "wake-up") {
		t.Fatal("expected wake-up toggled on")
	}
	updated, _ = next.Update(keyMsg(" "))
	next = updated.(Model)
	if next.State.HasCompleted("2025-06-10", "wake-up") {
		t.Fatal("expected second toggle to restore prior state")
	}
}

func TestStartDayIdempotentNoSecondSave(t *testing.T) {
	m := NewModel(testNow)
	updated, cmd := m.Update(keyMsg("s"))
	next := updated.(Model)
	if cmd == nil {
		t.Fatal("expected save on first start")
	}
	updated, cmd = next.Update(keyMsg("s"))
	next = updated.(Model)
	if cmd != nil {
		t.Fatal("expected no save on repeated start")
	}
	if len(next.State.StartedDays) != 1 {
		t.Fatalf("expected single started day, got %v", next.State.StartedDays)
	}
}

func TestFutureDateLocked(t *testing.T) {
	m := NewModel(testNow)
	updated, _ := m.Update(SelectDateMsg{Date: "2025-06-11"})
	next := updated.(Model)

	updated, cmd := next.Update(keyMsg("s"))
	next = updated.(Model)
	if cmd != nil || next.State.IsStarted("2025-06-11") {
		t.Fatal("expected future start to be refused")
	}
	updated, cmd = next.Update(keyMsg(" "))
	next = updated.(Model)
	if cmd != nil || len(next.State.History) != 0 {
		t.Fatal("expected future toggle to be refused")
	}
	if !next.Status.IsError {
		t.Fatalf("expected locked status, got %+v", next.Status)
	}
}

func TestTickAdvancesClock(t *testing.T) {
	m := NewModel(testNow)
	later := testNow.Add(time.Second)
	updated, cmd := m.Update(TickMsg{Now: later})
	next := updated.(Model)
	if !next.Now.Equal(later) {
		t.Fatalf("expected clock advanced, got %v", next.Now)
	}
	if cmd == nil {
		t.Fatal("expected next tick scheduled")
	}
	if len(next.State.History) != 0 || len(next.State.StartedDays) != 0 {
		t.Fatal("tick must never mutate the event log")
	}
}

func TestSaveFailureKeepsMemoryAuthoritative(t *testing.T) {
	store := storage.NewMemoryStore()
	store.SaveErr = errors.New("disk full")
	m := NewModelWithConfig(store, nil, DefaultRuntimeConfig(), testNow)

	updated, cmd := m.Update(keyMsg("s"))
	next := updated.(Model)
	if cmd == nil {
		t.Fatal("expected save attempt")
	}
	updated, _ = next.Update(cmd())
	next = updated.(Model)
	if next.LastError == nil || !next.Status.IsError {
		t.Fatalf("expected surfaced save error, got %+v", next.Status)
	}
	if !next.State.IsStarted("2025-06-10") {
		t.Fatal("expected in-memory state to keep the mutation")
	}
}

func TestStatusMessages(t *testing.T) {
	m := NewModel(testNow)
	updated, _ := m.Update(SetStatusMsg{Text: "ready"})
	next := updated.(Model)
	if next.Status.Text != "ready" || next.Status.IsError {
		t.Fatalf("unexpected status: %+v", next.Status)
	}
	updated, _ = next.Update(ClearStatusMsg{})
	next = updated.(Model)
	if next.Status.Text != "" {
		t.Fatalf("expected cleared status, got %+v", next.Status)
	}
}

func TestStatusErrorFlagDrivesStyling(t *testing.T) {
	m := NewModel(testNow)

	updated, _ := m.Update(SetStatusMsg{Text: "error budget reviewed"})
	next := updated.(Model)
	if data := next.buildAppData(); data.IsError {
		t.Fatalf("plain status mentioning errors must not be flagged: %+v", next.Status)
	}

	updated, _ = next.Update(SetStatusMsg{Text: "save failed", IsError: true})
	next = updated.(Model)
	if data := next.buildAppData(); !data.IsError {
		t.Fatalf("error status must carry the error flag: %+v", next.Status)
	}
}

func TestViewRendersWithoutPanic(t *testing.T) {
	m := NewModel(testNow)
	for _, v := range []View{ViewDaily, ViewWeekly, ViewMonthly, ViewYearly} {
		updated, _ := m.Update(SwitchViewMsg{View: v})
		next := updated.(Model)
		if out := next.View(); out == "" {
			t.Fatalf("expected non-empty render for %q", v)
		}
	}
}
