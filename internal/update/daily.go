package update

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/achieversos/achievers/internal/habit"
)

func (m Model) handleDailyKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "j", "down":
		if m.Cursor < len(habit.Catalog)-1 {
			m.Cursor++
		}
		return m, nil
	case "k", "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case " ", "enter":
		return m.toggleSelectedHabit()
	case m.Keys.Start:
		return m.startSelectedDay()
	}
	return m, nil
}

// toggleSelectedHabit flips the habit under the cursor for the
// selected date. Future dates and dormant days refuse the edit; an id
// outside the catalog is dropped at the state boundary.
func (m Model) toggleSelectedHabit() (tea.Model, tea.Cmd) {
	if habit.IsFutureDate(m.SelectedDate, m.Now) {
		m.Status = StatusBar{Text: "date locked: the future is not yours to edit", IsError: true}
		return m, nil
	}
	if !m.State.IsStarted(m.SelectedDate) {
		m.Status = StatusBar{Text: "day dormant: press s to execute it first", IsError: true}
		return m, nil
	}
	if m.Cursor < 0 || m.Cursor >= len(habit.Catalog) {
		return m, nil
	}
	if !m.State.Toggle(m.SelectedDate, habit.Catalog[m.Cursor].ID) {
		return m, nil
	}
	m.Status = StatusBar{}
	return m, m.saveCmd()
}

// startSelectedDay passes the execution gate for the selected date.
// Idempotent: an already started day is a no-op, not an error.
func (m Model) startSelectedDay() (tea.Model, tea.Cmd) {
	if habit.IsFutureDate(m.SelectedDate, m.Now) {
		m.Status = StatusBar{Text: "date locked: the future is not yours to edit", IsError: true}
		return m, nil
	}
	if !m.State.StartDay(m.SelectedDate) {
		return m, nil
	}
	m.Status = StatusBar{Text: "day executed: " + m.SelectedDate}
	return m, m.saveCmd()
}

// saveCmd mirrors the in-memory state to the store off the update
// loop. The snapshot is cloned so later mutations cannot race the
// write.
func (m Model) saveCmd() tea.Cmd {
	store := m.store
	if store == nil {
		return nil
	}
	snapshot := m.State.Clone()
	return func() tea.Msg {
		return StateSavedMsg{Err: store.Save(context.Background(), snapshot)}
	}
}
