package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/achieversos/achievers/internal/habit"
)

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// tickCmd schedules the next clock sample. Bubble Tea tears the timer
// down with the program, so quitting never leaks a pending tick.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg { return TickMsg{Now: t} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}

		switch typed.String() {
		case m.Keys.Palette:
			m.Palette.Active = true
			m.Palette.Input = ""
			m.paletteInput.SetValue("")
			m.paletteInput.Focus()
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case m.Keys.Daily:
			return m.setView(ViewDaily), nil
		case m.Keys.Weekly:
			return m.setView(ViewWeekly), nil
		case m.Keys.Monthly:
			return m.setView(ViewMonthly), nil
		case m.Keys.Yearly:
			return m.setView(ViewYearly), nil
		case m.Keys.Today:
			return m.selectDate(habit.DayKey(m.Now)), nil
		case "h", "left":
			return m.selectDate(habit.RelativeDayKey(habit.ParseDayKey(m.SelectedDate), -1)), nil
		case "l", "right":
			return m.selectDate(habit.RelativeDayKey(habit.ParseDayKey(m.SelectedDate), 1)), nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		if m.CurrentView == ViewDaily {
			return m.handleDailyKey(typed)
		}
		return m, nil

	case TickMsg:
		m.Now = typed.Now
		return m, m.tickCmd()

	case StateSavedMsg:
		if typed.Err != nil {
			// In-memory state stays authoritative; persistence is
			// best-effort.
			m.LastError = typed.Err
			m.logger.Error("state save failed", "error", typed.Err)
			m.Status = StatusBar{Text: "save error: " + typed.Err.Error(), IsError: true}
		}
		return m, nil

	case SelectDateMsg:
		return m.selectDate(typed.Date), nil

	case SwitchViewMsg:
		if isKnownView(typed.View) {
			return m.setView(typed.View), nil
		}
		return m, nil

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil

	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	}

	return m, nil
}

// selectDate moves the selection and always drops back to the daily
// view, matching the timeline's behavior.
func (m Model) selectDate(date string) Model {
	m.SelectedDate = date
	m.CurrentView = ViewDaily
	m.Cursor = 0
	return m
}

func (m Model) setView(v View) Model {
	m.CurrentView = v
	return m
}
