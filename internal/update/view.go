package update

import (
	"strconv"

	"github.com/achieversos/achievers/internal/habit"
	"github.com/achieversos/achievers/internal/views"
)

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	return views.RenderApp(m.buildAppData())
}

func (m Model) buildAppData() views.AppData {
	selectedDay := habit.ParseDayKey(m.SelectedDate)
	score := habit.Score(m.State, m.SelectedDate)

	data := views.AppData{
		Header:     habit.DisplayLabel(selectedDay),
		Timeline:   views.RenderTimeline(m.buildTimeline()),
		Body:       m.buildBody(),
		StatusLine: m.statusLine(),
		IsError:    m.Status.IsError && !m.Palette.Active,
		Footer:     "1-4 views · h/l days · t today · / commands · ? help · q quit",
	}
	if m.CurrentView == ViewDaily {
		data.SidePanel = views.RenderPressurePanel(views.PressureData{
			Countdown: habit.EndOfDayCountdown(m.Now),
			Verified:  score == 100,
		})
	}
	if m.HelpVisible {
		data.HelpOverlay = views.RenderHelpPanel()
	}
	return data
}

func (m Model) statusLine() string {
	if m.Palette.Active {
		return m.paletteInput.View()
	}
	if m.Status.Text != "" {
		if m.Status.IsError {
			return "error: " + m.Status.Text
		}
		return m.Status.Text
	}
	return "STATUS: ACTIVE MONITORING"
}

func (m Model) buildBody() string {
	switch m.CurrentView {
	case ViewWeekly:
		return views.RenderWeeklyPanel(m.buildWeekly())
	case ViewMonthly:
		return views.RenderMonthlyPanel(m.buildMonthly())
	case ViewYearly:
		return views.RenderYearlyPanel(m.buildYearly())
	default:
		return m.buildDaily()
	}
}

func (m Model) buildDaily() string {
	isFuture := habit.IsFutureDate(m.SelectedDate, m.Now)
	isStarted := m.State.IsStarted(m.SelectedDate)
	if !isStarted && !isFuture {
		return views.RenderGatePanel(views.GatePanelData{Date: m.SelectedDate})
	}

	selectedDay := habit.ParseDayKey(m.SelectedDate)
	isToday := habit.IsSameDay(m.SelectedDate, m.Now)
	score := habit.Score(m.State, m.SelectedDate)
	status := habit.StatusFor(isFuture, isStarted, score, isToday, m.Now.Hour())
	late := isToday && m.Now.Hour() >= 18

	rows := make([]views.HabitRowData, 0, len(habit.Catalog))
	for i, h := range habit.Catalog {
		completed := m.State.HasCompleted(m.SelectedDate, h.ID)
		rows = append(rows, views.HabitRowData{
			Name:      h.Name,
			Completed: completed,
			Streak:    habit.Streak(m.State, h.ID, selectedDay),
			Tension:   late && !completed,
			Locked:    isFuture,
			Selected:  i == m.Cursor,
		})
	}

	return views.RenderDailyPanel(views.DailyPanelData{
		Score:          score,
		ProgressView:   m.scoreBar.ViewAs(float64(score) / 100),
		Status:         string(status),
		Quote:          habit.SelectQuote(score, m.Now.Hour(), selectedDay.Day()),
		CompletedCount: len(m.State.Completed(m.SelectedDate)),
		CatalogSize:    len(habit.Catalog),
		Locked:         isFuture,
		Rows:           rows,
	})
}

func (m Model) buildTimeline() views.TimelineData {
	selectedDay := habit.ParseDayKey(m.SelectedDate)
	cells := make([]views.TimelineCellData, 0, 2*timelineRadius+1)
	for offset := -timelineRadius; offset <= timelineRadius; offset++ {
		day := selectedDay.AddDate(0, 0, offset)
		key := habit.DayKey(day)
		cells = append(cells, views.TimelineCellData{
			DayName:  day.Format("Mon"),
			DayNum:   strconv.Itoa(day.Day()),
			Selected: key == m.SelectedDate,
			Started:  m.State.IsStarted(key),
			Score:    habit.Score(m.State, key),
			IsToday:  habit.IsSameDay(key, m.Now),
			Future:   habit.IsFutureDate(key, m.Now),
		})
	}
	return views.TimelineData{Cells: cells}
}

func (m Model) buildWeekly() views.WeeklyPanelData {
	series := habit.WeeklySeries(m.State, m.Now)
	bars := make([]views.BarPoint, 0, len(series))
	for _, p := range series {
		bars = append(bars, views.BarPoint{Label: p.Label, Score: p.Score})
	}
	weakest := ""
	if entries := habit.HabitConsistency(m.State, m.Now); len(entries) > 0 {
		weakest = entries[len(entries)-1].Name
	}
	return views.WeeklyPanelData{Bars: bars, Weakest: weakest}
}

func (m Model) buildMonthly() views.MonthlyPanelData {
	series := habit.MonthlySeries(m.State, m.Now)
	scores := make([]int, 0, len(series))
	for _, p := range series {
		scores = append(scores, p.Score)
	}
	entries := habit.HabitConsistency(m.State, m.Now)
	breakdown := make([]views.ConsistencyRowData, 0, len(entries))
	for _, e := range entries {
		breakdown = append(breakdown, views.ConsistencyRowData{Name: e.Name, Count: e.Count})
	}
	return views.MonthlyPanelData{
		Scores:    scores,
		Month:     m.Now.Format("January 2006"),
		Breakdown: breakdown,
	}
}

func (m Model) buildYearly() views.YearlyPanelData {
	year := m.Now.Year()
	averages := habit.YearlyAverages(m.State, year)
	bars := make([]views.BarPoint, 0, len(averages))
	for _, p := range averages {
		bars = append(bars, views.BarPoint{Label: p.Label, Score: p.Score})
	}

	data := views.YearlyPanelData{
		Bars:  bars,
		Year:  year,
		Grade: habit.Grade(habit.YearlyAverage(m.State, year)),
	}
	if entries := habit.YearConsistency(m.State, year); len(entries) > 0 {
		data.Strongest = entries[0].Name
		data.Weakest = entries[len(entries)-1].Name
	}
	data.DisciplinedDays, data.DaysInYear = habit.DisciplinedDays(m.State, year)
	return data
}
