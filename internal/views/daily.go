package views

import (
	"fmt"
	"strings"
)

type HabitRowData struct {
	Name      string
	Completed bool
	Streak    int
	Tension   bool
	Locked    bool
	Selected  bool
}

type DailyPanelData struct {
	Score          int
	ProgressView   string
	Status         string
	Quote          string
	CompletedCount int
	CatalogSize    int
	Locked         bool
	Rows           []HabitRowData
}

type GatePanelData struct {
	Date string
}

func RenderDailyPanel(data DailyPanelData) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("PERFORMANCE INDEX") + "\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("%d%%", data.Score)))
	b.WriteString("  " + statusTagStyle.Render(data.Status) + "\n")
	b.WriteString(data.ProgressView + "\n")
	b.WriteString(quoteStyle.Render("\""+data.Quote+"\"") + "\n\n")

	b.WriteString(sectionStyle.Render("DAILY EXECUTION UNITS"))
	b.WriteString(fmt.Sprintf("  %d/%d COMPLETE\n", data.CompletedCount, data.CatalogSize))
	if data.Locked {
		b.WriteString(rowLockedStyle.Render("date locked: future days cannot be edited") + "\n")
	}
	for _, row := range data.Rows {
		b.WriteString(renderHabitRow(row) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderHabitRow(row HabitRowData) string {
	cursor := "  "
	if row.Selected {
		cursor = cursorStyle.Render("> ")
	}
	mark := "[ ]"
	if row.Completed {
		mark = "[x]"
	}
	if row.Locked {
		mark = "[#]"
	}
	line := fmt.Sprintf("%s %s  streak: %dd", mark, row.Name, row.Streak)
	if !row.Completed && row.Streak > 0 && !row.Locked {
		line += fmt.Sprintf("  ! streak damage: -%d", row.Streak)
	}
	switch {
	case row.Locked:
		return cursor + rowLockedStyle.Render(line)
	case row.Completed:
		return cursor + rowDoneStyle.Render(line)
	case row.Tension:
		return cursor + rowTensionStyle.Render(line)
	default:
		return cursor + rowStyle.Render(line)
	}
}

// RenderGatePanel is the dormant-day screen: habits stay hidden until
// the day is explicitly committed to.
func RenderGatePanel(data GatePanelData) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("EXECUTION GATE ACTIVE") + "\n\n")
	b.WriteString("Habits for " + data.Date + " are dormant.\n")
	b.WriteString("You must explicitly commit to this day.\n\n")
	b.WriteString(cursorStyle.Render("[s] EXECUTE DAY"))
	return b.String()
}
