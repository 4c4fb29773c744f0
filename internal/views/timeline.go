package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TimelineCellData struct {
	DayName  string
	DayNum   string
	Selected bool
	Started  bool
	Score    int
	IsToday  bool
	Future   bool
}

type TimelineData struct {
	Cells []TimelineCellData
}

var (
	cellStyle         = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("8"))
	cellTodayStyle    = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("15"))
	cellSelectedStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true)
	cellFutureStyle   = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("0"))
)

// RenderTimeline draws the horizontal day strip. Each cell carries a
// marker line: executed days get a full block, started days a hollow
// one, future days a lock.
func RenderTimeline(data TimelineData) string {
	cells := make([]string, 0, len(data.Cells))
	for _, c := range data.Cells {
		marker := " "
		switch {
		case c.Future:
			marker = "#"
		case c.Score == 100:
			marker = "█"
		case c.Score > 0:
			marker = "▒"
		case c.Started:
			marker = "░"
		}
		text := c.DayName + "\n" + c.DayNum + "\n" + marker
		switch {
		case c.Selected:
			cells = append(cells, cellSelectedStyle.Render(text))
		case c.IsToday:
			cells = append(cells, cellTodayStyle.Render(text))
		case c.Future:
			cells = append(cells, cellFutureStyle.Render(text))
		default:
			cells = append(cells, cellStyle.Render(text))
		}
	}
	if len(cells) == 0 {
		return ""
	}
	return strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), "\n")
}
