package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type BarPoint struct {
	Label string
	Score int
}

type ConsistencyRowData struct {
	Name  string
	Count int
}

type WeeklyPanelData struct {
	Bars    []BarPoint
	Weakest string
}

type MonthlyPanelData struct {
	Scores    []int
	Month     string
	Breakdown []ConsistencyRowData
}

type YearlyPanelData struct {
	Bars            []BarPoint
	Year            int
	Strongest       string
	Weakest         string
	DisciplinedDays int
	DaysInYear      int
	Grade           string
}

const barWidth = 20

func barStyleFor(score int) lipgloss.Style {
	switch {
	case score > 80:
		return barHighStyle
	case score > 40:
		return barMidStyle
	default:
		return barLowStyle
	}
}

func renderBar(p BarPoint) string {
	filled := p.Score * barWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return fmt.Sprintf("%-4s %s %3d", p.Label, barStyleFor(p.Score).Render(bar), p.Score)
}

func RenderWeeklyPanel(data WeeklyPanelData) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("DISCIPLINE INTENSITY — LAST 7 DAYS") + "\n")
	for _, p := range data.Bars {
		b.WriteString(renderBar(p) + "\n")
	}
	b.WriteString("\n" + sectionStyle.Render("WEAKEST LINK") + "\n")
	weakest := data.Weakest
	if weakest == "" {
		weakest = "N/A"
	}
	b.WriteString(rowTensionStyle.Render(weakest) + "\n")
	b.WriteString(quoteStyle.Render("\"You are letting this define your failure. Correct it immediately.\""))
	return b.String()
}

// sparkline renders one block rune per day, scaled to score.
var sparkRunes = []rune("▁▂▃▄▅▆▇█")

func sparkline(scores []int) string {
	var b strings.Builder
	for _, s := range scores {
		idx := s * (len(sparkRunes) - 1) / 100
		b.WriteString(barStyleFor(s).Render(string(sparkRunes[idx])))
	}
	return b.String()
}

func RenderMonthlyPanel(data MonthlyPanelData) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("TRUTH LINE — "+strings.ToUpper(data.Month)) + "\n")
	b.WriteString(sparkline(data.Scores) + "\n")
	b.WriteString(footerStyle.Render(fmt.Sprintf("day 1 → day %d", len(data.Scores))) + "\n\n")

	b.WriteString(sectionStyle.Render("HABIT BREAKDOWN") + "\n")
	for _, row := range data.Breakdown {
		b.WriteString(fmt.Sprintf("%-34s %3d DAYS\n", row.Name, row.Count))
	}
	return strings.TrimRight(b.String(), "\n")
}

func RenderYearlyPanel(data YearlyPanelData) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(fmt.Sprintf("MONTHLY DISCIPLINE SCORE — %d", data.Year)) + "\n")
	for _, p := range data.Bars {
		b.WriteString(renderBar(p) + "\n")
	}

	b.WriteString("\n" + sectionStyle.Render(fmt.Sprintf("%d REGRESSION REPORT", data.Year)) + "\n")
	strongest, weakest := data.Strongest, data.Weakest
	if strongest == "" {
		strongest = "---"
	}
	if weakest == "" {
		weakest = "---"
	}
	b.WriteString(fmt.Sprintf("STRONGEST PILLAR        %s\n", strongest))
	b.WriteString(fmt.Sprintf("MAIN REGRESSION         %s\n", weakest))
	b.WriteString(fmt.Sprintf("TOTAL DISCIPLINED DAYS  %d / %d\n", data.DisciplinedDays, data.DaysInYear))
	b.WriteString(fmt.Sprintf("FINAL DISCIPLINE RATING %s", scoreStyle.Render(data.Grade)))
	return b.String()
}
