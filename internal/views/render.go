package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header      string
	Timeline    string
	Body        string
	SidePanel   string
	StatusLine  string
	IsError     bool
	Footer      string
	HelpOverlay string
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	dateStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")).BorderLeft(true).BorderStyle(lipgloss.ThickBorder()).PaddingLeft(1)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8"))

	scoreStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	statusTagStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8"))
	quoteStyle     = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("7"))

	rowDoneStyle    = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("10"))
	rowTensionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	rowLockedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	rowStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	cursorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))

	barHighStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	barMidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	barLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0"))
)

func RenderApp(data AppData) string {
	status := statusStyle.Render(data.StatusLine)
	if data.IsError {
		status = errorStyle.Render(data.StatusLine)
	}

	body := data.Body
	if data.SidePanel != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			panelStyle.Width(62).Render(data.Body),
			panelStyle.Width(40).Render(data.SidePanel),
		)
	} else {
		body = panelStyle.Width(104).Render(data.Body)
	}

	lines := []string{
		headerStyle.Render("ACHIEVERS"),
		dateStyle.Render(data.Header),
		data.Timeline,
		body,
		status,
	}
	if data.HelpOverlay != "" {
		lines = append(lines, panelStyle.Render(data.HelpOverlay))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
