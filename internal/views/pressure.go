package views

import "strings"

type PressureData struct {
	Countdown string
	Verified  bool
}

const disciplineReminder = "Motivation is a feeling. Discipline is an operating system. " +
	"Feelings are unreliable. Systems are absolute."

func RenderPressurePanel(data PressureData) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("DAILY COUNTDOWN") + "\n")
	b.WriteString(scoreStyle.Render(data.Countdown) + "\n")
	b.WriteString(footerStyle.Render("seconds remaining for execution") + "\n\n")

	b.WriteString(sectionStyle.Render("CONSEQUENCE AWARENESS") + "\n")
	if data.Verified {
		b.WriteString(statusStyle.Render("HISTORY STATUS: VERIFIED") + "\n")
	} else {
		b.WriteString(errorStyle.Render("HISTORY STATUS: INCOMPLETE") + "\n")
	}
	b.WriteString(quoteStyle.Render("\"Every missed box is a permanent mark on your history. "+
		"There is no edit button for yesterday.\"") + "\n\n")

	b.WriteString(sectionStyle.Render("DISCIPLINE REMINDER") + "\n")
	b.WriteString(rowStyle.Render(disciplineReminder))
	return b.String()
}
