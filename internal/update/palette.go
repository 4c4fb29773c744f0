package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/achieversos/achievers/internal/commands"
	"github.com/achieversos/achievers/internal/habit"
)

func (m Model) handlePaletteKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc", "ctrl+c":
		m.Palette = CommandPaletteState{}
		m.paletteInput.Blur()
		return m, nil
	case "enter":
		input := m.paletteInput.Value()
		m.Palette = CommandPaletteState{}
		m.paletteInput.Blur()
		return m.runCommand(input)
	default:
		var cmd tea.Cmd
		m.paletteInput, cmd = m.paletteInput.Update(key)
		m.Palette.Input = m.paletteInput.Value()
		return m, cmd
	}
}

func (m Model) runCommand(input string) (tea.Model, tea.Cmd) {
	cmd, err := commands.Parse(input)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	next := m
	var teaCmd tea.Cmd
	handlers := commands.Handlers{
		Goto: func(args commands.GotoArgs) (commands.Result, error) {
			next = next.selectDate(args.Date)
			return commands.Result{Message: "selected " + args.Date}, nil
		},
		View: func(args commands.ViewArgs) (commands.Result, error) {
			switch args.Mode {
			case "weekly":
				next = next.setView(ViewWeekly)
			case "monthly":
				next = next.setView(ViewMonthly)
			case "yearly":
				next = next.setView(ViewYearly)
			default:
				next = next.setView(ViewDaily)
			}
			return commands.Result{Message: "view: " + args.Mode}, nil
		},
		Today: func() (commands.Result, error) {
			next = next.selectDate(habit.DayKey(next.Now))
			return commands.Result{Message: "selected today"}, nil
		},
		Start: func() (commands.Result, error) {
			model, c := next.startSelectedDay()
			next = model.(Model)
			teaCmd = c
			return commands.Result{Message: next.Status.Text}, nil
		},
	}

	result, err := commands.Execute(cmd, handlers)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	if result.Message != "" && !next.Status.IsError {
		next.Status = StatusBar{Text: result.Message}
	}
	return next, teaCmd
}
