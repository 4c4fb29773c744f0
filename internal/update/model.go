package update

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/achieversos/achievers/internal/habit"
	"github.com/achieversos/achievers/internal/storage"
)

type View string

const (
	ViewDaily   View = "Daily"
	ViewWeekly  View = "Weekly"
	ViewMonthly View = "Monthly"
	ViewYearly  View = "Yearly"
)

// timelineRadius is how many days the timeline strip shows on each
// side of the selected date.
const timelineRadius = 4

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Daily   string
	Weekly  string
	Monthly string
	Yearly  string
	Today   string
	Start   string
	Palette string
	Help    string
	Quit    string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Model is the single owner of the event log. Everything derived —
// score, streaks, status, charts — is recomputed from State plus Now
// on render; nothing derived is stored.
type Model struct {
	CurrentView  View
	SelectedDate string
	Now          time.Time
	State        habit.State
	Cursor       int
	Palette      CommandPaletteState
	HelpVisible  bool
	Status       StatusBar
	Keys         GlobalKeyMap
	Quitting     bool
	LastError    error

	store        storage.Store
	logger       *slog.Logger
	tickInterval time.Duration
	scoreBar     progress.Model
	paletteInput textinput.Model
}

type TickMsg struct {
	Now time.Time
}

type StateSavedMsg struct {
	Err error
}

type SelectDateMsg struct {
	Date string
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

func NewModel(now time.Time) Model {
	return NewModelWithConfig(storage.NewMemoryStore(), nil, DefaultRuntimeConfig(), now)
}

func NewModelWithConfig(store storage.Store, logger *slog.Logger, cfg RuntimeConfig, now time.Time) Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := Model{
		CurrentView:  ViewDaily,
		SelectedDate: habit.DayKey(now),
		Now:          now,
		State:        habit.NewState(),
		Keys: GlobalKeyMap{
			Daily:   "1",
			Weekly:  "2",
			Monthly: "3",
			Yearly:  "4",
			Today:   "t",
			Start:   "s",
			Palette: "/",
			Help:    "?",
			Quit:    "q",
		},
		store:        store,
		logger:       logger,
		tickInterval: cfg.TickInterval(),
		scoreBar:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	m.paletteInput = textinput.New()
	m.paletteInput.Prompt = "/"
	m.paletteInput.Placeholder = "goto 2025-06-01 | view weekly | today | start"
	if store != nil {
		m.State = store.Load(context.Background())
	}
	return m
}

func isKnownView(v View) bool {
	switch v {
	case ViewDaily, ViewWeekly, ViewMonthly, ViewYearly:
		return true
	default:
		return false
	}
}
