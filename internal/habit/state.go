package habit

// State is the full persisted event log: per-day completed habit ids
// plus the set of days the user explicitly started. The view
// controller owns the canonical copy; everything else works on
// snapshots.
type State struct {
	History     map[string][]string `json:"history"`
	StartedDays []string            `json:"startedDays"`
}

// NewState returns the empty initial state.
func NewState() State {
	return State{
		History:     make(map[string][]string),
		StartedDays: make([]string, 0),
	}
}

// Completed returns the completed habit ids for date. A day with no
// entry is an empty set, not an error.
func (s State) Completed(date string) []string {
	return s.History[date]
}

// HasCompleted reports whether habitID is marked complete on date.
func (s State) HasCompleted(date, habitID string) bool {
	for _, id := range s.History[date] {
		if id == habitID {
			return true
		}
	}
	return false
}

// IsStarted reports whether the user has opted date into tracking.
func (s State) IsStarted(date string) bool {
	for _, d := range s.StartedDays {
		if d == date {
			return true
		}
	}
	return false
}

// Toggle flips membership of habitID in the completed set for date.
// Ids outside the catalog are rejected at this boundary so stale ids
// cannot accumulate in the log; the return reports whether anything
// changed.
func (s *State) Toggle(date, habitID string) bool {
	if !InCatalog(habitID) {
		return false
	}
	if s.History == nil {
		s.History = make(map[string][]string)
	}
	current := s.History[date]
	for i, id := range current {
		if id == habitID {
			s.History[date] = append(current[:i:i], current[i+1:]...)
			return true
		}
	}
	s.History[date] = append(current, habitID)
	return true
}

// StartDay adds date to the started set. Idempotent; the return
// reports whether the day was newly started.
func (s *State) StartDay(date string) bool {
	if s.IsStarted(date) {
		return false
	}
	s.StartedDays = append(s.StartedDays, date)
	return true
}

// Clone deep-copies the state. Persistence runs off the update loop,
// so the write always gets its own copy.
func (s State) Clone() State {
	out := State{
		History:     make(map[string][]string, len(s.History)),
		StartedDays: append([]string(nil), s.StartedDays...),
	}
	for date, ids := range s.History {
		out.History[date] = append([]string(nil), ids...)
	}
	if out.StartedDays == nil {
		out.StartedDays = make([]string, 0)
	}
	return out
}
