package habit

// Habit is a single tracked behavior. The catalog is fixed for the
// process lifetime; ids recorded in the event log refer into it.
type Habit struct {
	ID   string
	Name string
}

// Catalog is the fixed, ordered habit list. Its length is the score
// denominator, so editing it changes the meaning of historical scores.
var Catalog = []Habit{
	{ID: "wake-up", Name: "Wake up at 4:00 AM"},
	{ID: "read", Name: "Read 10 pages"},
	{ID: "study", Name: "Self-study – 3 hours"},
	{ID: "work", Name: "Part-time work – 1–2 hours"},
	{ID: "youtube", Name: "YouTube channel work – 1 hour"},
	{ID: "noon-sleep", Name: "No sleeping at noon"},
	{ID: "no-m", Name: "No masturbation"},
	{ID: "no-junk", Name: "No junk food"},
	{ID: "gym", Name: "Gym / Workout"},
}

// InCatalog reports whether id belongs to the fixed catalog.
func InCatalog(id string) bool {
	for _, h := range Catalog {
		if h.ID == id {
			return true
		}
	}
	return false
}

// Quote pools. Selection is deterministic per day (see SelectQuote),
// bucketed by wall-clock hour unless the day is fully executed.
var (
	QuotesMorning = []string{
		"Execute the plan. No deviations.",
		"The day is fresh. Do not waste the first hour.",
		"Standard operating procedure: Start now.",
		"Your future self is watching your current inaction.",
		"Discipline begins with the first decision of the day.",
	}

	QuotesMidday = []string{
		"The sun is high. Where is the progress?",
		"Adjustment required. You are drifting from the target.",
		"The afternoon is where the average quit. Don't.",
		"Analyze your friction. Eliminate it. Continue.",
		"Time is decaying. Your score is static.",
	}

	QuotesNight = []string{
		"The day is ending. Own the result.",
		"If the score is zero, the day was a waste. No excuses.",
		"Confront the mirror. Did you win or just survive?",
		"Sleep is earned through execution.",
		"The data is permanent. How does it look?",
	}

	QuotesAcknowledged = []string{
		"Requirement met. Reset and repeat.",
		"The data reflects consistency. Maintain.",
		"Executed. Zero emotion attached to victory.",
		"Don't seek praise for doing what is required.",
		"Standard maintained.",
	}
)
