package habit

import (
	"testing"
	"time"
)

func TestScoreEmptyAndBounds(t *testing.T) {
	s := NewState()
	if got := Score(s, "2025-06-01"); got != 0 {
		t.Fatalf("expected 0 for missing day, got %d", got)
	}
	for _, h := range Catalog {
		s.Toggle("2025-06-01", h.ID)
	}
	if got := Score(s, "2025-06-01"); got != 100 {
		t.Fatalf("expected 100 for full day, got %d", got)
	}
}

func TestScoreRounding(t *testing.T) {
	s := NewState()
	s.History["2025-06-01"] = []string{"wake-up", "read"}
	if got := Score(s, "2025-06-01"); got != 22 {
		t.Fatalf("expected round(2/9*100) = 22, got %d", got)
	}
	s.History["2025-06-02"] = []string{"wake-up", "read", "study", "work", "youtube"}
	if got := Score(s, "2025-06-02"); got != 56 {
		t.Fatalf("expected round(5/9*100) = 56, got %d", got)
	}
}

func TestStreakCounting(t *testing.T) {
	s := NewState()
	asOf := time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)
	if got := Streak(s, "read", asOf); got != 0 {
		t.Fatalf("expected empty streak, got %d", got)
	}

	for i := 0; i < 4; i++ {
		s.Toggle(RelativeDayKey(asOf, -i), "read")
	}
	if got := Streak(s, "read", asOf); got != 4 {
		t.Fatalf("expected streak 4, got %d", got)
	}

	// Gap two days back stops the walk.
	s.Toggle(RelativeDayKey(asOf, -2), "read")
	if got := Streak(s, "read", asOf); got != 2 {
		t.Fatalf("expected streak 2 after gap, got %d", got)
	}
}

func TestStreakToleratesAnchorDay(t *testing.T) {
	s := NewState()
	asOf := time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)
	s.Toggle("2025-06-09", "gym")
	s.Toggle("2025-06-08", "gym")
	if got := Streak(s, "gym", asOf); got != 2 {
		t.Fatalf("expected prior run of 2 with anchor absent, got %d", got)
	}
	s.Toggle("2025-06-10", "gym")
	if got := Streak(s, "gym", asOf); got != 3 {
		t.Fatalf("expected streak 3 with anchor complete, got %d", got)
	}
}

func TestStatusForPrecedence(t *testing.T) {
	cases := []struct {
		name      string
		isFuture  bool
		isStarted bool
		score     int
		isToday   bool
		hour      int
		want      Status
	}{
		{"future wins over everything", true, true, 100, true, 12, StatusLocked},
		{"dormant before scores", false, false, 50, false, 12, StatusDormant},
		{"executed regardless of hour", false, true, 100, true, 23, StatusExecuted},
		{"partial progress", false, true, 22, false, 12, StatusInProgress},
		{"today early morning", false, true, 0, true, 9, StatusUnstarted},
		{"today afternoon", false, true, 0, true, 17, StatusNoAction},
		{"today evening", false, true, 0, true, 18, StatusNotEarned},
		{"past zero day", false, true, 0, false, 23, StatusFailure},
	}
	for _, tc := range cases {
		got := StatusFor(tc.isFuture, tc.isStarted, tc.score, tc.isToday, tc.hour)
		if got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestSelectQuoteBuckets(t *testing.T) {
	if got := SelectQuote(100, 23, 3); got != QuotesAcknowledged[3] {
		t.Fatalf("expected acknowledged quote, got %q", got)
	}
	if got := SelectQuote(50, 8, 1); got != QuotesMorning[1] {
		t.Fatalf("expected morning quote, got %q", got)
	}
	if got := SelectQuote(50, 12, 1); got != QuotesMidday[1] {
		t.Fatalf("expected midday quote, got %q", got)
	}
	if got := SelectQuote(50, 19, 1); got != QuotesNight[1] {
		t.Fatalf("expected night quote, got %q", got)
	}
}

func TestSelectQuoteStablePerDay(t *testing.T) {
	// Day 31 wraps around every five-entry pool.
	if got := SelectQuote(0, 9, 31); got != QuotesMorning[1] {
		t.Fatalf("expected wrapped morning quote, got %q", got)
	}
	a := SelectQuote(40, 14, 15)
	b := SelectQuote(60, 14, 15)
	if a != b {
		t.Fatalf("quote must not depend on score below 100: %q vs %q", a, b)
	}
}
