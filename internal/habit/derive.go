package habit

import (
	"math"
	"time"
)

// streakWindow bounds the backward walk when counting a streak.
const streakWindow = 365

// Score is the percentage of the catalog completed on date, rounded
// half away from zero. Always in [0,100] while the log only holds
// catalog ids.
func Score(s State, date string) int {
	count := len(s.History[date])
	return int(math.Round(float64(count) / float64(len(Catalog)) * 100))
}

// Streak counts consecutive days ending at asOf on which habitID was
// completed. The anchor day itself may be absent: the prior run still
// counts, so an uncompleted today reports what is at stake.
func Streak(s State, habitID string, asOf time.Time) int {
	streak := 0
	for i := 0; i < streakWindow; i++ {
		key := RelativeDayKey(asOf, -i)
		if s.HasCompleted(key, habitID) {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}

// Status classifies a day's state for display.
type Status string

const (
	StatusLocked     Status = "LOCKED"
	StatusDormant    Status = "DORMANT"
	StatusExecuted   Status = "EXECUTED"
	StatusInProgress Status = "IN PROGRESS"
	StatusUnstarted  Status = "UNSTARTED"
	StatusNoAction   Status = "NO ACTION TAKEN"
	StatusNotEarned  Status = "DISCIPLINE NOT EARNED"
	StatusFailure    Status = "FAILURE"
)

// StatusFor resolves the status label. Precedence is strict and
// top-to-bottom: future wins over everything, the dormancy gate wins
// over scores, and the hour buckets only apply to the current day.
func StatusFor(isFuture, isStarted bool, score int, isToday bool, hour int) Status {
	switch {
	case isFuture:
		return StatusLocked
	case !isStarted:
		return StatusDormant
	case score == 100:
		return StatusExecuted
	case score > 0:
		return StatusInProgress
	}
	if isToday {
		switch {
		case hour < 10:
			return StatusUnstarted
		case hour < 18:
			return StatusNoAction
		default:
			return StatusNotEarned
		}
	}
	return StatusFailure
}

// SelectQuote picks the contextual quote for a day. A perfect score
// always draws from the acknowledged pool; otherwise the pool follows
// the wall-clock hour. seed is the day-of-month of the selected date,
// so the quote is stable per day within an hour bucket.
func SelectQuote(score, hour, seed int) string {
	if score == 100 {
		return QuotesAcknowledged[seed%len(QuotesAcknowledged)]
	}
	switch {
	case hour < 12:
		return QuotesMorning[seed%len(QuotesMorning)]
	case hour < 19:
		return QuotesMidday[seed%len(QuotesMidday)]
	default:
		return QuotesNight[seed%len(QuotesNight)]
	}
}
