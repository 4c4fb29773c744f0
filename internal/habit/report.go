package habit

import (
	"math"
	"sort"
	"time"
)

// ScorePoint is one labelled bar in the weekly and yearly charts.
type ScorePoint struct {
	Label string
	Score int
}

// MonthlyPoint is one day in the current-month series.
type MonthlyPoint struct {
	Day   int
	Score int
}

// ConsistencyEntry is a habit's completion count inside one month.
type ConsistencyEntry struct {
	Name  string
	Count int
}

// WeeklySeries returns the last seven days of scores, oldest first,
// ending at the day containing today.
func WeeklySeries(s State, today time.Time) []ScorePoint {
	out := make([]ScorePoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		out = append(out, ScorePoint{
			Label: day.Format("Mon"),
			Score: Score(s, DayKey(day)),
		})
	}
	return out
}

// MonthlySeries returns a score for every day of the month containing
// anchor, first to last. Days without a log entry, including days
// still in the future, score zero.
func MonthlySeries(s State, anchor time.Time) []MonthlyPoint {
	y, m, _ := anchor.Date()
	last := daysInMonth(anchor)
	out := make([]MonthlyPoint, 0, last)
	for d := 1; d <= last; d++ {
		key := DayKey(time.Date(y, m, d, 0, 0, 0, 0, anchor.Location()))
		out = append(out, MonthlyPoint{Day: d, Score: Score(s, key)})
	}
	return out
}

// HabitConsistency counts, per catalog habit, the days in anchor's
// month with that habit complete, sorted by count descending. Ties
// keep catalog order.
func HabitConsistency(s State, anchor time.Time) []ConsistencyEntry {
	return consistency(s, func(day time.Time) bool {
		return day.Year() == anchor.Year() && day.Month() == anchor.Month()
	})
}

// YearConsistency is HabitConsistency widened to a whole year; it
// feeds the annual report's strongest/weakest pillars.
func YearConsistency(s State, year int) []ConsistencyEntry {
	return consistency(s, func(day time.Time) bool {
		return day.Year() == year
	})
}

func consistency(s State, include func(time.Time) bool) []ConsistencyEntry {
	out := make([]ConsistencyEntry, 0, len(Catalog))
	for _, h := range Catalog {
		count := 0
		for dateKey, ids := range s.History {
			if !include(ParseDayKey(dateKey)) {
				continue
			}
			for _, id := range ids {
				if id == h.ID {
					count++
					break
				}
			}
		}
		out = append(out, ConsistencyEntry{Name: h.Name, Count: count})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// YearlyAverages returns twelve entries, January to December, each the
// average score across that month's logged days. A month with no
// logged days reports zero.
func YearlyAverages(s State, year int) []ScorePoint {
	out := make([]ScorePoint, 0, 12)
	for m := time.January; m <= time.December; m++ {
		total, days := 0, 0
		for dateKey := range s.History {
			day := ParseDayKey(dateKey)
			if day.Year() != year || day.Month() != m {
				continue
			}
			total += Score(s, dateKey)
			days++
		}
		avg := 0
		if days > 0 {
			avg = int(math.Round(float64(total) / float64(days)))
		}
		out = append(out, ScorePoint{
			Label: time.Date(year, m, 1, 0, 0, 0, 0, time.Local).Format("Jan"),
			Score: avg,
		})
	}
	return out
}

// DisciplinedDays counts the days in year with a perfect score, and
// the number of days that year holds.
func DisciplinedDays(s State, year int) (executed, total int) {
	for dateKey := range s.History {
		if ParseDayKey(dateKey).Year() != year {
			continue
		}
		if Score(s, dateKey) == 100 {
			executed++
		}
	}
	total = 365
	if year%4 == 0 {
		total = 366
	}
	return executed, total
}

// Grade maps a yearly average score onto the report's letter scale.
func Grade(average int) string {
	switch {
	case average >= 90:
		return "A"
	case average >= 80:
		return "B+"
	case average >= 70:
		return "B"
	case average >= 55:
		return "B-"
	case average >= 40:
		return "C"
	case average >= 25:
		return "D"
	default:
		return "F"
	}
}

// YearlyAverage collapses YearlyAverages over months that saw any
// logged days, for the report grade.
func YearlyAverage(s State, year int) int {
	total, months := 0, 0
	for m := time.January; m <= time.December; m++ {
		sum, days := 0, 0
		for dateKey := range s.History {
			day := ParseDayKey(dateKey)
			if day.Year() != year || day.Month() != m {
				continue
			}
			sum += Score(s, dateKey)
			days++
		}
		if days > 0 {
			total += int(math.Round(float64(sum) / float64(days)))
			months++
		}
	}
	if months == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(months)))
}
