package domain

import "sort"

// Session is one planned training session within a week. Sessions are value
// objects: pipeline stages that change load or notes return updated copies
// rather than mutating shared records.
type Session struct {
	Day         string
	Focus       string
	Intensity   string
	DurationMin int
	LoadUnits   int
	Notes       string
}

// DaysOrder is the canonical weekly day order used for sorting and for
// assigning synthetic sessions to days.
var DaysOrder = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// dayIndexUnknown sorts any non-canonical day after the real week.
const dayIndexUnknown = 99

var dayIndex = func() map[string]int {
	m := make(map[string]int, len(DaysOrder))
	for i, d := range DaysOrder {
		m[d] = i
	}
	return m
}()

// DayIndex returns the sort index of a day, or 99 for unrecognized values.
func DayIndex(day string) int {
	if i, ok := dayIndex[day]; ok {
		return i
	}
	return dayIndexUnknown
}

// ValidDay reports whether day is one of the canonical Mon..Sun symbols.
func ValidDay(day string) bool {
	_, ok := dayIndex[day]
	return ok
}

// SortByDay orders sessions by canonical day index. The sort is stable, so
// two sessions sharing a day keep their relative insertion order.
func SortByDay(sessions []Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return DayIndex(sessions[i].Day) < DayIndex(sessions[j].Day)
	})
}

// TotalLoad sums load units across the week.
func TotalLoad(sessions []Session) int {
	total := 0
	for _, s := range sessions {
		total += s.LoadUnits
	}
	return total
}

// TotalMinutes sums planned minutes across the week.
func TotalMinutes(sessions []Session) int {
	total := 0
	for _, s := range sessions {
		total += s.DurationMin
	}
	return total
}

// CloneSessions returns an independent copy of a session list.
func CloneSessions(sessions []Session) []Session {
	out := make([]Session, len(sessions))
	copy(out, sessions)
	return out
}
