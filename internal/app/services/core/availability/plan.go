package availability

import (
	"fmt"
	"strings"
	"time"
)

// WeekPlan lists zero or more windows per weekday. Its WindowsFor method
// satisfies the scheduler queries' WindowsFor field directly.
type WeekPlan map[time.Weekday][]TimeWindow

// PlanEntry is one wire-shaped availability rule: day tokens plus clock
// strings. Overnight windows (end before start) are allowed.
type PlanEntry struct {
	Days  []string
	Start string
	End   string
}

// BuildWeekPlan maps wire-shaped entries to a WeekPlan. It validates strictly
// and fails fast on the first invalid entry so a bad rule surfaces instead of
// silently shrinking availability.
func BuildWeekPlan(entries []PlanEntry) (WeekPlan, error) {
	wp := make(WeekPlan)
	for i, e := range entries {
		if len(e.Days) == 0 {
			return nil, fmt.Errorf("plan entry %d: empty days", i)
		}
		start, err := ParseTimeOfDay(e.Start)
		if err != nil {
			return nil, fmt.Errorf("plan entry %d: invalid start time %q: %w", i, e.Start, err)
		}
		end, err := ParseTimeOfDay(e.End)
		if err != nil {
			return nil, fmt.Errorf("plan entry %d: invalid end time %q: %w", i, e.End, err)
		}
		w := TimeWindow{Start: start, End: end}
		for _, tok := range e.Days {
			wd, err := ParseWeekday(tok)
			if err != nil {
				return nil, fmt.Errorf("plan entry %d: %w", i, err)
			}
			wp[wd] = append(wp[wd], w)
		}
	}
	return wp, nil
}

// WindowsFor returns the windows planned for the date's weekday.
func (wp WeekPlan) WindowsFor(date time.Time) []TimeWindow {
	return wp[date.Weekday()]
}

// ParseWeekday maps a day token to a weekday. English names, common
// abbreviations and ISO numerals (1=Monday .. 7=Sunday) are accepted.
func ParseWeekday(token string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "mon", "monday", "1":
		return time.Monday, nil
	case "tue", "tues", "tuesday", "2":
		return time.Tuesday, nil
	case "wed", "wednesday", "3":
		return time.Wednesday, nil
	case "thu", "thur", "thurs", "thursday", "4":
		return time.Thursday, nil
	case "fri", "friday", "5":
		return time.Friday, nil
	case "sat", "saturday", "6":
		return time.Saturday, nil
	case "sun", "sunday", "7":
		return time.Sunday, nil
	}
	return time.Sunday, fmt.Errorf("unknown day token %q", token)
}
