package availability

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// BusinessCalendar is an immutable set of working weekdays plus holiday
// dates. Holidays are normalized to start-of-day at construction so the
// time-of-day of a supplied timestamp never affects membership. The zero
// value is not usable; build calendars with NewBusinessCalendar,
// DefaultBusinessCalendar or the With* copies.
type BusinessCalendar struct {
	holidays map[int]time.Time
	weekdays map[time.Weekday]struct{}
}

// NewBusinessCalendar builds a calendar. The working weekday set must not be
// empty: the unbounded day scans terminate because every 7-day stretch holds
// at least one eligible weekday.
func NewBusinessCalendar(holidays []time.Time, workingWeekdays []time.Weekday) (BusinessCalendar, error) {
	if len(workingWeekdays) == 0 {
		return BusinessCalendar{}, errors.New("working weekdays must not be empty")
	}
	wds := make(map[time.Weekday]struct{}, len(workingWeekdays))
	for _, wd := range workingWeekdays {
		if wd < time.Sunday || wd > time.Saturday {
			return BusinessCalendar{}, fmt.Errorf("invalid weekday %d: must be between %d (Sunday) and %d (Saturday)", wd, time.Sunday, time.Saturday)
		}
		wds[wd] = struct{}{}
	}
	hs := make(map[int]time.Time, len(holidays))
	for _, h := range holidays {
		day := dayStart(h)
		hs[dayKey(day)] = day
	}
	return BusinessCalendar{holidays: hs, weekdays: wds}, nil
}

// DefaultBusinessCalendar is Monday through Friday with no holidays.
func DefaultBusinessCalendar() BusinessCalendar {
	c, _ := NewBusinessCalendar(nil, []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
	})
	return c
}

// WithHolidays returns a copy of the calendar with the holiday set replaced.
func (c BusinessCalendar) WithHolidays(holidays ...time.Time) BusinessCalendar {
	replaced, _ := NewBusinessCalendar(holidays, c.WorkingWeekdays())
	return replaced
}

// WithWorkingWeekdays returns a copy of the calendar with the working weekday
// set replaced, re-validating the non-empty invariant.
func (c BusinessCalendar) WithWorkingWeekdays(workingWeekdays ...time.Weekday) (BusinessCalendar, error) {
	return NewBusinessCalendar(c.Holidays(), workingWeekdays)
}

// Holidays returns the normalized holiday dates in chronological order.
func (c BusinessCalendar) Holidays() []time.Time {
	out := make([]time.Time, 0, len(c.holidays))
	for _, h := range c.holidays {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// WorkingWeekdays returns the working weekday set in Sunday-first order.
func (c BusinessCalendar) WorkingWeekdays() []time.Weekday {
	out := make([]time.Weekday, 0, len(c.weekdays))
	for wd := range c.weekdays {
		out = append(out, wd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsHoliday reports holiday membership at day granularity.
func (c BusinessCalendar) IsHoliday(date time.Time) bool {
	_, ok := c.holidays[dayKey(date)]
	return ok
}

// IsWorkingDay reports whether the date's weekday is in the working set and
// the date is not a holiday.
func (c BusinessCalendar) IsWorkingDay(date time.Time) bool {
	if _, ok := c.weekdays[date.Weekday()]; !ok {
		return false
	}
	return !c.IsHoliday(date)
}

// NextWorkingDay scans forward one day at a time from the day after date and
// returns the first working day's start.
func (c BusinessCalendar) NextWorkingDay(date time.Time) time.Time {
	d := dayStart(date)
	for {
		d = d.AddDate(0, 0, 1)
		if c.IsWorkingDay(d) {
			return d
		}
	}
}

// PreviousWorkingDay scans backward one day at a time from the day before
// date and returns the first working day's start.
func (c BusinessCalendar) PreviousWorkingDay(date time.Time) time.Time {
	d := dayStart(date)
	for {
		d = d.AddDate(0, 0, -1)
		if c.IsWorkingDay(d) {
			return d
		}
	}
}

// NextWorkingDayWithLimit is NextWorkingDay bounded to maxDays steps. The
// second result is false when no working day exists within the bound; that is
// an expected outcome, not an error.
func (c BusinessCalendar) NextWorkingDayWithLimit(date time.Time, maxDays int) (time.Time, bool, error) {
	if maxDays <= 0 {
		return time.Time{}, false, fmt.Errorf("invalid maxDays %d: must be positive", maxDays)
	}
	d := dayStart(date)
	for i := 0; i < maxDays; i++ {
		d = d.AddDate(0, 0, 1)
		if c.IsWorkingDay(d) {
			return d, true, nil
		}
	}
	return time.Time{}, false, nil
}

// PreviousWorkingDayWithLimit is PreviousWorkingDay bounded to maxDays steps.
func (c BusinessCalendar) PreviousWorkingDayWithLimit(date time.Time, maxDays int) (time.Time, bool, error) {
	if maxDays <= 0 {
		return time.Time{}, false, fmt.Errorf("invalid maxDays %d: must be positive", maxDays)
	}
	d := dayStart(date)
	for i := 0; i < maxDays; i++ {
		d = d.AddDate(0, 0, -1)
		if c.IsWorkingDay(d) {
			return d, true, nil
		}
	}
	return time.Time{}, false, nil
}

// WorkingDaysBetween enumerates the working days between start and end at day
// granularity. Inclusive covers [start, end]; exclusive drops both endpoint
// days. Fails when start orders after end.
func (c BusinessCalendar) WorkingDaysBetween(start, end time.Time, inclusive bool) ([]time.Time, error) {
	s, e := dayStart(start), dayStart(end)
	if s.After(e) {
		return nil, fmt.Errorf("invalid range: start %s is after end %s",
			s.Format(time.DateOnly), e.Format(time.DateOnly))
	}
	if !inclusive {
		s = s.AddDate(0, 0, 1)
		e = e.AddDate(0, 0, -1)
	}
	var days []time.Time
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		if c.IsWorkingDay(d) {
			days = append(days, d)
		}
	}
	return days, nil
}

// IsWorkingPeriod reports whether every day in the inclusive range is a
// working day, short-circuiting on the first violation. An empty range is
// vacuously working.
func (c BusinessCalendar) IsWorkingPeriod(start, end time.Time) bool {
	e := dayStart(end)
	for d := dayStart(start); !d.After(e); d = d.AddDate(0, 0, 1) {
		if !c.IsWorkingDay(d) {
			return false
		}
	}
	return true
}

// dayStart truncates a timestamp to midnight in its own location.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
