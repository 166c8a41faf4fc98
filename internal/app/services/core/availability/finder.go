package availability

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

const (
	// DefaultSlotInterval is the candidate-start granularity applied when a
	// query leaves the interval unset.
	DefaultSlotInterval = 15 * time.Minute
	// DefaultSearchLimitDays bounds the forward search horizon of
	// FindNextSlot when the query leaves the limit unset.
	DefaultSearchLimitDays = 30
)

// NextSlotQuery describes a first-fit search for a single free slot.
type NextSlotQuery struct {
	// From anchors the search; the first examined candidate never starts
	// before it.
	From time.Time
	// SlotDuration is the required slot length. Must be positive.
	SlotDuration time.Duration
	// SlotInterval is the candidate-start granularity. Must be positive.
	SlotInterval time.Duration
	// BusySlots are already-committed intervals; the engine reads them only.
	BusySlots []BusySlot
	// WindowsFor maps a date to that day's availability windows.
	WindowsFor func(date time.Time) []TimeWindow
	// Calendar, when non-nil, excludes non-working days from the search.
	Calendar *BusinessCalendar
	// SearchLimitDays bounds the horizon in calendar days; values <= 0 mean
	// DefaultSearchLimitDays.
	SearchLimitDays int
}

// SlotListQuery describes an exhaustive slot listing over a fixed period.
type SlotListQuery struct {
	// Period bounds the listing; every returned slot's entire duration lies
	// inside it.
	Period Interval
	// SlotDuration is the required slot length. Must be positive.
	SlotDuration time.Duration
	// SlotInterval is the candidate-start granularity; zero means
	// DefaultSlotInterval.
	SlotInterval time.Duration
	BusySlots    []BusySlot
	WindowsFor   func(date time.Time) []TimeWindow
	Calendar     *BusinessCalendar
	// MaxSlots caps the result count when positive.
	MaxSlots int
}

// FindNextSlot walks candidate days from the anchor, skips non-working days,
// resolves each day's windows and returns the first conflict-free slot start
// in window order within day order. A false second result means the horizon
// was exhausted, which is an expected outcome rather than an error.
func FindNextSlot(q NextSlotQuery) (time.Time, bool, error) {
	if q.SlotDuration <= 0 {
		return time.Time{}, false, fmt.Errorf("invalid slot duration %s: must be positive", q.SlotDuration)
	}
	if q.SlotInterval <= 0 {
		return time.Time{}, false, fmt.Errorf("invalid slot interval %s: must be positive", q.SlotInterval)
	}
	if q.WindowsFor == nil {
		return time.Time{}, false, errors.New("windows function is required")
	}
	limit := q.SearchLimitDays
	if limit <= 0 {
		limit = DefaultSearchLimitDays
	}
	searchEnd := q.From.AddDate(0, 0, limit)
	busy := sortedBusyBefore(q.BusySlots, searchEnd)

	for cursor := q.From; cursor.Before(searchEnd); cursor = dayStart(cursor).AddDate(0, 0, 1) {
		if q.Calendar != nil && !q.Calendar.IsWorkingDay(cursor) {
			continue
		}
		for _, w := range q.WindowsFor(cursor) {
			window := w.Resolve(cursor)
			scan := window.start
			if scan.Before(cursor) {
				scan = cursor
			}
			for !scan.Add(q.SlotDuration).After(window.end) {
				candidate := Interval{start: scan, end: scan.Add(q.SlotDuration)}
				if !conflictsWithAny(candidate, busy) {
					return scan, true, nil
				}
				scan = scan.Add(q.SlotInterval)
			}
		}
	}
	return time.Time{}, false, nil
}

// FindAvailableSlots runs the same per-day, per-window scan as FindNextSlot
// but exhaustively over the query period, collecting every conflict-free
// candidate start whose entire duration fits inside the period. Results are
// chronological and no two share a start, even when the supplied windows
// overlap each other or cross midnight into a day with its own windows.
func FindAvailableSlots(q SlotListQuery) ([]time.Time, error) {
	if q.SlotDuration <= 0 {
		return nil, fmt.Errorf("invalid slot duration %s: must be positive", q.SlotDuration)
	}
	interval := q.SlotInterval
	if interval == 0 {
		interval = DefaultSlotInterval
	}
	if interval < 0 {
		return nil, fmt.Errorf("invalid slot interval %s: must be positive", q.SlotInterval)
	}
	if q.WindowsFor == nil {
		return nil, errors.New("windows function is required")
	}
	busy := sortedBusyBefore(q.BusySlots, q.Period.end)

	var slots []time.Time
	for cursor := q.Period.start; cursor.Before(q.Period.end); cursor = dayStart(cursor).AddDate(0, 0, 1) {
		if q.Calendar != nil && !q.Calendar.IsWorkingDay(cursor) {
			continue
		}
		for _, w := range q.WindowsFor(cursor) {
			window := w.Resolve(cursor)
			scan := window.start
			if scan.Before(cursor) {
				scan = cursor
			}
			windowEnd := window.end
			if windowEnd.After(q.Period.end) {
				windowEnd = q.Period.end
			}
			for !scan.Add(q.SlotDuration).After(windowEnd) {
				candidate := Interval{start: scan, end: scan.Add(q.SlotDuration)}
				if !conflictsWithAny(candidate, busy) {
					slots = append(slots, scan)
				}
				scan = scan.Add(interval)
			}
		}
	}
	// Overnight windows spill candidates past midnight into the next day's
	// scan, and overlapping windows can revisit the same start, so ordering
	// and de-duplication are global. The cap applies to the ordered result.
	sort.Slice(slots, func(i, j int) bool { return slots[i].Before(slots[j]) })
	unique := slots[:0]
	for _, t := range slots {
		if len(unique) > 0 && t.Equal(unique[len(unique)-1]) {
			continue
		}
		unique = append(unique, t)
	}
	if q.MaxSlots > 0 && len(unique) > q.MaxSlots {
		unique = unique[:q.MaxSlots]
	}
	return unique, nil
}

// sortedBusyBefore keeps the busy slots starting before the horizon and sorts
// them ascending by start. The sort is what lets conflictsWithAny stop early.
func sortedBusyBefore(busy []BusySlot, horizon time.Time) []BusySlot {
	kept := make([]BusySlot, 0, len(busy))
	for _, b := range busy {
		if b.start.Before(horizon) {
			kept = append(kept, b)
		}
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].start.Before(kept[j].start) })
	return kept
}

// conflictsWithAny tests a candidate against a busy list pre-sorted by start.
// Once a busy slot starts at or past the candidate's end, no later one can
// conflict, so the loop breaks. Overlap here is strict: touching a busy
// boundary does not conflict.
func conflictsWithAny(candidate Interval, sorted []BusySlot) bool {
	for _, b := range sorted {
		if !b.start.Before(candidate.end) {
			break
		}
		if b.end.After(candidate.start) && candidate.end.After(b.start) {
			return true
		}
	}
	return false
}
