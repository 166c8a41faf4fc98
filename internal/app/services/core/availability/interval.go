package availability

import (
	"fmt"
	"iter"
	"time"
)

// Interval is an absolute interval between two timestamps, inclusive on both
// ends. Start never orders after End; the ordering is enforced by NewInterval
// and preserved by every derived operation.
type Interval struct {
	start time.Time
	end   time.Time
}

// BusySlot is an already-committed interval supplied by the caller. The
// engine never mutates busy slots.
type BusySlot = Interval

// NewInterval validates the ordering and returns the interval.
func NewInterval(start, end time.Time) (Interval, error) {
	if start.After(end) {
		return Interval{}, fmt.Errorf("invalid interval: start %s is after end %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return Interval{start: start, end: end}, nil
}

func (iv Interval) Start() time.Time { return iv.start }
func (iv Interval) End() time.Time   { return iv.end }

// Duration returns the interval length.
func (iv Interval) Duration() time.Duration {
	return iv.end.Sub(iv.start)
}

// Includes reports whether t lies in [Start, End], inclusive on both ends.
func (iv Interval) Includes(t time.Time) bool {
	return !t.Before(iv.start) && !t.After(iv.end)
}

// Overlaps reports whether the two intervals share at least one instant.
// The test is endpoint-inclusive: intervals that merely touch at a boundary
// count as overlapping. The converse containment check covers the case where
// other strictly straddles the receiver.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Includes(other.start) || iv.Includes(other.end) || other.Includes(iv.start)
}

// Contains reports whether other lies entirely inside the receiver.
func (iv Interval) Contains(other Interval) bool {
	return iv.Includes(other.start) && iv.Includes(other.end)
}

// Merge returns the bounding interval spanning the earliest start and latest
// end of both. For disjoint inputs the gap between them is included, so this
// is a bounding merge rather than a set union.
func (iv Interval) Merge(other Interval) Interval {
	merged := iv
	if other.start.Before(merged.start) {
		merged.start = other.start
	}
	if other.end.After(merged.end) {
		merged.end = other.end
	}
	return merged
}

// Extend widens the interval by the given durations on each side. Negative
// durations narrow it and fail when the result would invert the ordering.
func (iv Interval) Extend(before, after time.Duration) (Interval, error) {
	return NewInterval(iv.start.Add(-before), iv.end.Add(after))
}

// Sequence returns a lazy, finite sequence of timestamps Start, Start+step,
// ... truncated to not exceed End. Ranging over it again restarts from Start.
func (iv Interval) Sequence(step time.Duration) (iter.Seq[time.Time], error) {
	if step <= 0 {
		return nil, fmt.Errorf("invalid step %s: must be positive", step)
	}
	return func(yield func(time.Time) bool) {
		for t := iv.start; !t.After(iv.end); t = t.Add(step) {
			if !yield(t) {
				return
			}
		}
	}, nil
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%s, %s]", iv.start.Format(time.RFC3339), iv.end.Format(time.RFC3339))
}
