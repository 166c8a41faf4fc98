package availability

import (
	"fmt"
	"time"
)

// TimeWindow is a recurring daily span between two wall-clock times. End
// before Start is meaningful and denotes a window crossing midnight, so no
// ordering is imposed on the pair.
type TimeWindow struct {
	Start TimeOfDay
	End   TimeOfDay
}

// IsOvernight reports whether the window crosses midnight.
func (w TimeWindow) IsOvernight() bool {
	return w.End.Before(w.Start)
}

// Duration returns the window length, counting across midnight for overnight
// windows. A window with equal endpoints is empty.
func (w TimeWindow) Duration() time.Duration {
	micros := w.End.MicrosecondOfDay() - w.Start.MicrosecondOfDay()
	if micros < 0 {
		micros += microsPerDay
	}
	return time.Duration(micros) * time.Microsecond
}

// Resolve materializes the window on the given date's calendar day. For an
// overnight window the end lands on the following day, so the result always
// satisfies the interval ordering invariant.
func (w TimeWindow) Resolve(date time.Time) Interval {
	s := w.Start.On(date)
	e := w.End.On(date)
	if w.End.Before(w.Start) {
		e = e.AddDate(0, 0, 1)
	}
	return Interval{start: s, end: e}
}

// Includes reports whether the timestamp falls inside the window resolved
// against the timestamp's own date. For overnight windows the previous day's
// resolution is also checked, so the early-morning wrapped portion counts.
func (w TimeWindow) Includes(t time.Time) bool {
	if w.Resolve(t).Includes(t) {
		return true
	}
	if w.IsOvernight() {
		return w.Resolve(t.AddDate(0, 0, -1)).Includes(t)
	}
	return false
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("%s-%s", w.Start, w.End)
}
