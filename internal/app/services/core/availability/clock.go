package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	microsPerSecond int64 = 1000000
	microsPerMinute       = 60 * microsPerSecond
	microsPerHour         = 60 * microsPerMinute
	microsPerDay          = 24 * microsPerHour

	minutesPerDay = 24 * 60
)

// TimeOfDay holds a wall-clock time independent of any date, down to
// microsecond precision. Values are immutable and totally ordered by their
// microsecond-of-day. The zero value is midnight.
type TimeOfDay struct {
	hour        int
	minute      int
	second      int
	millisecond int
	microsecond int
}

// NewTimeOfDay validates every field against its range and returns the value.
// It fails on the first out-of-range field rather than clamping.
func NewTimeOfDay(hour, minute, second, millisecond, microsecond int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("invalid hour %d: must be between 0 and 23", hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid minute %d: must be between 0 and 59", minute)
	}
	if second < 0 || second > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid second %d: must be between 0 and 59", second)
	}
	if millisecond < 0 || millisecond > 999 {
		return TimeOfDay{}, fmt.Errorf("invalid millisecond %d: must be between 0 and 999", millisecond)
	}
	if microsecond < 0 || microsecond > 999 {
		return TimeOfDay{}, fmt.Errorf("invalid microsecond %d: must be between 0 and 999", microsecond)
	}
	return TimeOfDay{
		hour:        hour,
		minute:      minute,
		second:      second,
		millisecond: millisecond,
		microsecond: microsecond,
	}, nil
}

// MustTimeOfDay builds a value with zero sub-second fields and panics on
// invalid input. Intended for fixtures and literals in callers' code.
func MustTimeOfDay(hour, minute, second int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute, second, 0, 0)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay parses "H:MM", "H:MM:SS" or "H:MM:SS.ffffff" (one to six
// fractional digits). An hour component of 24 or more encodes a day overflow:
// the day offset is computed and discarded, keeping only the wrapped hour, so
// duration-shaped inputs like "25:09" parse to 01:09.
func ParseTimeOfDay(text string) (TimeOfDay, error) {
	s := strings.TrimSpace(text)
	base, frac, hasFrac := strings.Cut(s, ".")
	parts := strings.Split(base, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: expected H:MM, H:MM:SS or H:MM:SS.ffffff", text)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: bad hour component %q", text, parts[0])
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: bad minute component %q", text, parts[1])
	}
	second := 0
	if len(parts) == 3 {
		second, err = strconv.Atoi(parts[2])
		if err != nil {
			return TimeOfDay{}, fmt.Errorf("invalid time of day %q: bad second component %q", text, parts[2])
		}
	}
	millisecond, microsecond := 0, 0
	if hasFrac {
		if len(parts) != 3 {
			return TimeOfDay{}, fmt.Errorf("invalid time of day %q: fraction requires a seconds component", text)
		}
		if len(frac) == 0 || len(frac) > 6 {
			return TimeOfDay{}, fmt.Errorf("invalid time of day %q: fraction must have 1 to 6 digits", text)
		}
		padded := frac + strings.Repeat("0", 6-len(frac))
		micros, err := strconv.Atoi(padded)
		if err != nil || micros < 0 {
			return TimeOfDay{}, fmt.Errorf("invalid time of day %q: bad fraction %q", text, frac)
		}
		millisecond = micros / 1000
		microsecond = micros % 1000
	}
	// Day overflow stays out of the value, only the wrapped hour is kept.
	hour = hour % 24
	return NewTimeOfDay(hour, minute, second, millisecond, microsecond)
}

// TimeOfDayOf extracts the wall-clock fields of an absolute timestamp.
func TimeOfDayOf(t time.Time) TimeOfDay {
	nanos := t.Nanosecond()
	return TimeOfDay{
		hour:        t.Hour(),
		minute:      t.Minute(),
		second:      t.Second(),
		millisecond: nanos / 1000000,
		microsecond: (nanos / 1000) % 1000,
	}
}

func (t TimeOfDay) Hour() int        { return t.hour }
func (t TimeOfDay) Minute() int      { return t.minute }
func (t TimeOfDay) Second() int      { return t.second }
func (t TimeOfDay) Millisecond() int { return t.millisecond }
func (t TimeOfDay) Microsecond() int { return t.microsecond }

// MicrosecondOfDay returns the total microseconds since midnight. It defines
// the total order used by Compare, Before, After and Equal.
func (t TimeOfDay) MicrosecondOfDay() int64 {
	return int64(t.hour)*microsPerHour +
		int64(t.minute)*microsPerMinute +
		int64(t.second)*microsPerSecond +
		int64(t.millisecond)*1000 +
		int64(t.microsecond)
}

// MinuteOfDay returns whole minutes since midnight.
func (t TimeOfDay) MinuteOfDay() int {
	return t.hour*60 + t.minute
}

// MinutesUntilMidnight returns the whole minutes left until the next midnight.
func (t TimeOfDay) MinutesUntilMidnight() int {
	return minutesPerDay - t.MinuteOfDay()
}

// Add returns the value shifted by d, wrapped around the 24-hour day. The
// result is valid for any magnitude or sign of d.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	total := (t.MicrosecondOfDay() + d.Microseconds()) % microsPerDay
	if total < 0 {
		total += microsPerDay
	}
	return timeOfDayFromMicros(total)
}

// AddHours returns the value shifted by n hours with 24-hour wrap.
func (t TimeOfDay) AddHours(n int) TimeOfDay {
	return t.Add(time.Duration(n) * time.Hour)
}

// AddMinutes returns the value shifted by n minutes with 24-hour wrap.
func (t TimeOfDay) AddMinutes(n int) TimeOfDay {
	return t.Add(time.Duration(n) * time.Minute)
}

// AddSeconds returns the value shifted by n seconds with 24-hour wrap.
func (t TimeOfDay) AddSeconds(n int) TimeOfDay {
	return t.Add(time.Duration(n) * time.Second)
}

// Compare orders two values by microsecond-of-day: -1, 0 or 1.
func (t TimeOfDay) Compare(other TimeOfDay) int {
	a, b := t.MicrosecondOfDay(), other.MicrosecondOfDay()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (t TimeOfDay) Equal(other TimeOfDay) bool  { return t.Compare(other) == 0 }
func (t TimeOfDay) Before(other TimeOfDay) bool { return t.Compare(other) < 0 }
func (t TimeOfDay) After(other TimeOfDay) bool  { return t.Compare(other) > 0 }

// On materializes the wall-clock time on the given date's calendar day,
// keeping the date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	nanos := (t.millisecond*1000 + t.microsecond) * 1000
	return time.Date(date.Year(), date.Month(), date.Day(), t.hour, t.minute, t.second, nanos, date.Location())
}

// String renders "HH:MM", extended with ":SS" and ".ffffff" only when those
// fields are set, so ParseTimeOfDay(t.String()) round-trips.
func (t TimeOfDay) String() string {
	switch {
	case t.millisecond != 0 || t.microsecond != 0:
		return fmt.Sprintf("%02d:%02d:%02d.%06d", t.hour, t.minute, t.second, t.millisecond*1000+t.microsecond)
	case t.second != 0:
		return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
	default:
		return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
	}
}

func timeOfDayFromMicros(micros int64) TimeOfDay {
	return TimeOfDay{
		hour:        int(micros / microsPerHour),
		minute:      int(micros % microsPerHour / microsPerMinute),
		second:      int(micros % microsPerMinute / microsPerSecond),
		millisecond: int(micros % microsPerSecond / 1000),
		microsecond: int(micros % 1000),
	}
}
