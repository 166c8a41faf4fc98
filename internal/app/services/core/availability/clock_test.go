package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeOfDay(t *testing.T) {
	t.Run("Valid Fields", func(t *testing.T) {
		v, err := NewTimeOfDay(9, 30, 15, 123, 456)

		assert.NoError(t, err)
		assert.Equal(t, 9, v.Hour(), "hour should be kept")
		assert.Equal(t, 30, v.Minute(), "minute should be kept")
		assert.Equal(t, 15, v.Second(), "second should be kept")
		assert.Equal(t, 123, v.Millisecond(), "millisecond should be kept")
		assert.Equal(t, 456, v.Microsecond(), "microsecond should be kept")
	})

	t.Run("Hour Out Of Range", func(t *testing.T) {
		_, err := NewTimeOfDay(24, 0, 0, 0, 0)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "hour", "error should name the offending field")
	})

	t.Run("Minute Out Of Range", func(t *testing.T) {
		_, err := NewTimeOfDay(10, 60, 0, 0, 0)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "minute", "error should name the offending field")
	})

	t.Run("Second Out Of Range", func(t *testing.T) {
		_, err := NewTimeOfDay(10, 0, -1, 0, 0)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "second", "error should name the offending field")
	})

	t.Run("Millisecond Out Of Range", func(t *testing.T) {
		_, err := NewTimeOfDay(10, 0, 0, 1000, 0)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "millisecond", "error should name the offending field")
	})

	t.Run("Microsecond Out Of Range", func(t *testing.T) {
		_, err := NewTimeOfDay(10, 0, 0, 0, 1000)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "microsecond", "error should name the offending field")
	})
}

func TestParseTimeOfDay(t *testing.T) {
	t.Run("Hour And Minute", func(t *testing.T) {
		v, err := ParseTimeOfDay("9:30")

		assert.NoError(t, err)
		assert.True(t, v.Equal(MustTimeOfDay(9, 30, 0)), "9:30 should parse to 09:30")
	})

	t.Run("With Seconds", func(t *testing.T) {
		v, err := ParseTimeOfDay("09:30:15")

		assert.NoError(t, err)
		assert.True(t, v.Equal(MustTimeOfDay(9, 30, 15)), "seconds component should be kept")
	})

	t.Run("With Fraction", func(t *testing.T) {
		v, err := ParseTimeOfDay("09:30:15.123456")

		assert.NoError(t, err)
		assert.Equal(t, 123, v.Millisecond(), "first three fraction digits are milliseconds")
		assert.Equal(t, 456, v.Microsecond(), "last three fraction digits are microseconds")
	})

	t.Run("Short Fraction Is Right Padded", func(t *testing.T) {
		v, err := ParseTimeOfDay("09:30:15.5")

		assert.NoError(t, err)
		assert.Equal(t, 500, v.Millisecond(), ".5 means 500 milliseconds")
		assert.Equal(t, 0, v.Microsecond())
	})

	t.Run("Day Overflow Hour Wraps", func(t *testing.T) {
		v, err := ParseTimeOfDay("25:09")

		assert.NoError(t, err)
		assert.True(t, v.Equal(MustTimeOfDay(1, 9, 0)), "hour 25 keeps only the wrapped hour 1")
	})

	t.Run("Invalid Inputs", func(t *testing.T) {
		for _, text := range []string{
			"",
			"9",
			"ab:cd",
			"9:61",
			"-1:30",
			"9:30:61",
			"9:30.5",
			"9:30:15.1234567",
			"9:30:15.",
		} {
			_, err := ParseTimeOfDay(text)
			assert.Error(t, err, "input %q should be rejected", text)
		}
	})
}

func TestTimeOfDayRoundTrip(t *testing.T) {
	values := []TimeOfDay{
		MustTimeOfDay(0, 0, 0),
		MustTimeOfDay(9, 30, 0),
		MustTimeOfDay(23, 59, 59),
		mustParse(t, "12:00:00.000001"),
		mustParse(t, "07:05:09.123456"),
	}

	for _, v := range values {
		parsed, err := ParseTimeOfDay(v.String())

		assert.NoError(t, err)
		assert.True(t, parsed.Equal(v), "parse(format(%s)) should round-trip", v)
	}
}

func TestTimeOfDayAdd(t *testing.T) {
	t.Run("Simple Add", func(t *testing.T) {
		v := MustTimeOfDay(9, 0, 0).Add(90 * time.Minute)

		assert.True(t, v.Equal(MustTimeOfDay(10, 30, 0)), "09:00 + 90m should be 10:30")
	})

	t.Run("Wraps Past Midnight", func(t *testing.T) {
		v := MustTimeOfDay(23, 45, 0).Add(30 * time.Minute)

		assert.True(t, v.Equal(MustTimeOfDay(0, 15, 0)), "23:45 + 30m should wrap to 00:15")
	})

	t.Run("Negative Wraps Backward", func(t *testing.T) {
		v := MustTimeOfDay(0, 30, 0).Add(-time.Hour)

		assert.True(t, v.Equal(MustTimeOfDay(23, 30, 0)), "00:30 - 1h should wrap to 23:30")
	})

	t.Run("Result Always Valid", func(t *testing.T) {
		start := MustTimeOfDay(13, 37, 21)
		for _, d := range []time.Duration{
			0,
			time.Microsecond,
			-time.Microsecond,
			26 * time.Hour,
			-1000 * time.Hour,
			365 * 24 * time.Hour,
		} {
			v := start.Add(d)

			_, err := NewTimeOfDay(v.Hour(), v.Minute(), v.Second(), v.Millisecond(), v.Microsecond())
			assert.NoError(t, err, "adding %s should keep every field in range", d)
		}
	})

	t.Run("Field Helpers", func(t *testing.T) {
		v := MustTimeOfDay(22, 0, 0)

		assert.True(t, v.AddHours(3).Equal(MustTimeOfDay(1, 0, 0)), "22:00 + 3h should wrap to 01:00")
		assert.True(t, v.AddMinutes(-30).Equal(MustTimeOfDay(21, 30, 0)))
		assert.True(t, v.AddSeconds(61).Equal(MustTimeOfDay(22, 1, 1)))
	})
}

func TestTimeOfDayOrdering(t *testing.T) {
	early := MustTimeOfDay(8, 0, 0)
	late := MustTimeOfDay(17, 30, 0)

	assert.True(t, early.Before(late))
	assert.True(t, late.After(early))
	assert.False(t, early.Equal(late))
	assert.Equal(t, -1, early.Compare(late))
	assert.Equal(t, 1, late.Compare(early))
	assert.Equal(t, 0, early.Compare(MustTimeOfDay(8, 0, 0)))
}

func TestMinutesUntilMidnight(t *testing.T) {
	assert.Equal(t, 1440, MustTimeOfDay(0, 0, 0).MinutesUntilMidnight(), "midnight has a full day left")
	assert.Equal(t, 720, MustTimeOfDay(12, 0, 0).MinutesUntilMidnight())
	assert.Equal(t, 1, MustTimeOfDay(23, 59, 0).MinutesUntilMidnight())
}

func TestTimeOfDayOn(t *testing.T) {
	date := time.Date(2024, time.January, 8, 18, 45, 0, 0, time.UTC)

	materialized := MustTimeOfDay(9, 30, 15).On(date)

	assert.Equal(t, time.Date(2024, time.January, 8, 9, 30, 15, 0, time.UTC), materialized,
		"On should keep the date's day and location and replace the clock fields")
}

func TestTimeOfDayOf(t *testing.T) {
	ts := time.Date(2024, time.January, 8, 9, 30, 15, 123456000, time.UTC)

	v := TimeOfDayOf(ts)

	assert.True(t, v.Equal(mustParse(t, "09:30:15.123456")), "clock fields should be extracted from the timestamp")
}

func mustParse(t *testing.T, text string) TimeOfDay {
	t.Helper()
	v, err := ParseTimeOfDay(text)
	assert.NoError(t, err)
	return v
}
