package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2024-01-08 is a Monday.
func january(day, hour, minute int) time.Time {
	return time.Date(2024, time.January, day, hour, minute, 0, 0, time.UTC)
}

func TestNewBusinessCalendar(t *testing.T) {
	t.Run("Empty Working Weekdays Fail", func(t *testing.T) {
		_, err := NewBusinessCalendar(nil, nil)

		assert.Error(t, err, "the non-empty weekday invariant is what guarantees scan termination")
	})

	t.Run("Out Of Range Weekday Fails", func(t *testing.T) {
		_, err := NewBusinessCalendar(nil, []time.Weekday{time.Weekday(7)})

		assert.Error(t, err)
	})

	t.Run("Holidays Are Normalized To Day Start", func(t *testing.T) {
		c, err := NewBusinessCalendar([]time.Time{january(9, 14, 30)}, []time.Weekday{time.Monday, time.Tuesday})

		assert.NoError(t, err)
		assert.True(t, c.IsHoliday(january(9, 0, 0)), "membership should ignore the stored time of day")
		assert.True(t, c.IsHoliday(january(9, 23, 59)), "membership should ignore the queried time of day")
		assert.False(t, c.IsHoliday(january(10, 14, 30)))
	})
}

func TestDefaultBusinessCalendar(t *testing.T) {
	c := DefaultBusinessCalendar()

	assert.True(t, c.IsWorkingDay(january(8, 0, 0)), "Monday should be working")
	assert.True(t, c.IsWorkingDay(january(12, 0, 0)), "Friday should be working")
	assert.False(t, c.IsWorkingDay(january(13, 0, 0)), "Saturday should not be working")
	assert.False(t, c.IsWorkingDay(january(14, 0, 0)), "Sunday should not be working")
}

func TestBusinessCalendarHolidayOverride(t *testing.T) {
	c := DefaultBusinessCalendar().WithHolidays(january(9, 0, 0))

	assert.False(t, c.IsWorkingDay(january(9, 10, 0)), "a holiday on a working weekday is not a working day")
	assert.True(t, c.IsWorkingDay(january(16, 10, 0)), "the same weekday in another week stays working")
}

func TestBusinessCalendarNavigation(t *testing.T) {
	c := DefaultBusinessCalendar()

	t.Run("Next From Friday Skips The Weekend", func(t *testing.T) {
		next := c.NextWorkingDay(january(12, 16, 0))

		assert.Equal(t, january(15, 0, 0), next, "the Monday after should be returned at day start")
	})

	t.Run("Next From Saturday", func(t *testing.T) {
		assert.Equal(t, january(15, 0, 0), c.NextWorkingDay(january(13, 0, 0)))
	})

	t.Run("Previous From Monday Skips The Weekend", func(t *testing.T) {
		assert.Equal(t, january(12, 0, 0), c.PreviousWorkingDay(january(15, 9, 0)))
	})

	t.Run("Holidays Extend The Scan", func(t *testing.T) {
		withHoliday := c.WithHolidays(january(15, 0, 0))

		assert.Equal(t, january(16, 0, 0), withHoliday.NextWorkingDay(january(12, 0, 0)))
	})
}

func TestBusinessCalendarNavigationWithLimit(t *testing.T) {
	mondaysOnly, err := NewBusinessCalendar(nil, []time.Weekday{time.Monday})
	assert.NoError(t, err)

	t.Run("Found Within Limit", func(t *testing.T) {
		d, found, err := mondaysOnly.NextWorkingDayWithLimit(january(9, 0, 0), 7)

		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, january(15, 0, 0), d)
	})

	t.Run("Not Found Is Not An Error", func(t *testing.T) {
		_, found, err := mondaysOnly.NextWorkingDayWithLimit(january(9, 0, 0), 3)

		assert.NoError(t, err, "an exhausted limit is an expected outcome")
		assert.False(t, found)
	})

	t.Run("Previous Within Limit", func(t *testing.T) {
		d, found, err := mondaysOnly.PreviousWorkingDayWithLimit(january(11, 0, 0), 7)

		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, january(8, 0, 0), d)
	})

	t.Run("Non-Positive MaxDays Fails", func(t *testing.T) {
		_, _, err := mondaysOnly.NextWorkingDayWithLimit(january(9, 0, 0), 0)
		assert.Error(t, err)

		_, _, err = mondaysOnly.PreviousWorkingDayWithLimit(january(9, 0, 0), -1)
		assert.Error(t, err)
	})
}

func TestWorkingDaysBetween(t *testing.T) {
	c := DefaultBusinessCalendar()

	t.Run("Inclusive Week", func(t *testing.T) {
		days, err := c.WorkingDaysBetween(january(8, 9, 0), january(14, 18, 0), true)

		assert.NoError(t, err)
		assert.Len(t, days, 5, "Monday through Friday should be enumerated")
		assert.Equal(t, january(8, 0, 0), days[0])
		assert.Equal(t, january(12, 0, 0), days[4])
	})

	t.Run("Exclusive Drops Both Endpoint Days", func(t *testing.T) {
		days, err := c.WorkingDaysBetween(january(8, 0, 0), january(12, 0, 0), false)

		assert.NoError(t, err)
		assert.Len(t, days, 3, "only Tuesday through Thursday remain")
	})

	t.Run("Holidays Are Excluded", func(t *testing.T) {
		days, err := c.WithHolidays(january(10, 0, 0)).WorkingDaysBetween(january(8, 0, 0), january(12, 0, 0), true)

		assert.NoError(t, err)
		assert.Len(t, days, 4)
	})

	t.Run("Inverted Range Fails", func(t *testing.T) {
		_, err := c.WorkingDaysBetween(january(12, 0, 0), january(8, 0, 0), true)

		assert.Error(t, err)
	})
}

func TestIsWorkingPeriod(t *testing.T) {
	c := DefaultBusinessCalendar()

	assert.True(t, c.IsWorkingPeriod(january(8, 9, 0), january(12, 17, 0)), "Monday to Friday is all working")
	assert.False(t, c.IsWorkingPeriod(january(8, 9, 0), january(13, 17, 0)), "a Saturday in the range breaks the period")
	assert.False(t, c.WithHolidays(january(10, 0, 0)).IsWorkingPeriod(january(8, 0, 0), january(12, 0, 0)))
	assert.True(t, c.IsWorkingPeriod(january(12, 0, 0), january(8, 0, 0)), "an empty range is vacuously working")
}

func TestBusinessCalendarCopies(t *testing.T) {
	base := DefaultBusinessCalendar()

	t.Run("WithHolidays Replaces The Set", func(t *testing.T) {
		first := base.WithHolidays(january(9, 0, 0))
		second := first.WithHolidays(january(10, 0, 0))

		assert.True(t, first.IsHoliday(january(9, 0, 0)))
		assert.False(t, second.IsHoliday(january(9, 0, 0)), "the earlier holiday set should be replaced, not merged")
		assert.False(t, base.IsHoliday(january(9, 0, 0)), "the original calendar stays untouched")
	})

	t.Run("WithWorkingWeekdays Revalidates", func(t *testing.T) {
		weekend, err := base.WithWorkingWeekdays(time.Saturday, time.Sunday)

		assert.NoError(t, err)
		assert.True(t, weekend.IsWorkingDay(january(13, 0, 0)))
		assert.False(t, weekend.IsWorkingDay(january(8, 0, 0)))

		_, err = base.WithWorkingWeekdays()
		assert.Error(t, err, "clearing the weekday set should fail")
	})

	t.Run("Accessors Are Sorted", func(t *testing.T) {
		c, err := NewBusinessCalendar(
			[]time.Time{january(10, 0, 0), january(9, 0, 0)},
			[]time.Weekday{time.Friday, time.Monday},
		)

		assert.NoError(t, err)
		assert.Equal(t, []time.Time{january(9, 0, 0), january(10, 0, 0)}, c.Holidays())
		assert.Equal(t, []time.Weekday{time.Monday, time.Friday}, c.WorkingWeekdays())
	})
}
