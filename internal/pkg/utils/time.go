package utils

import (
	"availability-service/internal/pkg/exceptions"
	"time"
)

const (
	// TimestampLayout is the wire layout for absolute timestamps. It carries
	// no zone designator: timestamps are naive and interpreted in the
	// service's configured location.
	TimestampLayout = "2006-01-02T15:04:05"
	// DateLayout is the wire layout for calendar dates.
	DateLayout = "2006-01-02"
)

func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(TimestampLayout, value, loc)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseTime(err)
	}
	return t, nil
}

func ParseDate(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseTime(err)
	}
	return t, nil
}

func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
