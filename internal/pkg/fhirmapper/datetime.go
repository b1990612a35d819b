package fhirmapper

import (
	"errors"
	"time"
)

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

var errUnparsableDateTime = errors.New("unrecognised date-time layout")

// ParseDateTime accepts RFC 3339 and the zone-less layouts produced by
// datetime-local inputs. The matching layout is returned so derived values
// can be written back in the caller's own format.
func ParseDateTime(value string) (time.Time, string, error) {
	for _, layout := range dateTimeLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			if layout == time.RFC3339Nano {
				layout = time.RFC3339
				if parsed.Nanosecond() != 0 {
					layout = "2006-01-02T15:04:05.000Z07:00"
				}
			}
			return parsed, layout, nil
		}
	}
	return time.Time{}, "", errUnparsableDateTime
}

// DurationMinutes returns the whole minutes between start and end when both
// parse and end is after start.
func DurationMinutes(start, end string) (int, bool) {
	startTime, _, err := ParseDateTime(start)
	if err != nil {
		return 0, false
	}
	endTime, _, err := ParseDateTime(end)
	if err != nil {
		return 0, false
	}
	minutes := int(endTime.Sub(startTime) / time.Minute)
	if minutes <= 0 {
		return 0, false
	}
	return minutes, true
}
