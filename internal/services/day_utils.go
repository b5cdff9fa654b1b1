package services

import "time"

// CalendarDay returns the calendar day of value as seen in location,
// represented as midnight UTC so stored dates compare independently of TZ.
func CalendarDay(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	year, month, day := value.In(location).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseMealDate accepts a plain calendar date or an RFC 3339 timestamp.
func ParseMealDate(raw string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	if parsed, err := time.ParseInLocation("2006-01-02", raw, location); err == nil {
		return CalendarDay(parsed, location), nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return CalendarDay(parsed, location), nil
}
