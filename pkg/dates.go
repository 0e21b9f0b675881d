package pkg

import "time"

const DateLayout = "2006-01-02"

// CalendarDate truncates t to midnight of its UTC calendar day.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// ParseDateOr returns the parsed date, or fallback when s is empty or malformed.
func ParseDateOr(s string, fallback time.Time) time.Time {
	if s == "" {
		return CalendarDate(fallback)
	}
	d, err := ParseDate(s)
	if err != nil {
		return CalendarDate(fallback)
	}
	return d
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
