package entities

import "time"

const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) { return time.Parse(DateLayout, s) }

func FormatDate(t time.Time) string { return t.Format(DateLayout) }

// ValidDate reports whether s is a YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}
