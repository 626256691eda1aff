package utils

import "time"

const DateLayout = "2006-01-02"

// LoadLocation resolves a configured timezone name, falling back to time.Local
// for an empty name or one the system does not know.
func LoadLocation(name string) *time.Location {
	if name == "" || name == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

// FormatDate returns t as yyyy-MM-dd in the given location.
func FormatDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DateLayout)
}
