package services

import "time"

const dayKeyLayout = "2006-01-02"

// DateAtLocation truncates value to midnight of its calendar day in the
// given location. All bucketing and day-cap math goes through this so the
// whole app shares one timezone convention.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

func DayKey(value time.Time, location *time.Location) string {
	return DateAtLocation(value, location).Format(dayKeyLayout)
}

func SameCalendarDay(a time.Time, b time.Time, location *time.Location) bool {
	return DayKey(a, location) == DayKey(b, location)
}
