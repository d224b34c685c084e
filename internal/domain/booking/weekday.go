package booking

import "time"

var weekdayNames = [7]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// WeekdayName maps a calendar date to the weekday name availability
// windows are keyed by.
func WeekdayName(date time.Time) string {
	return weekdayNames[int(date.Weekday())]
}

func IsWeekdayName(name string) bool {
	for _, n := range weekdayNames {
		if n == name {
			return true
		}
	}
	return false
}

// WeekdayIndex returns 0 for Sunday through 6 for Saturday, and -1 for
// anything that is not a weekday name.
func WeekdayIndex(name string) int {
	for i, n := range weekdayNames {
		if n == name {
			return i
		}
	}
	return -1
}
