package services

import "time"

// addMonths moves a date forward by whole calendar months, keeping the
// day-of-month and clamping to the last valid day when the target month is
// shorter: Jan 31 + 1 month is Feb 29 in a leap year, Feb 28 otherwise.
// time.Time.AddDate is unsuitable here because it normalizes overflow into
// the following month.
func addMonths(date time.Time, months int) time.Time {
	year, month, day := date.Date()
	first := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, date.Location())
	if last := lastDayOfMonth(first); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, date.Location())
}

func lastDayOfMonth(firstOfMonth time.Time) int {
	return firstOfMonth.AddDate(0, 1, -1).Day()
}
