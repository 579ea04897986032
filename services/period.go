package services

import "time"

// quickPeriodDays maps a quick-period shortcut to the number of days
// subtracted from today for the start date.
var quickPeriodDays = map[string]int{
	"today":   0,
	"week":    7,
	"month":   30,
	"quarter": 90,
	"year":    365,
}

// QuickPeriod computes the start and end dates for a quick-period shortcut.
// The end date is always "today" at the given instant; the start date is
// end minus the period's day offset. Unknown periods behave like "today".
func QuickPeriod(period string, now time.Time) (startDate, endDate string) {
	days := quickPeriodDays[period]
	start := now.Add(-time.Duration(days) * 24 * time.Hour)
	return start.Format("2006-01-02"), now.Format("2006-01-02")
}
