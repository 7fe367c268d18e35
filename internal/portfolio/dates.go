package portfolio

import (
	"fmt"
	"math"
	"time"
)

const monthLayout = "Jan 2006"

// FormatDateRange renders "Jan 2024 - Present" style ranges.
func FormatDateRange(start time.Time, end *time.Time) string {
	to := "Present"
	if end != nil {
		to = end.Format(monthLayout)
	}
	return start.Format(monthLayout) + " - " + to
}

// Duration describes how long a role lasted, counting 30-day months
// rounded up. An open-ended role runs until now.
func Duration(start time.Time, end *time.Time, now time.Time) string {
	to := now
	if end != nil {
		to = *end
	}
	diff := to.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	months := int(math.Ceil(diff.Hours() / (24 * 30)))
	if months < 12 {
		return plural(months, "month")
	}
	years, rest := months/12, months%12
	if rest == 0 {
		return plural(years, "year")
	}
	return plural(years, "year") + " " + plural(rest, "month")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
