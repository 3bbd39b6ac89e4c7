// Package dates holds the single textual date layout used for every stored
// date and birthday field, plus the birthday-rollover rule.
package dates

import (
	"time"
)

// Layout is the only accepted format for date and birthday fields,
// e.g. "January 05, 2025".
const Layout = "January 02, 2006"

func Parse(value string) (time.Time, error) {
	return time.Parse(Layout, value)
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

// NextOccurrence returns the next calendar occurrence of birthday relative
// to now, formatted with Layout: the year is replaced with now's year and
// advanced by one when that date is strictly before now. A birthday that
// falls on today's date with now past midnight therefore rolls to next
// year, matching the original behavior.
//
// Unparseable input is returned unchanged; the failure is deliberate
// silent-reuse rather than an error.
func NextOccurrence(birthday string, now time.Time) string {
	parsed, err := Parse(birthday)
	if err != nil {
		return birthday
	}

	next := time.Date(now.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, now.Location())
	if next.Before(now) {
		next = next.AddDate(1, 0, 0)
	}
	return Format(next)
}
