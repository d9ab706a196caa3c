// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package recur

import (
	"time"

	"github.com/kjdev/calrecur/calendar"
	"github.com/kjdev/calrecur/rrule"
)

// scan is the bounded instance iterator: a single day-by-day (or rather,
// single-interval-step) walk over candidate dates starting at start,
// accepting any date that satisfies rule's BY* predicates at the cadence
// its frequency and interval imply. It assumes rule has already been
// checked with UnsupportedComponent — BYWEEKNO/BYSETPOS reaching Matches
// is a caller bug, not a value scan can fail on.
//
// from and to are optional emit-time bounds: from suppresses output
// before that date, to terminates the scan once current exceeds it. A nil
// to is only safe to pass when rule's own Limit already bounds the scan
// (UntilDate or Count); an Indefinite rule with a nil to never returns.
func scan(rule *rrule.RecurrenceRule, start time.Time, from, to *time.Time) []time.Time {
	var out []time.Time

	current := start
	lastMatched := start
	matchedCount := 0

	for {
		fits := rrule.Matches(rule, current)

		switch rule.Limit.Kind {
		case rrule.UntilDate:
			if current.After(rule.Limit.Until) {
				return out
			}
		case rrule.Count:
			if matchedCount >= rule.Limit.Count {
				return out
			}
		}

		if to != nil && current.After(*to) {
			return out
		}

		if fits {
			diff := freqDiff(rule.Frequency, lastMatched, current)
			if diff >= rule.Interval || diff == 0 {
				matchedCount++
				lastMatched = current
				if from == nil || !current.Before(*from) {
					out = append(out, current)
				}
			}
		}

		current = current.AddDate(0, 0, rule.Interval)
	}
}

// freqDiff measures the distance between last and current in the unit
// that rule.Interval counts for the given frequency: whole days, unique
// ISO weeks, calendar months (wrapping across year boundaries), or years.
func freqDiff(freq rrule.Frequency, last, current time.Time) int {
	switch freq {
	case rrule.Daily:
		return calendar.DaysBetween(last, current)
	case rrule.Weekly:
		return calendar.WeeksBetween(last, current)
	case rrule.Monthly:
		return calendar.MonthsBetween(last, current)
	case rrule.Yearly:
		return current.Year() - last.Year()
	default:
		assertNever("scan: rule carries an unrecognized frequency")
		return 0
	}
}
