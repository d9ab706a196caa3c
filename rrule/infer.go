// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"time"

	"github.com/kjdev/calrecur/calendar"
)

// Infer returns a copy of rule with implied BY* fields filled in from
// startDate wherever the rule leaves them unspecified. It only ever fills a
// field that is still empty. For WEEKLY and MONTHLY rules a second call
// changes nothing. The YEARLY branches form an else-if chain, so a YEARLY
// rule whose first pass filled BYMONTHDAY or BYDAY can get one more field
// (BYDAY or BYYEARDAY) from a second pass; Infer is not idempotent there.
func Infer(rule *RecurrenceRule, startDate time.Time) *RecurrenceRule {
	out := rule.clone()

	switch out.Frequency {
	case Weekly:
		if len(out.ByDay) == 0 {
			out.ByDay = []Weekday{FromTime(startDate.Weekday())}
		}

	case Monthly:
		if len(out.ByMonthDay) == 0 && len(out.ByDay) == 0 {
			out.ByMonthDay = []int{startDate.Day()}
		}

	case Yearly:
		switch {
		case len(out.ByMonth) > 0 && len(out.ByMonthDay) == 0:
			out.ByMonthDay = []int{startDate.Day()}
		case len(out.ByWeekNo) > 0 && len(out.ByDay) == 0:
			out.ByDay = []Weekday{FromTime(startDate.Weekday())}
		case len(out.ByYearDay) == 0:
			out.ByYearDay = []int{calendar.DayOfYear(startDate)}
		}
	}

	return out
}
