// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"time"

	"github.com/kjdev/calrecur/calendar"
)

// Matches reports whether t satisfies every BY* component present on rule,
// evaluated in the fixed RFC 5545 order: month, year-day, month-day, day.
// Each absent component is vacuously satisfied. Matches assumes rule has
// already been checked with UnsupportedComponent and carries no BYWEEKNO or
// BYSETPOS; encountering either here is an internal consistency bug in the
// caller, not a value this function can fail gracefully on.
func Matches(rule *RecurrenceRule, t time.Time) bool {
	if len(rule.ByWeekNo) > 0 || len(rule.BySetPos) > 0 {
		panic("rrule: Matches called with an unsupported component still present; check UnsupportedComponent first")
	}
	if len(rule.ByMonth) > 0 && !matchMonth(rule.ByMonth, t) {
		return false
	}
	if len(rule.ByYearDay) > 0 && !matchYearDay(rule.ByYearDay, t) {
		return false
	}
	if len(rule.ByMonthDay) > 0 && !matchMonthDay(rule.ByMonthDay, t) {
		return false
	}
	if len(rule.ByDay) > 0 && !matchDay(rule.ByDay, t) {
		return false
	}
	return true
}

func matchMonth(months []int, t time.Time) bool {
	for _, m := range months {
		if m == int(t.Month()) {
			return true
		}
	}
	return false
}

func matchDay(days []Weekday, t time.Time) bool {
	today := FromTime(t.Weekday())
	for _, d := range days {
		if d == today {
			return true
		}
	}
	return false
}

// matchMonthDay checks BYMONTHDAY, normalizing negative values to count
// backward from the last day of t's month (-1 is the last day, -2 the
// second-to-last, and so on).
func matchMonthDay(monthDays []int, t time.Time) bool {
	last := calendar.DaysInMonth(t.Year(), int(t.Month()))
	for _, v := range monthDays {
		target := v
		if target < 0 {
			target = last + target + 1
		}
		if target == t.Day() {
			return true
		}
	}
	return false
}

// matchYearDay checks BYYEARDAY, normalizing negative values to count
// backward from the last day of t's year.
func matchYearDay(yearDays []int, t time.Time) bool {
	last := calendar.DaysInYear(t.Year())
	today := calendar.DayOfYear(t)
	for _, v := range yearDays {
		target := v
		if target < 0 {
			target = last + target + 1
		}
		if target == today {
			return true
		}
	}
	return false
}
