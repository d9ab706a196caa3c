// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package calendar provides the small set of Gregorian-calendar primitives
// the recurrence engine needs: leap years, day-of-year, and the ISO-week
// distance between two dates. Everything here is computed by direct
// arithmetic rather than delegating to time.Time.YearDay, so behavior stays
// pinned to the Gregorian rule regardless of what the platform's calendar
// implementation does at the edges.
package calendar

import "time"

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a leap year under the Gregorian rule:
// divisible by 4, except centuries, unless also divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month (1-12) of year.
func DaysInMonth(year int, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month-1]
}

// DaysInYear returns 366 for leap years, 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DayOfYear returns the 1-based ordinal day of the year for t, e.g. 1 for
// January 1st and 366 for December 31st of a leap year.
func DayOfYear(t time.Time) int {
	year, month, day := t.Date()
	total := day
	for m := 1; m < int(month); m++ {
		total += DaysInMonth(year, m)
	}
	return total
}

// DateFromDayOfYear returns the date in year whose ordinal day is dayOfYear.
// dayOfYear is clamped into [1, DaysInYear(year)].
func DateFromDayOfYear(year, dayOfYear int) time.Time {
	if dayOfYear < 1 {
		dayOfYear = 1
	}
	if max := DaysInYear(year); dayOfYear > max {
		dayOfYear = max
	}
	month := 1
	remaining := dayOfYear
	for {
		dim := DaysInMonth(year, month)
		if remaining <= dim {
			break
		}
		remaining -= dim
		month++
	}
	return time.Date(year, time.Month(month), remaining, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns b-a in whole days, ignoring any time-of-day component.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// DaysBetween returns b-a in whole days. Exported for callers that need the
// Daily-frequency distance directly, mirroring WeeksBetween/MonthsBetween.
func DaysBetween(a, b time.Time) int {
	return daysBetween(a, b)
}

// floorDiv is integer division rounding toward negative infinity, unlike
// Go's built-in "/" which truncates toward zero.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// firstMondayOnOrAfter returns the first Monday that is on or after t's
// calendar date.
func firstMondayOnOrAfter(t time.Time) time.Time {
	days := (int(time.Monday) - int(t.Weekday()) + 7) % 7
	return t.AddDate(0, 0, days)
}

// WeeksBetween returns the number of distinct ISO weeks separating a and b,
// where b is expected to be on or after a. This is not floor(days/7): two
// dates in different calendar weeks are always at distance >= 1 even when
// fewer than 7 days separate them.
//
// It works by finding the first Monday on or after a, counting whole weeks
// from that Monday up to b, then adding one more if a itself fell short of
// that Monday (i.e. a was not itself a Monday) to account for the partial
// week a started in.
func WeeksBetween(a, b time.Time) int {
	monday := firstMondayOnOrAfter(a)
	weeks := floorDiv(daysBetween(monday, b), 7)
	if a.Weekday() != time.Monday {
		weeks++
	}
	return weeks
}

// MonthsBetween returns the number of calendar months separating a and b,
// wrapping through December into the next year when b's month index is
// lower than a's but b is in a later year.
func MonthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
