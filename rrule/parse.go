// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"strconv"
	"strings"

	"github.com/kjdev/calrecur/icaldur"
)

// Parse takes an iCal recurrence rule string (the part of an RRULE
// property after the "RRULE:" prefix) and parses it into a RecurrenceRule,
// enforcing the property value ranges and the coexistence invariants
// between FREQ/UNTIL/COUNT/BYWEEKNO/BYSETPOS.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.10
func Parse(rruleString string) (*RecurrenceRule, error) {
	rule := &RecurrenceRule{Interval: 1}

	var hasFreq, hasUntil, hasCount bool

	for part := range strings.SplitSeq(rruleString, ";") {
		if part == "" {
			continue
		}
		tag, value, found := strings.Cut(part, "=")
		if !found {
			return nil, invalidProperty(part)
		}
		switch tag {
		case "FREQ":
			freq, ok := parseFrequency(value)
			if !ok {
				return nil, invalidValue("FREQ")
			}
			rule.Frequency = freq
			hasFreq = true

		case "INTERVAL":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return nil, invalidValue("INTERVAL")
			}
			rule.Interval = n

		case "COUNT":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return nil, invalidValue("COUNT")
			}
			rule.Limit = Limit{Kind: Count, Count: n}
			hasCount = true

		case "UNTIL":
			until, err := icaldur.ParseIcalDate(value)
			if err != nil {
				until, err = icaldur.ParseIcalTime(value)
			}
			if err != nil {
				return nil, invalidValue("UNTIL")
			}
			rule.Limit = Limit{Kind: UntilDate, Until: until}
			hasUntil = true

		case "BYDAY":
			days, err := parseByDayList(value)
			if err != nil {
				return nil, err
			}
			rule.ByDay = days

		case "BYMONTH":
			months, err := parseIntList(value, 1, 12, "BYMONTH", false)
			if err != nil {
				return nil, err
			}
			rule.ByMonth = months

		case "BYMONTHDAY":
			days, err := parseIntList(value, -31, 31, "BYMONTHDAY", true)
			if err != nil {
				return nil, err
			}
			rule.ByMonthDay = days

		case "BYYEARDAY":
			days, err := parseIntList(value, -366, 366, "BYYEARDAY", true)
			if err != nil {
				return nil, err
			}
			rule.ByYearDay = days

		case "BYWEEKNO":
			weeks, err := parseIntList(value, -53, 53, "BYWEEKNO", true)
			if err != nil {
				return nil, err
			}
			rule.ByWeekNo = weeks

		case "BYSETPOS":
			positions, err := parseIntList(value, -366, 366, "BYSETPOS", true)
			if err != nil {
				return nil, err
			}
			rule.BySetPos = positions

		default:
			return nil, invalidProperty(tag)
		}
	}

	if !hasFreq {
		return nil, missingRequiredProperty("FREQ")
	}
	if hasUntil && hasCount {
		return nil, duplicateProperty("UNTIL", "COUNT")
	}
	if err := checkCoexistence(rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func parseFrequency(value string) (Frequency, bool) {
	switch value {
	case "DAILY":
		return Daily, true
	case "WEEKLY":
		return Weekly, true
	case "MONTHLY":
		return Monthly, true
	case "YEARLY":
		return Yearly, true
	default:
		return 0, false
	}
}

// parseIntList parses a comma-separated list of integers, each required to
// fall in [min, max] and, when zeroDisallowed is true, to be nonzero.
func parseIntList(value string, min, max int, property string, zeroDisallowed bool) ([]int, error) {
	parts := strings.Split(value, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < min || n > max || (zeroDisallowed && n == 0) {
			return nil, invalidValue(property)
		}
		out = append(out, n)
	}
	return out, nil
}

func parseByDayList(value string) ([]Weekday, error) {
	parts := strings.Split(value, ",")
	out := make([]Weekday, 0, len(parts))
	for _, p := range parts {
		day, ok := weekdayFromToken(p)
		if !ok {
			return nil, invalidValue("BYDAY")
		}
		out = append(out, day)
	}
	return out, nil
}

// checkCoexistence enforces the four BY*/FREQ coexistence invariants that
// don't involve UNTIL/COUNT.
func checkCoexistence(rule *RecurrenceRule) error {
	freqToken := "FREQ=" + rule.Frequency.String()

	if len(rule.ByYearDay) > 0 {
		switch rule.Frequency {
		case Daily, Weekly, Monthly:
			return cannotCoexist("BYYEARDAY", freqToken)
		}
	}
	if len(rule.ByMonthDay) > 0 && rule.Frequency == Weekly {
		return cannotCoexist("BYMONTHDAY", freqToken)
	}
	if len(rule.ByWeekNo) > 0 && rule.Frequency != Yearly {
		return requires("BYWEEKNO", "FREQ=YEARLY")
	}
	if len(rule.BySetPos) > 0 && !hasOtherByComponent(rule) {
		return requires("BYSETPOS", "another BY* component")
	}
	return nil
}

func hasOtherByComponent(rule *RecurrenceRule) bool {
	return len(rule.ByMonth) > 0 ||
		len(rule.ByWeekNo) > 0 ||
		len(rule.ByYearDay) > 0 ||
		len(rule.ByMonthDay) > 0 ||
		len(rule.ByDay) > 0
}
