// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"strconv"
	"strings"
)

// Format renders rule back into its RRULE wire form: FREQ first, then
// INTERVAL when greater than 1, then any present BY* components in the
// order BYYEARDAY, BYDAY, BYWEEKNO, BYMONTHDAY, BYSETPOS, BYMONTH, then
// UNTIL (as YYYYMMDD) or COUNT. Parse(Format(r)) reproduces every rule r
// that Parse returns, except that an UNTIL given as a date-time is printed
// as its date alone, so its time of day is lost. The output string need not
// equal the one r was parsed from.
func Format(rule *RecurrenceRule) string {
	var b strings.Builder
	b.WriteString("FREQ=")
	b.WriteString(rule.Frequency.String())

	if rule.Interval > 1 {
		b.WriteString(";INTERVAL=")
		b.WriteString(strconv.Itoa(rule.Interval))
	}

	writeIntList(&b, "BYYEARDAY", rule.ByYearDay)
	writeByDay(&b, rule.ByDay)
	writeIntList(&b, "BYWEEKNO", rule.ByWeekNo)
	writeIntList(&b, "BYMONTHDAY", rule.ByMonthDay)
	writeIntList(&b, "BYSETPOS", rule.BySetPos)
	writeIntList(&b, "BYMONTH", rule.ByMonth)

	switch rule.Limit.Kind {
	case UntilDate:
		b.WriteString(";UNTIL=")
		b.WriteString(rule.Limit.Until.Format("20060102"))
	case Count:
		b.WriteString(";COUNT=")
		b.WriteString(strconv.Itoa(rule.Limit.Count))
	}

	return b.String()
}

func writeIntList(b *strings.Builder, tag string, values []int) {
	if len(values) == 0 {
		return
	}
	b.WriteString(";")
	b.WriteString(tag)
	b.WriteString("=")
	for i, v := range values {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(strconv.Itoa(v))
	}
}

func writeByDay(b *strings.Builder, days []Weekday) {
	if len(days) == 0 {
		return
	}
	b.WriteString(";BYDAY=")
	for i, d := range days {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(d.String())
	}
}
