// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package recur

import (
	"sort"
	"time"

	"github.com/kjdev/calrecur/ordered"
	"github.com/kjdev/calrecur/rrule"
)

// Window bounds and paginates a Dates/Instances query. From and To are
// inclusive; a nil To is only accepted when the rule's own limit (UntilDate
// or Count) already bounds the algorithmic sequence, otherwise Dates
// returns ErrUnboundedQuery rather than scan forever. Take of 0 means "no
// limit" rather than "zero results".
type Window struct {
	From *time.Time
	To   *time.Time
	Skip int
	Take int
}

// Dates composes inference, the instance iterator, the EXDATE filter, and
// the RDATE merge into the recurrence façade's public sequence: the
// emitted sequence is monotonically non-decreasing by date. rule, exdates,
// and rdates are borrowed for the call; Dates does not mutate or retain
// them.
func Dates(rule *rrule.RecurrenceRule, startDate time.Time, exdates, rdates []time.Time, win Window) ([]time.Time, error) {
	if win.From != nil && win.To != nil && win.From.After(*win.To) {
		return nil, nil
	}

	inferred := rrule.Infer(rule, startDate)
	if component, ok := inferred.UnsupportedComponent(); ok {
		return nil, &UnsupportedError{Component: component}
	}

	to := win.To
	if to == nil {
		switch inferred.Limit.Kind {
		case rrule.UntilDate:
			until := inferred.Limit.Until
			to = &until
		case rrule.Count:
			// scan's own matched_count check bounds the loop; no date
			// ceiling is required.
		default:
			return nil, ErrUnboundedQuery
		}
	}

	raw := scan(inferred, startDate, win.From, to)
	raw = excludeDates(raw, exdates)

	merged := ordered.Merge(raw, sortedCopy(rdates))
	merged = clipWindow(merged, win.From, win.To)

	return paginate(merged, win.Skip, win.Take), nil
}

// Instances expands event into concrete Instance values within win,
// applying its rule (if any), the EXDATE/RDATE overlays, and pagination.
// A nil Rule produces the single occurrence on StartDate plus whatever
// RecurrenceDates add.
func Instances(event Event, win Window) ([]Instance, error) {
	var dates []time.Time

	if event.Rule == nil {
		dates = excludeDates([]time.Time{event.StartDate}, event.ExceptionDates)
		dates = ordered.Merge(dates, sortedCopy(event.RecurrenceDates))
		dates = clipWindow(dates, win.From, win.To)
		dates = paginate(dates, win.Skip, win.Take)
	} else {
		var err error
		dates, err = Dates(event.Rule, event.StartDate, event.ExceptionDates, event.RecurrenceDates, win)
		if err != nil {
			return nil, err
		}
	}

	instances := make([]Instance, 0, len(dates))
	for _, d := range dates {
		instance := Instance{EventID: event.ID, Start: d}
		if event.HasTime {
			instance.Start = d.Add(event.StartTime)
			instance.End = instance.Start.Add(event.Duration)
		}
		instances = append(instances, instance)
	}
	return instances, nil
}

// excludeDates drops every date in dates that also appears in exdates.
// Filtering runs before the RDATE merge, so a date present in both an
// EXDATE and an RDATE list still appears in the final output.
func excludeDates(dates, exdates []time.Time) []time.Time {
	if len(exdates) == 0 {
		return dates
	}
	excluded := make(map[int64]bool, len(exdates))
	for _, d := range exdates {
		excluded[d.UnixNano()] = true
	}
	out := dates[:0:0]
	for _, d := range dates {
		if !excluded[d.UnixNano()] {
			out = append(out, d)
		}
	}
	return out
}

// clipWindow drops any date outside [from, to], whichever bounds are set.
// Applied after the RDATE merge so an out-of-window RDATE is filtered the
// same as an out-of-window algorithmic instance.
func clipWindow(dates []time.Time, from, to *time.Time) []time.Time {
	if from == nil && to == nil {
		return dates
	}
	out := dates[:0:0]
	for _, d := range dates {
		if from != nil && d.Before(*from) {
			continue
		}
		if to != nil && d.After(*to) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func sortedCopy(dates []time.Time) []time.Time {
	out := append([]time.Time(nil), dates...)
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

func paginate(dates []time.Time, skip, take int) []time.Time {
	if skip > 0 {
		if skip >= len(dates) {
			return nil
		}
		dates = dates[skip:]
	}
	if take > 0 && take < len(dates) {
		dates = dates[:take]
	}
	return dates
}
