// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package icsadapter bridges a parsed VEVENT onto the recurrence engine's
// Event shape: the one concrete caller that exercises model, parse, and
// icaldur against the engine, leaving the database schema, HTTP surface,
// and JSON payload shape for a thin outer layer this module doesn't
// implement.
package icsadapter

import (
	"time"

	"github.com/kjdev/calrecur/model"
	"github.com/kjdev/calrecur/recur"
)

// ToRecurEvent maps a parsed VEVENT onto recur.Event, splitting its DTSTART
// into the engine's naive date plus an optional time-of-day. The parser
// always produces a full date-time for DTSTART (it has no VALUE=DATE
// support), so a midnight UTC start is treated as day-granular and any
// other time-of-day is carried through to every generated instance.
func ToRecurEvent(event model.Event) (recur.Event, error) {
	if event.Start.IsZero() {
		return recur.Event{}, ErrMissingStart
	}

	startDate := time.Date(event.Start.Year(), event.Start.Month(), event.Start.Day(), 0, 0, 0, 0, time.UTC)
	timeOfDay := event.Start.Sub(startDate)

	duration := event.Duration
	if duration == 0 && !event.End.IsZero() {
		duration = event.End.Sub(event.Start)
	}

	return recur.Event{
		ID:              event.UID,
		StartDate:       startDate,
		HasTime:         timeOfDay != 0,
		StartTime:       timeOfDay,
		Duration:        duration,
		Rule:            event.RRule,
		ExceptionDates:  event.ExceptionDates,
		RecurrenceDates: event.Rdate,
	}, nil
}
