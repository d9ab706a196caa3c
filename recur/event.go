// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package recur is the recurrence engine: it takes a parsed RRULE, a start
// date, and EXDATE/RDATE overlays, and produces the ordered sequence of
// dates (or date-times) on which a recurring event occurs. The package is
// purely computational — no I/O, no shared mutable state — so the same
// rule and overlays can be queried concurrently without synchronization.
package recur

import (
	"time"

	"github.com/kjdev/calrecur/rrule"
)

// Event is the subset of a recurring calendar event the engine consumes.
// Everything else about the event — summary, organizer, location — is the
// thin wrapper's concern, not this package's.
type Event struct {
	// ID identifies the parent event and is copied verbatim onto every
	// Instance produced from it; the engine never interprets it.
	ID string

	// StartDate is the date of the first occurrence. Only its calendar
	// date is significant to the rule; any time-of-day is ignored here
	// and carried separately in StartTime.
	StartDate time.Time

	// HasTime distinguishes a day-granular event from one with a time
	// of day. When false, StartTime and Duration are ignored and
	// Instances carry only a Start date with a zero End.
	HasTime bool

	// StartTime is the offset from midnight the event starts at, valid
	// when HasTime is true.
	StartTime time.Duration

	// Duration is the event's span; valid when HasTime is true.
	Duration time.Duration

	// Rule is the parsed recurrence rule. A nil Rule means the event
	// occurs once, on StartDate, plus whatever RecurrenceDates add.
	Rule *rrule.RecurrenceRule

	// ExceptionDates are occurrences to suppress; RecurrenceDates are
	// occurrences to add outside the rule. Both are borrowed for the
	// duration of a query, never mutated or retained.
	ExceptionDates  []time.Time
	RecurrenceDates []time.Time
}

// Instance is one concrete occurrence of an Event.
type Instance struct {
	EventID string
	Start   time.Time
	End     time.Time
}
