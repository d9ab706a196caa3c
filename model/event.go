// Package model contains structs used throughout the project
package model

import (
	"time"

	"github.com/kjdev/calrecur/rrule"
)

// The possible values for a VEVENT's STATUS field, note VTODO's STATUS field accepts different values
// See: https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
type EventStatus string

const (
	EventStatusConfirmed EventStatus = "CONFIRMED"
	EventStatusTentative  EventStatus = "TENTATIVE"
	EventStatusCancelled  EventStatus = "CANCELLED"
)

// EventTransp represents the possible values for a VEVENT's TRANSP field.
// See: https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.7
type EventTransp string

const (
	EventTranspOpaque      EventTransp = "OPAQUE"
	EventTranspTransparent EventTransp = "TRANSPARENT"
)

// An Event in the iCalendar format
// for more information see https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.1
type Event struct {
	// REQUIRED, MUST NOT occur more than once
	// a DTSTAMP property defines the date and time that the instance of the calendar component was created.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.7.2
	DTStamp time.Time

	// REQUIRED, MUST NOT occur more than once
	// The unique identifier for the event.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.7
	UID string

	// a short, one-line summary about the activity or journal entry.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.12
	Summary string
	// Used to capture lengthy textual descriptions associated with the activity.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.5
	Description string
	// dtstart in the ICAL format
	// See the datetime specification for more information: https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.5
	Start time.Time
	// dtend in the ICAL format
	// See the datetime specification for more information: https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.5
	End time.Time
	// DTEND and DURATION are mutually exclusive; this holds the duration form when present.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.5
	Duration time.Duration
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.7
	Location string

	// Represented by TZID in the spec
	// The time zone identifier for the time zone used by the calendar component.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.3.1
	TimeZoneId string

	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.3.3
	TimeZoneOffsetFrom string

	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.3.4
	TimeZoneOffsetTo string

	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
	// defines the overall status or confirmation for the calendar component.
	Status    EventStatus
	Organizer *Organizer

	// OPTIONAL, MUST NOT occur more than once
	// Specifies the revision sequence number of the calendar component within a sequence of revisions.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.7.4
	Sequence int

	// OPTIONAL, MUST NOT occur more than once
	// Defines whether an event is shown as taking up time on a free/busy lookup.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.7
	Transp EventTransp

	// OPTIONAL, MUST NOT occur more than once
	// Specifies the date and time that the information associated with the calendar component was last revised.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.7.3
	LastModified time.Time

	// OPTIONAL, MUST NOT occur more than once
	// Defines a rule or repeating pattern for recurring events.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.5.3
	RRule *rrule.RecurrenceRule

	// OPTIONAL, MAY occur more than once
	// Specifies the list of date/time exceptions for a recurring calendar component.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.5.1
	ExceptionDates []time.Time

	// OPTIONAL, MAY occur more than once
	// Specifies the list of date/time values for recurring activities.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.5.2
	Rdate []time.Time

	// OPTIONAL, MAY occur more than once
	// Specifies non-processing information intended to provide a comment to the calendar user.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.4
	Comment []string

	// OPTIONAL, MAY occur more than once
	// Specifies the categories that the calendar component belongs to.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.2
	Categories []string

	// OPTIONAL, MAY occur more than once
	// Specifies the contact information for the activity.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.2
	Contacts []string

	// OPTIONAL, the global position for the activity specified by this calendar component.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.6
	// Stored as [latitude, longitude]
	Geo []float64

	// OPTIONAL, MAY occur more than once
	// Sub-components: VALARM
	Alarms []Alarm
}
