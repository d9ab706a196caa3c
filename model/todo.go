// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"net/url"
	"time"
)

// TodoClass represents the possible values for a VTODO's CLASS field.
// See: https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.3
type TodoClass string

const (
	TodoClassPublic       TodoClass = "PUBLIC"
	TodoClassPrivate      TodoClass = "PRIVATE"
	TodoClassConfidential TodoClass = "CONFIDENTIAL"
)

// TodoStatus represents the possible values for a VTODO's STATUS field.
// See: https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
type TodoStatus string

const (
	TodoStatusNeedsAction TodoStatus = "NEEDS-ACTION"
	TodoStatusCompleted   TodoStatus = "COMPLETED"
	TodoStatusInProcess   TodoStatus = "IN-PROCESS"
	TodoStatusCancelled   TodoStatus = "CANCELLED"
)

// TodoTransp represents the possible values for a VTODO's TRANSP field.
// See: https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.7
type TodoTransp string

const (
	TodoTranspOpaque      TodoTransp = "OPAQUE"
	TodoTranspTransparent TodoTransp = "TRANSPARENT"
)

// Todo represents a VTODO component in the iCalendar format.
// A VTODO is a grouping of component properties that describe a to-do,
// appointment, or journal entry.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.2
type Todo struct {
	// REQUIRED, MUST NOT occur more than once
	// a DTSTAMP property defines the date and time that the instance of the calendar component was created.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.7.2
	DTStamp time.Time

	// REQUIRED, MUST NOT occur more than once
	// The unique identifier for the event.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.7
	UID string

	// OPTIONAL, MUST NOT occur more than once
	Class TodoClass

	// OPTIONAL, MUST NOT occur more than once
	Completed time.Time

	// OPTIONAL, MUST NOT occur more than once
	Created time.Time

	// OPTIONAL, MUST NOT occur more than once
	// Specifies when the calendar component begins.
	DTStart time.Time

	// Due and Duration are mutually exclusive.
	Due      time.Time
	Duration time.Duration

	// OPTIONAL, the global position for the activity, stored as [latitude, longitude]
	Geo []float64

	// OPTIONAL, MUST NOT occur more than once
	LastModified time.Time

	// OPTIONAL, MUST NOT occur more than once
	Location string

	// OPTIONAL, MUST NOT occur more than once
	Organizer *Organizer

	// OPTIONAL, MUST NOT occur more than once, a value from 0 to 100
	PercentComplete int

	// OPTIONAL, MUST NOT occur more than once, a value from 0 to 9
	Priority int

	// OPTIONAL, MUST NOT occur more than once
	RecurrenceID time.Time

	// OPTIONAL, MUST NOT occur more than once
	Sequence int

	// OPTIONAL, MUST NOT occur more than once
	Status TodoStatus

	// OPTIONAL, MUST NOT occur more than once
	Summary string

	// OPTIONAL, MUST NOT occur more than once
	Transp TodoTransp

	// OPTIONAL, MUST NOT occur more than once
	URL string

	// Comment specifies non-processing information intended to provide a comment to the calendar user.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.4
	Comment []string

	// OPTIONAL, MAY occur more than once
	Attach []string

	// OPTIONAL, MAY occur more than once
	Attendees []url.URL

	// OPTIONAL, MAY occur more than once
	Categories []string

	// OPTIONAL, MAY occur more than once
	Contacts []string

	// OPTIONAL, MAY occur more than once
	Description []string

	// OPTIONAL, MAY occur more than once
	ExceptionDates []time.Time

	// OPTIONAL, MAY occur more than once
	Related []string

	// OPTIONAL, MAY occur more than once
	RequestStatus []string

	// OPTIONAL, MAY occur more than once
	Resources []string

	// OPTIONAL, MAY occur more than once
	Rdate []time.Time

	// OPTIONAL, MAY occur more than once
	// Sub-components: VALARM
	Alarms []Alarm
}
