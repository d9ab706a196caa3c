// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"net/url"
	"time"
)

// TimeZone represents a VTIMEZONE component in the iCalendar format.
// A grouping of component properties that defines a time zone.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.5
type TimeZone struct {
	// Represented by TZID
	// The time zone identifier for the time zone used by the calendar component.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.3.1
	TimeZoneID string

	// OPTIONAL, MUST NOT occur more than once
	LastMod time.Time

	// OPTIONAL, MUST NOT occur more than once
	TimeZoneURL *url.URL

	// At least one of Standard/Daylight MUST occur.
	Standard []TimeZoneProperty
	Daylight []TimeZoneProperty
}

// TimeZoneProperty represents a STANDARD or DAYLIGHT sub-component of a VTIMEZONE.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.5
type TimeZoneProperty struct {
	// REQUIRED, MUST NOT occur more than once
	DTStart time.Time

	// REQUIRED, MUST NOT occur more than once
	TimeZoneOffsetFrom string

	// REQUIRED, MUST NOT occur more than once
	TimeZoneOffsetTo string

	// OPTIONAL, MAY occur more than once
	TimeZoneName []string

	// OPTIONAL, MAY occur more than once
	Comment []string

	// OPTIONAL, MAY occur more than once
	Rdate []time.Time
}
