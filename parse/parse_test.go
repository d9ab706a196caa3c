package parse

import (
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/kjdev/calrecur/model"
	"github.com/stretchr/testify/assert"
)

const testIcalInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Event//Event Calendar//EN
CALSCALE:GREGORIAN
METHOD:REQUEST
BEGIN:VTIMEZONE
TZID:America/Detroit
BEGIN:STANDARD
DTSTART:19700101T000000Z
TZOFFSETFROM:+0000
TZOFFSETTO:+0000
END:STANDARD
END:VTIMEZONE
BEGIN:VEVENT
UID:13235@example.com
DTSTAMP:19700101T000000Z
DTSTART:20250928T183000Z
DTEND:20250928T203000Z
SUMMARY:Event Summary
DESCRIPTION:Event Description
LOCATION:555 Fake Street
ORGANIZER;CN=Org:MAILTO:hello@world
STATUS:CONFIRMED
SEQUENCE:1
TRANSP:OPAQUE
COMMENT:I Am
COMMENT:A Comment
CONTACT:Jim Dolittle, ABC Industries, +1-919-555-1234
LAST-MODIFIED:20210101T000000Z
CATEGORIES:first,second,third
GEO:37.386013;-122.082932
END:VEVENT
END:VCALENDAR
`

const testIcalInvalidOrganizerInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
BEGIN:VEVENT
UID:1@example.com
DTSTAMP:19700101T000000Z
DTSTART:20250928T183000Z
ORGANIZER:://invalid
END:VEVENT
END:VCALENDAR
`

const testIcalFullOrganizerInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Event//Event Calendar//EN
CALSCALE:GREGORIAN
METHOD:REQUEST
BEGIN:VTIMEZONE
TZID:America/Detroit
BEGIN:STANDARD
DTSTART:19700101T000000Z
TZOFFSETFROM:+0000
TZOFFSETTO:+0000
END:STANDARD
END:VTIMEZONE
BEGIN:VEVENT
UID:13235@example.com
DTSTAMP:19700101T000000Z
DTSTART:20250928T183000Z
DTEND:20250928T203000Z
SUMMARY:Event Summary
DESCRIPTION:Event Description
LOCATION:555 Fake Street
ORGANIZER;CN=JohnSmith;LANGUAGE=en-us;DIR="ldap://example.com:6666/o=DC%20Associates,c=US???(cn=John%20Smith)";SENT-BY="mailto:mailtojsmith@example.com";MISCFIELD=TEST;MISCFIELD2=TEST2:mailto:jsmith@example.com
STATUS:CONFIRMED
SEQUENCE:1
TRANSP:OPAQUE
COMMENT:I Am
COMMENT:A Comment
CONTACT:Jim Dolittle, ABC Industries, +1-919-555-1234
LAST-MODIFIED:20210101T000000Z
CATEGORIES:first,second,third
GEO:37.386013;-122.082932
END:VEVENT
END:VCALENDAR
`

const testIcalInvalidStartInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
BEGIN:VEVENT
UID:1@example.com
DTSTAMP:19700101T000000Z
DTSTART:notadate
END:VEVENT
END:VCALENDAR
`

const testIcalInvalidEndInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
BEGIN:VEVENT
UID:1@example.com
DTSTAMP:19700101T000000Z
DTSTART:20250928T183000Z
DTEND:notadate
END:VEVENT
END:VCALENDAR
`

const testIcalContentAfterEndBlockInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
END:VCALENDAR
EXTRA:LINE
`

const testIcalDuplicateUIDInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
BEGIN:VEVENT
UID:1@example.com
UID:2@example.com
DTSTAMP:19700101T000000Z
DTSTART:20250928T183000Z
END:VEVENT
END:VCALENDAR
`

const testIcalDuplicateSequenceInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
BEGIN:VEVENT
UID:1@example.com
DTSTAMP:19700101T000000Z
DTSTART:20250928T183000Z
SEQUENCE:1
SEQUENCE:2
END:VEVENT
END:VCALENDAR
`

const testIcalBothDurationAndEndInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
BEGIN:VEVENT
UID:1@example.com
DTSTAMP:19700101T000000Z
DTSTART:20250928T183000Z
DTEND:20250928T203000Z
DURATION:PT1H
END:VEVENT
END:VCALENDAR
`

const testIcalBothDurationAndEndDurationFirstInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
BEGIN:VEVENT
UID:1@example.com
DTSTAMP:19700101T000000Z
DTSTART:20250928T183000Z
DURATION:PT1H
DTEND:20250928T203000Z
END:VEVENT
END:VCALENDAR
`

const testIcalMissingColonInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
BEGIN:VEVENT
UID:1@example.com
DTSTAMP:19700101T000000Z
DTSTART:20250928T183000Z
STATUSCONFIRMED
END:VEVENT
END:VCALENDAR
`

const testIcalMissingUIDInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
BEGIN:VEVENT
DTSTAMP:19700101T000000Z
DTSTART:20250928T183000Z
END:VEVENT
END:VCALENDAR
`

const testIcalMissingDTStartInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
BEGIN:VEVENT
UID:1@example.com
DTSTAMP:19700101T000000Z
END:VEVENT
END:VCALENDAR
`

const testEmptyCalendarInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
END:VCALENDAR
`

const testInvalidBeginCalendarInput = `VERSION:2.0
PRODID:Id
END:VCALENDAR
`

const testInvalidEndCalendarInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
`

const testInvalidEmptyLineCalendarInput = `BEGIN:VCALENDAR
VERSION:2.0

PRODID:Id
END:VCALENDAR
`

const testValidCalendarInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Event//Event Calendar//EN
CALSCALE:GREGORIAN
METHOD:REQUEST
END:VCALENDAR
`

const testCalendarMissingVersionInput = `BEGIN:VCALENDAR
PRODID:Id
END:VCALENDAR
`

const testCalendarMissingProdIDInput = `BEGIN:VCALENDAR
VERSION:2.0
END:VCALENDAR
`

const testTodoInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//Todo Calendar//EN
BEGIN:VTODO
UID:todo123@example.com
DTSTAMP:20240101T000000Z
SUMMARY:Complete project documentation
DESCRIPTION:Write comprehensive documentation for the new API
DESCRIPTION:Include examples and usage patterns
LOCATION:Office
CLASS:CONFIDENTIAL
STATUS:IN-PROCESS
PRIORITY:1
PERCENT-COMPLETE:75
CREATED:20240101T000000Z
LAST-MODIFIED:20240115T120000Z
DTSTART:20240101T090000Z
DUE:20240130T170000Z
ORGANIZER;CN=Project Manager:mailto:pm@example.com
ATTENDEE:mailto:dev1@example.com
ATTENDEE:mailto:dev2@example.com
CONTACT:John Doe, Engineering Team, +1-555-0123
CATEGORIES:work,urgent,project
COMMENT:This is a critical task for the Q1 release
RESOURCES:laptop,meeting-room
GEO:37.7749;-122.4194
URL:https://project.example.com/todo/123
END:VTODO
END:VCALENDAR
`

const testTodoMissingUIDInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
BEGIN:VTODO
DTSTAMP:20240101T000000Z
DTSTART:20240101T090000Z
END:VTODO
END:VCALENDAR
`

const testTodoBothDueAndDurationInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
BEGIN:VTODO
UID:1@example.com
DTSTAMP:20240101T000000Z
DTSTART:20240101T090000Z
DUE:20240130T170000Z
DURATION:PT1H
END:VTODO
END:VCALENDAR
`

const testTodoDuplicateUIDInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
BEGIN:VTODO
UID:1@example.com
UID:2@example.com
DTSTAMP:20240101T000000Z
DTSTART:20240101T090000Z
END:VTODO
END:VCALENDAR
`

const testTodoInvalidGeoInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
BEGIN:VTODO
UID:1@example.com
DTSTAMP:20240101T000000Z
DTSTART:20240101T090000Z
GEO:not-a-geo-value
END:VTODO
END:VCALENDAR
`

const testJournalInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//Journal Calendar//EN
BEGIN:VJOURNAL
UID:journal123@example.com
DTSTAMP:20240101T000000Z
SUMMARY:Project status update
DESCRIPTION:Completed the initial research phase
DESCRIPTION:Identified key stakeholders and requirements
CLASS:CONFIDENTIAL
STATUS:FINAL
CREATED:20240101T090000Z
LAST-MODIFIED:20240115T120000Z
DTSTART:20240101T090000Z
ORGANIZER;CN=Project Lead:mailto:lead@example.com
ATTENDEE:mailto:stakeholder1@example.com
ATTENDEE:mailto:stakeholder2@example.com
CONTACT:Jane Doe, Project Manager, +1-555-0456
CATEGORIES:work,project,status
COMMENT:This journal entry documents the completion of Phase 1
URL:https://project.example.com/journal/123
END:VJOURNAL
END:VCALENDAR
`

const testJournalMissingUIDInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
BEGIN:VJOURNAL
DTSTAMP:20240101T000000Z
DTSTART:20240101T090000Z
END:VJOURNAL
END:VCALENDAR
`

const testJournalDuplicateUIDInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
BEGIN:VJOURNAL
UID:1@example.com
UID:2@example.com
DTSTAMP:20240101T000000Z
DTSTART:20240101T090000Z
END:VJOURNAL
END:VCALENDAR
`

const testJournalMultipleExdatesInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//Journal Calendar//EN
BEGIN:VJOURNAL
UID:journal123@example.com
DTSTAMP:20240101T000000Z
DTSTART:20240101T090000Z
SUMMARY:Journal with Multiple Exception Dates
DESCRIPTION:This journal has multiple exception dates to test the append functionality
CLASS:CONFIDENTIAL
STATUS:FINAL
EXDATE:20240115T090000Z,20240122T090000Z,20240129T090000Z
END:VJOURNAL
END:VCALENDAR
`

const testFreeBusyInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//FreeBusy Calendar//EN
BEGIN:VFREEBUSY
UID:freebusy123@example.com
DTSTAMP:20240101T000000Z
CONTACT:John Doe, Scheduling Assistant, +1-555-0123
DTSTART:20240101T000000Z
DTEND:20240131T235959Z
ORGANIZER;CN=Calendar Owner:mailto:owner@example.com
ATTENDEE:mailto:user1@example.com
ATTENDEE:mailto:user2@example.com
COMMENT:Available for meetings during business hours
FREEBUSY:20240101T090000Z/20240101T120000Z
FREEBUSY:20240101T130000Z/20240101T170000Z
FREEBUSY:20240102T100000Z/20240102T110000Z/BUSY-TENTATIVE
URL:https://calendar.example.com/freebusy/123
END:VFREEBUSY
END:VCALENDAR
`

const testFreeBusyMissingUIDInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
BEGIN:VFREEBUSY
DTSTAMP:20240101T000000Z
DTSTART:20240101T000000Z
END:VFREEBUSY
END:VCALENDAR
`

const testFreeBusyInvalidFreeBusyInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
BEGIN:VFREEBUSY
UID:1@example.com
DTSTAMP:20240101T000000Z
DTSTART:20240101T000000Z
FREEBUSY:not-a-valid-freebusy-value
END:VFREEBUSY
END:VCALENDAR
`

const testTimezoneInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//Timezone Calendar//EN
BEGIN:VTIMEZONE
TZID:America/New_York
LAST-MODIFIED:20240101T000000Z
TZURL:http://tzurl.org/zoneinfo-outlook/America/New_York
BEGIN:STANDARD
DTSTART:20240101T020000Z
TZOFFSETFROM:-0400
TZOFFSETTO:-0500
TZNAME:EST
COMMENT:Eastern Standard Time
RDATE:20240101T020000Z
END:STANDARD
BEGIN:DAYLIGHT
DTSTART:20240301T020000Z
TZOFFSETFROM:-0500
TZOFFSETTO:-0400
TZNAME:EDT
COMMENT:Eastern Daylight Time
RDATE:20240301T020000Z
END:DAYLIGHT
END:VTIMEZONE
END:VCALENDAR
`

const testTimezoneMissingTZIDInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
BEGIN:VTIMEZONE
BEGIN:STANDARD
DTSTART:20240101T020000Z
TZOFFSETFROM:-0400
TZOFFSETTO:-0500
END:STANDARD
END:VTIMEZONE
END:VCALENDAR
`

const testTimezoneInvalidDTStartInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
BEGIN:VTIMEZONE
TZID:America/New_York
BEGIN:STANDARD
DTSTART:not-a-valid-datetime
TZOFFSETFROM:-0400
TZOFFSETTO:-0500
END:STANDARD
END:VTIMEZONE
END:VCALENDAR
`

const testEventWithAlarmInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Event//Event Calendar//EN
BEGIN:VEVENT
UID:13235@example.com
DTSTAMP:19700101T000000Z
DTSTART:20250928T183000Z
DTEND:20250928T203000Z
SUMMARY:Event with Alarm
DESCRIPTION:Event Description
BEGIN:VALARM
ACTION:DISPLAY
TRIGGER:-PT15M
DESCRIPTION:Reminder: Event starting in 15 minutes
REPEAT:2
DURATION:PT5M
END:VALARM
BEGIN:VALARM
ACTION:EMAIL
TRIGGER:-PT1H
DESCRIPTION:Email reminder for upcoming event
SUMMARY:Event Reminder
ATTENDEE:mailto:user@example.com
END:VALARM
END:VEVENT
END:VCALENDAR
`

const testEventAlarmMissingActionInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
BEGIN:VEVENT
UID:1@example.com
DTSTAMP:19700101T000000Z
DTSTART:20250928T183000Z
BEGIN:VALARM
TRIGGER:-PT15M
END:VALARM
END:VEVENT
END:VCALENDAR
`

const testEventAlarmMissingDescriptionDisplayInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
BEGIN:VEVENT
UID:1@example.com
DTSTAMP:19700101T000000Z
DTSTART:20250928T183000Z
BEGIN:VALARM
ACTION:DISPLAY
TRIGGER:-PT15M
END:VALARM
END:VEVENT
END:VCALENDAR
`

const testEventAlarmMissingAttendeeEmailInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:Id
BEGIN:VEVENT
UID:1@example.com
DTSTAMP:19700101T000000Z
DTSTART:20250928T183000Z
BEGIN:VALARM
ACTION:EMAIL
TRIGGER:-PT1H
DESCRIPTION:Email reminder
SUMMARY:Reminder
END:VALARM
END:VEVENT
END:VCALENDAR
`

func TestParseSuccess(t *testing.T) {
	testCases := []struct {
		name             string
		input            string
		expectedCalendar *model.Calendar
	}{
		{
			name:  "Valid iCal event",
			input: testIcalInput,
			expectedCalendar: &model.Calendar{
				ProdID:   "-//Event//Event Calendar//EN",
				Version:  "2.0",
				Method:   "REQUEST",
				CalScale: "GREGORIAN",
				Events: []model.Event{
					{
						DTStamp:     time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
						UID:         "13235@example.com",
						Comment:     []string{"I Am", "A Comment"},
						Start:       time.Date(2025, time.September, 28, 18, 30, 0, 0, time.UTC),
						End:         time.Date(2025, time.September, 28, 20, 30, 0, 0, time.UTC),
						Summary:     "Event Summary",
						Description: "Event Description",
						Location:    "555 Fake Street",
						Organizer: &model.Organizer{
							CommonName: "Org",
							CalAddress: &url.URL{Scheme: "mailto", Opaque: "hello@world"},
						},
						Status:       model.EventStatusConfirmed,
						Sequence:     1,
						Transp:       model.EventTranspOpaque,
						Contacts:     []string{"Jim Dolittle, ABC Industries, +1-919-555-1234"},
						LastModified: time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
						Categories:   []string{"first", "second", "third"},
						Geo:          []float64{37.386013, -122.082932},
					},
				},
				TimeZones: []model.TimeZone{
					{
						TimeZoneID: "America/Detroit",
						Standard: []model.TimeZoneProperty{
							{
								TimeZoneOffsetFrom: "+0000",
								TimeZoneOffsetTo:   "+0000",
								DTStart:            time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
							},
						},
					},
				},
			},
		},
		{
			name:  "No VEVENT block",
			input: testEmptyCalendarInput,
			expectedCalendar: &model.Calendar{
				Version: "2.0",
				ProdID:  "Id",
				Events:  nil,
			},
		},
		{
			name:  "Valid calendar",
			input: testValidCalendarInput,
			expectedCalendar: &model.Calendar{
				ProdID:   "-//Event//Event Calendar//EN",
				Version:  "2.0",
				Method:   "REQUEST",
				CalScale: "GREGORIAN",
			},
		},
		{
			name:  "Valid organizer with all parameters set",
			input: testIcalFullOrganizerInput,
			expectedCalendar: &model.Calendar{
				ProdID:   "-//Event//Event Calendar//EN",
				Version:  "2.0",
				Method:   "REQUEST",
				CalScale: "GREGORIAN",
				Events: []model.Event{
					{
						DTStamp:     time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
						UID:         "13235@example.com",
						Start:       time.Date(2025, time.September, 28, 18, 30, 0, 0, time.UTC),
						End:         time.Date(2025, time.September, 28, 20, 30, 0, 0, time.UTC),
						Summary:     "Event Summary",
						Description: "Event Description",
						Location:    "555 Fake Street",
						Organizer: &model.Organizer{
							CommonName: "JohnSmith",
							Directory:  &url.URL{Scheme: "ldap", Host: "example.com:6666", Path: "/o=DC Associates,c=US", RawQuery: "??(cn=John%20Smith)"},
							CalAddress: &url.URL{Scheme: "mailto", Opaque: "jsmith@example.com"},
							Language:   "en-us",
							SentBy:     &url.URL{Scheme: "mailto", Opaque: "mailtojsmith@example.com"},
							OtherParams: map[string]string{
								"MISCFIELD":  "TEST",
								"MISCFIELD2": "TEST2",
							},
						},
						Status:       model.EventStatusConfirmed,
						Sequence:     1,
						Comment:      []string{"I Am", "A Comment"},
						Categories:   []string{"first", "second", "third"},
						Geo:          []float64{37.386013, -122.082932},
						Transp:       model.EventTranspOpaque,
						Contacts:     []string{"Jim Dolittle, ABC Industries, +1-919-555-1234"},
						LastModified: time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
					},
				},
				TimeZones: []model.TimeZone{
					{
						TimeZoneID: "America/Detroit",
						Standard: []model.TimeZoneProperty{
							{
								TimeZoneOffsetFrom: "+0000",
								TimeZoneOffsetTo:   "+0000",
								DTStart:            time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
							},
						},
					},
				},
			},
		},
		{
			name:  "Valid VTODO",
			input: testTodoInput,
			expectedCalendar: &model.Calendar{
				ProdID:  "-//Test//Todo Calendar//EN",
				Version: "2.0",
				Todos: []model.Todo{
					{
						UID:             "todo123@example.com",
						DTStamp:         time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
						Summary:         "Complete project documentation",
						Description:     []string{"Write comprehensive documentation for the new API", "Include examples and usage patterns"},
						Location:        "Office",
						Class:           model.TodoClassConfidential,
						Status:          model.TodoStatusInProcess,
						Priority:        1,
						PercentComplete: 75,
						Created:         time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
						LastModified:    time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC),
						DTStart:         time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC),
						Due:             time.Date(2024, time.January, 30, 17, 0, 0, 0, time.UTC),
						Organizer: &model.Organizer{
							CommonName: "Project Manager",
							CalAddress: &url.URL{Scheme: "mailto", Opaque: "pm@example.com"},
						},
						Attendees:  []url.URL{{Scheme: "mailto", Opaque: "dev1@example.com"}, {Scheme: "mailto", Opaque: "dev2@example.com"}},
						Contacts:   []string{"John Doe, Engineering Team, +1-555-0123"},
						Categories: []string{"work", "urgent", "project"},
						Comment:    []string{"This is a critical task for the Q1 release"},
						Resources:  []string{"laptop", "meeting-room"},
						Geo:        []float64{37.7749, -122.4194},
						URL:        "https://project.example.com/todo/123",
					},
				},
			},
		},
		{
			name:  "Valid VJOURNAL",
			input: testJournalInput,
			expectedCalendar: &model.Calendar{
				ProdID:  "-//Test//Journal Calendar//EN",
				Version: "2.0",
				Journals: []model.Journal{
					{
						UID:          "journal123@example.com",
						DTStamp:      time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
						Summary:      "Project status update",
						Description:  []string{"Completed the initial research phase", "Identified key stakeholders and requirements"},
						Class:        model.JournalClassConfidential,
						Status:       model.JournalStatusFinal,
						Created:      time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC),
						LastModified: time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC),
						DTStart:      time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC),
						Organizer: &model.Organizer{
							CommonName: "Project Lead",
							CalAddress: &url.URL{Scheme: "mailto", Opaque: "lead@example.com"},
						},
						Attendees:  []url.URL{{Scheme: "mailto", Opaque: "stakeholder1@example.com"}, {Scheme: "mailto", Opaque: "stakeholder2@example.com"}},
						Contacts:   []string{"Jane Doe, Project Manager, +1-555-0456"},
						Categories: []string{"work", "project", "status"},
						Comment:    []string{"This journal entry documents the completion of Phase 1"},
						URL:        "https://project.example.com/journal/123",
					},
				},
			},
		},
		{
			name:  "Valid VJOURNAL with Multiple Exception Dates",
			input: testJournalMultipleExdatesInput,
			expectedCalendar: &model.Calendar{
				ProdID:  "-//Test//Journal Calendar//EN",
				Version: "2.0",
				Journals: []model.Journal{
					{
						UID:         "journal123@example.com",
						DTStamp:     time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
						DTStart:     time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC),
						Summary:     "Journal with Multiple Exception Dates",
						Description: []string{"This journal has multiple exception dates to test the append functionality"},
						Class:       model.JournalClassConfidential,
						Status:      model.JournalStatusFinal,
						ExceptionDates: []time.Time{
							time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC),
							time.Date(2024, time.January, 22, 9, 0, 0, 0, time.UTC),
							time.Date(2024, time.January, 29, 9, 0, 0, 0, time.UTC),
						},
					},
				},
			},
		},
		{
			name:  "Valid VFREEBUSY",
			input: testFreeBusyInput,
			expectedCalendar: &model.Calendar{
				ProdID:  "-//Test//FreeBusy Calendar//EN",
				Version: "2.0",
				FreeBusys: []model.FreeBusy{
					{
						UID:     "freebusy123@example.com",
						DTStamp: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
						Contact: "John Doe, Scheduling Assistant, +1-555-0123",
						DTStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
						DTEnd:   time.Date(2024, time.January, 31, 23, 59, 59, 0, time.UTC),
						Organizer: &model.Organizer{
							CommonName: "Calendar Owner",
							CalAddress: &url.URL{Scheme: "mailto", Opaque: "owner@example.com"},
						},
						Attendees: []url.URL{{Scheme: "mailto", Opaque: "user1@example.com"}, {Scheme: "mailto", Opaque: "user2@example.com"}},
						Comment:   []string{"Available for meetings during business hours"},
						FreeBusy: []model.FreeBusyTime{
							{
								Start:  time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC),
								End:    time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC),
								Status: model.FreeBusyStatusBusy,
							},
							{
								Start:  time.Date(2024, time.January, 1, 13, 0, 0, 0, time.UTC),
								End:    time.Date(2024, time.January, 1, 17, 0, 0, 0, time.UTC),
								Status: model.FreeBusyStatusBusy,
							},
							{
								Start:  time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC),
								End:    time.Date(2024, time.January, 2, 11, 0, 0, 0, time.UTC),
								Status: model.FreeBusyStatusBusyTentative,
							},
						},
						URL: "https://calendar.example.com/freebusy/123",
					},
				},
			},
		},
		{
			name:  "Valid VTIMEZONE",
			input: testTimezoneInput,
			expectedCalendar: &model.Calendar{
				ProdID:  "-//Test//Timezone Calendar//EN",
				Version: "2.0",
				TimeZones: []model.TimeZone{
					{
						TimeZoneID:  "America/New_York",
						LastMod:     time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
						TimeZoneURL: &url.URL{Scheme: "http", Host: "tzurl.org", Path: "/zoneinfo-outlook/America/New_York"},
						Standard: []model.TimeZoneProperty{
							{
								TimeZoneOffsetFrom: "-0400",
								TimeZoneOffsetTo:   "-0500",
								DTStart:            time.Date(2024, time.January, 1, 2, 0, 0, 0, time.UTC),
								TimeZoneName:       []string{"EST"},
								Comment:            []string{"Eastern Standard Time"},
								Rdate:              []time.Time{time.Date(2024, time.January, 1, 2, 0, 0, 0, time.UTC)},
							},
						},
						Daylight: []model.TimeZoneProperty{
							{
								TimeZoneOffsetFrom: "-0500",
								TimeZoneOffsetTo:   "-0400",
								DTStart:            time.Date(2024, time.March, 1, 2, 0, 0, 0, time.UTC),
								TimeZoneName:       []string{"EDT"},
								Comment:            []string{"Eastern Daylight Time"},
								Rdate:              []time.Time{time.Date(2024, time.March, 1, 2, 0, 0, 0, time.UTC)},
							},
						},
					},
				},
			},
		},
		{
			name:  "Valid VEVENT with VALARM",
			input: testEventWithAlarmInput,
			expectedCalendar: &model.Calendar{
				ProdID:  "-//Event//Event Calendar//EN",
				Version: "2.0",
				Events: []model.Event{
					{
						UID:         "13235@example.com",
						DTStamp:     time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
						Start:       time.Date(2025, time.September, 28, 18, 30, 0, 0, time.UTC),
						End:         time.Date(2025, time.September, 28, 20, 30, 0, 0, time.UTC),
						Summary:     "Event with Alarm",
						Description: "Event Description",
						Alarms: []model.Alarm{
							{
								Action:      model.AlarmActionDisplay,
								Trigger:     "-PT15M",
								Description: []string{"Reminder: Event starting in 15 minutes"},
								Repeat:      2,
								Duration:    5 * time.Minute,
							},
							{
								Action:      model.AlarmActionEmail,
								Trigger:     "-PT1H",
								Description: []string{"Email reminder for upcoming event"},
								Summary:     "Event Reminder",
								Attendees:   []url.URL{{Scheme: "mailto", Opaque: "user@example.com"}},
							},
						},
					},
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calendar, err := IcalString(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, *tc.expectedCalendar, *calendar)
		})
	}
}

func TestParseError(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		expectedError error
	}{
		{
			name:          "Empty input",
			input:         "",
			expectedError: ErrNoCalendarFound,
		},
		{
			name:          "Invalid organizer",
			input:         testIcalInvalidOrganizerInput,
			expectedError: ErrInvalidProtocol,
		},
		{
			name:          "Calendar with no BEGIN:VCALENDAR",
			input:         testInvalidBeginCalendarInput,
			expectedError: ErrInvalidCalendarFormatMissingBegin,
		},
		{
			name:          "Calendar with no END:VCALENDAR",
			input:         testInvalidEndCalendarInput,
			expectedError: ErrInvalidCalendarFormatMissingEnd,
		},
		{
			name:          "Invalid start date",
			input:         testIcalInvalidStartInput,
			expectedError: ErrParseErrorInComponent,
		},
		{
			name:          "Invalid end date",
			input:         testIcalInvalidEndInput,
			expectedError: ErrParseErrorInComponent,
		},
		{
			name:          "Content after END:VCALENDAR",
			input:         testIcalContentAfterEndBlockInput,
			expectedError: ErrContentAfterEndBlock,
		},
		{
			name:          "Duplicate UID",
			input:         testIcalDuplicateUIDInput,
			expectedError: ErrDuplicateProperty,
		},
		{
			name:          "Duplicate sequence",
			input:         testIcalDuplicateSequenceInput,
			expectedError: fmt.Errorf(ErrDuplicatePropertyInComponentFormat, ErrDuplicatePropertyInComponent, model.EventTokenSequence, eventLocation),
		},
		{
			name:          "Both duration and end date are specified, DTEND first",
			input:         testIcalBothDurationAndEndInput,
			expectedError: ErrInvalidDurationPropertyDtend,
		},
		{
			name:          "Both duration and end date are specified, DURATION first",
			input:         testIcalBothDurationAndEndDurationFirstInput,
			expectedError: ErrInvalidDurationPropertyDtend,
		},
		{
			name:          "Missing colon in event property line",
			input:         testIcalMissingColonInput,
			expectedError: fmt.Errorf("%w: %s", ErrInvalidPropertyLine, "STATUSCONFIRMED"),
		},
		{
			name:          "Missing UID",
			input:         testIcalMissingUIDInput,
			expectedError: ErrMissingEventUIDProperty,
		},
		{
			name:          "Missing DTSTART",
			input:         testIcalMissingDTStartInput,
			expectedError: ErrMissingEventDTStartProperty,
		},
		{
			name:          "Empty line in calendar",
			input:         testInvalidEmptyLineCalendarInput,
			expectedError: ErrInvalidCalendarEmptyLine,
		},
		{
			name:          "Calendar missing VERSION property",
			input:         testCalendarMissingVersionInput,
			expectedError: ErrMissingCalendarVersionProperty,
		},
		{
			name:          "Calendar missing PRODID property",
			input:         testCalendarMissingProdIDInput,
			expectedError: ErrMissingCalendarProdIDProperty,
		},
		{
			name:          "VTODO missing UID",
			input:         testTodoMissingUIDInput,
			expectedError: ErrMissingTodoUIDProperty,
		},
		{
			name:          "VTODO both DUE and DURATION",
			input:         testTodoBothDueAndDurationInput,
			expectedError: ErrInvalidDurationPropertyDue,
		},
		{
			name:          "VTODO invalid GEO",
			input:         testTodoInvalidGeoInput,
			expectedError: ErrInvalidGeoProperty,
		},
		{
			name:          "VJOURNAL missing UID",
			input:         testJournalMissingUIDInput,
			expectedError: ErrMissingJournalUIDProperty,
		},
		{
			name:          "VFREEBUSY missing UID",
			input:         testFreeBusyMissingUIDInput,
			expectedError: ErrMissingFreeBusyUIDProperty,
		},
		{
			name:          "VFREEBUSY invalid FREEBUSY format",
			input:         testFreeBusyInvalidFreeBusyInput,
			expectedError: ErrInvalidFreeBusyFormat,
		},
		{
			name:          "VTIMEZONE missing TZID",
			input:         testTimezoneMissingTZIDInput,
			expectedError: ErrMissingTimezoneTZIDProperty,
		},
		{
			name:          "VTIMEZONE invalid DTSTART",
			input:         testTimezoneInvalidDTStartInput,
			expectedError: ErrInvalidTimezoneProperty,
		},
		{
			name:          "VALARM missing ACTION",
			input:         testEventAlarmMissingActionInput,
			expectedError: ErrMissingAlarmActionProperty,
		},
		{
			name:          "VALARM DISPLAY missing DESCRIPTION",
			input:         testEventAlarmMissingDescriptionDisplayInput,
			expectedError: ErrMissingAlarmDescriptionForDisplay,
		},
		{
			name:          "VALARM EMAIL missing ATTENDEE",
			input:         testEventAlarmMissingAttendeeEmailInput,
			expectedError: ErrMissingAlarmAttendeesForEmail,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calendar, err := IcalString(tc.input)
			assert.ErrorContains(t, err, tc.expectedError.Error())
			assert.Nil(t, calendar)
		})
	}
}

func BenchmarkIcalString(b *testing.B) {
	for b.Loop() {
		_, _ = IcalString(testIcalInput)
	}
}
