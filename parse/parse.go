// Package parse contains the logic for parsing iCalendar files and strings into Go structs
package parse

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kjdev/calrecur/model"
)

// iCalDateTimeFormat represents the standard iCal datetime format
// Format: YYYYMMDDTHHMMSSZ (e.g., 20250928T183000Z)
const iCalDateTimeFormat = "20060102T150405Z"

// component tracks which block the scanner is currently inside, including
// nesting for VALARM (a sub-component of VEVENT/VTODO/VJOURNAL) and
// STANDARD/DAYLIGHT (sub-components of VTIMEZONE).
type component int

const (
	componentNone component = iota
	componentCalendar
	componentEvent
	componentTodo
	componentJournal
	componentFreeBusy
	componentTimezone
	componentStandard
	componentDaylight
	componentAlarm
)

// parseContext carries the in-progress calendar plus whichever component is
// currently being built, across the single pass over the input's lines.
type parseContext struct {
	calendar *model.Calendar

	stack []component

	currentEvent            *model.Event
	currentTodo             *model.Todo
	currentJournal          *model.Journal
	currentFreeBusy         *model.FreeBusy
	currentTimezone         *model.TimeZone
	currentTimeZoneProperty *model.TimeZoneProperty
	currentAlarm            *model.Alarm

	// alarmParent records which component owns the VALARM currently being
	// parsed, so END:VALARM knows where to attach the finished alarm.
	alarmParent component

	// state exposes the top of the stack as named flags for the
	// sub-component parsers that don't otherwise see the stack.
	state parseState
}

type parseState struct {
	inStandard bool
	inDaylight bool
}

func (c *parseContext) top() component {
	if len(c.stack) == 0 {
		return componentNone
	}
	return c.stack[len(c.stack)-1]
}

func (c *parseContext) push(comp component) {
	c.stack = append(c.stack, comp)
	c.refreshState()
}

func (c *parseContext) pop() component {
	if len(c.stack) == 0 {
		return componentNone
	}
	comp := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.refreshState()
	return comp
}

func (c *parseContext) refreshState() {
	c.state = parseState{
		inStandard: c.top() == componentStandard,
		inDaylight: c.top() == componentDaylight,
	}
}

// IcalString parses a complete iCalendar document into a Calendar.
// It returns an error if the input is not a well-formed iCalendar string.
func IcalString(input string) (*model.Calendar, error) {
	if strings.TrimSpace(input) == "" {
		return nil, errNoCalendarFound
	}

	lines := strings.Split(input, "\n")

	firstLine := strings.TrimSpace(lines[0])
	if firstLine != "BEGIN:VCALENDAR" {
		return nil, errInvalidCalendarFormatMissingBegin
	}

	ctx := &parseContext{calendar: &model.Calendar{}}
	calendarClosed := false

	for _, raw := range lines[1:] {
		line := strings.TrimRight(raw, "\r")
		if line == "" {
			if calendarClosed {
				continue
			}
			return nil, errInvalidCalendarEmptyLine
		}

		if calendarClosed {
			return nil, errContentAfterEndBlock
		}

		if line == "END:VCALENDAR" && len(ctx.stack) == 0 {
			calendarClosed = true
			continue
		}

		if err := ctx.handleLine(line); err != nil {
			return nil, err
		}
	}

	if !calendarClosed {
		return nil, errInvalidCalendarFormatMissingEnd
	}

	if err := validateCalendar(ctx.calendar); err != nil {
		return nil, err
	}

	return ctx.calendar, nil
}

func (ctx *parseContext) handleLine(line string) error {
	if beginValue, ok := strings.CutPrefix(line, "BEGIN:"); ok {
		return ctx.beginComponent(beginValue)
	}
	if endValue, ok := strings.CutPrefix(line, "END:"); ok {
		return ctx.endComponent(endValue)
	}

	propertyName, rawParams, value, err := parseIcalLine(line)
	if err != nil {
		return err
	}
	params := paramsToMap(rawParams)

	switch ctx.top() {
	case componentEvent:
		return parseEventProperty(propertyName, value, params, ctx.currentEvent)
	case componentTodo:
		return parseTodoProperty(propertyName, value, params, ctx.currentTodo)
	case componentJournal:
		return parseJournalProperty(propertyName, value, params, ctx.currentJournal)
	case componentFreeBusy:
		return parseFreeBusyProperty(propertyName, value, params, ctx.currentFreeBusy)
	case componentTimezone, componentStandard, componentDaylight:
		return parseTimezoneProperty(propertyName, value, params, ctx)
	case componentAlarm:
		return parseAlarmProperty(propertyName, value, params, ctx.currentAlarm)
	default:
		return parseCalendarProperty(propertyName, value, params, ctx.calendar)
	}
}

func (ctx *parseContext) beginComponent(name string) error {
	switch model.SectionToken(name) {
	case model.SectionTokenVCalendar:
		ctx.push(componentCalendar)
	case model.SectionTokenVEvent:
		ctx.currentEvent = &model.Event{}
		ctx.push(componentEvent)
	case model.SectionTokenVTodo:
		ctx.currentTodo = &model.Todo{}
		ctx.push(componentTodo)
	case model.SectionTokenVJournal:
		ctx.currentJournal = &model.Journal{}
		ctx.push(componentJournal)
	case model.SectionTokenVFreebusy:
		ctx.currentFreeBusy = &model.FreeBusy{}
		ctx.push(componentFreeBusy)
	case model.SectionTokenVTimezone:
		ctx.currentTimezone = &model.TimeZone{}
		ctx.push(componentTimezone)
	case model.SectionTokenVStandard:
		ctx.currentTimeZoneProperty = &model.TimeZoneProperty{}
		ctx.push(componentStandard)
	case model.SectionTokenVDaylight:
		ctx.currentTimeZoneProperty = &model.TimeZoneProperty{}
		ctx.push(componentDaylight)
	case model.SectionTokenVAlarm:
		ctx.currentAlarm = &model.Alarm{}
		ctx.alarmParent = ctx.top()
		ctx.push(componentAlarm)
	default:
		return fmt.Errorf("%w: BEGIN:%s", errInvalidPropertyLine, name)
	}
	return nil
}

func (ctx *parseContext) endComponent(name string) error {
	switch model.SectionToken(name) {
	case model.SectionTokenVCalendar:
		ctx.pop()
	case model.SectionTokenVEvent:
		if err := validateEvent(ctx.currentEvent, ctx.calendar.Method != ""); err != nil {
			return err
		}
		ctx.calendar.Events = append(ctx.calendar.Events, *ctx.currentEvent)
		ctx.currentEvent = nil
		ctx.pop()
	case model.SectionTokenVTodo:
		if err := validateTodo(ctx); err != nil {
			return err
		}
		ctx.calendar.Todos = append(ctx.calendar.Todos, *ctx.currentTodo)
		ctx.currentTodo = nil
		ctx.pop()
	case model.SectionTokenVJournal:
		if err := validateJournal(ctx.currentJournal); err != nil {
			return err
		}
		ctx.calendar.Journals = append(ctx.calendar.Journals, *ctx.currentJournal)
		ctx.currentJournal = nil
		ctx.pop()
	case model.SectionTokenVFreebusy:
		if err := validateFreeBusy(ctx.currentFreeBusy); err != nil {
			return err
		}
		ctx.calendar.FreeBusys = append(ctx.calendar.FreeBusys, *ctx.currentFreeBusy)
		ctx.currentFreeBusy = nil
		ctx.pop()
	case model.SectionTokenVTimezone:
		if err := validateTimeZone(ctx); err != nil {
			return err
		}
		ctx.calendar.TimeZones = append(ctx.calendar.TimeZones, *ctx.currentTimezone)
		ctx.currentTimezone = nil
		ctx.pop()
	case model.SectionTokenVStandard:
		ctx.currentTimezone.Standard = append(ctx.currentTimezone.Standard, *ctx.currentTimeZoneProperty)
		ctx.currentTimeZoneProperty = nil
		ctx.pop()
	case model.SectionTokenVDaylight:
		ctx.currentTimezone.Daylight = append(ctx.currentTimezone.Daylight, *ctx.currentTimeZoneProperty)
		ctx.currentTimeZoneProperty = nil
		ctx.pop()
	case model.SectionTokenVAlarm:
		if err := validateAlarm(ctx.currentAlarm); err != nil {
			return err
		}
		switch ctx.alarmParent {
		case componentEvent:
			ctx.currentEvent.Alarms = append(ctx.currentEvent.Alarms, *ctx.currentAlarm)
		case componentTodo:
			ctx.currentTodo.Alarms = append(ctx.currentTodo.Alarms, *ctx.currentAlarm)
		case componentJournal:
			ctx.currentJournal.Alarms = append(ctx.currentJournal.Alarms, *ctx.currentAlarm)
		}
		ctx.currentAlarm = nil
		ctx.pop()
	default:
		return fmt.Errorf("%w: END:%s", errInvalidPropertyLine, name)
	}
	return nil
}

// IcalReader parses a complete iCalendar document read from r into a Calendar.
func IcalReader(r io.Reader) (*model.Calendar, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return IcalString(string(data))
}

// IcalFromFileName reads the file at path and parses it into a Calendar.
func IcalFromFileName(path string) (*model.Calendar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return IcalString(string(data))
}

// paramsToMap converts the "KEY=VALUE" parameter slice from parseIcalLine
// into a lookup map, stripping one layer of surrounding quotes from values.
func paramsToMap(rawParams []string) map[string]string {
	if len(rawParams) == 0 {
		return nil
	}
	params := make(map[string]string, len(rawParams))
	for _, p := range rawParams {
		key, value, found := strings.Cut(p, "=")
		if !found {
			continue
		}
		value = strings.Trim(value, `"`)
		params[key] = value
	}
	return params
}
