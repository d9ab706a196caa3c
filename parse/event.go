package parse

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kjdev/calrecur/model"
	"github.com/kjdev/calrecur/rrule"
)

const eventLocation = "Event"

// parseEventProperty parses a single property line and adds it to the provided event.
func parseEventProperty(propertyName string, value string, params map[string]string, event *model.Event) error {
	switch model.EventToken(propertyName) {
	case model.EventTokenDTStamp:
		return setOnceTimeProperty(&event.DTStamp, value, propertyName, eventLocation)
	case model.EventTokenUID:
		return setOnceProperty(&event.UID, value, propertyName, eventLocation)
	case model.EventTokenSummary:
		return setOnceProperty(&event.Summary, value, propertyName, eventLocation)
	case model.EventTokenDescription:
		return setOnceProperty(&event.Description, value, propertyName, eventLocation)
	case model.EventTokenLocation:
		return setOnceProperty(&event.Location, value, propertyName, eventLocation)
	case model.EventTokenDtstart:
		return setOnceTimeProperty(&event.Start, value, propertyName, eventLocation)

	// Dtend and Duration are mutually exclusive
	case model.EventTokenDtend:
		if event.Duration != 0 {
			return ErrInvalidDurationPropertyDtend
		}
		return setOnceTimeProperty(&event.End, value, propertyName, eventLocation)
	case model.EventTokenDuration:
		if event.End != (time.Time{}) {
			return ErrInvalidDurationPropertyDtend
		}
		return setOnceDurationProperty(&event.Duration, value, propertyName, eventLocation)

	case model.EventTokenOrganizer:
		organizer, err := parseOrganizer(value, params)
		if err != nil {
			return err
		}
		event.Organizer = organizer
	case model.EventTokenStatus:
		return setOnceProperty(&event.Status, model.EventStatus(value), propertyName, eventLocation)
	case model.EventTokenSequence:
		return setOnceIntProperty(&event.Sequence, value, propertyName, eventLocation)
	case model.EventTokenTransp:
		return setOnceProperty(&event.Transp, model.EventTransp(value), propertyName, eventLocation)
	case model.EventTokenLastModified:
		return setOnceTimeProperty(&event.LastModified, value, propertyName, eventLocation)
	case model.EventTokenRRule:
		rule, err := rrule.Parse(value)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrParseErrorInComponent, err.Error())
		}
		return setOnceProperty(&event.RRule, rule, propertyName, eventLocation)

	case model.EventTokenGeo:
		if event.Geo != nil {
			return fmt.Errorf("%w: %s", ErrDuplicateProperty, propertyName)
		}
		latitudeString, longitudeString, found := strings.Cut(value, ";")
		if !found {
			return ErrInvalidGeoProperty
		}
		latitude, err := strconv.ParseFloat(latitudeString, 64)
		if err != nil {
			return ErrInvalidGeoPropertyLatitude
		}
		longitude, err := strconv.ParseFloat(longitudeString, 64)
		if err != nil {
			return ErrInvalidGeoPropertyLongitude
		}
		event.Geo = append(event.Geo, latitude, longitude)

	// Repeatable properties
	case model.EventTokenContact:
		event.Contacts = append(event.Contacts, value)
	case model.EventTokenComment:
		event.Comment = append(event.Comment, value)
	case model.EventTokenCategories:
		event.Categories = append(event.Categories, strings.Split(value, ",")...)
	case model.EventTokenExceptionDates:
		return appendTimeProperty(&event.ExceptionDates, value, propertyName, eventLocation)
	case model.EventTokenRdate:
		return appendTimeProperty(&event.Rdate, value, propertyName, eventLocation)

	default:
		return fmt.Errorf("%w: %s", ErrInvalidEventProperty, propertyName)
	}
	return nil
}

// validateEvent ensures that all required values are present for an event.
func validateEvent(event *model.Event, hasMethod bool) error {
	if event.UID == "" {
		return ErrMissingEventUIDProperty
	}
	if event.Start == (time.Time{}) && !hasMethod {
		return ErrMissingEventDTStartProperty
	}
	return nil
}

// parseOrganizer builds an Organizer from an ORGANIZER property's value and parameters.
func parseOrganizer(value string, params map[string]string) (*model.Organizer, error) {
	calAddress, err := url.Parse(value)
	if err != nil {
		return nil, err
	}

	organizer := &model.Organizer{CalAddress: calAddress}

	for key, paramValue := range params {
		switch key {
		case "CN":
			organizer.CommonName = paramValue
		case "LANGUAGE":
			organizer.Language = paramValue
		case "DIR":
			dir, err := url.Parse(paramValue)
			if err != nil {
				return nil, err
			}
			organizer.Directory = dir
		case "SENT-BY":
			sentBy, err := url.Parse(paramValue)
			if err != nil {
				return nil, err
			}
			organizer.SentBy = sentBy
		default:
			if organizer.OtherParams == nil {
				organizer.OtherParams = map[string]string{}
			}
			organizer.OtherParams[key] = paramValue
		}
	}

	return organizer, nil
}
