package parse

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kjdev/calrecur/icaldur"
)

// Unexported aliases for the exported sentinels, kept so package-internal
// callers don't have to spell the Err-prefixed names.
var errDuplicatePropertyInComponent = ErrDuplicatePropertyInComponent
var errParseErrorInComponent = ErrParseErrorInComponent
const errDuplicatePropertyInComponentFormat = ErrDuplicatePropertyInComponentFormat

func setOnceProperty[T comparable](field *T, value T, propertyName string, componentType string) error {
	var zero T
	if *field != zero {
		return fmt.Errorf("%w: %s set twice in component %s", errDuplicatePropertyInComponent, propertyName, componentType)
	}
	*field = value
	return nil
}

// setOnceIntProperty sets an int field only if it hasn't been set before.
// this is intended for properties that according to the spec must only be set once
func setOnceIntProperty(field *int, value, propertyName string, componentType string) error {
	parsedValue, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: %s property %s in iCal", errParseErrorInComponent, componentType, propertyName)
	}
	return setOnceProperty(field, parsedValue, propertyName, componentType)
}

// setOnceTimeProperty sets a time.Time field only if it hasn't been set before.
// this is intended for properties that according to the spec must only be set once
func setOnceTimeProperty(field *time.Time, value, propertyName string, componentType string) error {
	parsedTime, err := time.Parse(iCalDateTimeFormat, value)
	if err != nil {
		return fmt.Errorf("%w: %s property %s in iCal", errParseErrorInComponent, componentType, propertyName)
	}
	return setOnceProperty(field, parsedTime, propertyName, componentType)
}

// setOnceDurationProperty sets a duration field only if it hasn't been set before.
// this is intended for properties that according to the spec must only be set once
func setOnceDurationProperty(field *time.Duration, value, propertyName string, componentType string) error {
	parsedDuration, err := icaldur.ParseICalDuration(value)
	if err != nil {
		return fmt.Errorf("%w: %s property %s in iCal", errParseErrorInComponent, componentType, propertyName)
	}
	return setOnceProperty(field, parsedDuration, propertyName, componentType)
}

// appendTimeProperty parses a comma-separated list of datetime or bare date
// (YYYYMMDD) values and appends each to field. Used for repeatable
// date-valued properties such as EXDATE/RDATE.
func appendTimeProperty(field *[]time.Time, value, propertyName string, componentType string) error {
	for part := range strings.SplitSeq(value, ",") {
		parsedTime, err := time.Parse(iCalDateTimeFormat, part)
		if err != nil {
			parsedTime, err = icaldur.ParseIcalDate(part)
		}
		if err != nil {
			return fmt.Errorf("%w: %s property %s in iCal", errParseErrorInComponent, componentType, propertyName)
		}
		*field = append(*field, parsedTime)
	}
	return nil
}
