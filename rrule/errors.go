// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Every ParseError wraps exactly one of these; test code
// and callers should match against the kind with errors.Is, not by string.
var (
	ErrDuplicateProperty       = errors.New("duplicate property")
	ErrInvalidValue            = errors.New("invalid value")
	ErrMissingRequiredProperty = errors.New("missing required property")
	ErrInvalidProperty         = errors.New("invalid property")
	ErrCannotCoexist           = errors.New("cannot coexist")
	ErrRequires                = errors.New("requires")
)

// ParseError is the single error type Parse returns. Property names the
// RRULE token the error concerns; Other names a second token for the
// coexistence kinds (CannotCoexist, Requires), and is empty otherwise.
type ParseError struct {
	Kind     error
	Property string
	Other    string
}

func (e *ParseError) Error() string {
	switch {
	case errors.Is(e.Kind, ErrCannotCoexist):
		return fmt.Sprintf("%s: %s cannot coexist with %s", e.Kind, e.Property, e.Other)
	case errors.Is(e.Kind, ErrRequires):
		return fmt.Sprintf("%s: %s requires %s", e.Kind, e.Property, e.Other)
	case errors.Is(e.Kind, ErrDuplicateProperty) && e.Other != "":
		return fmt.Sprintf("%s: %s and %s", e.Kind, e.Property, e.Other)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Property)
	}
}

func (e *ParseError) Unwrap() error { return e.Kind }

func duplicateProperty(a, b string) error {
	return &ParseError{Kind: ErrDuplicateProperty, Property: a, Other: b}
}

func invalidValue(property string) error {
	return &ParseError{Kind: ErrInvalidValue, Property: property}
}

func missingRequiredProperty(property string) error {
	return &ParseError{Kind: ErrMissingRequiredProperty, Property: property}
}

func invalidProperty(property string) error {
	return &ParseError{Kind: ErrInvalidProperty, Property: property}
}

func cannotCoexist(a, b string) error {
	return &ParseError{Kind: ErrCannotCoexist, Property: a, Other: b}
}

func requires(a, b string) error {
	return &ParseError{Kind: ErrRequires, Property: a, Other: b}
}
