// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package recur

import (
	"errors"
	"fmt"
)

// ErrUnsupported is the sentinel wrapped by UnsupportedError. Match against
// it with errors.Is rather than comparing concrete types.
var ErrUnsupported = errors.New("recurrence component not implemented for matching")

// UnsupportedError is returned by Instances/Dates when the inferred rule
// requires BYWEEKNO or BYSETPOS matching, neither of which the predicate
// stack evaluates. Raised once, before any scanning begins, so a query
// never loops forever chasing a component it cannot test.
type UnsupportedError struct {
	Component string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupported, e.Component)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }

// ErrUnboundedQuery is returned when a rule has no Until limit, no Count
// limit, and the caller supplied no "to" bound — there is nothing to stop
// the scan from running forever.
var ErrUnboundedQuery = errors.New("recur: query window requires an upper bound for an indefinite rule")

// assertNever panics to flag a state the parser's invariants should have
// made unreachable. It exists to make the distinction in §7-style error
// tiers explicit: this is a programmer/invariant bug, never a value a
// caller can recover from.
func assertNever(msg string) {
	panic("recur: invariant violation: " + msg)
}
