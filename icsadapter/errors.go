// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package icsadapter

import "errors"

// ErrMissingStart is returned by ToRecurEvent when the VEVENT has no
// DTSTART; the engine has nothing to anchor a rule or a single occurrence
// to without one.
var ErrMissingStart = errors.New("icsadapter: event has no DTSTART")
