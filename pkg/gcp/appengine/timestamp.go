/*
This file is part of Rollrestart.

Copyright (C) 2026 The Rollrestart Authors.
*/

package appengine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// timestampLayout is the seconds portion of the timestamps emitted by
// the Admin API. The fractional part is handled separately because the
// API emits a variable number of digits.
const timestampLayout = "2006-01-02T15:04:05"

// timestampRegexp matches the timestamps emitted by the Admin API:
// always UTC, always Z-suffixed, 0 to 9 fractional-second digits.
var timestampRegexp = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2})(?:\.(\d{1,9}))?Z$`)

// ParseError reports a start-time string that doesn't have the shape
// the Admin API is expected to emit
type ParseError struct {
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed App Engine timestamp: %q", e.Value)
}

// ParseTimestamp parses a timestamp emitted by the Admin API into a UTC
// time with microsecond resolution. Fractional seconds of any length
// are rescaled to exactly six digits: shorter values are padded with
// trailing zeros, longer ones are truncated, never rounded.
//
// A string of any other shape fails with a ParseError. Callers must not
// skip unparsable records: an instance whose start time cannot be read
// cannot be proven fresh.
func ParseTimestamp(value string) (time.Time, error) {
	match := timestampRegexp.FindStringSubmatch(value)
	if match == nil {
		return time.Time{}, &ParseError{Value: value}
	}

	parsed, err := time.Parse(timestampLayout, match[1])
	if err != nil {
		return time.Time{}, &ParseError{Value: value}
	}

	if match[2] == "" {
		return parsed, nil
	}

	fraction := match[2]
	if len(fraction) > 6 {
		fraction = fraction[:6]
	}
	fraction += strings.Repeat("0", 6-len(fraction))
	micros, err := strconv.Atoi(fraction)
	if err != nil {
		return time.Time{}, &ParseError{Value: value}
	}

	return parsed.Add(time.Duration(micros) * time.Microsecond), nil
}
