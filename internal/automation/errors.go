package automation

import "errors"

// ErrInvalidArgument marks a request rejected before any input was
// delivered.
var ErrInvalidArgument = errors.New("automation: invalid argument")

// ErrFailSafe is returned when the pointer sits in a screen corner and
// the fail-safe is armed. Parking the pointer in a corner is the
// operator's abort signal.
var ErrFailSafe = errors.New("automation: fail-safe triggered, pointer in screen corner")
