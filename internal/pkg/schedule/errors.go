package schedule

import "errors"

// Sentinel errors returned by parsing and construction. They are plain values
// so that callers can aggregate every problem in a batch before responding,
// instead of stopping at the first bad field.
var (
	ErrMalformedTime   = errors.New("malformed time, expected HH:MM or HH:MM:SS")
	ErrOutOfRange      = errors.New("time arithmetic left the [00:00, 24:00) range")
	ErrUnknownWeekday  = errors.New("unknown weekday token")
	ErrInvalidInterval = errors.New("interval start must be strictly before end")
)
