package leave

import "errors"

// Leave calendar domain errors
var (
	ErrInvalidYear         = errors.New("year must be between 1970 and 2100")
	ErrInvalidMonth        = errors.New("month must be between 1 and 12")
	ErrCalendarUnavailable = errors.New("could not load leave calendar")
)
