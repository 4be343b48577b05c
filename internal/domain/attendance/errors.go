package attendance

import "errors"

// Attendance domain errors
var (
	// Transition errors
	ErrAlreadyPunchedIn  = errors.New("already punched in")
	ErrNeedsPunchIn      = errors.New("needs prior punch-in")
	ErrAlreadyPunchedOut = errors.New("already punched out")
	ErrUnsupportedKind   = errors.New("unsupported kind")
	ErrBlockedByLeave    = errors.New("punches are disabled today because of registered leave")

	// Store errors
	ErrStatusUnavailable = errors.New("could not load attendance status")
	ErrPunchNotSaved     = errors.New("could not save attendance record")
)
