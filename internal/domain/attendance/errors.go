package attendance

import "errors"

var (
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrAlreadyMarked  = errors.New("attendance already marked for this date")
)
