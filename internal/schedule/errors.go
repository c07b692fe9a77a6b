package schedule

import "errors"

var (
	ErrUnknownSheetName = errors.New("invalid or missing calendar ID")
	ErrNoDates          = errors.New("no dates provided")
	ErrInvalidDate      = errors.New("invalid date")
	ErrNoSlots          = errors.New("no slots to submit")
)
