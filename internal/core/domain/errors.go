package domain

import "errors"

var (
	ErrLotNotFound          = errors.New("parking lot not found")
	ErrCarNotFound          = errors.New("car not found")
	ErrCapacityExhausted    = errors.New("no free spaces in lot")
	ErrCapacityOverflow     = errors.New("release would exceed lot capacity")
	ErrDuplicateActiveEntry = errors.New("car already has an active entry")
	ErrEntryNotFound        = errors.New("entry not found")
	ErrAlreadyExited        = errors.New("entry already completed")
	ErrInvalidDuration      = errors.New("exit time must be after entry time")
)
