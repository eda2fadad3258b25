package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrUnknownService    = errors.New("unknown or inactive service in selection")
	ErrSelectionRejected = errors.New("service combination rejected")
	ErrNotAvailable      = errors.New("slot not available")
	ErrOverbooking       = errors.New("overbooking constraint violation")
	ErrNotFound          = errors.New("appointment not found")
)
