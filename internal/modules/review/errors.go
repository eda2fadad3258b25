package review

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrInviteInvalid  = errors.New("invite_invalid")
	ErrInviteUsed     = errors.New("invite_used")
	ErrNotFound       = errors.New("not_found")
	ErrConflict       = errors.New("conflict")
)
