package services

import "errors"

var (
	// ErrValidation marks a rejected admin or checkout input; nothing was
	// committed and the message is safe to show inline.
	ErrValidation = errors.New("validation failed")

	// ErrTransition marks a status change the configured flow does not allow.
	ErrTransition = errors.New("transition not allowed")
)
