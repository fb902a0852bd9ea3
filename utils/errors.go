package utils

import "errors"

var (
	ErrEmptyID            = errors.New("identifier cannot be empty")
	ErrInvalidEntityID    = errors.New("identifier must be a 24-character hex string")
	ErrEmptyTrackingID    = errors.New("tracking ID cannot be empty")
	ErrInvalidTrackingID  = errors.New("tracking ID has an invalid format")
	ErrEmptyBaseURL       = errors.New("base URL cannot be empty")
	ErrInvalidBaseURL     = errors.New("base URL must be an absolute http or https URL")
)
