package utils

import (
	"net/url"
	"regexp"
)

var (
	// Catalog identifiers are document-store object IDs: 24 hex characters.
	entityIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

	// Tracking IDs are a base-36 millisecond timestamp followed by a random
	// alphanumeric suffix; anything alphanumeric in that length band passes.
	trackingIDPattern = regexp.MustCompile(`^[0-9a-zA-Z]{16,40}$`)
)

// ValidateEntityID checks that a partner/product identifier is well-formed.
func ValidateEntityID(id string) error {
	if id == "" {
		return ErrEmptyID
	}
	if !entityIDPattern.MatchString(id) {
		return ErrInvalidEntityID
	}
	return nil
}

// ValidateTrackingID checks that a tracking identifier is well-formed.
func ValidateTrackingID(id string) error {
	if id == "" {
		return ErrEmptyTrackingID
	}
	if !trackingIDPattern.MatchString(id) {
		return ErrInvalidTrackingID
	}
	return nil
}

// ValidateBaseURL checks that the link base is an absolute http(s) URL.
func ValidateBaseURL(rawURL string) error {
	if rawURL == "" {
		return ErrEmptyBaseURL
	}
	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return ErrInvalidBaseURL
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ErrInvalidBaseURL
	}
	if parsed.Host == "" {
		return ErrInvalidBaseURL
	}
	return nil
}
