package affiliate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingIPAddress         = errors.New("ipAddress is required")
	ErrMissingUserAgent         = errors.New("userAgent is required")
	ErrAttributionWindowExpired = errors.New("conversion outside the partner's attribution window")
	ErrNoEligibleCommissions    = errors.New("no eligible commissions to pay")
	ErrUnknownExportKind        = errors.New("unknown export kind")
)

// InvalidIdentifierError reports a malformed identifier and which field
// carried it.
type InvalidIdentifierError struct {
	Field  string
	Reason error
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Reason)
}

func (e *InvalidIdentifierError) Unwrap() error {
	return e.Reason
}

// InvalidIdentifiersError reports the malformed entries of a bulk payment
// request.
type InvalidIdentifiersError struct {
	IDs []string
}

func (e *InvalidIdentifiersError) Error() string {
	return fmt.Sprintf("invalid tracking IDs: %s", strings.Join(e.IDs, ", "))
}
