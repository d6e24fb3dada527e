package modbump

import (
	"errors"
	"fmt"
)

// Errors returned by Bump, Run and DryRun. Callers match them with errors.Is.
var (
	ErrNotFound         = errors.New("file not found")
	ErrParse            = errors.New("parse error")
	ErrMissingVersion   = errors.New("missing field")
	ErrMalformedVersion = errors.New("malformed version")
)

// FormatError reports a version value that is not a three part numeric string.
type FormatError struct {
	Raw    string // The offending value as found in the document.
	Reason string
}

func (e *FormatError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %q is not in x.y.z numeric format (%s)", ErrMalformedVersion, e.Raw, e.Reason)
	}
	return fmt.Sprintf("%s: %q is not in x.y.z numeric format", ErrMalformedVersion, e.Raw)
}

func (e *FormatError) Unwrap() error {
	return ErrMalformedVersion
}
