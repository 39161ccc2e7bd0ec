package registration

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error kinds the boundary layer can match with errors.Is / errors.As. The
// HTTP layer decides response codes from these, never from message text.
var (
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrNotFound         = errors.New("registration not found")
	ErrStoreUnavailable = errors.New("submission store unavailable")
	ErrUnknownEventType = errors.New("unknown event type")
)

// ValidationError carries every offending field of a submission, so the
// caller can report them all at once.
type ValidationError struct {
	// MissingFields lists required fields that were absent or empty, in
	// alphabetical order.
	MissingFields []string
	// FieldErrors maps a field name to a human readable message, covering
	// missing fields and semantic rule violations.
	FieldErrors map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.MissingFields) > 0 {
		return "missing required fields: " + strings.Join(e.MissingFields, ", ")
	}

	fields := make([]string, 0, len(e.FieldErrors))
	for field := range e.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, e.FieldErrors[field]))
	}
	return "invalid submission: " + strings.Join(msgs, "; ")
}
