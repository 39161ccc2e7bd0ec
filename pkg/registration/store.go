package registration

// Store is the persistence contract for submissions. Implementations manage
// their own operation timeouts and must enforce uniqueness atomically with
// the write (a single conditional insert), never as a separate read before
// the write.
type Store interface {
	// CreateRegistration persists a new submission. It returns an error
	// matching ErrDuplicateKey when the registration ID or the event type's
	// uniqueness key collides with an existing record, and an error matching
	// ErrStoreUnavailable when the store cannot be reached.
	CreateRegistration(submission Submission) error

	// FindByRegistrationID returns the stored submission or an error
	// matching ErrNotFound.
	FindByRegistrationID(registrationID string) (Submission, error)

	// FindByType returns submissions of one event type ordered by
	// submittedAt descending, together with the total count for the type.
	FindByType(eventType string, page int64, limit int64) ([]Submission, int64, error)

	// UpdateRegistrationStatus sets the status of a submission and refreshes
	// lastUpdated. It returns the updated record or an error matching
	// ErrNotFound.
	UpdateRegistrationStatus(registrationID string, status string) (Submission, error)
}
