package registration

import (
	"fmt"
	"time"
)

// Service implements the registration intake and lookup workflow:
// validate -> assign registration ID -> persist -> return the record.
type Service struct {
	store     Store
	validator *Validator
	events    map[string]EventTypeConfig
}

func NewService(store Store, events []EventTypeConfig) *Service {
	eventMap := make(map[string]EventTypeConfig, len(events))
	for _, event := range events {
		eventMap[event.Name] = event
	}
	return &Service{
		store:     store,
		validator: NewValidator(events),
		events:    eventMap,
	}
}

// Register validates the raw submission for the given event type, assigns
// the system fields and persists the record. The registration ID is assigned
// exactly once, after validation succeeded and before the persistence
// attempt. An invalid submission never reaches the store.
func (s *Service) Register(eventType string, fields map[string]interface{}) (Submission, error) {
	normalized, err := s.validator.Validate(eventType, fields)
	if err != nil {
		return Submission{}, err
	}

	event := s.events[eventType]
	registrationID, err := NewRegistrationID(event.IDPrefix)
	if err != nil {
		return Submission{}, err
	}

	now := time.Now().UTC()
	submission := Submission{
		RegistrationID:   registrationID,
		RegistrationType: eventType,
		Status:           STATUS_SUBMITTED,
		SubmittedAt:      now,
		LastUpdated:      now,
		Fields:           normalized,
	}

	if err := s.store.CreateRegistration(submission); err != nil {
		return Submission{}, err
	}
	return submission, nil
}

// Status looks up a submission by its registration ID.
func (s *Service) Status(registrationID string) (Submission, error) {
	return s.store.FindByRegistrationID(registrationID)
}

// List returns submissions of one event type ordered by submittedAt
// descending, together with the total count. Administrative capability, not
// part of the intake hot path.
func (s *Service) List(eventType string, page int64, limit int64) ([]Submission, int64, error) {
	if _, ok := s.events[eventType]; !ok {
		return nil, 0, ErrUnknownEventType
	}
	return s.store.FindByType(eventType, page, limit)
}

// UpdateStatus performs an administrative status transition.
func (s *Service) UpdateStatus(registrationID string, status string) (Submission, error) {
	if !IsValidStatus(status) {
		return Submission{}, fmt.Errorf("invalid status %q", status)
	}
	return s.store.UpdateRegistrationStatus(registrationID, status)
}

// EventTypes returns the configured event table.
func (s *Service) EventTypes() []EventTypeConfig {
	events := make([]EventTypeConfig, 0, len(s.events))
	for _, event := range s.events {
		events = append(events, event)
	}
	return events
}

// HasEventType reports whether the given event type is configured.
func (s *Service) HasEventType(eventType string) bool {
	_, ok := s.events[eventType]
	return ok
}
