package registration

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"sync"
	"testing"
	"time"
)

// memStore mimics the store contract, including the atomic
// check-and-insert semantics of the unique indexes.
type memStore struct {
	mu     sync.Mutex
	events map[string]EventTypeConfig
	byID   map[string]Submission
}

func newMemStore(events []EventTypeConfig) *memStore {
	eventMap := make(map[string]EventTypeConfig, len(events))
	for _, event := range events {
		eventMap[event.Name] = event
	}
	return &memStore{
		events: eventMap,
		byID:   map[string]Submission{},
	}
}

func (s *memStore) CreateRegistration(submission Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[submission.RegistrationID]; ok {
		return fmt.Errorf("%w: registrationId", ErrDuplicateKey)
	}
	if key := s.events[submission.RegistrationType].UniquenessKey; key != "" {
		for _, existing := range s.byID {
			if existing.RegistrationType == submission.RegistrationType &&
				existing.Fields[key] == submission.Fields[key] {
				return fmt.Errorf("%w: %s", ErrDuplicateKey, key)
			}
		}
	}
	s.byID[submission.RegistrationID] = submission
	return nil
}

func (s *memStore) FindByRegistrationID(registrationID string) (Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	submission, ok := s.byID[registrationID]
	if !ok {
		return Submission{}, ErrNotFound
	}
	return submission, nil
}

func (s *memStore) FindByType(eventType string, page int64, limit int64) ([]Submission, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matching := []Submission{}
	for _, submission := range s.byID {
		if submission.RegistrationType == eventType {
			matching = append(matching, submission)
		}
	}
	sort.Slice(matching, func(i, j int) bool {
		return matching[i].SubmittedAt.After(matching[j].SubmittedAt)
	})

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	total := int64(len(matching))
	start := (page - 1) * limit
	if start >= total {
		return []Submission{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return matching[start:end], total, nil
}

func (s *memStore) UpdateRegistrationStatus(registrationID string, status string) (Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	submission, ok := s.byID[registrationID]
	if !ok {
		return Submission{}, ErrNotFound
	}
	submission.Status = status
	submission.LastUpdated = time.Now().UTC()
	s.byID[registrationID] = submission
	return submission, nil
}

func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

func TestServiceRegister(t *testing.T) {
	store := newMemStore(DefaultEventTypes())
	service := NewService(store, DefaultEventTypes())

	t.Run("valid team submission is persisted", func(t *testing.T) {
		submission, err := service.Register(EVENT_TYPE_INNOTHON, validTeamPayload())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !regexp.MustCompile(`^INN-\d+-[A-Z0-9]{8}$`).MatchString(submission.RegistrationID) {
			t.Errorf("unexpected registration ID format: %s", submission.RegistrationID)
		}
		if submission.Status != STATUS_SUBMITTED {
			t.Errorf("expected status %q, got %q", STATUS_SUBMITTED, submission.Status)
		}
		if submission.SubmittedAt.IsZero() || !submission.SubmittedAt.Equal(submission.LastUpdated) {
			t.Errorf("expected submittedAt and lastUpdated set at creation, got %v / %v", submission.SubmittedAt, submission.LastUpdated)
		}
		if submission.Fields["teamName"] != "Alpha" {
			t.Errorf("expected submitted fields to be kept, got %v", submission.Fields["teamName"])
		}

		stored, err := service.Status(submission.RegistrationID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(stored, submission) {
			t.Errorf("stored record differs from returned record:\n%+v\n%+v", stored, submission)
		}
	})

	t.Run("validation failure never reaches the store", func(t *testing.T) {
		store := newMemStore(DefaultEventTypes())
		service := NewService(store, DefaultEventTypes())

		payload := validTeamPayload()
		delete(payload, "leaderEmail")

		_, err := service.Register(EVENT_TYPE_INNOTHON, payload)
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if !reflect.DeepEqual(validationErr.MissingFields, []string{"leaderEmail"}) {
			t.Errorf("expected leaderEmail missing, got %v", validationErr.MissingFields)
		}
		if store.count() != 0 {
			t.Errorf("expected store to stay empty, got %d records", store.count())
		}
	})

	t.Run("unknown event type", func(t *testing.T) {
		_, err := service.Register("olympiad", validTeamPayload())
		if !errors.Is(err, ErrUnknownEventType) {
			t.Errorf("expected ErrUnknownEventType, got %v", err)
		}
	})
}

func TestServiceRegisterDuplicateLeaderEmail(t *testing.T) {
	store := newMemStore(DefaultEventTypes())
	service := NewService(store, DefaultEventTypes())

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Register(EVENT_TYPE_INNOTHON, validTeamPayload())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	successes := 0
	duplicates := 0
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrDuplicateKey):
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 || duplicates != 1 {
		t.Errorf("expected exactly one success and one duplicate, got %d successes, %d duplicates", successes, duplicates)
	}
	if store.count() != 1 {
		t.Errorf("expected exactly one persisted record, got %d", store.count())
	}
}

func TestServiceStatusNotFound(t *testing.T) {
	service := NewService(newMemStore(DefaultEventTypes()), DefaultEventTypes())

	_, err := service.Status("INN-0-UNKNOWN1")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceList(t *testing.T) {
	store := newMemStore(DefaultEventTypes())
	service := NewService(store, DefaultEventTypes())

	for i := 0; i < 3; i++ {
		payload := validTeamPayload()
		payload["leaderEmail"] = fmt.Sprintf("leader%d@x.com", i)
		if _, err := service.Register(EVENT_TYPE_INNOTHON, payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		time.Sleep(time.Millisecond)
	}

	submissions, total, err := service.List(EVENT_TYPE_INNOTHON, 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 || len(submissions) != 3 {
		t.Fatalf("expected 3 submissions, got %d (total %d)", len(submissions), total)
	}
	for i := 1; i < len(submissions); i++ {
		if submissions[i].SubmittedAt.After(submissions[i-1].SubmittedAt) {
			t.Errorf("expected submittedAt descending order")
		}
	}

	t.Run("page below one is clamped to the first page", func(t *testing.T) {
		submissions, total, err := service.List(EVENT_TYPE_INNOTHON, 0, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 3 || len(submissions) != 3 {
			t.Errorf("expected first page with 3 submissions, got %d (total %d)", len(submissions), total)
		}
	})

	if _, _, err := service.List("olympiad", 1, 10); !errors.Is(err, ErrUnknownEventType) {
		t.Errorf("expected ErrUnknownEventType, got %v", err)
	}
}

func TestServiceUpdateStatus(t *testing.T) {
	store := newMemStore(DefaultEventTypes())
	service := NewService(store, DefaultEventTypes())

	submission, err := service.Register(EVENT_TYPE_INNOTHON, validTeamPayload())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("valid transition", func(t *testing.T) {
		updated, err := service.UpdateStatus(submission.RegistrationID, STATUS_CONFIRMED)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != STATUS_CONFIRMED {
			t.Errorf("expected status %q, got %q", STATUS_CONFIRMED, updated.Status)
		}
		if updated.LastUpdated.Before(submission.LastUpdated) {
			t.Errorf("expected lastUpdated to be refreshed")
		}
		if !updated.SubmittedAt.Equal(submission.SubmittedAt) {
			t.Errorf("submittedAt must not change on status update")
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		if _, err := service.UpdateStatus(submission.RegistrationID, "archived"); err == nil {
			t.Error("expected error for invalid status")
		}
	})

	t.Run("unknown registration", func(t *testing.T) {
		if _, err := service.UpdateStatus("INN-0-UNKNOWN1", STATUS_REJECTED); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
