package registration

import (
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks a raw submission against the required-field set of its
// event type. It is pure: it never touches the store and never assigns an ID.
type Validator struct {
	validate *validator.Validate
	events   map[string]EventTypeConfig
}

func NewValidator(events []EventTypeConfig) *Validator {
	eventMap := make(map[string]EventTypeConfig, len(events))
	for _, event := range events {
		eventMap[event.Name] = event
	}
	return &Validator{
		validate: validator.New(),
		events:   eventMap,
	}
}

// Validate returns the normalized field map when the submission is valid for
// the given event type. On failure it returns a *ValidationError that
// enumerates every missing field, not just the first one. A falsy value
// (absent, empty string, false boolean, empty sub-record) counts as missing.
func (v *Validator) Validate(eventType string, fields map[string]interface{}) (map[string]interface{}, error) {
	event, ok := v.events[eventType]
	if !ok {
		return nil, ErrUnknownEventType
	}

	normalized := normalizeFields(fields)

	rules := make(map[string]interface{}, len(event.RequiredFields))
	for _, field := range event.RequiredFields {
		rules[field] = "required"
	}

	missingSet := map[string]struct{}{}
	for field := range v.validate.ValidateMap(normalized, rules) {
		missingSet[field] = struct{}{}
	}
	// ValidateMap accepts a non-nil empty sub-record, an empty map still
	// counts as missing here
	for _, field := range event.RequiredFields {
		if isZeroValue(normalized[field]) {
			missingSet[field] = struct{}{}
		}
	}

	fieldErrors := map[string]string{}
	missingFields := make([]string, 0, len(missingSet))
	for field := range missingSet {
		missingFields = append(missingFields, field)
		fieldErrors[field] = "required field is missing"
	}
	sort.Strings(missingFields)

	if event.RequireProblemStatement {
		if isZeroValue(normalized["problemStatement"]) && isZeroValue(normalized["customProblemStatement"]) {
			fieldErrors["problemStatement"] = "either problemStatement or customProblemStatement is required"
		}
	}

	if len(fieldErrors) > 0 {
		return nil, &ValidationError{
			MissingFields: missingFields,
			FieldErrors:   fieldErrors,
		}
	}
	return normalized, nil
}

// normalizeFields trims surrounding whitespace from string values. All other
// values are passed through verbatim.
func normalizeFields(fields map[string]interface{}) map[string]interface{} {
	normalized := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		if str, ok := value.(string); ok {
			normalized[key] = strings.TrimSpace(str)
			continue
		}
		normalized[key] = value
	}
	return normalized
}

func isZeroValue(value interface{}) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return typed == ""
	case bool:
		return !typed
	case map[string]interface{}:
		return len(typed) == 0
	default:
		return false
	}
}
