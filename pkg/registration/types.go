package registration

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission statuses
const (
	STATUS_SUBMITTED = "submitted"
	STATUS_CONFIRMED = "confirmed"
	STATUS_REJECTED  = "rejected"
)

// Event type names as used at the API boundary
const (
	EVENT_TYPE_GENERAL   = "general"
	EVENT_TYPE_PATN      = "patn"
	EVENT_TYPE_INNOTHON  = "innothon"
	EVENT_TYPE_PROTOPLAN = "protoplan"
)

// Submission is one registration record for one event type. The submitted
// form fields are kept verbatim and stored inline next to the system
// assigned fields.
type Submission struct {
	ID               primitive.ObjectID     `bson:"_id,omitempty" json:"-"`
	RegistrationID   string                 `bson:"registrationId" json:"registrationId"`
	RegistrationType string                 `bson:"registrationType" json:"registrationType"`
	Status           string                 `bson:"status" json:"status"`
	SubmittedAt      time.Time              `bson:"submittedAt" json:"submittedAt"`
	LastUpdated      time.Time              `bson:"lastUpdated" json:"lastUpdated"`
	Fields           map[string]interface{} `bson:",inline" json:"fields,omitempty"`
}

// EventTypeConfig describes how submissions for one event type are validated
// and stored. The set of event types is injected configuration, the core
// never infers it.
type EventTypeConfig struct {
	Name           string   `json:"name" yaml:"name"`
	IDPrefix       string   `json:"id_prefix" yaml:"id_prefix"`
	RequiredFields []string `json:"required_fields" yaml:"required_fields"`

	// RequireProblemStatement enables the rule that either problemStatement
	// or customProblemStatement must be present (both is allowed).
	RequireProblemStatement bool `json:"require_problem_statement" yaml:"require_problem_statement"`

	// UniquenessKey names a submission field that must be unique within this
	// event type (e.g. leaderEmail). Empty means no business-level
	// uniqueness constraint.
	UniquenessKey string `json:"uniqueness_key" yaml:"uniqueness_key"`
}

var individualRequiredFields = []string{
	"title",
	"fullName",
	"category",
	"department",
	"instituteName",
	"isIETMember",
	"mobileNumber",
	"emailAddress",
	"zoneVenue",
	"youtubeLink",
}

var teamRequiredFields = []string{
	"teamName",
	"institutionName",
	"cityState",
	"leaderName",
	"leaderEmail",
	"leaderPhone",
	"member2",
	"motivationStatement",
	"termsAccepted",
	"feeType",
	"transactionId",
}

// DefaultEventTypes returns the event table of the current deployment. It is
// used when the config file does not override the event list.
func DefaultEventTypes() []EventTypeConfig {
	return []EventTypeConfig{
		{
			Name:           EVENT_TYPE_GENERAL,
			IDPrefix:       "GEN",
			RequiredFields: individualRequiredFields,
			UniquenessKey:  "emailAddress",
		},
		{
			Name:           EVENT_TYPE_PATN,
			IDPrefix:       "PATN",
			RequiredFields: individualRequiredFields,
		},
		{
			Name:                    EVENT_TYPE_INNOTHON,
			IDPrefix:                "INN",
			RequiredFields:          teamRequiredFields,
			RequireProblemStatement: true,
			UniquenessKey:           "leaderEmail",
		},
		{
			Name:           EVENT_TYPE_PROTOPLAN,
			IDPrefix:       "PROTO",
			RequiredFields: teamRequiredFields,
			UniquenessKey:  "leaderEmail",
		},
	}
}

// IsValidStatus reports whether the given status is one of the known
// submission statuses.
func IsValidStatus(status string) bool {
	switch status {
	case STATUS_SUBMITTED, STATUS_CONFIRMED, STATUS_REJECTED:
		return true
	default:
		return false
	}
}
