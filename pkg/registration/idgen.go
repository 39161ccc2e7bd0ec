package registration

import (
	"crypto/rand"
	"fmt"
	"time"
)

const (
	idTokenLength  = 8
	idTokenCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewRegistrationID produces an identifier of the form
// <PREFIX>-<epoch_milliseconds>-<8 char random token>. The token comes from
// crypto/rand so concurrent callers never need to coordinate with the store.
// IDs are not ordered, submittedAt is the authoritative ordering field.
func NewRegistrationID(prefix string) (string, error) {
	token := make([]byte, idTokenLength)
	if _, err := rand.Read(token); err != nil {
		return "", fmt.Errorf("failed to generate registration ID token: %w", err)
	}
	for i, b := range token {
		token[i] = idTokenCharset[int(b)%len(idTokenCharset)]
	}
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), token), nil
}
