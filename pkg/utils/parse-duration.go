package utils

import (
	"fmt"
	"time"
)

// ParseDurationStringWithDefault parses a duration from config ("12h",
// "90s", ...) and falls back to the default when the value is empty.
func ParseDurationStringWithDefault(value string, defaultValue time.Duration) (time.Duration, error) {
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid time duration '%s' : %s", value, err.Error())
	}
	return d, nil
}
