package validation

import (
	"regexp"
	"strings"
)

// MaxLocationLength bounds the location path segment accepted over HTTP
const MaxLocationLength = 100

var (
	locationSegmentRegex = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
	apiKeyRegex          = regexp.MustCompile(`^[a-zA-Z0-9]{32}$`)
)

// IsValidLocationSegment validates a location passed as a URL path segment
func IsValidLocationSegment(location string) bool {
	return len(location) <= MaxLocationLength && locationSegmentRegex.MatchString(location)
}

// IsValidAPIKey validates the provider API key format
func IsValidAPIKey(key string) bool {
	return apiKeyRegex.MatchString(key)
}

// IsValidUnits validates a unit system name
func IsValidUnits(units string) bool {
	return units == "metric" || units == "imperial"
}

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
