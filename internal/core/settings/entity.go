package settings

import (
	"strings"

	"weatherblock.app/pkg/errors"
	"weatherblock.app/pkg/validation"
)

// OptionAPIKey is the option name the provider API key is stored under
const OptionAPIKey = "weather_block_api_key"

// CodeInvalidAPIKey is returned when a submitted key has the wrong shape
const CodeInvalidAPIKey = "invalid_api_key"

// testLocation is looked up by TestAPIKey
const testLocation = "London"

// KeySource tells where the effective API key came from
type KeySource string

const (
	KeySourceOption  KeySource = "option"
	KeySourceDefault KeySource = "default"
	KeySourceNone    KeySource = "none"
)

// Status summarizes the API key configuration without exposing the key
type Status struct {
	Configured bool      `json:"configured"`
	Source     KeySource `json:"source"`
	MaskedKey  string    `json:"maskedKey"`
}

// TestResult is what a successful API key test reports
type TestResult struct {
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"`
	Units       string  `json:"units"`
}

// NormalizeAPIKey trims raw and checks it is empty or a 32 character
// alphanumeric token.
func NormalizeAPIKey(raw string) (string, error) {
	key, present := validation.TrimAndValidate(raw)
	if !present || validation.IsValidAPIKey(key) {
		return key, nil
	}
	return "", errors.NewCoded(errors.ValidationError, CodeInvalidAPIKey,
		"Invalid API key format. The API key should be a 32-character alphanumeric string.")
}

// MaskAPIKey hides all but the last four characters of key
func MaskAPIKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
