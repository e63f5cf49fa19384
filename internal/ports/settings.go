package ports

import "context"

// OptionRepository persists named configuration values.
// Get reports an absent option as a NotFound AppError.
type OptionRepository interface {
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name, value string) error
	Delete(ctx context.Context, name string) error
}

// CredentialProvider resolves the provider API key in effect
type CredentialProvider interface {
	APIKey(ctx context.Context) string
}

// TextSanitizer strips markup and control characters from untrusted text
type TextSanitizer interface {
	Sanitize(s string) string
}

// NonceVerifier checks request-authentication tokens
type NonceVerifier interface {
	Verify(nonce, action string) bool
}

// NonceManager issues and verifies request-authentication tokens
type NonceManager interface {
	NonceVerifier
	Create(action string) string
}
