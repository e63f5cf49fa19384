package settings

import (
	"context"

	"weatherblock.app/internal/ports"
	"weatherblock.app/pkg/errors"
	"weatherblock.app/pkg/validation"
)

// CredentialResolver implements ports.CredentialProvider. A stored option
// wins over the deployment default.
type CredentialResolver struct {
	options ports.OptionRepository
	config  ports.ConfigProvider
	logger  ports.Logger
}

func NewCredentialResolver(options ports.OptionRepository, config ports.ConfigProvider, logger ports.Logger) (*CredentialResolver, error) {
	if options == nil {
		return nil, errors.NewValidationError("option repository is required")
	}
	if config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	return &CredentialResolver{options: options, config: config, logger: logger}, nil
}

// APIKey returns the effective provider API key, or "" when none is set
func (r *CredentialResolver) APIKey(ctx context.Context) string {
	key, _ := r.Resolve(ctx)
	return key
}

// Resolve returns the effective key together with where it came from
func (r *CredentialResolver) Resolve(ctx context.Context) (string, KeySource) {
	stored, err := r.options.Get(ctx, OptionAPIKey)
	switch {
	case err == nil:
		if key, ok := validation.TrimAndValidate(stored); ok {
			return key, KeySourceOption
		}
	case errors.IsDatabaseError(err):
		r.logger.Warn("Option store unavailable, using deployment default",
			ports.F("error", err.Error()))
	case !errors.IsNotFoundError(err):
		r.logger.Warn("Failed to read stored API key, using deployment default",
			ports.F("error", err.Error()))
	}

	if fallback, ok := validation.TrimAndValidate(r.config.GetWeatherConfig().DefaultAPIKey); ok {
		return fallback, KeySourceDefault
	}
	return "", KeySourceNone
}
