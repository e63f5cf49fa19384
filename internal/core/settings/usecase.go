package settings

import (
	"context"
	"fmt"

	"weatherblock.app/internal/core/weather"
	"weatherblock.app/internal/ports"
	"weatherblock.app/pkg/errors"
)

// WeatherLookup is the part of the weather use case the key test needs
type WeatherLookup interface {
	GetWeatherData(ctx context.Context, location string, units weather.Units) (*weather.Record, error)
}

type UseCase struct {
	options  ports.OptionRepository
	resolver *CredentialResolver
	lookup   WeatherLookup
	logger   ports.Logger
}

type UseCaseDependencies struct {
	Options  ports.OptionRepository
	Resolver *CredentialResolver
	Lookup   WeatherLookup
	Logger   ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Options == nil {
		return nil, errors.NewValidationError("option repository is required")
	}
	if deps.Resolver == nil {
		return nil, errors.NewValidationError("credential resolver is required")
	}
	if deps.Lookup == nil {
		return nil, errors.NewValidationError("weather lookup is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		options:  deps.Options,
		resolver: deps.Resolver,
		lookup:   deps.Lookup,
		logger:   deps.Logger,
	}, nil
}

// IsAPIKeyConfigured reports whether a usable key is in effect
func (uc *UseCase) IsAPIKeyConfigured(ctx context.Context) bool {
	return weather.IsCredentialUsable(uc.resolver.APIKey(ctx))
}

// Status describes the key in effect
func (uc *UseCase) Status(ctx context.Context) Status {
	key, source := uc.resolver.Resolve(ctx)
	return Status{
		Configured: weather.IsCredentialUsable(key),
		Source:     source,
		MaskedKey:  MaskAPIKey(key),
	}
}

// SaveAPIKey stores a new key. An empty key removes the stored option so the
// deployment default applies again. Malformed keys are rejected and the
// previous value is kept.
func (uc *UseCase) SaveAPIKey(ctx context.Context, raw string) error {
	key, err := NormalizeAPIKey(raw)
	if err != nil {
		uc.logger.Warn("Rejected API key with invalid format")
		return err
	}

	if key == "" {
		if err := uc.options.Delete(ctx, OptionAPIKey); err != nil {
			return fmt.Errorf("delete stored API key: %w", err)
		}
		uc.logger.Info("Stored API key cleared")
		return nil
	}

	if err := uc.options.Set(ctx, OptionAPIKey, key); err != nil {
		return fmt.Errorf("store API key: %w", err)
	}
	uc.logger.Info("API key updated", ports.F("key", MaskAPIKey(key)))
	return nil
}

// TestAPIKey performs a live lookup with the key in effect
func (uc *UseCase) TestAPIKey(ctx context.Context) (*TestResult, error) {
	record, err := uc.lookup.GetWeatherData(ctx, testLocation, weather.UnitsMetric)
	if err != nil {
		uc.logger.Warn("API key test failed", ports.F("code", errors.CodeOf(err)))
		return nil, err
	}

	return &TestResult{
		Location:    record.Location,
		Temperature: record.Temperature,
		Units:       string(record.Units),
	}, nil
}
