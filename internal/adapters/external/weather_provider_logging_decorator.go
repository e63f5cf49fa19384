package external

import (
	"context"
	stderrors "errors"
	"time"

	"weatherblock.app/internal/ports"
)

// WeatherProviderLoggingDecorator records every upstream lookup on a
// dedicated logger. The API key in WeatherFetchParams is never logged.
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
}

func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger) *WeatherProviderLoggingDecorator {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

func (d *WeatherProviderLoggingDecorator) FetchCurrentWeather(ctx context.Context, params ports.WeatherFetchParams) ([]byte, error) {
	name := d.provider.GetProviderName()
	d.logger.Info("Weather API request started", lookupFields(name, params, "request")...)

	startTime := time.Now()
	body, err := d.provider.FetchCurrentWeather(ctx, params)
	elapsed := ports.F("duration_ms", time.Since(startTime).Milliseconds())

	switch {
	case err != nil && isCancellation(ctx, err):
		// the caller went away; not an upstream fault
		d.logger.Warn("Weather API request cancelled",
			append(lookupFields(name, params, "cancelled"), elapsed, ports.F("error", err.Error()))...)
		return nil, err
	case err != nil:
		d.logger.Error("Weather API request failed",
			append(lookupFields(name, params, "error"), elapsed, ports.F("error", err.Error()))...)
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		append(lookupFields(name, params, "response"), elapsed, ports.F("bytes", len(body)))...)
	return body, nil
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}

func lookupFields(provider string, params ports.WeatherFetchParams, event string) []ports.Field {
	return []ports.Field{
		ports.F("provider", provider),
		ports.F("location", params.Location),
		ports.F("units", params.Units),
		ports.F("event", event),
	}
}

func isCancellation(ctx context.Context, err error) bool {
	return ctx.Err() != nil || stderrors.Is(err, context.Canceled)
}
