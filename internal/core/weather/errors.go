package weather

import "weatherblock.app/pkg/errors"

// Stable error codes returned by the lookup use case
const (
	CodeInvalidLocation         = "invalid_location"
	CodeInvalidUnits            = "invalid_units"
	CodeMissingAPIKey           = "missing_api_key"
	CodeUpstreamFetchFailed     = "api_request_failed"
	CodeEmptyUpstreamResponse   = "empty_response"
	CodeUpstreamAPIError        = "api_error"
	CodeInvalidUpstreamResponse = "invalid_api_response"
)

func NewInvalidLocationError() *errors.AppError {
	return errors.NewCoded(errors.ValidationError, CodeInvalidLocation, "Location cannot be empty.")
}

func NewInvalidUnitsError() *errors.AppError {
	return errors.NewCoded(errors.ValidationError, CodeInvalidUnits, "Units must be either metric or imperial.")
}

func NewMissingAPIKeyError() *errors.AppError {
	return errors.NewCoded(errors.ConfigurationError, CodeMissingAPIKey, "Weather API key is not configured.")
}

func NewUpstreamFetchFailedError() *errors.AppError {
	return errors.NewCoded(errors.ExternalAPIError, CodeUpstreamFetchFailed,
		"Could not fetch weather data. Please try again later.")
}

func NewEmptyUpstreamResponseError() *errors.AppError {
	return errors.NewCoded(errors.ExternalAPIError, CodeEmptyUpstreamResponse,
		"Received empty response from weather API.")
}

func NewUpstreamAPIError() *errors.AppError {
	return errors.NewCoded(errors.ExternalAPIError, CodeUpstreamAPIError,
		"Could not fetch weather data. Please check the location and try again.")
}

func NewInvalidUpstreamResponseError() *errors.AppError {
	return errors.NewCoded(errors.ExternalAPIError, CodeInvalidUpstreamResponse,
		"Invalid response from weather API.")
}
