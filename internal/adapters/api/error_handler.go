package api

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"weatherblock.app/internal/ports"
	errorspkg "weatherblock.app/pkg/errors"
)

// Error codes produced by the HTTP layer itself
const (
	CodeInvalidParam = "rest_invalid_param"
	CodeInvalidNonce = "invalid_nonce"
	CodeForbidden    = "rest_forbidden"
	CodeInternal     = "internal_error"
)

const internalErrorMessage = "Internal server error"

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"httpStatus"`
}

func newInvalidNonceError() *errorspkg.AppError {
	return errorspkg.NewAuthorizationError(CodeInvalidNonce, "Invalid security token.")
}

func newForbiddenError() *errorspkg.AppError {
	return errorspkg.NewAuthorizationError(CodeForbidden, "Sorry, you are not allowed to do that.")
}

// newInvalidParamError converts a binding failure into a validation error
// naming the offending parameters.
func newInvalidParamError(err error) *errorspkg.AppError {
	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errorspkg.NewCoded(errorspkg.ValidationError, CodeInvalidParam, "Invalid parameter(s).")
	}

	names := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		names = append(names, strings.ToLower(fe.Field()))
	}
	return errorspkg.NewCoded(errorspkg.ValidationError, CodeInvalidParam,
		"Invalid parameter(s): "+strings.Join(names, ", "))
}

// errorResponseFor maps an error onto the REST error body. Messages of
// unexpected failures are never exposed.
func errorResponseFor(err error) ErrorResponse {
	appErr, ok := errorspkg.As(err)
	if !ok {
		return ErrorResponse{Code: CodeInternal, Message: internalErrorMessage, HTTPStatus: http.StatusInternalServerError}
	}

	var status int
	switch {
	case errorspkg.IsValidationError(appErr):
		status = http.StatusBadRequest
	case errorspkg.IsAuthorizationError(appErr):
		status = http.StatusForbidden
	case errorspkg.IsConfigurationError(appErr), errorspkg.IsExternalAPIError(appErr):
		status = http.StatusInternalServerError
	default:
		return ErrorResponse{Code: CodeInternal, Message: internalErrorMessage, HTTPStatus: http.StatusInternalServerError}
	}

	code := appErr.Code
	if code == "" {
		if status == http.StatusBadRequest {
			code = CodeInvalidParam
		} else {
			code = CodeInternal
		}
	}
	return ErrorResponse{Code: code, Message: appErr.Message, HTTPStatus: status}
}

// handleError writes err as the response and aborts the handler chain
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	response := errorResponseFor(err)

	fields := []ports.Field{
		ports.F("code", response.Code),
		ports.F("status", response.HTTPStatus),
		ports.F("path", c.Request.URL.Path),
		ports.F("request_id", c.GetString(requestIDKey)),
	}
	if response.HTTPStatus >= http.StatusInternalServerError {
		s.logger.Error("Request failed", append(fields, ports.F("error", err.Error()))...)
	} else {
		s.logger.Debug("Request rejected", fields...)
	}

	c.AbortWithStatusJSON(response.HTTPStatus, response)
}
