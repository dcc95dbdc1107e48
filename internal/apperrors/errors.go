package apperrors

import (
	"net/http"

	"github.com/pkg/errors"
)

// Sentinels for every failure class the API reports. Handlers translate
// them to HTTP statuses via StatusCode; wrapped causes stay inspectable
// through errors.Is.
var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrParsingFailed       = errors.New("resume parsing failed")
	ErrUpstreamUnavailable = errors.New("analysis service unavailable")
)

func Unauthorizedf(format string, args ...any) error {
	return errors.Wrapf(ErrUnauthorized, format, args...)
}

func Forbiddenf(format string, args ...any) error {
	return errors.Wrapf(ErrForbidden, format, args...)
}

func Validationf(format string, args ...any) error {
	return errors.Wrapf(ErrValidation, format, args...)
}

func NotFoundf(format string, args ...any) error {
	return errors.Wrapf(ErrNotFound, format, args...)
}

func ParsingFailedf(format string, args ...any) error {
	return errors.Wrapf(ErrParsingFailed, format, args...)
}

func Upstreamf(format string, args ...any) error {
	return errors.Wrapf(ErrUpstreamUnavailable, format, args...)
}

// StatusCode maps an error to the HTTP status the client receives.
// Unknown errors are internal.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrParsingFailed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
