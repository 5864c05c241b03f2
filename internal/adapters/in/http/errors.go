package http

import (
	"errors"
	"log/slog"
	"net/http"

	"kitchen/internal/core/domain/services"
	"kitchen/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
)

// Error codes returned in the body of every failed request.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeValidation         = "VALIDATION_ERROR"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeInvalidTransition  = "INVALID_TRANSITION"
	CodeConflict           = "CONFLICT"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
)

// ErrorHandler renders handler errors as {code, message} bodies.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := classify(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			logger.Error("Failed to write error response", "error", writeErr)
		}
	}
}

func classify(err error) (int, Error) {
	var eligibility *services.EligibilityError
	if errors.As(err, &eligibility) {
		return http.StatusUnprocessableEntity, Error{Code: string(eligibility.Reason), Message: eligibility.Message}
	}

	var securityErr *openapi3filter.SecurityRequirementsError
	if errors.As(err, &securityErr) {
		message := "merchant token is required"
		if errors.Is(err, errs.ErrUnauthorized) {
			message = err.Error()
		}
		return http.StatusUnauthorized, Error{Code: CodeUnauthorized, Message: message}
	}

	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized, Error{Code: CodeUnauthorized, Message: err.Error()}
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, Error{Code: CodeForbidden, Message: err.Error()}
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, Error{Code: CodeNotFound, Message: err.Error()}
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict, Error{Code: CodeInvalidTransition, Message: err.Error()}
	case errors.Is(err, errs.ErrConcurrentModified):
		return http.StatusConflict, Error{Code: CodeConflict, Message: err.Error()}
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, Error{Code: CodeValidation, Message: err.Error()}
	}

	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		return http.StatusBadRequest, Error{Code: CodeValidation, Message: requestErr.Error()}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, Error{Code: codeForStatus(httpErr.Code), Message: http.StatusText(httpErr.Code)}
	}

	return http.StatusServiceUnavailable, Error{Code: CodeStorageUnavailable, Message: "storage is temporarily unavailable"}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return CodeNotFound
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusConflict:
		return CodeConflict
	case http.StatusServiceUnavailable, http.StatusInternalServerError:
		return CodeStorageUnavailable
	default:
		return CodeValidation
	}
}

func bindBody(ctx echo.Context, dest any) error {
	if err := (&echo.DefaultBinder{}).BindBody(ctx, dest); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return nil
}
