package http

import (
	"errors"
	"fmt"
	"net/http"

	"visadesk/internal/core/application/usecases/commands"
	"visadesk/internal/core/domain/model/application"
	"visadesk/internal/core/domain/model/user"
	"visadesk/internal/core/ports"
	"visadesk/internal/jobs"
	"visadesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorReporter receives unexpected server-side failures.
type ErrorReporter interface {
	Report(source string, err error)
}

const alertSource = "http"

// NewErrorHandler renders every error as Error JSON. Errors that do not map
// to a client-side status become 500 and are reported.
func NewErrorHandler(reporter ErrorReporter) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, message := classify(err)
		if code == http.StatusInternalServerError && !isHTTPError(err) {
			reporter.Report(alertSource, fmt.Errorf("%s %s: %w", c.Request().Method, c.Path(), err))
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, Error{Code: code, Message: message})
		}
		if writeErr != nil {
			c.Logger().Error(writeErr)
		}
	}
}

func classify(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			msg = m
		}
		return he.Code, msg
	}

	switch {
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, commands.ErrAccessDenied):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, jobs.ErrJobAlreadyRunning),
		errors.Is(err, ports.ErrEmailTaken),
		errors.Is(err, application.ErrApplicationIsPast):
		return http.StatusConflict, err.Error()
	case errs.IsValidation(err):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func isHTTPError(err error) bool {
	var he *echo.HTTPError
	return errors.As(err, &he)
}
