package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ehr/fhirquery/internal/platform/fhir"
)

func asHTTPError(err error, target **echo.HTTPError) bool {
	return errors.As(err, target)
}

// ErrorHandler renders every unhandled error as an OperationOutcome. Errors
// that are not *echo.HTTPError become a 500 without exposing their text.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		msg := http.StatusText(status)
		var he *echo.HTTPError
		if asHTTPError(err, &he) {
			status = he.Code
			msg = fmt.Sprint(he.Message)
		}

		var outcome *fhir.OperationOutcome
		if status >= http.StatusInternalServerError {
			outcome = fhir.InternalErrorOutcome(msg)
		} else {
			outcome = fhir.NewOperationOutcome(fhir.IssueSeverityError, fhir.IssueTypeForStatus(status), msg)
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, outcome)
		}
		if werr != nil {
			rid, _ := c.Get("request_id").(string)
			logger.Error().Err(werr).Str("request_id", rid).Msg("write error response")
		}
	}
}
