package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"covenant-command-center/internal/domain/alert"
	"covenant-command-center/internal/domain/covenant"
	"covenant-command-center/internal/domain/financial"
	"covenant-command-center/internal/domain/loan"
	alertuc "covenant-command-center/internal/usecase/alert"
	covenantuc "covenant-command-center/internal/usecase/covenant"
	loanuc "covenant-command-center/internal/usecase/loan"
	"covenant-command-center/internal/usecase/upload"

	"github.com/labstack/echo/v4"
)

var errBadID = errors.New("bad id")

// statusFor maps domain and use case errors to HTTP codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, loan.ErrNotFound),
		errors.Is(err, covenant.ErrNotFound),
		errors.Is(err, alert.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, loan.ErrNotActive),
		errors.Is(err, financial.ErrDuplicatePeriod),
		errors.Is(err, alert.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, upload.ErrInvalidInput),
		errors.Is(err, loanuc.ErrInvalidInput),
		errors.Is(err, covenantuc.ErrInvalidInput),
		errors.Is(err, alertuc.ErrInvalidFilter),
		errors.Is(err, covenant.ErrInvalidType),
		errors.Is(err, loan.ErrInvalidStatus),
		errors.Is(err, financial.ErrInvalidPeriod):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// respondError writes err as an ErrorResponse. Internal errors are logged
// and hidden from the client.
func respondError(c echo.Context, err error) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		slog.ErrorContext(c.Request().Context(), "request failed",
			"error", err,
			"path", c.Path(),
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		)
		return c.JSON(code, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(code, ErrorResponse{Error: err.Error()})
}

func invalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
}

func validationFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Details: ToFieldErrors(err),
	})
}

// pathID parses a positive numeric path param.
func pathID(c echo.Context, name string) (uint64, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, errBadID
	}
	return v, nil
}

func badID(c echo.Context, name string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name + " path param"})
}
