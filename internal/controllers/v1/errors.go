package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/umuryango/backend/internal/backup"
	"github.com/umuryango/backend/internal/budget"
	"github.com/umuryango/backend/internal/httperror"
	"github.com/umuryango/backend/internal/httputil"
	"github.com/umuryango/backend/internal/importer"
)

var (
	errInvalidDate         = errors.New("parameter date must be an ISO date like 2025-03-07")
	errInvalidMonthID      = errors.New("parameter month must be a month ID like 2025-3")
	errNameRequired        = errors.New("the name field must not be empty")
	errPriceNotPositive    = errors.New("the price must be greater than zero")
	errAmountNotPositive   = errors.New("the amount must be greater than zero")
	errNoFilePost          = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix     = errors.New("this endpoint only supports .json files")
	errCleanupConfirmation = errors.New("the confirmation parameter must have the value 'yes-please-delete-everything'")
)

// status translates an error into the HTTP status it is reported with.
// Errors that are not a known client mistake are the backend's fault and
// report as 500.
func status(err error) int {
	switch {
	case errors.Is(err, budget.ErrContributorNotFound),
		errors.Is(err, backup.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, budget.ErrNoMonthSelected),
		errors.Is(err, budget.ErrDateOutsideMonth),
		errors.Is(err, budget.ErrDayNotEditable),
		errors.Is(err, budget.ErrMonthHasNoBudget),
		errors.Is(err, budget.ErrMealTypeInvalid),
		errors.Is(err, importer.ErrInvalidJSON),
		errors.Is(err, importer.ErrInvalidFormat),
		errors.Is(err, backup.ErrInvalidName),
		errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, errInvalidDate),
		errors.Is(err, errInvalidMonthID),
		errors.Is(err, errNameRequired),
		errors.Is(err, errPriceNotPositive),
		errors.Is(err, errAmountNotPositive),
		errors.Is(err, errNoFilePost),
		errors.Is(err, errWrongFileSuffix),
		errors.Is(err, errCleanupConfirmation):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func abort(c *gin.Context, err error) {
	c.JSON(status(err), httperror.New(err))
}
