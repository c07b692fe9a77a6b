package http

import (
	"errors"
	"fmt"
	"net/http"

	"study-slot-scheduler/internal/schedule"
	pkgErrors "study-slot-scheduler/pkg/errors"
)

var (
	errMissingAction = pkgErrors.NewValidationError("missing or unknown action parameter")
	errUnknownAction = pkgErrors.NewValidationError("unknown action, expected addAll or removeAll")
	errMissingName   = pkgErrors.NewValidationError("missing name parameter")
	errNoDates       = pkgErrors.NewValidationError("no dates provided")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Validation failures map to 400; anything unexpected is a 500 with the
// underlying message as details.
func (h *handler) mapError(err error, sheetName string) error {
	switch {
	case errors.Is(err, schedule.ErrUnknownSheetName):
		return pkgErrors.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Invalid or missing calendar ID for %s", sheetName))
	case errors.Is(err, schedule.ErrNoDates):
		return pkgErrors.NewValidationError("no valid dates provided")
	case errors.Is(err, schedule.ErrInvalidDate):
		return pkgErrors.NewHTTPErrorWithDetails(http.StatusBadRequest, "invalid date", err.Error())
	default:
		return pkgErrors.NewInternalError("external service call failed", err)
	}
}
