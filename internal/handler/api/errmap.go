package api

import (
	"errors"
	"net/http"

	"autocare-api/internal/handler/httperr"
	"autocare-api/internal/infra"
	"autocare-api/internal/usecase/commands"
	"autocare-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// respondCommandError maps usecase sentinels onto the HTTP error taxonomy:
// invalid transition 422, conflict 409, not found 404, busy 503, forbidden
// 403. Everything unrecognized is a 500.
func respondCommandError(c *gin.Context, err error) {
	var activeTimer *commands.ActiveTimerError
	if errors.As(err, &activeTimer) {
		httperr.AbortWithError(c, http.StatusConflict, err,
			"Employee already has an active time log",
			gin.H{"activeLogId": activeTimer.ExistingLogID})
		return
	}

	switch {
	case errors.Is(err, commands.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid status transition", nil)
	case errors.Is(err, commands.ErrCancelWithActiveTimer):
		httperr.AbortWithError(c, http.StatusConflict, err, "Appointment has an active time log; stop it first", nil)
	case errors.Is(err, commands.ErrPendingRequestExists):
		httperr.AbortWithError(c, http.StatusConflict, err, "A pending modification request already exists", nil)
	case errors.Is(err, commands.ErrTimeLogStillActive):
		httperr.AbortWithError(c, http.StatusConflict, err, "Time log is still active; stop it first", nil)
	case errors.Is(err, commands.ErrAppointmentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
	case errors.Is(err, commands.ErrTimeLogNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Time log not found", nil)
	case errors.Is(err, commands.ErrNoActiveTimer):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No active time log for employee", nil)
	case errors.Is(err, commands.ErrModificationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Modification request not found", nil)
	case errors.Is(err, commands.ErrBusy):
		c.Header("Retry-After", "1")
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Resource busy, retry later", nil)
	case errors.Is(err, commands.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Operation not permitted", nil)
	case errors.Is(err, commands.ErrAppointmentValidation),
		errors.Is(err, commands.ErrModificationValidation),
		errors.Is(err, commands.ErrInvalidTimeRange):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func respondQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrViewForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Operation not permitted", nil)
	case infra.IsKind(err, infra.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
