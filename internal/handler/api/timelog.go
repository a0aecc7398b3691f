package api

import (
	"net/http"

	reqdto "autocare-api/internal/handler/dto/request"
	resdto "autocare-api/internal/handler/dto/response"
	"autocare-api/internal/handler/httperr"
	"autocare-api/internal/handler/middleware"
	"autocare-api/internal/pkg/errs"
	"autocare-api/internal/usecase/commands"
	"autocare-api/internal/usecase/queries"
	"autocare-api/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TimeLogHandler struct {
	commands commands.TimeLogCommands
	queries  queries.TimeLogQueries
}

func NewTimeLogHandler(cmds commands.TimeLogCommands, qrs queries.TimeLogQueries) *TimeLogHandler {
	return &TimeLogHandler{
		commands: cmds,
		queries:  qrs,
	}
}

// @Summary Start work timer
// @Description Open the employee's labor timer against an appointment
// @Tags timelogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StartTimerRequest true "Start request"
// @Success 201 {object} resdto.TimeLogResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /timelogs/start [post]
func (h *TimeLogHandler) Start(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor"), "Internal server error", nil)
		return
	}

	var req reqdto.StartTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	employeeID := resolveEmployeeID(actor, req.EmployeeID)
	logID, err := h.commands.Start(c.Request.Context(), actor, employeeID, req.AppointmentID, req.Description)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), actor, logID)
	if err != nil {
		respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTimeLogView(view))
}

// @Summary Stop work timer
// @Description Close the employee's running labor timer
// @Tags timelogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StopTimerRequest false "Stop request"
// @Success 200 {object} resdto.TimeLogResponse
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /timelogs/stop [post]
func (h *TimeLogHandler) Stop(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor"), "Internal server error", nil)
		return
	}

	var req reqdto.StopTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	employeeID := resolveEmployeeID(actor, req.EmployeeID)
	logID, err := h.commands.Stop(c.Request.Context(), actor, employeeID)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), actor, logID)
	if err != nil {
		respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimeLogView(view))
}

// @Summary Create manual time entry
// @Description Persist a completed, back-dated time log
// @Tags timelogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ManualTimeLogRequest true "Manual entry"
// @Success 201 {object} resdto.TimeLogResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /timelogs [post]
func (h *TimeLogHandler) CreateManual(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor"), "Internal server error", nil)
		return
	}

	var req reqdto.ManualTimeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	logID, err := h.commands.CreateManual(c.Request.Context(), actor, commands.ManualTimeLogInput{
		EmployeeID:    resolveEmployeeID(actor, req.EmployeeID),
		AppointmentID: req.AppointmentID,
		Start:         req.Start,
		End:           req.End,
		Description:   req.Description,
	})
	if err != nil {
		respondCommandError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), actor, logID)
	if err != nil {
		respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTimeLogView(view))
}

// @Summary Amend time log
// @Description Rewrite a completed log's range and description
// @Tags timelogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Time log ID"
// @Param request body reqdto.AmendTimeLogRequest true "Amendment"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /timelogs/{id} [patch]
func (h *TimeLogHandler) Amend(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor"), "Internal server error", nil)
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	var req reqdto.AmendTimeLogRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.commands.Amend(c.Request.Context(), actor, id, req.Start, req.End, req.Description); err != nil {
		respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete time log
// @Description Delete a completed time log
// @Tags timelogs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Time log ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /timelogs/{id} [delete]
func (h *TimeLogHandler) Delete(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor"), "Internal server error", nil)
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), actor, id); err != nil {
		respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List own time logs
// @Description List the caller's time logs, newest first
// @Tags timelogs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TimeLogResponse
// @Router /timelogs [get]
func (h *TimeLogHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor"), "Internal server error", nil)
		return
	}

	views, err := h.queries.ListByEmployee(c.Request.Context(), actor, actor.ID, 0)
	if err != nil {
		respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimeLogViews(views))
}

// @Summary Get running timer
// @Description Fetch the caller's currently running time log, if any
// @Tags timelogs
// @Produce json
// @Security BearerAuth
// @Param employee_id query string false "Employee ID (admin only)"
// @Success 200 {object} resdto.TimeLogResponse
// @Failure 404 {object} httperr.Response
// @Router /timelogs/active [get]
func (h *TimeLogHandler) GetActive(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor"), "Internal server error", nil)
		return
	}

	employeeID := actor.ID
	if raw := c.Query("employee_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ID format", nil)
			return
		}
		employeeID = id
	}

	view, err := h.queries.GetActive(c.Request.Context(), actor, employeeID)
	if err != nil {
		respondQueryError(c, err)
		return
	}
	if view == nil {
		httperr.AbortWithError(c, http.StatusNotFound, errs.New("no active time log"), "No active time log for employee", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimeLogView(view))
}

// @Summary List appointment labor
// @Description List every time log recorded against an appointment with the completed-minutes total
// @Tags timelogs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentLaborResponse
// @Failure 403 {object} httperr.Response
// @Router /appointments/{id}/timelogs [get]
func (h *TimeLogHandler) ListByAppointment(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor"), "Internal server error", nil)
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	labor, err := h.queries.ListByAppointment(c.Request.Context(), actor, id)
	if err != nil {
		respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentLabor(labor))
}

// Employees always act as themselves; only admins may address another
// employee's ledger.
func resolveEmployeeID(actor shared.Actor, requested *uuid.UUID) uuid.UUID {
	if requested != nil && actor.IsAdmin() {
		return *requested
	}
	return actor.ID
}
