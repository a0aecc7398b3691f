package api

import (
	"net/http"

	"autocare-api/internal/domain/appointment"
	reqdto "autocare-api/internal/handler/dto/request"
	resdto "autocare-api/internal/handler/dto/response"
	"autocare-api/internal/handler/httperr"
	"autocare-api/internal/handler/middleware"
	"autocare-api/internal/pkg/errs"
	"autocare-api/internal/usecase/commands"
	"autocare-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	commands commands.AppointmentCommands
	queries  queries.AppointmentQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, qrs queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{
		commands: cmds,
		queries:  qrs,
	}
}

// @Summary Book appointment
// @Description Book a new vehicle-service appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookAppointmentRequest true "Booking request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Book(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor"), "Internal server error", nil)
		return
	}

	var req reqdto.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.commands.Book(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		respondCommandError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAppointmentView(view))
}

// @Summary Assign employee
// @Description Assign an employee to an appointment (admin only)
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.AssignAppointmentRequest true "Assignment request"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /appointments/{id}/assign [post]
func (h *AppointmentHandler) Assign(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor"), "Internal server error", nil)
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	var req reqdto.AssignAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.commands.Assign(c.Request.Context(), actor, id, req.EmployeeID, req.Override); err != nil {
		respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Transition appointment status
// @Description Move the appointment along a legal status edge
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.TransitionAppointmentRequest true "Target status"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /appointments/{id}/transition [post]
func (h *AppointmentHandler) Transition(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor"), "Internal server error", nil)
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	var req reqdto.TransitionAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	target := appointment.Status(req.TargetStatus)
	if !target.IsValid() {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("unknown status"), "Unknown target status", nil)
		return
	}

	if err := h.commands.Transition(c.Request.Context(), actor, id, target); err != nil {
		respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel appointment
// @Description Cancel an appointment; fails while a timer is running against it
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor"), "Internal server error", nil)
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	if err := h.commands.Cancel(c.Request.Context(), actor, id); err != nil {
		respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set actual cost
// @Description Record the final cost on a non-terminal appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.SetActualCostRequest true "Actual cost"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /appointments/{id}/actual-cost [put]
func (h *AppointmentHandler) SetActualCost(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor"), "Internal server error", nil)
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	var req reqdto.SetActualCostRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.commands.SetActualCost(c.Request.Context(), actor, id, req.ActualCostCents); err != nil {
		respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get appointment
// @Description Get one appointment; visibility scoped by role
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor"), "Internal server error", nil)
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary List appointments
// @Description List appointments visible to the caller
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter (admin listing)"
// @Success 200 {array} resdto.AppointmentListResponse
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor"), "Internal server error", nil)
		return
	}

	items, err := h.queries.List(c.Request.Context(), actor, c.Query("status"), 0)
	if err != nil {
		respondQueryError(c, err)
		return
	}

	out := make([]*resdto.AppointmentListResponse, len(items))
	for i, item := range items {
		out[i] = resdto.FromAppointmentListItem(item)
	}
	c.JSON(http.StatusOK, out)
}

func parseIDParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ID format", nil)
		return uuid.Nil, err
	}
	return id, nil
}
