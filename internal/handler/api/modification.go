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

	"github.com/gin-gonic/gin"
)

type ModificationHandler struct {
	commands commands.ModificationCommands
	queries  queries.ModificationQueries
}

func NewModificationHandler(cmds commands.ModificationCommands, qrs queries.ModificationQueries) *ModificationHandler {
	return &ModificationHandler{
		commands: cmds,
		queries:  qrs,
	}
}

// @Summary Propose modification
// @Description Open a modification request on a live appointment
// @Tags modifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.ProposeModificationRequest true "Proposal"
// @Success 201 {object} resdto.ModificationRequestResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /appointments/{id}/modification-requests [post]
func (h *ModificationHandler) Propose(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor"), "Internal server error", nil)
		return
	}

	appointmentID, err := parseIDParam(c)
	if err != nil {
		return
	}

	var req reqdto.ProposeModificationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	requestID, err := h.commands.Propose(c.Request.Context(), actor, appointmentID, req.Reason, req.ProposedDate)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), actor, requestID)
	if err != nil {
		respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromModificationView(view))
}

// @Summary Decide modification
// @Description Approve or reject a pending modification request (admin only)
// @Tags modifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Modification request ID"
// @Param request body reqdto.DecideModificationRequest true "Decision"
// @Success 200 {object} resdto.ModificationRequestResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /modification-requests/{id}/decide [post]
func (h *ModificationHandler) Decide(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor"), "Internal server error", nil)
		return
	}

	requestID, err := parseIDParam(c)
	if err != nil {
		return
	}

	var req reqdto.DecideModificationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	err = h.commands.Decide(c.Request.Context(), actor, commands.DecideModificationInput{
		RequestID:      requestID,
		Approve:        req.Approve,
		DecisionReason: req.DecisionReason,
	})
	if err != nil {
		respondCommandError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), actor, requestID)
	if err != nil {
		respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromModificationView(view))
}

// @Summary List appointment modifications
// @Description List modification requests on an appointment, newest first
// @Tags modifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {array} resdto.ModificationRequestResponse
// @Router /appointments/{id}/modification-requests [get]
func (h *ModificationHandler) ListByAppointment(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor"), "Internal server error", nil)
		return
	}

	appointmentID, err := parseIDParam(c)
	if err != nil {
		return
	}

	views, err := h.queries.ListByAppointment(c.Request.Context(), actor, appointmentID)
	if err != nil {
		respondQueryError(c, err)
		return
	}

	out := make([]*resdto.ModificationRequestResponse, len(views))
	for i, v := range views {
		out[i] = resdto.FromModificationView(v)
	}
	c.JSON(http.StatusOK, out)
}
