//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"autocare-api/internal/domain/user"
	"autocare-api/internal/handler/api"
	resdto "autocare-api/internal/handler/dto/response"
	"autocare-api/internal/usecase/commands"
	"autocare-api/internal/usecase/queries"
	"autocare-api/tests/common/builder"
	"autocare-api/tests/common/httptest"
	commandsmock "autocare-api/tests/mock/commands"
	queriesmock "autocare-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ModificationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockModificationCommands
	mockQueries  *queriesmock.MockModificationQueries
	handler      *api.ModificationHandler
	actorID      uuid.UUID
}

func (s *ModificationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockModificationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockModificationQueries(s.mockCtrl)
	s.handler = api.NewModificationHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	// Setup routes
	s.router.POST("/appointments/:id/modification-requests", authMiddleware, s.handler.Propose)
	s.router.GET("/appointments/:id/modification-requests", authMiddleware, s.handler.ListByAppointment)
	s.router.POST("/modification-requests/:id/decide", authMiddleware, s.handler.Decide)
}

func (s *ModificationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestModificationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ModificationHandlerTestSuite))
}

// ================================================================================
// TestPropose
// ================================================================================

func (s *ModificationHandlerTestSuite) TestPropose() {
	appointmentID := uuid.New()
	url := "/appointments/" + appointmentID.String() + "/modification-requests"
	reqBody := map[string]any{"reason": "need a later slot"}

	s.Run("success: returns 201 Created with the pending request", func() {
		returnView := builder.NewModificationRequestBuilder().WithAppointmentID(appointmentID).BuildView()

		s.mockCommands.EXPECT().Propose(gomock.Any(), gomock.Any(), appointmentID, "need a later slot", nil).
			Return(returnView.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ModificationRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 Bad Request without a reason", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 409 Conflict when a pending request exists", func() {
		s.mockCommands.EXPECT().Propose(gomock.Any(), gomock.Any(), appointmentID, "need a later slot", nil).
			Return(uuid.Nil, commands.ErrPendingRequestExists).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "pending modification request")
	})

	s.Run("error: 422 against a terminal appointment", func() {
		s.mockCommands.EXPECT().Propose(gomock.Any(), gomock.Any(), appointmentID, "need a later slot", nil).
			Return(uuid.Nil, commands.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid status transition")
	})

	s.Run("error: 404 Not Found for missing appointment", func() {
		s.mockCommands.EXPECT().Propose(gomock.Any(), gomock.Any(), appointmentID, "need a later slot", nil).
			Return(uuid.Nil, commands.ErrAppointmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})
}

// ================================================================================
// TestDecide
// ================================================================================

func (s *ModificationHandlerTestSuite) TestDecide() {
	requestID := uuid.New()
	url := "/modification-requests/" + requestID.String() + "/decide"

	s.Run("success: approval returns 200 OK with the decided view", func() {
		returnView := builder.NewModificationRequestBuilder().WithStatus("approved").BuildView()
		returnView.ID = requestID

		s.mockCommands.EXPECT().Decide(gomock.Any(), gomock.Any(), commands.DecideModificationInput{
			RequestID: requestID,
			Approve:   true,
		}).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), requestID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"approve": true}, "bearer-token")

		var response resdto.ModificationRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("approved", response.Status)
	})

	s.Run("success: rejection forwards the decision reason", func() {
		returnView := builder.NewModificationRequestBuilder().WithStatus("rejected").BuildView()
		returnView.ID = requestID
		reason := "shop is fully booked"

		s.mockCommands.EXPECT().Decide(gomock.Any(), gomock.Any(), commands.DecideModificationInput{
			RequestID:      requestID,
			Approve:        false,
			DecisionReason: &reason,
		}).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), requestID).
			Return(returnView, nil).Times(1)

		body := map[string]any{"approve": false, "decision_reason": reason}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 Forbidden for non-admins", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(commands.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"approve": true}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Operation not permitted")
	})

	s.Run("error: 404 Not Found for a decided request", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(commands.ErrModificationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"approve": true}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Modification request not found")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/modification-requests/invalid-uuid/decide",
			map[string]any{"approve": true}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})
}

// ================================================================================
// TestListByAppointment
// ================================================================================

func (s *ModificationHandlerTestSuite) TestListByAppointment() {
	appointmentID := uuid.New()
	url := "/appointments/" + appointmentID.String() + "/modification-requests"

	items := []*queries.ModificationRequestView{
		builder.NewModificationRequestBuilder().WithAppointmentID(appointmentID).BuildView(),
		builder.NewModificationRequestBuilder().WithAppointmentID(appointmentID).WithStatus("rejected").BuildView(),
	}

	s.Run("success: returns the appointment's requests", func() {
		s.mockQueries.EXPECT().ListByAppointment(gomock.Any(), gomock.Any(), appointmentID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.ModificationRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, len(items))
	})

	s.Run("error: 403 Forbidden outside the caller's scope", func() {
		s.mockQueries.EXPECT().ListByAppointment(gomock.Any(), gomock.Any(), appointmentID).
			Return(nil, queries.ErrViewForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Operation not permitted")
	})
}
