package response

import (
	"time"

	"autocare-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ModificationRequestResponse struct {
	ID             uuid.UUID  `json:"id"`
	AppointmentID  uuid.UUID  `json:"appointmentId"`
	CustomerID     uuid.UUID  `json:"customerId"`
	Reason         string     `json:"reason"`
	ProposedDate   *time.Time `json:"proposedDate,omitempty"`
	Status         string     `json:"status"`
	DecisionReason *string    `json:"decisionReason,omitempty"`
	DecidedBy      *uuid.UUID `json:"decidedBy,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	DecidedAt      *time.Time `json:"decidedAt,omitempty"`
}

func FromModificationView(v *queries.ModificationRequestView) *ModificationRequestResponse {
	return &ModificationRequestResponse{
		ID:             v.ID,
		AppointmentID:  v.AppointmentID,
		CustomerID:     v.CustomerID,
		Reason:         v.Reason,
		ProposedDate:   v.ProposedDate,
		Status:         v.Status,
		DecisionReason: v.DecisionReason,
		DecidedBy:      v.DecidedBy,
		CreatedAt:      v.CreatedAt,
		DecidedAt:      v.DecidedAt,
	}
}
