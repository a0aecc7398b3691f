package response

import (
	"time"

	"autocare-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type TimeLogResponse struct {
	ID              uuid.UUID  `json:"id"`
	EmployeeID      uuid.UUID  `json:"employeeId"`
	AppointmentID   uuid.UUID  `json:"appointmentId"`
	StartedAt       time.Time  `json:"startedAt"`
	EndedAt         *time.Time `json:"endedAt,omitempty"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	DurationMinutes float64    `json:"durationMinutes"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func FromTimeLogView(v *queries.TimeLogView) *TimeLogResponse {
	return &TimeLogResponse{
		ID:              v.ID,
		EmployeeID:      v.EmployeeID,
		AppointmentID:   v.AppointmentID,
		StartedAt:       v.StartedAt,
		EndedAt:         v.EndedAt,
		Description:     v.Description,
		Status:          v.Status,
		DurationMinutes: v.DurationMinutes,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromTimeLogViews(vs []*queries.TimeLogView) []*TimeLogResponse {
	out := make([]*TimeLogResponse, len(vs))
	for i, v := range vs {
		out[i] = FromTimeLogView(v)
	}
	return out
}

type AppointmentLaborResponse struct {
	TimeLogs     []*TimeLogResponse `json:"timeLogs"`
	TotalMinutes float64            `json:"totalMinutes"`
}

func FromAppointmentLabor(l *queries.AppointmentLabor) *AppointmentLaborResponse {
	return &AppointmentLaborResponse{
		TimeLogs:     FromTimeLogViews(l.TimeLogs),
		TotalMinutes: l.TotalMinutes,
	}
}
