package request

import (
	"time"

	"autocare-api/internal/domain/appointment"
	"autocare-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookAppointmentRequest struct {
	CustomerID         *uuid.UUID `json:"customer_id,omitempty"` // admin booking on behalf
	VehicleMake        string     `json:"vehicle_make" binding:"required"`
	VehicleModel       string     `json:"vehicle_model" binding:"required"`
	VehicleYear        int        `json:"vehicle_year" binding:"required"`
	VehiclePlate       string     `json:"vehicle_plate" binding:"required"`
	ServiceType        string     `json:"service_type" binding:"required"`
	ScheduledAt        time.Time  `json:"scheduled_at" binding:"required"`
	Priority           string     `json:"priority,omitempty"`
	Description        string     `json:"description,omitempty"`
	EstimatedCostCents *int64     `json:"estimated_cost_cents,omitempty"`
}

func (r BookAppointmentRequest) ToInput() commands.BookAppointmentInput {
	priority := r.Priority
	if priority == "" {
		priority = appointment.PriorityMedium.String()
	}
	return commands.BookAppointmentInput{
		CustomerID:         r.CustomerID,
		VehicleMake:        r.VehicleMake,
		VehicleModel:       r.VehicleModel,
		VehicleYear:        r.VehicleYear,
		VehiclePlate:       r.VehiclePlate,
		ServiceType:        appointment.ServiceType(r.ServiceType),
		ScheduledAt:        r.ScheduledAt,
		Priority:           appointment.Priority(priority),
		Description:        r.Description,
		EstimatedCostCents: r.EstimatedCostCents,
	}
}

type AssignAppointmentRequest struct {
	EmployeeID uuid.UUID `json:"employee_id" binding:"required"`
	Override   bool      `json:"override,omitempty"`
}

type TransitionAppointmentRequest struct {
	TargetStatus string `json:"target_status" binding:"required"`
}

type SetActualCostRequest struct {
	ActualCostCents int64 `json:"actual_cost_cents" binding:"required"`
}

type ProposeModificationRequest struct {
	Reason       string     `json:"reason" binding:"required"`
	ProposedDate *time.Time `json:"proposed_date,omitempty"`
}

type DecideModificationRequest struct {
	Approve        bool    `json:"approve"`
	DecisionReason *string `json:"decision_reason,omitempty"`
}
