package queries

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentView represents read-optimized appointment data
type AppointmentView struct {
	ID                 uuid.UUID  `json:"id"`
	CustomerID         uuid.UUID  `json:"customer_id"`
	VehicleMake        string     `json:"vehicle_make"`
	VehicleModel       string     `json:"vehicle_model"`
	VehicleYear        int        `json:"vehicle_year"`
	VehiclePlate       string     `json:"vehicle_plate"`
	ServiceType        string     `json:"service_type"`
	ScheduledAt        time.Time  `json:"scheduled_at"`
	Priority           string     `json:"priority"`
	Description        string     `json:"description"`
	Status             string     `json:"status"`
	AssignedEmployeeID *uuid.UUID `json:"assigned_employee_id,omitempty"`
	EstimatedCostCents *int64     `json:"estimated_cost_cents,omitempty"`
	ActualCostCents    *int64     `json:"actual_cost_cents,omitempty"`
	Notes              []string   `json:"notes"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type AppointmentListItem struct {
	ID                 uuid.UUID  `json:"id"`
	CustomerID         uuid.UUID  `json:"customer_id"`
	VehiclePlate       string     `json:"vehicle_plate"`
	ServiceType        string     `json:"service_type"`
	ScheduledAt        time.Time  `json:"scheduled_at"`
	Priority           string     `json:"priority"`
	Status             string     `json:"status"`
	AssignedEmployeeID *uuid.UUID `json:"assigned_employee_id,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// TimeLogView represents read-optimized time log data. DurationMinutes is
// computed from the stored range at query time; it is zero for active logs.
type TimeLogView struct {
	ID              uuid.UUID  `json:"id"`
	EmployeeID      uuid.UUID  `json:"employee_id"`
	AppointmentID   uuid.UUID  `json:"appointment_id"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	DurationMinutes float64    `json:"duration_minutes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ModificationRequestView represents read-optimized modification request data
type ModificationRequestView struct {
	ID             uuid.UUID  `json:"id"`
	AppointmentID  uuid.UUID  `json:"appointment_id"`
	CustomerID     uuid.UUID  `json:"customer_id"`
	Reason         string     `json:"reason"`
	ProposedDate   *time.Time `json:"proposed_date,omitempty"`
	Status         string     `json:"status"`
	DecisionReason *string    `json:"decision_reason,omitempty"`
	DecidedBy      *uuid.UUID `json:"decided_by,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	DecidedAt      *time.Time `json:"decided_at,omitempty"`
}
