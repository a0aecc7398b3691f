package response

import (
	"time"

	"autocare-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID                 uuid.UUID  `json:"id"`
	CustomerID         uuid.UUID  `json:"customerId"`
	VehicleMake        string     `json:"vehicleMake"`
	VehicleModel       string     `json:"vehicleModel"`
	VehicleYear        int        `json:"vehicleYear"`
	VehiclePlate       string     `json:"vehiclePlate"`
	ServiceType        string     `json:"serviceType"`
	ScheduledAt        time.Time  `json:"scheduledAt"`
	Priority           string     `json:"priority"`
	Description        string     `json:"description"`
	Status             string     `json:"status"`
	AssignedEmployeeID *uuid.UUID `json:"assignedEmployeeId,omitempty"`
	EstimatedCostCents *int64     `json:"estimatedCostCents,omitempty"`
	ActualCostCents    *int64     `json:"actualCostCents,omitempty"`
	Notes              []string   `json:"notes"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type AppointmentListResponse struct {
	ID                 uuid.UUID  `json:"id"`
	CustomerID         uuid.UUID  `json:"customerId"`
	VehiclePlate       string     `json:"vehiclePlate"`
	ServiceType        string     `json:"serviceType"`
	ScheduledAt        time.Time  `json:"scheduledAt"`
	Priority           string     `json:"priority"`
	Status             string     `json:"status"`
	AssignedEmployeeID *uuid.UUID `json:"assignedEmployeeId,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 v.ID,
		CustomerID:         v.CustomerID,
		VehicleMake:        v.VehicleMake,
		VehicleModel:       v.VehicleModel,
		VehicleYear:        v.VehicleYear,
		VehiclePlate:       v.VehiclePlate,
		ServiceType:        v.ServiceType,
		ScheduledAt:        v.ScheduledAt,
		Priority:           v.Priority,
		Description:        v.Description,
		Status:             v.Status,
		AssignedEmployeeID: v.AssignedEmployeeID,
		EstimatedCostCents: v.EstimatedCostCents,
		ActualCostCents:    v.ActualCostCents,
		Notes:              v.Notes,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func FromAppointmentListItem(v *queries.AppointmentListItem) *AppointmentListResponse {
	return &AppointmentListResponse{
		ID:                 v.ID,
		CustomerID:         v.CustomerID,
		VehiclePlate:       v.VehiclePlate,
		ServiceType:        v.ServiceType,
		ScheduledAt:        v.ScheduledAt,
		Priority:           v.Priority,
		Status:             v.Status,
		AssignedEmployeeID: v.AssignedEmployeeID,
		CreatedAt:          v.CreatedAt,
	}
}
