package request

import (
	"time"

	"github.com/google/uuid"
)

type StartTimerRequest struct {
	// EmployeeID is optional; admins may start a timer on an employee's
	// behalf, employees always act as themselves.
	EmployeeID    *uuid.UUID `json:"employee_id,omitempty"`
	AppointmentID uuid.UUID  `json:"appointment_id" binding:"required"`
	Description   string     `json:"description,omitempty"`
}

type StopTimerRequest struct {
	EmployeeID *uuid.UUID `json:"employee_id,omitempty"`
}

type ManualTimeLogRequest struct {
	EmployeeID    *uuid.UUID `json:"employee_id,omitempty"`
	AppointmentID uuid.UUID  `json:"appointment_id" binding:"required"`
	Start         time.Time  `json:"start" binding:"required"`
	End           time.Time  `json:"end" binding:"required"`
	Description   string     `json:"description,omitempty"`
}

type AmendTimeLogRequest struct {
	Start       time.Time `json:"start" binding:"required"`
	End         time.Time `json:"end" binding:"required"`
	Description string    `json:"description,omitempty"`
}
