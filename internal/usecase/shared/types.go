package shared

import (
	"time"

	"autocare-api/internal/domain/appointment"
	"autocare-api/internal/domain/modreq"
	"autocare-api/internal/domain/timelog"
	"autocare-api/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller as established by the auth middleware.
// Mutation authorization is decided here in the usecase layer, never from
// connection state.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsAdmin() bool    { return a.Role == user.RoleAdmin }
func (a Actor) IsEmployee() bool { return a.Role == user.RoleEmployee }
func (a Actor) IsCustomer() bool { return a.Role == user.RoleCustomer }

// Minimal snapshots for command read operations

type AppointmentSnapshot struct {
	ID                 uuid.UUID
	CustomerID         uuid.UUID
	Status             appointment.Status
	AssignedEmployeeID *uuid.UUID
	ScheduledAt        time.Time
}

type TimeLogSnapshot struct {
	ID            uuid.UUID
	EmployeeID    uuid.UUID
	AppointmentID uuid.UUID
	StartedAt     time.Time
	EndedAt       *time.Time
	Status        timelog.Status
}

type ModificationSnapshot struct {
	ID            uuid.UUID
	AppointmentID uuid.UUID
	CustomerID    uuid.UUID
	Status        modreq.Status
	ProposedDate  *time.Time
}
