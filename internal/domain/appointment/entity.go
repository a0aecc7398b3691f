package appointment

import (
	"errors"
	"time"

	"autocare-api/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus         = errors.New("invalid appointment status")
	ErrInvalidServiceType    = errors.New("invalid service type")
	ErrInvalidPriority       = errors.New("invalid priority")
	ErrScheduledInPast       = errors.New("scheduled date cannot be in the past")
	ErrIllegalTransition     = errors.New("illegal status transition")
	ErrNotAssignable         = errors.New("appointment cannot be assigned in its current status")
	ErrReassignNeedsOverride = errors.New("reassignment over a different employee requires an admin override")
	ErrTerminalStatus        = errors.New("appointment is in a terminal status")
)

type Appointment struct {
	id               uuid.UUID
	customerID       uuid.UUID
	vehicle          VehicleSnapshot
	serviceType      ServiceType
	scheduledAt      time.Time
	priority         Priority
	description      Description
	status           Status
	assignedEmployee *uuid.UUID
	estimatedCost    *Money
	actualCost       *Money
	notes            []string
	createdAt        time.Time
	updatedAt        time.Time
}

// NewAppointment books an appointment on behalf of a customer. Bookings
// always enter the lifecycle at pending with no employee assigned.
func NewAppointment(
	clk clock.Clock,
	customerID uuid.UUID,
	vehicle VehicleSnapshot,
	serviceType ServiceType,
	scheduledAt time.Time,
	priority Priority,
	description Description,
	estimatedCost *Money,
) (*Appointment, error) {
	if !serviceType.IsValid() {
		return nil, ErrInvalidServiceType
	}
	if !priority.IsValid() {
		return nil, ErrInvalidPriority
	}
	now := clk.Now()
	if scheduledAt.Before(now) {
		return nil, ErrScheduledInPast
	}

	return &Appointment{
		id:            uuid.New(),
		customerID:    customerID,
		vehicle:       vehicle,
		serviceType:   serviceType,
		scheduledAt:   scheduledAt,
		priority:      priority,
		description:   description,
		status:        StatusPending,
		estimatedCost: estimatedCost,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructAppointment(
	id, customerID uuid.UUID,
	vehicle VehicleSnapshot,
	serviceType ServiceType,
	scheduledAt time.Time,
	priority Priority,
	description Description,
	status Status,
	assignedEmployee *uuid.UUID,
	estimatedCost, actualCost *Money,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:               id,
		customerID:       customerID,
		vehicle:          vehicle,
		serviceType:      serviceType,
		scheduledAt:      scheduledAt,
		priority:         priority,
		description:      description,
		status:           status,
		assignedEmployee: assignedEmployee,
		estimatedCost:    estimatedCost,
		actualCost:       actualCost,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Assign sets the employee working this appointment. Assignment never moves
// the status by itself; confirming is a separate, explicit transition.
// Replacing a different, already assigned employee requires adminOverride.
func (a *Appointment) Assign(employeeID uuid.UUID, adminOverride bool) error {
	if a.status.IsTerminal() {
		return ErrTerminalStatus
	}
	if !Assignable(a.status) {
		return ErrNotAssignable
	}
	if a.assignedEmployee != nil && *a.assignedEmployee != employeeID && !adminOverride {
		return ErrReassignNeedsOverride
	}
	id := employeeID
	a.assignedEmployee = &id
	return nil
}

// TransitionTo validates the edge against the transition table. No-op
// transitions to the current status are rejected, not silently accepted.
func (a *Appointment) TransitionTo(to Status) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if !ValidTransition(a.status, to) {
		return ErrIllegalTransition
	}
	a.status = to
	return nil
}

// Reschedule applies an approved modification request's proposed date. The
// scheduled date is immutable once the appointment is terminal.
func (a *Appointment) Reschedule(newDate time.Time) error {
	if a.status.IsTerminal() {
		return ErrTerminalStatus
	}
	a.scheduledAt = newDate
	return nil
}

// SetActualCost records the final labor+parts cost. Terminal appointments
// accept no mutation other than note appending.
func (a *Appointment) SetActualCost(cost Money) error {
	if a.status.IsTerminal() {
		return ErrTerminalStatus
	}
	a.actualCost = &cost
	return nil
}

// AppendNote is the one mutation permitted in terminal states.
func (a *Appointment) AppendNote(note string) {
	if note == "" {
		return
	}
	a.notes = append(a.notes, note)
}

func (a *Appointment) Touch(now time.Time) {
	a.updatedAt = now
}

func (a *Appointment) ID() uuid.UUID                { return a.id }
func (a *Appointment) CustomerID() uuid.UUID        { return a.customerID }
func (a *Appointment) Vehicle() VehicleSnapshot     { return a.vehicle }
func (a *Appointment) ServiceType() ServiceType     { return a.serviceType }
func (a *Appointment) ScheduledAt() time.Time       { return a.scheduledAt }
func (a *Appointment) Priority() Priority           { return a.priority }
func (a *Appointment) Description() Description     { return a.description }
func (a *Appointment) Status() Status               { return a.status }
func (a *Appointment) AssignedEmployee() *uuid.UUID { return a.assignedEmployee }
func (a *Appointment) EstimatedCost() *Money        { return a.estimatedCost }
func (a *Appointment) ActualCost() *Money           { return a.actualCost }
func (a *Appointment) Notes() []string              { return a.notes }
func (a *Appointment) CreatedAt() time.Time         { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time         { return a.updatedAt }
