package events

import (
	"time"

	"github.com/google/uuid"
)

// Event names on the wire. Clients switch on these.
const (
	AppointmentStatusChanged   = "appointment-status-changed"
	AppointmentAssigned        = "appointment-assigned"
	WorkTimerStarted           = "work-timer-started"
	WorkTimerStopped           = "work-timer-stopped"
	ModificationRequestCreated = "modification-request-created"
	ModificationApproved       = "modification-approved"
	ModificationRejected       = "modification-rejected"
)

// Topic is an ordering key: all events published to one topic are observed
// by each subscriber in publish order. Cross-topic order is undefined.
type Topic string

const (
	TopicAdmins    Topic = "role:admin"
	TopicCustomers Topic = "role:customer"
)

func TopicAppointment(id uuid.UUID) Topic {
	return Topic("appointment:" + id.String())
}

func TopicEmployee(id uuid.UUID) Topic {
	return Topic("employee:" + id.String())
}

// Audience decides which live connections may observe an event. Delivery
// filtering is the fan-out's concern only; it never gates mutations.
type Audience struct {
	CustomerID *uuid.UUID
	EmployeeID *uuid.UUID
	Admins     bool
}

type Event struct {
	Name       string    `json:"type"`
	Payload    any       `json:"payload"`
	OccurredAt time.Time `json:"occurred_at"`

	Topics   []Topic  `json:"-"`
	Audience Audience `json:"-"`
}

type StatusChangedPayload struct {
	AppointmentID uuid.UUID `json:"appointmentId"`
	OldStatus     string    `json:"oldStatus"`
	NewStatus     string    `json:"newStatus"`
}

type AssignedPayload struct {
	AppointmentID uuid.UUID `json:"appointmentId"`
	EmployeeID    uuid.UUID `json:"employeeId"`
}

type TimerStartedPayload struct {
	EmployeeID    uuid.UUID `json:"employeeId"`
	AppointmentID uuid.UUID `json:"appointmentId"`
	StartTime     time.Time `json:"startTime"`
}

type TimerStoppedPayload struct {
	EmployeeID      uuid.UUID `json:"employeeId"`
	AppointmentID   uuid.UUID `json:"appointmentId"`
	DurationMinutes float64   `json:"durationMinutes"`
}

type ModificationCreatedPayload struct {
	RequestID     uuid.UUID `json:"requestId"`
	AppointmentID uuid.UUID `json:"appointmentId"`
}

type ModificationApprovedPayload struct {
	RequestID     uuid.UUID `json:"requestId"`
	AppointmentID uuid.UUID `json:"appointmentId"`
}

type ModificationRejectedPayload struct {
	RequestID     uuid.UUID `json:"requestId"`
	AppointmentID uuid.UUID `json:"appointmentId"`
	Reason        string    `json:"reason"`
}
