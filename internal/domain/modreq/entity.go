package modreq

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyReason    = errors.New("modification reason is required")
	ErrAlreadyDecided = errors.New("modification request is already decided")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

// ModificationRequest is a customer's proposal to change a live appointment.
// At most one pending request may exist per appointment; that invariant is
// owned by the workflow layer, not by this entity.
type ModificationRequest struct {
	id             uuid.UUID
	appointmentID  uuid.UUID
	customerID     uuid.UUID
	reason         string
	proposedDate   *time.Time
	status         Status
	decisionReason *string
	decidedBy      *uuid.UUID
	createdAt      time.Time
	decidedAt      *time.Time
}

func NewModificationRequest(appointmentID, customerID uuid.UUID, reason string, proposedDate *time.Time, now time.Time) (*ModificationRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrEmptyReason
	}
	return &ModificationRequest{
		id:            uuid.New(),
		appointmentID: appointmentID,
		customerID:    customerID,
		reason:        reason,
		proposedDate:  proposedDate,
		status:        StatusPending,
		createdAt:     now,
	}, nil
}

func ReconstructModificationRequest(
	id, appointmentID, customerID uuid.UUID,
	reason string,
	proposedDate *time.Time,
	status Status,
	decisionReason *string,
	decidedBy *uuid.UUID,
	createdAt time.Time,
	decidedAt *time.Time,
) *ModificationRequest {
	return &ModificationRequest{
		id:             id,
		appointmentID:  appointmentID,
		customerID:     customerID,
		reason:         reason,
		proposedDate:   proposedDate,
		status:         status,
		decisionReason: decisionReason,
		decidedBy:      decidedBy,
		createdAt:      createdAt,
		decidedAt:      decidedAt,
	}
}

func (m *ModificationRequest) Approve(adminID uuid.UUID, decisionReason *string, now time.Time) error {
	return m.decide(StatusApproved, adminID, decisionReason, now)
}

func (m *ModificationRequest) Reject(adminID uuid.UUID, decisionReason *string, now time.Time) error {
	return m.decide(StatusRejected, adminID, decisionReason, now)
}

func (m *ModificationRequest) decide(to Status, adminID uuid.UUID, decisionReason *string, now time.Time) error {
	if m.status != StatusPending {
		return ErrAlreadyDecided
	}
	m.status = to
	m.decidedBy = &adminID
	m.decisionReason = decisionReason
	m.decidedAt = &now
	return nil
}

func (m *ModificationRequest) IsPending() bool {
	return m.status == StatusPending
}

func (m *ModificationRequest) ID() uuid.UUID            { return m.id }
func (m *ModificationRequest) AppointmentID() uuid.UUID { return m.appointmentID }
func (m *ModificationRequest) CustomerID() uuid.UUID    { return m.customerID }
func (m *ModificationRequest) Reason() string           { return m.reason }
func (m *ModificationRequest) ProposedDate() *time.Time { return m.proposedDate }
func (m *ModificationRequest) Status() Status           { return m.status }
func (m *ModificationRequest) DecisionReason() *string  { return m.decisionReason }
func (m *ModificationRequest) DecidedBy() *uuid.UUID    { return m.decidedBy }
func (m *ModificationRequest) CreatedAt() time.Time     { return m.createdAt }
func (m *ModificationRequest) DecidedAt() *time.Time    { return m.decidedAt }
