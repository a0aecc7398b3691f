package timelog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRange     = errors.New("end time must be after start time")
	ErrAlreadyCompleted = errors.New("time log is already completed")
	ErrStillActive      = errors.New("time log is still active")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// TimeLog records one employee's labor time against one appointment. An
// active log has no end time; its duration is whatever the wall clock says.
type TimeLog struct {
	id            uuid.UUID
	employeeID    uuid.UUID
	appointmentID uuid.UUID
	startedAt     time.Time
	endedAt       *time.Time
	description   string
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

// StartTimeLog opens a running timer. The caller (the Timer Ledger) is
// responsible for the one-active-log-per-employee invariant; the entity only
// models a single log.
func StartTimeLog(employeeID, appointmentID uuid.UUID, now time.Time, description string) *TimeLog {
	return &TimeLog{
		id:            uuid.New(),
		employeeID:    employeeID,
		appointmentID: appointmentID,
		startedAt:     now,
		description:   strings.TrimSpace(description),
		status:        StatusActive,
		createdAt:     now,
		updatedAt:     now,
	}
}

// NewManualTimeLog creates a completed, back-dated entry. It never touches
// the active-timer path.
func NewManualTimeLog(employeeID, appointmentID uuid.UUID, start, end time.Time, description string, now time.Time) (*TimeLog, error) {
	if !end.After(start) {
		return nil, ErrInvalidRange
	}
	e := end
	return &TimeLog{
		id:            uuid.New(),
		employeeID:    employeeID,
		appointmentID: appointmentID,
		startedAt:     start,
		endedAt:       &e,
		description:   strings.TrimSpace(description),
		status:        StatusCompleted,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructTimeLog(
	id, employeeID, appointmentID uuid.UUID,
	startedAt time.Time,
	endedAt *time.Time,
	description string,
	status Status,
	createdAt, updatedAt time.Time,
) *TimeLog {
	return &TimeLog{
		id:            id,
		employeeID:    employeeID,
		appointmentID: appointmentID,
		startedAt:     startedAt,
		endedAt:       endedAt,
		description:   description,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Stop closes a running log. The end time is clamped so a skewed clock can
// never produce a negative duration.
func (t *TimeLog) Stop(now time.Time) error {
	if t.status != StatusActive {
		return ErrAlreadyCompleted
	}
	end := now
	if end.Before(t.startedAt) {
		end = t.startedAt
	}
	t.endedAt = &end
	t.status = StatusCompleted
	t.updatedAt = now
	return nil
}

// Amend rewrites a completed log's range and description. Active logs must
// be stopped, not edited, so the running duration a client displays never
// diverges from the stored record.
func (t *TimeLog) Amend(start, end time.Time, description string, now time.Time) error {
	if t.status != StatusCompleted {
		return ErrStillActive
	}
	if !end.After(start) {
		return ErrInvalidRange
	}
	e := end
	t.startedAt = start
	t.endedAt = &e
	t.description = strings.TrimSpace(description)
	t.updatedAt = now
	return nil
}

// Duration is always recomputed from the stored timestamps, never persisted
// separately.
func (t *TimeLog) Duration() time.Duration {
	if t.endedAt == nil {
		return 0
	}
	d := t.endedAt.Sub(t.startedAt)
	if d < 0 {
		return 0
	}
	return d
}

func (t *TimeLog) IsActive() bool {
	return t.status == StatusActive
}

func (t *TimeLog) ID() uuid.UUID            { return t.id }
func (t *TimeLog) EmployeeID() uuid.UUID    { return t.employeeID }
func (t *TimeLog) AppointmentID() uuid.UUID { return t.appointmentID }
func (t *TimeLog) StartedAt() time.Time     { return t.startedAt }
func (t *TimeLog) EndedAt() *time.Time      { return t.endedAt }
func (t *TimeLog) Description() string      { return t.description }
func (t *TimeLog) Status() Status           { return t.status }
func (t *TimeLog) CreatedAt() time.Time     { return t.createdAt }
func (t *TimeLog) UpdatedAt() time.Time     { return t.updatedAt }
