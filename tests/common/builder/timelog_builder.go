//go:build unit || e2e

package builder

import (
	"time"

	domtimelog "autocare-api/internal/domain/timelog"
	"autocare-api/internal/usecase/queries"
	"autocare-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type TimeLogBuilder struct {
	EmployeeID    uuid.UUID
	AppointmentID uuid.UUID
	StartedAt     time.Time
	EndedAt       *time.Time
	Description   string
	Status        string
	Now           time.Time
}

func NewTimeLogBuilder() *TimeLogBuilder {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return &TimeLogBuilder{
		EmployeeID:    uuid.New(),
		AppointmentID: uuid.New(),
		StartedAt:     now,
		Description:   "Brake pad replacement",
		Status:        "active",
		Now:           now,
	}
}

func (b *TimeLogBuilder) With(mutate func(*TimeLogBuilder)) *TimeLogBuilder {
	mutate(b)
	return b
}

func (b *TimeLogBuilder) BuildDomain() *domtimelog.TimeLog {
	return domtimelog.ReconstructTimeLog(
		uuid.New(), b.EmployeeID, b.AppointmentID,
		b.StartedAt, b.EndedAt, b.Description,
		domtimelog.Status(b.Status),
		b.Now, b.Now,
	)
}

func (b *TimeLogBuilder) BuildSnapshot() *shared.TimeLogSnapshot {
	return &shared.TimeLogSnapshot{
		ID:            uuid.New(),
		EmployeeID:    b.EmployeeID,
		AppointmentID: b.AppointmentID,
		StartedAt:     b.StartedAt,
		EndedAt:       b.EndedAt,
		Status:        domtimelog.Status(b.Status),
	}
}

func (b *TimeLogBuilder) BuildView() *queries.TimeLogView {
	var duration float64
	if b.EndedAt != nil {
		duration = b.EndedAt.Sub(b.StartedAt).Minutes()
	}
	return &queries.TimeLogView{
		ID:              uuid.New(),
		EmployeeID:      b.EmployeeID,
		AppointmentID:   b.AppointmentID,
		StartedAt:       b.StartedAt,
		EndedAt:         b.EndedAt,
		Description:     b.Description,
		Status:          b.Status,
		DurationMinutes: duration,
		CreatedAt:       b.Now,
		UpdatedAt:       b.Now,
	}
}

// Fluent builder methods
func (b *TimeLogBuilder) WithEmployeeID(id uuid.UUID) *TimeLogBuilder {
	b.EmployeeID = id
	return b
}

func (b *TimeLogBuilder) WithAppointmentID(id uuid.UUID) *TimeLogBuilder {
	b.AppointmentID = id
	return b
}

func (b *TimeLogBuilder) WithStartedAt(t time.Time) *TimeLogBuilder {
	b.StartedAt = t
	return b
}

func (b *TimeLogBuilder) AsCompleted(d time.Duration) *TimeLogBuilder {
	end := b.StartedAt.Add(d)
	b.EndedAt = &end
	b.Status = "completed"
	return b
}
