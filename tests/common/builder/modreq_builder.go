//go:build unit || e2e

package builder

import (
	"time"

	dommodreq "autocare-api/internal/domain/modreq"
	"autocare-api/internal/usecase/queries"
	"autocare-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ModificationRequestBuilder struct {
	AppointmentID uuid.UUID
	CustomerID    uuid.UUID
	Reason        string
	ProposedDate  *time.Time
	Status        string
	Now           time.Time
}

func NewModificationRequestBuilder() *ModificationRequestBuilder {
	now := time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)
	return &ModificationRequestBuilder{
		AppointmentID: uuid.New(),
		CustomerID:    uuid.New(),
		Reason:        "Need a later slot",
		Status:        "pending",
		Now:           now,
	}
}

func (b *ModificationRequestBuilder) With(mutate func(*ModificationRequestBuilder)) *ModificationRequestBuilder {
	mutate(b)
	return b
}

func (b *ModificationRequestBuilder) BuildDomain() (*dommodreq.ModificationRequest, error) {
	return dommodreq.NewModificationRequest(b.AppointmentID, b.CustomerID, b.Reason, b.ProposedDate, b.Now)
}

func (b *ModificationRequestBuilder) BuildReconstructed() *dommodreq.ModificationRequest {
	return dommodreq.ReconstructModificationRequest(
		uuid.New(), b.AppointmentID, b.CustomerID,
		b.Reason, b.ProposedDate,
		dommodreq.Status(b.Status),
		nil, nil, b.Now, nil,
	)
}

func (b *ModificationRequestBuilder) BuildSnapshot() *shared.ModificationSnapshot {
	return &shared.ModificationSnapshot{
		ID:            uuid.New(),
		AppointmentID: b.AppointmentID,
		CustomerID:    b.CustomerID,
		Status:        dommodreq.Status(b.Status),
		ProposedDate:  b.ProposedDate,
	}
}

func (b *ModificationRequestBuilder) BuildView() *queries.ModificationRequestView {
	return &queries.ModificationRequestView{
		ID:            uuid.New(),
		AppointmentID: b.AppointmentID,
		CustomerID:    b.CustomerID,
		Reason:        b.Reason,
		ProposedDate:  b.ProposedDate,
		Status:        b.Status,
		CreatedAt:     b.Now,
	}
}

// Fluent builder methods
func (b *ModificationRequestBuilder) WithAppointmentID(id uuid.UUID) *ModificationRequestBuilder {
	b.AppointmentID = id
	return b
}

func (b *ModificationRequestBuilder) WithCustomerID(id uuid.UUID) *ModificationRequestBuilder {
	b.CustomerID = id
	return b
}

func (b *ModificationRequestBuilder) WithReason(reason string) *ModificationRequestBuilder {
	b.Reason = reason
	return b
}

func (b *ModificationRequestBuilder) WithProposedDate(t time.Time) *ModificationRequestBuilder {
	b.ProposedDate = &t
	return b
}

func (b *ModificationRequestBuilder) WithStatus(s string) *ModificationRequestBuilder {
	b.Status = s
	return b
}
