package queries

import (
	"context"

	"autocare-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ModificationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ModificationRequestView, error)
	PendingByAppointment(ctx context.Context, appointmentID uuid.UUID) (*ModificationRequestView, error)
	ListByAppointment(ctx context.Context, appointmentID uuid.UUID) ([]*ModificationRequestView, error)
}

type ModificationQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ModificationRequestView, error)
	ListByAppointment(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID) ([]*ModificationRequestView, error)
}

type modificationQueriesImpl struct {
	repo ModificationViewRepo
}

func NewModificationQueries(repo ModificationViewRepo) ModificationQueries {
	return &modificationQueriesImpl{repo: repo}
}

func (q *modificationQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ModificationRequestView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && view.CustomerID != actor.ID {
		return nil, ErrViewForbidden
	}
	return view, nil
}

func (q *modificationQueriesImpl) ListByAppointment(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID) ([]*ModificationRequestView, error) {
	views, err := q.repo.ListByAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() {
		return views, nil
	}

	scoped := make([]*ModificationRequestView, 0, len(views))
	for _, v := range views {
		if v.CustomerID == actor.ID {
			scoped = append(scoped, v)
		}
	}
	return scoped, nil
}
