package queries

import (
	"context"

	"autocare-api/internal/pkg/errs"
	"autocare-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrViewForbidden = errs.New("caller may not read this view")

const defaultListLimit = 50

type AppointmentViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int32) ([]*AppointmentListItem, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID, limit int32) ([]*AppointmentListItem, error)
	ListAll(ctx context.Context, status string, limit int32) ([]*AppointmentListItem, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*AppointmentView, error)
	List(ctx context.Context, actor shared.Actor, status string, limit int) ([]*AppointmentListItem, error)
}

type appointmentQueriesImpl struct {
	repo AppointmentViewRepo
}

func NewAppointmentQueries(repo AppointmentViewRepo) AppointmentQueries {
	return &appointmentQueriesImpl{repo: repo}
}

// GetByID scopes visibility by role: customers see their own bookings,
// employees their assignments, admins everything.
func (q *appointmentQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case actor.IsAdmin():
		return view, nil
	case actor.IsCustomer() && view.CustomerID == actor.ID:
		return view, nil
	case actor.IsEmployee() && view.AssignedEmployeeID != nil && *view.AssignedEmployeeID == actor.ID:
		return view, nil
	default:
		return nil, ErrViewForbidden
	}
}

func (q *appointmentQueriesImpl) List(ctx context.Context, actor shared.Actor, status string, limit int) ([]*AppointmentListItem, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultListLimit
	}

	switch {
	case actor.IsAdmin():
		return q.repo.ListAll(ctx, status, int32(limit))
	case actor.IsEmployee():
		return q.repo.ListByEmployee(ctx, actor.ID, int32(limit))
	default:
		return q.repo.ListByCustomer(ctx, actor.ID, int32(limit))
	}
}
