package queries

import (
	"context"

	"autocare-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type TimeLogViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TimeLogView, error)
	ActiveByEmployee(ctx context.Context, employeeID uuid.UUID) (*TimeLogView, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID, limit int32) ([]*TimeLogView, error)
	ListByAppointment(ctx context.Context, appointmentID uuid.UUID) ([]*TimeLogView, error)
	TotalMinutesByAppointment(ctx context.Context, appointmentID uuid.UUID) (float64, error)
}

// AppointmentLabor is the labor breakdown for one appointment: every log
// recorded against it plus the completed-minutes total.
type AppointmentLabor struct {
	TimeLogs     []*TimeLogView
	TotalMinutes float64
}

type TimeLogQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*TimeLogView, error)
	GetActive(ctx context.Context, actor shared.Actor, employeeID uuid.UUID) (*TimeLogView, error)
	ListByEmployee(ctx context.Context, actor shared.Actor, employeeID uuid.UUID, limit int) ([]*TimeLogView, error)
	ListByAppointment(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID) (*AppointmentLabor, error)
}

type timeLogQueriesImpl struct {
	repo TimeLogViewRepo
}

func NewTimeLogQueries(repo TimeLogViewRepo) TimeLogQueries {
	return &timeLogQueriesImpl{repo: repo}
}

func (q *timeLogQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*TimeLogView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && view.EmployeeID != actor.ID {
		return nil, ErrViewForbidden
	}
	return view, nil
}

func (q *timeLogQueriesImpl) GetActive(ctx context.Context, actor shared.Actor, employeeID uuid.UUID) (*TimeLogView, error) {
	if !actor.IsAdmin() && employeeID != actor.ID {
		return nil, ErrViewForbidden
	}
	return q.repo.ActiveByEmployee(ctx, employeeID)
}

func (q *timeLogQueriesImpl) ListByEmployee(ctx context.Context, actor shared.Actor, employeeID uuid.UUID, limit int) ([]*TimeLogView, error) {
	if !actor.IsAdmin() && employeeID != actor.ID {
		return nil, ErrViewForbidden
	}
	if limit <= 0 || limit > 200 {
		limit = defaultListLimit
	}
	return q.repo.ListByEmployee(ctx, employeeID, int32(limit))
}

// ListByAppointment is the labor breakdown staff see on an appointment.
func (q *timeLogQueriesImpl) ListByAppointment(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID) (*AppointmentLabor, error) {
	if actor.IsCustomer() {
		return nil, ErrViewForbidden
	}
	views, err := q.repo.ListByAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	total, err := q.repo.TotalMinutesByAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	return &AppointmentLabor{TimeLogs: views, TotalMinutes: total}, nil
}
