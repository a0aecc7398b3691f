//go:build unit

package queries_test

import (
	"context"
	"testing"

	"autocare-api/internal/domain/user"
	"autocare-api/internal/usecase/queries"
	"autocare-api/internal/usecase/shared"
	"autocare-api/tests/common/builder"
	queriesmock "autocare-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTimeLogGetByIDScoping(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockTimeLogViewRepo(ctrl)
	q := queries.NewTimeLogQueries(repo)

	view := builder.NewTimeLogBuilder().BuildView()

	t.Run("owner reads their log", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		owner := shared.Actor{ID: view.EmployeeID, Role: user.RoleEmployee}

		got, err := q.GetByID(context.Background(), owner, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("another employee is forbidden", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		_, err := q.GetByID(context.Background(), actor(user.RoleEmployee), view.ID)
		require.ErrorIs(t, err, queries.ErrViewForbidden)
	})

	t.Run("admin reads any log", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		_, err := q.GetByID(context.Background(), actor(user.RoleAdmin), view.ID)
		require.NoError(t, err)
	})
}

func TestTimeLogGetActiveScoping(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockTimeLogViewRepo(ctrl)
	q := queries.NewTimeLogQueries(repo)

	t.Run("employee checks their own running timer", func(t *testing.T) {
		employee := actor(user.RoleEmployee)
		view := builder.NewTimeLogBuilder().WithEmployeeID(employee.ID).BuildView()
		repo.EXPECT().ActiveByEmployee(gomock.Any(), employee.ID).Return(view, nil)

		got, err := q.GetActive(context.Background(), employee, employee.ID)
		require.NoError(t, err)
		assert.Equal(t, "active", got.Status)
	})

	t.Run("employee cannot probe someone else's timer", func(t *testing.T) {
		_, err := q.GetActive(context.Background(), actor(user.RoleEmployee), uuid.New())
		require.ErrorIs(t, err, queries.ErrViewForbidden)
	})

	t.Run("admin may probe anyone", func(t *testing.T) {
		employeeID := uuid.New()
		repo.EXPECT().ActiveByEmployee(gomock.Any(), employeeID).Return(nil, nil)

		_, err := q.GetActive(context.Background(), actor(user.RoleAdmin), employeeID)
		require.NoError(t, err)
	})
}

func TestTimeLogListByAppointmentScoping(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockTimeLogViewRepo(ctrl)
	q := queries.NewTimeLogQueries(repo)

	appointmentID := uuid.New()
	views := []*queries.TimeLogView{
		builder.NewTimeLogBuilder().WithAppointmentID(appointmentID).BuildView(),
	}

	t.Run("staff see the labor breakdown with the minutes total", func(t *testing.T) {
		repo.EXPECT().ListByAppointment(gomock.Any(), appointmentID).Return(views, nil)
		repo.EXPECT().TotalMinutesByAppointment(gomock.Any(), appointmentID).Return(75.5, nil)

		got, err := q.ListByAppointment(context.Background(), actor(user.RoleEmployee), appointmentID)
		require.NoError(t, err)
		assert.Len(t, got.TimeLogs, 1)
		assert.InDelta(t, 75.5, got.TotalMinutes, 0.001)
	})

	t.Run("customers do not", func(t *testing.T) {
		_, err := q.ListByAppointment(context.Background(), actor(user.RoleCustomer), appointmentID)
		require.ErrorIs(t, err, queries.ErrViewForbidden)
	})
}
