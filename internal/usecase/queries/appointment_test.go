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

func actor(role user.Role) shared.Actor {
	return shared.Actor{ID: uuid.New(), Role: role}
}

func TestAppointmentGetByIDScoping(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockAppointmentViewRepo(ctrl)
	q := queries.NewAppointmentQueries(repo)

	view := builder.NewAppointmentBuilder().BuildView()

	t.Run("admin sees any appointment", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		got, err := q.GetByID(context.Background(), actor(user.RoleAdmin), view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("owning customer sees it", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		owner := shared.Actor{ID: view.CustomerID, Role: user.RoleCustomer}
		_, err := q.GetByID(context.Background(), owner, view.ID)
		require.NoError(t, err)
	})

	t.Run("another customer is forbidden", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		_, err := q.GetByID(context.Background(), actor(user.RoleCustomer), view.ID)
		require.ErrorIs(t, err, queries.ErrViewForbidden)
	})

	t.Run("assigned employee sees it", func(t *testing.T) {
		employeeID := uuid.New()
		assigned := builder.NewAppointmentBuilder().WithAssignedEmployee(employeeID).BuildView()
		repo.EXPECT().FindByID(gomock.Any(), assigned.ID).Return(assigned, nil)

		caller := shared.Actor{ID: employeeID, Role: user.RoleEmployee}
		_, err := q.GetByID(context.Background(), caller, assigned.ID)
		require.NoError(t, err)
	})

	t.Run("unassigned employee is forbidden", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		_, err := q.GetByID(context.Background(), actor(user.RoleEmployee), view.ID)
		require.ErrorIs(t, err, queries.ErrViewForbidden)
	})
}

func TestAppointmentListScoping(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockAppointmentViewRepo(ctrl)
	q := queries.NewAppointmentQueries(repo)

	items := []*queries.AppointmentListItem{
		builder.NewAppointmentBuilder().BuildListItem(),
	}

	t.Run("admin lists everything with the status filter", func(t *testing.T) {
		admin := actor(user.RoleAdmin)
		repo.EXPECT().ListAll(gomock.Any(), "pending", int32(50)).Return(items, nil)

		got, err := q.List(context.Background(), admin, "pending", 0)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("employee lists their assignments", func(t *testing.T) {
		employee := actor(user.RoleEmployee)
		repo.EXPECT().ListByEmployee(gomock.Any(), employee.ID, int32(50)).Return(items, nil)

		_, err := q.List(context.Background(), employee, "", 0)
		require.NoError(t, err)
	})

	t.Run("customer lists their bookings", func(t *testing.T) {
		customer := actor(user.RoleCustomer)
		repo.EXPECT().ListByCustomer(gomock.Any(), customer.ID, int32(25)).Return(items, nil)

		_, err := q.List(context.Background(), customer, "", 25)
		require.NoError(t, err)
	})

	t.Run("oversized limit falls back to the default", func(t *testing.T) {
		admin := actor(user.RoleAdmin)
		repo.EXPECT().ListAll(gomock.Any(), "", int32(50)).Return(items, nil)

		_, err := q.List(context.Background(), admin, "", 5000)
		require.NoError(t, err)
	})
}
