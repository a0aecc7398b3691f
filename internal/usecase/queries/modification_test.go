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

func TestModificationGetByIDScoping(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockModificationViewRepo(ctrl)
	q := queries.NewModificationQueries(repo)

	view := builder.NewModificationRequestBuilder().BuildView()

	t.Run("owning customer reads their request", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		owner := shared.Actor{ID: view.CustomerID, Role: user.RoleCustomer}

		got, err := q.GetByID(context.Background(), owner, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("another customer is forbidden", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		_, err := q.GetByID(context.Background(), actor(user.RoleCustomer), view.ID)
		require.ErrorIs(t, err, queries.ErrViewForbidden)
	})

	t.Run("admin reads any request", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		_, err := q.GetByID(context.Background(), actor(user.RoleAdmin), view.ID)
		require.NoError(t, err)
	})
}

func TestModificationListScoping(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockModificationViewRepo(ctrl)
	q := queries.NewModificationQueries(repo)

	appointmentID := uuid.New()
	mine := builder.NewModificationRequestBuilder().WithAppointmentID(appointmentID).BuildView()
	theirs := builder.NewModificationRequestBuilder().WithAppointmentID(appointmentID).BuildView()
	all := []*queries.ModificationRequestView{mine, theirs}

	t.Run("admin sees every request", func(t *testing.T) {
		repo.EXPECT().ListByAppointment(gomock.Any(), appointmentID).Return(all, nil)
		got, err := q.ListByAppointment(context.Background(), actor(user.RoleAdmin), appointmentID)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("customer sees only their own", func(t *testing.T) {
		repo.EXPECT().ListByAppointment(gomock.Any(), appointmentID).Return(all, nil)
		owner := shared.Actor{ID: mine.CustomerID, Role: user.RoleCustomer}

		got, err := q.ListByAppointment(context.Background(), owner, appointmentID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, mine.ID, got[0].ID)
	})
}
