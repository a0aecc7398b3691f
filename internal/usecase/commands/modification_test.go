//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"autocare-api/internal/domain/modreq"
	"autocare-api/internal/events"
	"autocare-api/internal/infra"
	"autocare-api/internal/usecase/commands"
	"autocare-api/internal/usecase/shared"
	"autocare-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProposeModification(t *testing.T) {
	t.Run("owner opens a request, admins are notified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(t, ctrl)

		customerID := uuid.New()
		apptSnap := builder.NewAppointmentBuilder().WithCustomerID(customerID).WithStatus("confirmed").BuildSnapshot()

		f.reads.EXPECT().AppointmentByID(gomock.Any(), apptSnap.ID).Return(apptSnap, nil)
		f.reads.EXPECT().PendingRequestByAppointment(gomock.Any(), apptSnap.ID).Return(nil, nil)
		f.modReqs.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, req *modreq.ModificationRequest) (uuid.UUID, error) {
				assert.Equal(t, customerID, req.CustomerID())
				assert.True(t, req.IsPending())
				return req.ID(), nil
			})

		cmds := commands.NewModificationCommands(f.uow, f.locks, f.bus, f.clock)
		proposed := testNow.Add(72 * time.Hour)
		requestID, err := cmds.Propose(context.Background(), customerActor(customerID), apptSnap.ID, "need a later slot", &proposed)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, requestID)

		ev := f.lastEvent(t)
		assert.Equal(t, events.ModificationRequestCreated, ev.Name)
		assert.True(t, ev.Audience.Admins)
		assert.Nil(t, ev.Audience.CustomerID)
	})

	t.Run("another customer is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(t, ctrl)

		apptSnap := builder.NewAppointmentBuilder().WithStatus("confirmed").BuildSnapshot()
		f.reads.EXPECT().AppointmentByID(gomock.Any(), apptSnap.ID).Return(apptSnap, nil)

		cmds := commands.NewModificationCommands(f.uow, f.locks, f.bus, f.clock)
		_, err := cmds.Propose(context.Background(), customerActor(uuid.New()), apptSnap.ID, "reason", nil)
		require.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("terminal appointments take no requests", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(t, ctrl)

		customerID := uuid.New()
		apptSnap := builder.NewAppointmentBuilder().WithCustomerID(customerID).WithStatus("cancelled").BuildSnapshot()
		f.reads.EXPECT().AppointmentByID(gomock.Any(), apptSnap.ID).Return(apptSnap, nil)

		cmds := commands.NewModificationCommands(f.uow, f.locks, f.bus, f.clock)
		_, err := cmds.Propose(context.Background(), customerActor(customerID), apptSnap.ID, "reason", nil)
		require.ErrorIs(t, err, commands.ErrInvalidTransition)
	})

	t.Run("one pending request per appointment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(t, ctrl)

		customerID := uuid.New()
		apptSnap := builder.NewAppointmentBuilder().WithCustomerID(customerID).WithStatus("confirmed").BuildSnapshot()
		pending := builder.NewModificationRequestBuilder().WithAppointmentID(apptSnap.ID).BuildSnapshot()

		f.reads.EXPECT().AppointmentByID(gomock.Any(), apptSnap.ID).Return(apptSnap, nil)
		f.reads.EXPECT().PendingRequestByAppointment(gomock.Any(), apptSnap.ID).Return(pending, nil)

		cmds := commands.NewModificationCommands(f.uow, f.locks, f.bus, f.clock)
		_, err := cmds.Propose(context.Background(), customerActor(customerID), apptSnap.ID, "reason", nil)
		require.ErrorIs(t, err, commands.ErrPendingRequestExists)
		f.requireNoEvent(t)
	})

	t.Run("concurrent proposals admit exactly one request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(t, ctrl)

		customerID := uuid.New()
		apptSnap := builder.NewAppointmentBuilder().WithCustomerID(customerID).WithStatus("confirmed").BuildSnapshot()

		// The pending-request state: nil until the first Create lands. The
		// per-appointment slot serializes the reads.
		var (
			mu      sync.Mutex
			pending *shared.ModificationSnapshot
		)
		f.reads.EXPECT().AppointmentByID(gomock.Any(), apptSnap.ID).Return(apptSnap, nil).AnyTimes()
		f.reads.EXPECT().PendingRequestByAppointment(gomock.Any(), apptSnap.ID).DoAndReturn(
			func(context.Context, uuid.UUID) (*shared.ModificationSnapshot, error) {
				mu.Lock()
				defer mu.Unlock()
				return pending, nil
			}).AnyTimes()
		f.modReqs.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, req *modreq.ModificationRequest) (uuid.UUID, error) {
				mu.Lock()
				defer mu.Unlock()
				pending = &shared.ModificationSnapshot{
					ID:            req.ID(),
					AppointmentID: req.AppointmentID(),
					CustomerID:    req.CustomerID(),
					Status:        req.Status(),
				}
				return req.ID(), nil
			}).AnyTimes()

		cmds := commands.NewModificationCommands(f.uow, f.locks, f.bus, f.clock)

		const attempts = 8
		var (
			wg        sync.WaitGroup
			successes int32
			conflicts int32
			cm        sync.Mutex
		)
		wg.Add(attempts)
		for i := 0; i < attempts; i++ {
			go func() {
				defer wg.Done()
				_, err := cmds.Propose(context.Background(), customerActor(customerID), apptSnap.ID, "need a later slot", nil)
				cm.Lock()
				defer cm.Unlock()
				switch {
				case err == nil:
					successes++
				case errors.Is(err, commands.ErrPendingRequestExists):
					conflicts++
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), successes)
		assert.Equal(t, int32(attempts-1), conflicts)
		requireEventCount(t, f.events, 1)
	})

	t.Run("empty reason fails validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(t, ctrl)

		customerID := uuid.New()
		apptSnap := builder.NewAppointmentBuilder().WithCustomerID(customerID).WithStatus("confirmed").BuildSnapshot()
		f.reads.EXPECT().AppointmentByID(gomock.Any(), apptSnap.ID).Return(apptSnap, nil)
		f.reads.EXPECT().PendingRequestByAppointment(gomock.Any(), apptSnap.ID).Return(nil, nil)

		cmds := commands.NewModificationCommands(f.uow, f.locks, f.bus, f.clock)
		_, err := cmds.Propose(context.Background(), customerActor(customerID), apptSnap.ID, "   ", nil)
		require.ErrorIs(t, err, commands.ErrModificationValidation)
	})
}

func TestDecideModification(t *testing.T) {
	t.Run("only admins decide", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(t, ctrl)

		cmds := commands.NewModificationCommands(f.uow, f.locks, f.bus, f.clock)
		err := cmds.Decide(context.Background(), customerActor(uuid.New()), commands.DecideModificationInput{RequestID: uuid.New(), Approve: true})
		require.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("approval with a proposed date reschedules", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(t, ctrl)

		proposed := testNow.Add(96 * time.Hour)
		appt := builder.NewAppointmentBuilder().WithStatus("confirmed").BuildReconstructed()
		req := builder.NewModificationRequestBuilder().
			WithAppointmentID(appt.ID()).
			WithProposedDate(proposed).
			BuildReconstructed()
		snap := builder.NewModificationRequestBuilder().WithAppointmentID(appt.ID()).BuildSnapshot()

		f.reads.EXPECT().ModificationByID(gomock.Any(), req.ID()).Return(snap, nil)
		f.modReqs.EXPECT().FindByID(gomock.Any(), gomock.Any(), req.ID()).Return(req, nil)
		f.appts.EXPECT().FindByID(gomock.Any(), gomock.Any(), appt.ID()).Return(appt, nil)
		f.appts.EXPECT().Update(gomock.Any(), gomock.Any(), appt).Return(nil)
		f.modReqs.EXPECT().Update(gomock.Any(), gomock.Any(), req).Return(nil)

		cmds := commands.NewModificationCommands(f.uow, f.locks, f.bus, f.clock)
		actor := adminActor()
		require.NoError(t, cmds.Decide(context.Background(), actor, commands.DecideModificationInput{RequestID: req.ID(), Approve: true}))

		assert.Equal(t, proposed, appt.ScheduledAt())
		require.NotNil(t, req.DecidedBy())
		assert.Equal(t, actor.ID, *req.DecidedBy())

		ev := f.lastEvent(t)
		assert.Equal(t, events.ModificationApproved, ev.Name)
		require.NotNil(t, ev.Audience.CustomerID)
		assert.True(t, ev.Audience.Admins)
	})

	t.Run("approval without a date leaves the schedule alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(t, ctrl)

		req := builder.NewModificationRequestBuilder().BuildReconstructed()
		snap := builder.NewModificationRequestBuilder().WithAppointmentID(req.AppointmentID()).BuildSnapshot()

		f.reads.EXPECT().ModificationByID(gomock.Any(), req.ID()).Return(snap, nil)
		f.modReqs.EXPECT().FindByID(gomock.Any(), gomock.Any(), req.ID()).Return(req, nil)
		f.modReqs.EXPECT().Update(gomock.Any(), gomock.Any(), req).Return(nil)

		cmds := commands.NewModificationCommands(f.uow, f.locks, f.bus, f.clock)
		require.NoError(t, cmds.Decide(context.Background(), adminActor(), commands.DecideModificationInput{RequestID: req.ID(), Approve: true}))
		f.lastEvent(t)
	})

	t.Run("rejection notifies only the customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(t, ctrl)

		customerID := uuid.New()
		req := builder.NewModificationRequestBuilder().WithCustomerID(customerID).BuildReconstructed()
		snap := builder.NewModificationRequestBuilder().WithAppointmentID(req.AppointmentID()).BuildSnapshot()

		f.reads.EXPECT().ModificationByID(gomock.Any(), req.ID()).Return(snap, nil)
		f.modReqs.EXPECT().FindByID(gomock.Any(), gomock.Any(), req.ID()).Return(req, nil)
		f.modReqs.EXPECT().Update(gomock.Any(), gomock.Any(), req).Return(nil)

		reason := "shop is fully booked that week"
		cmds := commands.NewModificationCommands(f.uow, f.locks, f.bus, f.clock)
		require.NoError(t, cmds.Decide(context.Background(), adminActor(), commands.DecideModificationInput{
			RequestID:      req.ID(),
			Approve:        false,
			DecisionReason: &reason,
		}))

		ev := f.lastEvent(t)
		assert.Equal(t, events.ModificationRejected, ev.Name)
		payload := ev.Payload.(events.ModificationRejectedPayload)
		assert.Equal(t, reason, payload.Reason)
		require.NotNil(t, ev.Audience.CustomerID)
		assert.Equal(t, customerID, *ev.Audience.CustomerID)
		assert.False(t, ev.Audience.Admins)
	})

	t.Run("an already decided request reads as gone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(t, ctrl)

		req := builder.NewModificationRequestBuilder().WithStatus("approved").BuildReconstructed()
		snap := builder.NewModificationRequestBuilder().WithAppointmentID(req.AppointmentID()).BuildSnapshot()

		f.reads.EXPECT().ModificationByID(gomock.Any(), req.ID()).Return(snap, nil)
		f.modReqs.EXPECT().FindByID(gomock.Any(), gomock.Any(), req.ID()).Return(req, nil)

		cmds := commands.NewModificationCommands(f.uow, f.locks, f.bus, f.clock)
		err := cmds.Decide(context.Background(), adminActor(), commands.DecideModificationInput{RequestID: req.ID(), Approve: false})
		require.ErrorIs(t, err, commands.ErrModificationNotFound)
		f.requireNoEvent(t)
	})

	t.Run("unknown request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(t, ctrl)

		requestID := uuid.New()
		f.reads.EXPECT().ModificationByID(gomock.Any(), requestID).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "modification request not found", nil))

		cmds := commands.NewModificationCommands(f.uow, f.locks, f.bus, f.clock)
		err := cmds.Decide(context.Background(), adminActor(), commands.DecideModificationInput{RequestID: requestID, Approve: true})
		require.ErrorIs(t, err, commands.ErrModificationNotFound)
	})
}
