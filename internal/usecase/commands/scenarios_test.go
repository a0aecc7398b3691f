//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"autocare-api/internal/domain/appointment"
	"autocare-api/internal/domain/modreq"
	"autocare-api/internal/domain/timelog"
	"autocare-api/internal/events"
	"autocare-api/internal/usecase/commands"
	"autocare-api/internal/usecase/shared"
	"autocare-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// End-to-end walks through the command layer: each scenario chains several
// operations against shared mutable aggregates, the way a client session
// would, and checks the events observed along the way.

func TestScenarioLifecycleWalk(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl)
	cmds := commands.NewAppointmentCommands(f.uow, f.locks, f.bus, f.clock)

	customer := customerActor(uuid.New())
	employee := employeeActor(uuid.New())
	admin := adminActor()

	var appt *appointment.Appointment
	f.appts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, a *appointment.Appointment) (uuid.UUID, error) {
			appt = a
			return a.ID(), nil
		},
	)
	f.appts.EXPECT().FindByID(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, _ uuid.UUID) (*appointment.Appointment, error) {
			return appt, nil
		},
	).AnyTimes()
	f.appts.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	apptID, err := cmds.Book(context.Background(), customer, bookInput())
	require.NoError(t, err)
	require.Equal(t, appointment.StatusPending, appt.Status())

	require.NoError(t, cmds.Assign(context.Background(), admin, apptID, employee.ID, false))
	require.Equal(t, appointment.StatusPending, appt.Status())
	require.Equal(t, employee.ID, *appt.AssignedEmployee())

	require.NoError(t, cmds.Transition(context.Background(), employee, apptID, appointment.StatusConfirmed))

	// confirmed cannot skip straight to waiting_parts
	err = cmds.Transition(context.Background(), employee, apptID, appointment.StatusWaitingParts)
	require.ErrorIs(t, err, commands.ErrInvalidTransition)
	require.Equal(t, appointment.StatusConfirmed, appt.Status())

	require.NoError(t, cmds.Transition(context.Background(), employee, apptID, appointment.StatusInProgress))
	require.NoError(t, cmds.Transition(context.Background(), employee, apptID, appointment.StatusWaitingParts))

	// and the lifecycle never runs backwards
	err = cmds.Transition(context.Background(), employee, apptID, appointment.StatusConfirmed)
	require.ErrorIs(t, err, commands.ErrInvalidTransition)
	require.Equal(t, appointment.StatusWaitingParts, appt.Status())

	// observed history: assignment, then the exact path walked
	ev := f.lastEvent(t)
	assert.Equal(t, events.AppointmentAssigned, ev.Name)

	wantPath := [][2]string{
		{"pending", "confirmed"},
		{"confirmed", "in_progress"},
		{"in_progress", "waiting_parts"},
	}
	for _, want := range wantPath {
		ev = f.lastEvent(t)
		require.Equal(t, events.AppointmentStatusChanged, ev.Name)
		payload := ev.Payload.(events.StatusChangedPayload)
		assert.Equal(t, want[0], payload.OldStatus)
		assert.Equal(t, want[1], payload.NewStatus)
	}
	f.requireNoEvent(t)
}

func TestScenarioTimerHandoff(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl)
	cmds := commands.NewTimeLogCommands(f.uow, f.locks, f.bus, f.clock)

	employee := employeeActor(uuid.New())
	apptA := builder.NewAppointmentBuilder().WithStatus("in_progress").BuildSnapshot()
	apptB := builder.NewAppointmentBuilder().WithStatus("confirmed").BuildSnapshot()

	f.reads.EXPECT().AppointmentByID(gomock.Any(), apptA.ID).Return(apptA, nil).AnyTimes()
	f.reads.EXPECT().AppointmentByID(gomock.Any(), apptB.ID).Return(apptB, nil).AnyTimes()

	// single-slot ledger simulated on top of the mocks
	var current *timelog.TimeLog
	f.reads.EXPECT().ActiveTimeLogByEmployee(gomock.Any(), employee.ID).DoAndReturn(
		func(context.Context, uuid.UUID) (*shared.TimeLogSnapshot, error) {
			if current == nil || !current.IsActive() {
				return nil, nil
			}
			return &shared.TimeLogSnapshot{
				ID:            current.ID(),
				EmployeeID:    employee.ID,
				AppointmentID: current.AppointmentID(),
				StartedAt:     current.StartedAt(),
				Status:        current.Status(),
			}, nil
		},
	).AnyTimes()
	f.timeLogs.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, log *timelog.TimeLog) (uuid.UUID, error) {
			current = log
			return log.ID(), nil
		},
	).AnyTimes()
	f.timeLogs.EXPECT().FindByID(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, _ uuid.UUID) (*timelog.TimeLog, error) {
			return current, nil
		},
	).AnyTimes()
	f.timeLogs.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	firstLogID, err := cmds.Start(context.Background(), employee, employee.ID, apptA.ID, "diagnosis")
	require.NoError(t, err)
	assert.Equal(t, events.WorkTimerStarted, f.lastEvent(t).Name)

	// second start while the first runs: conflict names the blocking log
	_, err = cmds.Start(context.Background(), employee, employee.ID, apptB.ID, "next job")
	require.ErrorIs(t, err, commands.ErrActiveTimerExists)
	var activeErr *commands.ActiveTimerError
	require.ErrorAs(t, err, &activeErr)
	assert.Equal(t, firstLogID, activeErr.ExistingLogID)
	f.requireNoEvent(t)

	f.clock.Add(30 * time.Minute)
	stoppedID, err := cmds.Stop(context.Background(), employee, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, firstLogID, stoppedID)

	ev := f.lastEvent(t)
	require.Equal(t, events.WorkTimerStopped, ev.Name)
	assert.InDelta(t, 30.0, ev.Payload.(events.TimerStoppedPayload).DurationMinutes, 0.001)

	// the slot is free again
	secondLogID, err := cmds.Start(context.Background(), employee, employee.ID, apptB.ID, "next job")
	require.NoError(t, err)
	assert.NotEqual(t, firstLogID, secondLogID)
	assert.Equal(t, events.WorkTimerStarted, f.lastEvent(t).Name)
}

func TestScenarioModificationRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl)
	cmds := commands.NewModificationCommands(f.uow, f.locks, f.bus, f.clock)

	customer := customerActor(uuid.New())
	appt := builder.NewAppointmentBuilder().WithCustomerID(customer.ID).BuildReconstructed()
	snap := &shared.AppointmentSnapshot{
		ID:          appt.ID(),
		CustomerID:  customer.ID,
		Status:      appt.Status(),
		ScheduledAt: appt.ScheduledAt(),
	}
	f.reads.EXPECT().AppointmentByID(gomock.Any(), appt.ID()).Return(snap, nil).AnyTimes()

	var pending *modreq.ModificationRequest
	f.reads.EXPECT().PendingRequestByAppointment(gomock.Any(), appt.ID()).DoAndReturn(
		func(context.Context, uuid.UUID) (*shared.ModificationSnapshot, error) {
			if pending == nil || !pending.IsPending() {
				return nil, nil
			}
			return &shared.ModificationSnapshot{
				ID:            pending.ID(),
				AppointmentID: appt.ID(),
				CustomerID:    customer.ID,
				Status:        pending.Status(),
				ProposedDate:  pending.ProposedDate(),
			}, nil
		},
	).AnyTimes()
	f.modReqs.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, req *modreq.ModificationRequest) (uuid.UUID, error) {
			pending = req
			return req.ID(), nil
		},
	).AnyTimes()

	proposedDate := testNow.Add(96 * time.Hour)
	requestID, err := cmds.Propose(context.Background(), customer, appt.ID(), "family emergency", &proposedDate)
	require.NoError(t, err)
	assert.Equal(t, events.ModificationRequestCreated, f.lastEvent(t).Name)

	// one pending request per appointment
	_, err = cmds.Propose(context.Background(), customer, appt.ID(), "second thoughts", nil)
	require.ErrorIs(t, err, commands.ErrPendingRequestExists)
	f.requireNoEvent(t)

	// topic-scoped observers: the appointment's channel vs an unrelated one
	subAppt := f.bus.Subscribe(events.TopicAppointment(appt.ID()))
	subOther := f.bus.Subscribe(events.TopicAppointment(uuid.New()))

	f.reads.EXPECT().ModificationByID(gomock.Any(), requestID).DoAndReturn(
		func(context.Context, uuid.UUID) (*shared.ModificationSnapshot, error) {
			return &shared.ModificationSnapshot{
				ID:            pending.ID(),
				AppointmentID: appt.ID(),
				CustomerID:    customer.ID,
				Status:        pending.Status(),
				ProposedDate:  pending.ProposedDate(),
			}, nil
		},
	)
	f.modReqs.EXPECT().FindByID(gomock.Any(), gomock.Any(), requestID).Return(pending, nil)
	f.modReqs.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.appts.EXPECT().FindByID(gomock.Any(), gomock.Any(), appt.ID()).Return(appt, nil)
	f.appts.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	admin := adminActor()
	require.NoError(t, cmds.Decide(context.Background(), admin, commands.DecideModificationInput{
		RequestID: requestID,
		Approve:   true,
	}))

	assert.Equal(t, modreq.StatusApproved, pending.Status())
	assert.True(t, appt.ScheduledAt().Equal(proposedDate))

	// approval reaches this appointment's subscribers, nobody else's
	select {
	case ev := <-subAppt.C():
		require.Equal(t, events.ModificationApproved, ev.Name)
		require.NotNil(t, ev.Audience.CustomerID)
		assert.Equal(t, customer.ID, *ev.Audience.CustomerID)
	default:
		t.Fatal("expected the approval on the appointment topic")
	}
	select {
	case ev := <-subOther.C():
		t.Fatalf("unrelated topic received %s", ev.Name)
	default:
	}
}
