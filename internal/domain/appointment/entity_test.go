//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"autocare-api/internal/domain/appointment"
	"autocare-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppointment(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewAppointmentBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, appointment.StatusPending, actual.Status())
		assert.Nil(t, actual.AssignedEmployee())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("booking validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.AppointmentBuilder)
			errIs  error
		}{
			{
				name:   "unknown service type",
				mutate: func(b *builder.AppointmentBuilder) { b.WithServiceType("detailing") },
				errIs:  appointment.ErrInvalidServiceType,
			},
			{
				name:   "unknown priority",
				mutate: func(b *builder.AppointmentBuilder) { b.WithPriority("asap") },
				errIs:  appointment.ErrInvalidPriority,
			},
			{
				name: "scheduled in the past",
				mutate: func(b *builder.AppointmentBuilder) {
					b.WithScheduledAt(b.Now.Add(-time.Hour))
				},
				errIs: appointment.ErrScheduledInPast,
			},
			{
				name:   "all service types accepted",
				mutate: func(b *builder.AppointmentBuilder) { b.WithServiceType("bodywork") },
			},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := builder.NewAppointmentBuilder().With(c.mutate).BuildDomain()
				if c.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, actual)
				} else {
					require.Nil(t, actual)
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})
}

func TestTransitionTable(t *testing.T) {
	all := []appointment.Status{
		appointment.StatusPending,
		appointment.StatusConfirmed,
		appointment.StatusInProgress,
		appointment.StatusWaitingParts,
		appointment.StatusCompleted,
		appointment.StatusCancelled,
	}

	legal := map[appointment.Status][]appointment.Status{
		appointment.StatusPending:      {appointment.StatusConfirmed, appointment.StatusCancelled},
		appointment.StatusConfirmed:    {appointment.StatusInProgress, appointment.StatusCancelled},
		appointment.StatusInProgress:   {appointment.StatusWaitingParts, appointment.StatusCancelled},
		appointment.StatusWaitingParts: {appointment.StatusInProgress, appointment.StatusCompleted},
		appointment.StatusCompleted:    {},
		appointment.StatusCancelled:    {},
	}

	isLegal := func(from, to appointment.Status) bool {
		for _, s := range legal[from] {
			if s == to {
				return true
			}
		}
		return false
	}

	// Exhaustive sweep over every (from, to) pair, including self edges.
	for _, from := range all {
		for _, to := range all {
			from, to := from, to
			t.Run(from.String()+"_to_"+to.String(), func(t *testing.T) {
				appt := builder.NewAppointmentBuilder().WithStatus(from.String()).BuildReconstructed()
				err := appt.TransitionTo(to)
				if isLegal(from, to) {
					require.NoError(t, err)
					assert.Equal(t, to, appt.Status())
				} else {
					require.ErrorIs(t, err, appointment.ErrIllegalTransition)
					assert.Equal(t, from, appt.Status())
				}
			})
		}
	}

	t.Run("direct in_progress to completed is not legal", func(t *testing.T) {
		appt := builder.NewAppointmentBuilder().WithStatus("in_progress").BuildReconstructed()
		require.ErrorIs(t, appt.TransitionTo(appointment.StatusCompleted), appointment.ErrIllegalTransition)
	})

	t.Run("unknown target status", func(t *testing.T) {
		appt := builder.NewAppointmentBuilder().BuildReconstructed()
		require.ErrorIs(t, appt.TransitionTo(appointment.Status("parked")), appointment.ErrInvalidStatus)
	})
}

func TestAssign(t *testing.T) {
	employee := uuid.New()
	other := uuid.New()

	t.Run("assigns in pending without moving status", func(t *testing.T) {
		appt := builder.NewAppointmentBuilder().BuildReconstructed()
		require.NoError(t, appt.Assign(employee, false))
		assert.Equal(t, appointment.StatusPending, appt.Status())
		require.NotNil(t, appt.AssignedEmployee())
		assert.Equal(t, employee, *appt.AssignedEmployee())
	})

	t.Run("re-assigning the same employee needs no override", func(t *testing.T) {
		appt := builder.NewAppointmentBuilder().WithAssignedEmployee(employee).BuildReconstructed()
		require.NoError(t, appt.Assign(employee, false))
	})

	t.Run("replacing a different employee requires override", func(t *testing.T) {
		appt := builder.NewAppointmentBuilder().WithAssignedEmployee(other).BuildReconstructed()
		require.ErrorIs(t, appt.Assign(employee, false), appointment.ErrReassignNeedsOverride)
		require.NoError(t, appt.Assign(employee, true))
		assert.Equal(t, employee, *appt.AssignedEmployee())
	})

	t.Run("not assignable once in progress", func(t *testing.T) {
		appt := builder.NewAppointmentBuilder().WithStatus("in_progress").BuildReconstructed()
		require.ErrorIs(t, appt.Assign(employee, true), appointment.ErrNotAssignable)
	})

	t.Run("terminal statuses reject assignment", func(t *testing.T) {
		for _, status := range []string{"completed", "cancelled"} {
			appt := builder.NewAppointmentBuilder().WithStatus(status).BuildReconstructed()
			require.ErrorIs(t, appt.Assign(employee, true), appointment.ErrTerminalStatus)
		}
	})
}

func TestTerminalMutations(t *testing.T) {
	cost, err := appointment.NewMoney(15000)
	require.NoError(t, err)

	t.Run("reschedule rejected when terminal", func(t *testing.T) {
		appt := builder.NewAppointmentBuilder().WithStatus("completed").BuildReconstructed()
		require.ErrorIs(t, appt.Reschedule(time.Now().Add(time.Hour)), appointment.ErrTerminalStatus)
	})

	t.Run("actual cost rejected when terminal", func(t *testing.T) {
		appt := builder.NewAppointmentBuilder().WithStatus("cancelled").BuildReconstructed()
		require.ErrorIs(t, appt.SetActualCost(cost), appointment.ErrTerminalStatus)
	})

	t.Run("actual cost accepted while live", func(t *testing.T) {
		appt := builder.NewAppointmentBuilder().WithStatus("in_progress").BuildReconstructed()
		require.NoError(t, appt.SetActualCost(cost))
		require.NotNil(t, appt.ActualCost())
		assert.Equal(t, int64(15000), appt.ActualCost().Cents())
	})

	t.Run("notes append even in terminal states", func(t *testing.T) {
		appt := builder.NewAppointmentBuilder().WithStatus("completed").BuildReconstructed()
		appt.AppendNote("customer picked up vehicle")
		appt.AppendNote("")
		assert.Equal(t, []string{"customer picked up vehicle"}, appt.Notes())
	})
}

func TestVehicleSnapshot(t *testing.T) {
	t.Run("valid snapshot", func(t *testing.T) {
		v, err := appointment.NewVehicleSnapshot(" Honda ", "Civic", 2020, " XYZ-999 ")
		require.NoError(t, err)
		assert.Equal(t, "Honda", v.Make())
		assert.Equal(t, "XYZ-999", v.Plate())
	})

	t.Run("missing make", func(t *testing.T) {
		_, err := appointment.NewVehicleSnapshot("", "Civic", 2020, "XYZ-999")
		require.Error(t, err)
	})

	t.Run("year out of range", func(t *testing.T) {
		_, err := appointment.NewVehicleSnapshot("Honda", "Civic", 1899, "XYZ-999")
		require.Error(t, err)
	})
}

func TestMoney(t *testing.T) {
	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := appointment.NewMoney(-1)
		require.Error(t, err)
	})

	t.Run("zero is valid", func(t *testing.T) {
		m, err := appointment.NewMoney(0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), m.Cents())
	})
}
