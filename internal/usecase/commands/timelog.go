package commands

import (
	"context"
	"errors"
	"time"

	"autocare-api/internal/domain/timelog"
	"autocare-api/internal/events"
	"autocare-api/internal/infra"
	"autocare-api/internal/pkg/clock"
	"autocare-api/internal/pkg/errs"
	"autocare-api/internal/pkg/lock"
	"autocare-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrActiveTimerExists  = errs.New("employee already has an active time log")
	ErrNoActiveTimer      = errs.New("no active time log for employee")
	ErrTimeLogNotFound    = errs.New("time log not found")
	ErrTimeLogStillActive = errs.New("time log is still active; stop it first")
	ErrInvalidTimeRange   = errs.New("end time must be after start time")
	ErrTimeLogWriteFailed = errs.New("time log write failed")
)

// ActiveTimerError carries the id of the log blocking a second start so the
// client can reconcile (stop it or show it). errors.Is matches it against
// ErrActiveTimerExists.
type ActiveTimerError struct {
	ExistingLogID uuid.UUID
}

func (e *ActiveTimerError) Error() string {
	return "employee already has an active time log: " + e.ExistingLogID.String()
}

func (e *ActiveTimerError) Is(target error) bool {
	return errors.Is(target, ErrActiveTimerExists)
}

type ManualTimeLogInput struct {
	EmployeeID    uuid.UUID
	AppointmentID uuid.UUID
	Start         time.Time
	End           time.Time
	Description   string
}

type TimeLogCommands interface {
	Start(ctx context.Context, actor shared.Actor, employeeID, appointmentID uuid.UUID, description string) (uuid.UUID, error)
	Stop(ctx context.Context, actor shared.Actor, employeeID uuid.UUID) (uuid.UUID, error)
	CreateManual(ctx context.Context, actor shared.Actor, in ManualTimeLogInput) (uuid.UUID, error)
	Amend(ctx context.Context, actor shared.Actor, logID uuid.UUID, start, end time.Time, description string) error
	Delete(ctx context.Context, actor shared.Actor, logID uuid.UUID) error
}

type timeLogCommandsImpl struct {
	uow   shared.UnitOfWork
	locks *lock.KeyedMutex
	bus   *events.Bus
	clock clock.Clock
}

func NewTimeLogCommands(uow shared.UnitOfWork, locks *lock.KeyedMutex, bus *events.Bus, clk clock.Clock) TimeLogCommands {
	return &timeLogCommandsImpl{
		uow:   uow,
		locks: locks,
		bus:   bus,
		clock: clk,
	}
}

// Start opens the employee's timer. Serialized on the employee slot so N
// concurrent starts admit exactly one winner, and on the appointment slot so
// the terminal-status check cannot interleave with a concurrent cancel.
// Slot order is appointment before employee everywhere both are held.
func (c *timeLogCommandsImpl) Start(ctx context.Context, actor shared.Actor, employeeID, appointmentID uuid.UUID, description string) (uuid.UUID, error) {
	if err := authorizeEmployeeAction(actor, employeeID); err != nil {
		return uuid.Nil, err
	}

	releaseAppt, err := c.locks.Acquire(ctx, keyAppointment(appointmentID.String()))
	if err != nil {
		return uuid.Nil, mapLockErr(err)
	}
	defer releaseAppt()

	release, err := c.locks.Acquire(ctx, keyEmployee(employeeID.String()))
	if err != nil {
		return uuid.Nil, mapLockErr(err)
	}
	defer release()

	var (
		logID uuid.UUID
		ev    events.Event
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		active, readErr := tx.Reads().ActiveTimeLogByEmployee(ctx, employeeID)
		if readErr != nil {
			return errs.Mark(readErr, ErrTimeLogWriteFailed)
		}
		if active != nil {
			return &ActiveTimerError{ExistingLogID: active.ID}
		}

		appt, apptErr := tx.Reads().AppointmentByID(ctx, appointmentID)
		if apptErr != nil {
			if infra.IsKind(apptErr, infra.KindNotFound) {
				return ErrAppointmentNotFound
			}
			return errs.Mark(apptErr, ErrTimeLogWriteFailed)
		}
		if appt.Status.IsTerminal() {
			return errs.Mark(errs.New("appointment is terminal"), ErrInvalidTransition)
		}

		now := c.clock.Now()
		log := timelog.StartTimeLog(employeeID, appointmentID, now, description)
		if _, createErr := tx.TimeLogs().Create(ctx, tx.DB(), log); createErr != nil {
			return errs.Mark(createErr, ErrTimeLogWriteFailed)
		}
		logID = log.ID()

		ev = events.Event{
			Name: events.WorkTimerStarted,
			Payload: events.TimerStartedPayload{
				EmployeeID:    employeeID,
				AppointmentID: appointmentID,
				StartTime:     now,
			},
			OccurredAt: now,
			Topics: []events.Topic{
				events.TopicAppointment(appointmentID),
				events.TopicEmployee(employeeID),
			},
			Audience: events.Audience{
				CustomerID: &appt.CustomerID,
				EmployeeID: &employeeID,
				Admins:     true,
			},
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.bus.Publish(ev)
	return logID, nil
}

// Stop closes the employee's running timer. Stopping with no timer open is
// always NotFound and never a side effect.
func (c *timeLogCommandsImpl) Stop(ctx context.Context, actor shared.Actor, employeeID uuid.UUID) (uuid.UUID, error) {
	if err := authorizeEmployeeAction(actor, employeeID); err != nil {
		return uuid.Nil, err
	}

	release, err := c.locks.Acquire(ctx, keyEmployee(employeeID.String()))
	if err != nil {
		return uuid.Nil, mapLockErr(err)
	}
	defer release()

	var (
		logID uuid.UUID
		ev    events.Event
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		active, readErr := tx.Reads().ActiveTimeLogByEmployee(ctx, employeeID)
		if readErr != nil {
			return errs.Mark(readErr, ErrTimeLogWriteFailed)
		}
		if active == nil {
			return ErrNoActiveTimer
		}

		log, findErr := tx.TimeLogs().FindByID(ctx, tx.DB(), active.ID)
		if findErr != nil {
			return errs.Mark(findErr, ErrTimeLogWriteFailed)
		}

		now := c.clock.Now()
		if stopErr := log.Stop(now); stopErr != nil {
			return errs.Mark(stopErr, ErrNoActiveTimer)
		}
		if updateErr := tx.TimeLogs().Update(ctx, tx.DB(), log); updateErr != nil {
			return errs.Mark(updateErr, ErrTimeLogWriteFailed)
		}
		logID = log.ID()

		appt, apptErr := tx.Reads().AppointmentByID(ctx, log.AppointmentID())
		if apptErr != nil {
			return errs.Mark(apptErr, ErrTimeLogWriteFailed)
		}

		ev = events.Event{
			Name: events.WorkTimerStopped,
			Payload: events.TimerStoppedPayload{
				EmployeeID:      employeeID,
				AppointmentID:   log.AppointmentID(),
				DurationMinutes: log.Duration().Minutes(),
			},
			OccurredAt: now,
			Topics: []events.Topic{
				events.TopicAppointment(log.AppointmentID()),
				events.TopicEmployee(employeeID),
			},
			Audience: events.Audience{
				CustomerID: &appt.CustomerID,
				EmployeeID: &employeeID,
				Admins:     true,
			},
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.bus.Publish(ev)
	return logID, nil
}

// CreateManual persists a completed, back-dated entry. It never consults the
// active-timer flag, but holds the appointment slot so its terminal-status
// check is ordered against cancels, and the employee slot to order against
// concurrent start/stop.
func (c *timeLogCommandsImpl) CreateManual(ctx context.Context, actor shared.Actor, in ManualTimeLogInput) (uuid.UUID, error) {
	if err := authorizeEmployeeAction(actor, in.EmployeeID); err != nil {
		return uuid.Nil, err
	}

	releaseAppt, err := c.locks.Acquire(ctx, keyAppointment(in.AppointmentID.String()))
	if err != nil {
		return uuid.Nil, mapLockErr(err)
	}
	defer releaseAppt()

	release, err := c.locks.Acquire(ctx, keyEmployee(in.EmployeeID.String()))
	if err != nil {
		return uuid.Nil, mapLockErr(err)
	}
	defer release()

	var logID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, apptErr := tx.Reads().AppointmentByID(ctx, in.AppointmentID)
		if apptErr != nil {
			if infra.IsKind(apptErr, infra.KindNotFound) {
				return ErrAppointmentNotFound
			}
			return errs.Mark(apptErr, ErrTimeLogWriteFailed)
		}
		if appt.Status.IsTerminal() {
			return errs.Mark(errs.New("appointment is terminal"), ErrInvalidTransition)
		}

		log, newErr := timelog.NewManualTimeLog(in.EmployeeID, in.AppointmentID, in.Start, in.End, in.Description, c.clock.Now())
		if newErr != nil {
			return errs.Mark(newErr, ErrInvalidTimeRange)
		}
		if _, createErr := tx.TimeLogs().Create(ctx, tx.DB(), log); createErr != nil {
			return errs.Mark(createErr, ErrTimeLogWriteFailed)
		}
		logID = log.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return logID, nil
}

func (c *timeLogCommandsImpl) Amend(ctx context.Context, actor shared.Actor, logID uuid.UUID, start, end time.Time, description string) error {
	snap, err := c.lookupLog(ctx, actor, logID)
	if err != nil {
		return err
	}

	release, err := c.locks.Acquire(ctx, keyEmployee(snap.EmployeeID.String()))
	if err != nil {
		return mapLockErr(err)
	}
	defer release()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		log, findErr := tx.TimeLogs().FindByID(ctx, tx.DB(), logID)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return ErrTimeLogNotFound
			}
			return errs.Mark(findErr, ErrTimeLogWriteFailed)
		}

		if amendErr := log.Amend(start, end, description, c.clock.Now()); amendErr != nil {
			if errors.Is(amendErr, timelog.ErrStillActive) {
				return ErrTimeLogStillActive
			}
			return errs.Mark(amendErr, ErrInvalidTimeRange)
		}
		if updateErr := tx.TimeLogs().Update(ctx, tx.DB(), log); updateErr != nil {
			return errs.Mark(updateErr, ErrTimeLogWriteFailed)
		}
		return nil
	})
}

func (c *timeLogCommandsImpl) Delete(ctx context.Context, actor shared.Actor, logID uuid.UUID) error {
	snap, err := c.lookupLog(ctx, actor, logID)
	if err != nil {
		return err
	}

	release, err := c.locks.Acquire(ctx, keyEmployee(snap.EmployeeID.String()))
	if err != nil {
		return mapLockErr(err)
	}
	defer release()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		log, findErr := tx.TimeLogs().FindByID(ctx, tx.DB(), logID)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return ErrTimeLogNotFound
			}
			return errs.Mark(findErr, ErrTimeLogWriteFailed)
		}
		if log.IsActive() {
			return ErrTimeLogStillActive
		}

		if delErr := tx.TimeLogs().Delete(ctx, tx.DB(), logID); delErr != nil {
			return errs.Mark(delErr, ErrTimeLogWriteFailed)
		}
		return nil
	})
}

// lookupLog resolves the log's employee before the slot is taken and enforces
// ownership. The fresh state is re-read inside the transaction.
func (c *timeLogCommandsImpl) lookupLog(ctx context.Context, actor shared.Actor, logID uuid.UUID) (*shared.TimeLogSnapshot, error) {
	snap, err := c.uow.CommandReads().TimeLogByID(ctx, logID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTimeLogNotFound
		}
		return nil, errs.Mark(err, ErrTimeLogWriteFailed)
	}
	if err := authorizeEmployeeAction(actor, snap.EmployeeID); err != nil {
		return nil, err
	}
	return snap, nil
}

// Employees act on their own ledger; admins may act on anyone's.
func authorizeEmployeeAction(actor shared.Actor, employeeID uuid.UUID) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.IsEmployee() && actor.ID == employeeID {
		return nil
	}
	return ErrForbidden
}
