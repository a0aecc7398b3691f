package commands

import (
	"context"
	"time"

	"autocare-api/internal/domain/appointment"
	"autocare-api/internal/events"
	"autocare-api/internal/infra"
	"autocare-api/internal/pkg/clock"
	"autocare-api/internal/pkg/errs"
	"autocare-api/internal/pkg/lock"
	"autocare-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound    = errs.New("appointment not found")
	ErrInvalidTransition      = errs.New("invalid status transition")
	ErrCancelWithActiveTimer  = errs.New("appointment has an active time log")
	ErrAppointmentValidation  = errs.New("appointment validation failed")
	ErrAppointmentWriteFailed = errs.New("appointment write failed")
)

type BookAppointmentInput struct {
	CustomerID         *uuid.UUID // admin booking on behalf; nil means the actor
	VehicleMake        string
	VehicleModel       string
	VehicleYear        int
	VehiclePlate       string
	ServiceType        appointment.ServiceType
	ScheduledAt        time.Time
	Priority           appointment.Priority
	Description        string
	EstimatedCostCents *int64
}

type AppointmentCommands interface {
	Book(ctx context.Context, actor shared.Actor, in BookAppointmentInput) (uuid.UUID, error)
	Assign(ctx context.Context, actor shared.Actor, appointmentID, employeeID uuid.UUID, override bool) error
	Transition(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID, target appointment.Status) error
	Cancel(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID) error
	SetActualCost(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID, cents int64) error
}

type appointmentCommandsImpl struct {
	uow   shared.UnitOfWork
	locks *lock.KeyedMutex
	bus   *events.Bus
	clock clock.Clock
}

func NewAppointmentCommands(uow shared.UnitOfWork, locks *lock.KeyedMutex, bus *events.Bus, clk clock.Clock) AppointmentCommands {
	return &appointmentCommandsImpl{
		uow:   uow,
		locks: locks,
		bus:   bus,
		clock: clk,
	}
}

func (c *appointmentCommandsImpl) Book(ctx context.Context, actor shared.Actor, in BookAppointmentInput) (uuid.UUID, error) {
	customerID := actor.ID
	if in.CustomerID != nil {
		if !actor.IsAdmin() {
			return uuid.Nil, ErrForbidden
		}
		customerID = *in.CustomerID
	} else if !actor.IsCustomer() && !actor.IsAdmin() {
		return uuid.Nil, ErrForbidden
	}

	vehicle, err := appointment.NewVehicleSnapshot(in.VehicleMake, in.VehicleModel, in.VehicleYear, in.VehiclePlate)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrAppointmentValidation)
	}
	desc, err := appointment.NewDescription(in.Description)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrAppointmentValidation)
	}
	var estimated *appointment.Money
	if in.EstimatedCostCents != nil {
		m, merr := appointment.NewMoney(*in.EstimatedCostCents)
		if merr != nil {
			return uuid.Nil, errs.Mark(merr, ErrAppointmentValidation)
		}
		estimated = &m
	}

	appt, err := appointment.NewAppointment(c.clock, customerID, vehicle, in.ServiceType, in.ScheduledAt, in.Priority, desc, estimated)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrAppointmentValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, createErr := tx.Appointments().Create(ctx, tx.DB(), appt)
		if createErr != nil {
			return errs.Mark(createErr, ErrAppointmentWriteFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return appt.ID(), nil
}

func (c *appointmentCommandsImpl) Assign(ctx context.Context, actor shared.Actor, appointmentID, employeeID uuid.UUID, override bool) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	release, err := c.locks.Acquire(ctx, keyAppointment(appointmentID.String()))
	if err != nil {
		return mapLockErr(err)
	}
	defer release()

	var ev events.Event
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, findErr := c.loadAppointment(ctx, tx, appointmentID)
		if findErr != nil {
			return findErr
		}

		if assignErr := appt.Assign(employeeID, override && actor.IsAdmin()); assignErr != nil {
			return errs.Mark(assignErr, ErrInvalidTransition)
		}
		appt.Touch(c.clock.Now())

		if updateErr := tx.Appointments().Update(ctx, tx.DB(), appt); updateErr != nil {
			return errs.Mark(updateErr, ErrAppointmentWriteFailed)
		}

		customerID := appt.CustomerID()
		ev = events.Event{
			Name: events.AppointmentAssigned,
			Payload: events.AssignedPayload{
				AppointmentID: appointmentID,
				EmployeeID:    employeeID,
			},
			OccurredAt: c.clock.Now(),
			Topics: []events.Topic{
				events.TopicAppointment(appointmentID),
				events.TopicEmployee(employeeID),
			},
			Audience: events.Audience{
				CustomerID: &customerID,
				EmployeeID: &employeeID,
				Admins:     true,
			},
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Published while the per-appointment slot is still held so delivery
	// order equals mutation order.
	c.bus.Publish(ev)
	return nil
}

func (c *appointmentCommandsImpl) Transition(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID, target appointment.Status) error {
	if !actor.IsEmployee() && !actor.IsAdmin() {
		return ErrForbidden
	}
	return c.applyTransition(ctx, actor, appointmentID, target)
}

// Cancel is transition-to-cancelled with the running-timer conflict check.
// The owning customer may cancel their own appointment.
func (c *appointmentCommandsImpl) Cancel(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID) error {
	return c.applyTransition(ctx, actor, appointmentID, appointment.StatusCancelled)
}

func (c *appointmentCommandsImpl) applyTransition(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID, target appointment.Status) error {
	release, err := c.locks.Acquire(ctx, keyAppointment(appointmentID.String()))
	if err != nil {
		return mapLockErr(err)
	}
	defer release()

	var ev events.Event
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, findErr := c.loadAppointment(ctx, tx, appointmentID)
		if findErr != nil {
			return findErr
		}

		if authErr := c.authorizeTransition(actor, appt, target); authErr != nil {
			return authErr
		}

		if target == appointment.StatusCancelled {
			hasActive, checkErr := tx.Reads().HasActiveTimeLogForAppointment(ctx, appointmentID)
			if checkErr != nil {
				return errs.Mark(checkErr, ErrAppointmentWriteFailed)
			}
			if hasActive {
				return ErrCancelWithActiveTimer
			}
		}

		old := appt.Status()
		if trErr := appt.TransitionTo(target); trErr != nil {
			return errs.Mark(trErr, ErrInvalidTransition)
		}
		appt.Touch(c.clock.Now())

		if updateErr := tx.Appointments().Update(ctx, tx.DB(), appt); updateErr != nil {
			return errs.Mark(updateErr, ErrAppointmentWriteFailed)
		}

		customerID := appt.CustomerID()
		ev = events.Event{
			Name: events.AppointmentStatusChanged,
			Payload: events.StatusChangedPayload{
				AppointmentID: appointmentID,
				OldStatus:     old.String(),
				NewStatus:     target.String(),
			},
			OccurredAt: c.clock.Now(),
			Topics:     []events.Topic{events.TopicAppointment(appointmentID)},
			Audience: events.Audience{
				CustomerID: &customerID,
				EmployeeID: appt.AssignedEmployee(),
				Admins:     true,
			},
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.bus.Publish(ev)
	return nil
}

func (c *appointmentCommandsImpl) authorizeTransition(actor shared.Actor, appt *appointment.Appointment, target appointment.Status) error {
	switch {
	case actor.IsAdmin():
		return nil
	case actor.IsEmployee():
		assigned := appt.AssignedEmployee()
		if assigned == nil || *assigned != actor.ID {
			return ErrForbidden
		}
		return nil
	case actor.IsCustomer():
		// Customers only reach here through Cancel.
		if target != appointment.StatusCancelled || appt.CustomerID() != actor.ID {
			return ErrForbidden
		}
		return nil
	default:
		return ErrForbidden
	}
}

func (c *appointmentCommandsImpl) SetActualCost(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID, cents int64) error {
	if !actor.IsEmployee() && !actor.IsAdmin() {
		return ErrForbidden
	}

	cost, err := appointment.NewMoney(cents)
	if err != nil {
		return errs.Mark(err, ErrAppointmentValidation)
	}

	release, err := c.locks.Acquire(ctx, keyAppointment(appointmentID.String()))
	if err != nil {
		return mapLockErr(err)
	}
	defer release()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, findErr := c.loadAppointment(ctx, tx, appointmentID)
		if findErr != nil {
			return findErr
		}

		if actor.IsEmployee() {
			assigned := appt.AssignedEmployee()
			if assigned == nil || *assigned != actor.ID {
				return ErrForbidden
			}
		}

		if costErr := appt.SetActualCost(cost); costErr != nil {
			return errs.Mark(costErr, ErrInvalidTransition)
		}
		appt.Touch(c.clock.Now())

		if updateErr := tx.Appointments().Update(ctx, tx.DB(), appt); updateErr != nil {
			return errs.Mark(updateErr, ErrAppointmentWriteFailed)
		}
		return nil
	})
}

func (c *appointmentCommandsImpl) loadAppointment(ctx context.Context, tx shared.Tx, id uuid.UUID) (*appointment.Appointment, error) {
	appt, err := tx.Appointments().FindByID(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, ErrAppointmentWriteFailed)
	}
	return appt, nil
}
