package commands

import (
	"context"
	"errors"
	"time"

	"autocare-api/internal/domain/modreq"
	"autocare-api/internal/events"
	"autocare-api/internal/infra"
	"autocare-api/internal/pkg/clock"
	"autocare-api/internal/pkg/errs"
	"autocare-api/internal/pkg/lock"
	"autocare-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrModificationNotFound    = errs.New("modification request not found")
	ErrPendingRequestExists    = errs.New("appointment already has a pending modification request")
	ErrModificationValidation  = errs.New("modification request validation failed")
	ErrModificationWriteFailed = errs.New("modification request write failed")
)

type DecideModificationInput struct {
	RequestID      uuid.UUID
	Approve        bool
	DecisionReason *string
}

type ModificationCommands interface {
	Propose(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID, reason string, proposedDate *time.Time) (uuid.UUID, error)
	Decide(ctx context.Context, actor shared.Actor, in DecideModificationInput) error
}

type modificationCommandsImpl struct {
	uow   shared.UnitOfWork
	locks *lock.KeyedMutex
	bus   *events.Bus
	clock clock.Clock
}

func NewModificationCommands(uow shared.UnitOfWork, locks *lock.KeyedMutex, bus *events.Bus, clk clock.Clock) ModificationCommands {
	return &modificationCommandsImpl{
		uow:   uow,
		locks: locks,
		bus:   bus,
		clock: clk,
	}
}

// Propose opens a modification request. One pending request per appointment;
// serialized on the appointment slot so a concurrent double-propose admits
// one winner.
func (c *modificationCommandsImpl) Propose(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID, reason string, proposedDate *time.Time) (uuid.UUID, error) {
	release, err := c.locks.Acquire(ctx, keyAppointment(appointmentID.String()))
	if err != nil {
		return uuid.Nil, mapLockErr(err)
	}
	defer release()

	var (
		requestID uuid.UUID
		ev        events.Event
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, apptErr := tx.Reads().AppointmentByID(ctx, appointmentID)
		if apptErr != nil {
			if infra.IsKind(apptErr, infra.KindNotFound) {
				return ErrAppointmentNotFound
			}
			return errs.Mark(apptErr, ErrModificationWriteFailed)
		}

		if !actor.IsAdmin() && appt.CustomerID != actor.ID {
			return ErrForbidden
		}
		if appt.Status.IsTerminal() {
			return errs.Mark(errs.New("appointment is terminal"), ErrInvalidTransition)
		}

		pending, pendErr := tx.Reads().PendingRequestByAppointment(ctx, appointmentID)
		if pendErr != nil {
			return errs.Mark(pendErr, ErrModificationWriteFailed)
		}
		if pending != nil {
			return ErrPendingRequestExists
		}

		now := c.clock.Now()
		req, newErr := modreq.NewModificationRequest(appointmentID, appt.CustomerID, reason, proposedDate, now)
		if newErr != nil {
			return errs.Mark(newErr, ErrModificationValidation)
		}
		if _, createErr := tx.ModificationRequests().Create(ctx, tx.DB(), req); createErr != nil {
			return errs.Mark(createErr, ErrModificationWriteFailed)
		}
		requestID = req.ID()

		// Admins review requests; the customer already knows they asked.
		ev = events.Event{
			Name: events.ModificationRequestCreated,
			Payload: events.ModificationCreatedPayload{
				RequestID:     requestID,
				AppointmentID: appointmentID,
			},
			OccurredAt: now,
			Topics: []events.Topic{
				events.TopicAppointment(appointmentID),
				events.TopicAdmins,
			},
			Audience: events.Audience{Admins: true},
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.bus.Publish(ev)
	return requestID, nil
}

// Decide approves or rejects a pending request. Approval with a proposed date
// reschedules the appointment; the status is never touched.
func (c *modificationCommandsImpl) Decide(ctx context.Context, actor shared.Actor, in DecideModificationInput) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	snap, err := c.uow.CommandReads().ModificationByID(ctx, in.RequestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrModificationNotFound
		}
		return errs.Mark(err, ErrModificationWriteFailed)
	}

	release, err := c.locks.Acquire(ctx, keyAppointment(snap.AppointmentID.String()))
	if err != nil {
		return mapLockErr(err)
	}
	defer release()

	var ev events.Event
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, findErr := tx.ModificationRequests().FindByID(ctx, tx.DB(), in.RequestID)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return ErrModificationNotFound
			}
			return errs.Mark(findErr, ErrModificationWriteFailed)
		}

		now := c.clock.Now()
		var decideErr error
		if in.Approve {
			decideErr = req.Approve(actor.ID, in.DecisionReason, now)
		} else {
			decideErr = req.Reject(actor.ID, in.DecisionReason, now)
		}
		if decideErr != nil {
			// A decided request is no longer in the state the operation
			// presumes.
			if errors.Is(decideErr, modreq.ErrAlreadyDecided) {
				return ErrModificationNotFound
			}
			return errs.Mark(decideErr, ErrModificationWriteFailed)
		}

		if in.Approve && req.ProposedDate() != nil {
			appt, apptErr := tx.Appointments().FindByID(ctx, tx.DB(), req.AppointmentID())
			if apptErr != nil {
				if infra.IsKind(apptErr, infra.KindNotFound) {
					return ErrAppointmentNotFound
				}
				return errs.Mark(apptErr, ErrModificationWriteFailed)
			}
			if reschedErr := appt.Reschedule(*req.ProposedDate()); reschedErr != nil {
				return errs.Mark(reschedErr, ErrInvalidTransition)
			}
			appt.Touch(now)
			if updateErr := tx.Appointments().Update(ctx, tx.DB(), appt); updateErr != nil {
				return errs.Mark(updateErr, ErrModificationWriteFailed)
			}
		}

		if updateErr := tx.ModificationRequests().Update(ctx, tx.DB(), req); updateErr != nil {
			return errs.Mark(updateErr, ErrModificationWriteFailed)
		}

		customerID := req.CustomerID()
		if in.Approve {
			ev = events.Event{
				Name: events.ModificationApproved,
				Payload: events.ModificationApprovedPayload{
					RequestID:     req.ID(),
					AppointmentID: req.AppointmentID(),
				},
				OccurredAt: now,
				Topics: []events.Topic{
					events.TopicAppointment(req.AppointmentID()),
					events.TopicAdmins,
				},
				Audience: events.Audience{
					CustomerID: &customerID,
					Admins:     true,
				},
			}
		} else {
			var reason string
			if in.DecisionReason != nil {
				reason = *in.DecisionReason
			}
			ev = events.Event{
				Name: events.ModificationRejected,
				Payload: events.ModificationRejectedPayload{
					RequestID:     req.ID(),
					AppointmentID: req.AppointmentID(),
					Reason:        reason,
				},
				OccurredAt: now,
				Topics:     []events.Topic{events.TopicAppointment(req.AppointmentID())},
				Audience:   events.Audience{CustomerID: &customerID},
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.bus.Publish(ev)
	return nil
}
