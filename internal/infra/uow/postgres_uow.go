package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"autocare-api/internal/domain/appointment"
	"autocare-api/internal/domain/modreq"
	"autocare-api/internal/domain/timelog"
	"autocare-api/internal/infra"
	"autocare-api/internal/infra/db"
	"autocare-api/internal/infra/readstore"
	"autocare-api/internal/infra/repository"
	"autocare-api/internal/pkg/errs"
	"autocare-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	appointmentRepo shared.AppointmentRepository
	timeLogRepo     shared.TimeLogRepository
	modReqRepo      shared.ModificationRequestRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Appointments() shared.AppointmentRepository {
	if t.appointmentRepo == nil {
		t.appointmentRepo = repository.NewAppointmentRepository()
	}
	return t.appointmentRepo
}

func (t *pgTx) TimeLogs() shared.TimeLogRepository {
	if t.timeLogRepo == nil {
		t.timeLogRepo = repository.NewTimeLogRepository()
	}
	return t.timeLogRepo
}

func (t *pgTx) ModificationRequests() shared.ModificationRequestRepository {
	if t.modReqRepo == nil {
		t.modReqRepo = repository.NewModificationRequestRepository()
	}
	return t.modReqRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	appointmentStore *readstore.AppointmentReadStore
	timeLogStore     *readstore.TimeLogReadStore
	modReqStore      *readstore.ModificationRequestReadStore
}

func (r *commandReads) appointments() *readstore.AppointmentReadStore {
	if r.appointmentStore == nil {
		r.appointmentStore = readstore.NewAppointmentReadStore(r.dbtx)
	}
	return r.appointmentStore
}

func (r *commandReads) timeLogs() *readstore.TimeLogReadStore {
	if r.timeLogStore == nil {
		r.timeLogStore = readstore.NewTimeLogReadStore(r.dbtx)
	}
	return r.timeLogStore
}

func (r *commandReads) modRequests() *readstore.ModificationRequestReadStore {
	if r.modReqStore == nil {
		r.modReqStore = readstore.NewModificationRequestReadStore(r.dbtx)
	}
	return r.modReqStore
}

func (r *commandReads) AppointmentByID(ctx context.Context, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	view, err := r.appointments().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.AppointmentSnapshot{
		ID:                 view.ID,
		CustomerID:         view.CustomerID,
		Status:             appointment.Status(view.Status),
		AssignedEmployeeID: view.AssignedEmployeeID,
		ScheduledAt:        view.ScheduledAt,
	}, nil
}

func (r *commandReads) ActiveTimeLogByEmployee(ctx context.Context, employeeID uuid.UUID) (*shared.TimeLogSnapshot, error) {
	view, err := r.timeLogs().ActiveByEmployee(ctx, employeeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &shared.TimeLogSnapshot{
		ID:            view.ID,
		EmployeeID:    view.EmployeeID,
		AppointmentID: view.AppointmentID,
		StartedAt:     view.StartedAt,
		EndedAt:       view.EndedAt,
		Status:        timelog.Status(view.Status),
	}, nil
}

func (r *commandReads) HasActiveTimeLogForAppointment(ctx context.Context, appointmentID uuid.UUID) (bool, error) {
	return r.timeLogs().HasActiveForAppointment(ctx, appointmentID)
}

func (r *commandReads) TimeLogByID(ctx context.Context, id uuid.UUID) (*shared.TimeLogSnapshot, error) {
	view, err := r.timeLogs().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.TimeLogSnapshot{
		ID:            view.ID,
		EmployeeID:    view.EmployeeID,
		AppointmentID: view.AppointmentID,
		StartedAt:     view.StartedAt,
		EndedAt:       view.EndedAt,
		Status:        timelog.Status(view.Status),
	}, nil
}

func (r *commandReads) ModificationByID(ctx context.Context, id uuid.UUID) (*shared.ModificationSnapshot, error) {
	view, err := r.modRequests().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.ModificationSnapshot{
		ID:            view.ID,
		AppointmentID: view.AppointmentID,
		CustomerID:    view.CustomerID,
		Status:        modreq.Status(view.Status),
		ProposedDate:  view.ProposedDate,
	}, nil
}

func (r *commandReads) PendingRequestByAppointment(ctx context.Context, appointmentID uuid.UUID) (*shared.ModificationSnapshot, error) {
	view, err := r.modRequests().PendingByAppointment(ctx, appointmentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &shared.ModificationSnapshot{
		ID:            view.ID,
		AppointmentID: view.AppointmentID,
		CustomerID:    view.CustomerID,
		Status:        modreq.Status(view.Status),
		ProposedDate:  view.ProposedDate,
	}, nil
}
