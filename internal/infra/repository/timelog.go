package repository

import (
	"context"
	"errors"

	"autocare-api/internal/domain/timelog"
	"autocare-api/internal/infra"
	"autocare-api/internal/infra/db"
	"autocare-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type TimeLogRepository struct{}

func NewTimeLogRepository() *TimeLogRepository {
	return &TimeLogRepository{}
}

func (r *TimeLogRepository) Create(ctx context.Context, dbtx db.DBTX, log *timelog.TimeLog) (uuid.UUID, error) {
	var id uuid.UUID
	row := dbtx.QueryRow(ctx, `
		INSERT INTO time_logs (
			id, employee_id, appointment_id, started_at, ended_at,
			description, status, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`,
		log.ID(), log.EmployeeID(), log.AppointmentID(),
		log.StartedAt(), pgconv.TimePtrToPgtype(log.EndedAt()),
		log.Description(), log.Status().String(),
		log.CreatedAt(), log.UpdatedAt(),
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, wrapWriteErr("failed to create time log", err)
	}
	return id, nil
}

func (r *TimeLogRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*timelog.TimeLog, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, employee_id, appointment_id, started_at, ended_at,
			description, status, created_at, updated_at
		FROM time_logs
		WHERE id = $1
	`, id)
	return scanTimeLog(row)
}

func (r *TimeLogRepository) Update(ctx context.Context, dbtx db.DBTX, log *timelog.TimeLog) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE time_logs
		SET started_at = $2,
			ended_at = $3,
			description = $4,
			status = $5,
			updated_at = $6
		WHERE id = $1
	`,
		log.ID(), log.StartedAt(), pgconv.TimePtrToPgtype(log.EndedAt()),
		log.Description(), log.Status().String(), log.UpdatedAt(),
	)
	if err != nil {
		return wrapWriteErr("failed to update time log", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "time log not found", nil)
	}
	return nil
}

func (r *TimeLogRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM time_logs WHERE id = $1`, id)
	if err != nil {
		return wrapWriteErr("failed to delete time log", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "time log not found", nil)
	}
	return nil
}

func scanTimeLog(row pgx.Row) (*timelog.TimeLog, error) {
	var (
		id, employeeID, appointmentID uuid.UUID
		startedAt                     pgtype.Timestamptz
		endedAt                       pgtype.Timestamptz
		description, status           string
		createdAt, updatedAt          pgtype.Timestamptz
	)
	err := row.Scan(
		&id, &employeeID, &appointmentID, &startedAt, &endedAt,
		&description, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "time log not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read time log", err)
	}

	return timelog.ReconstructTimeLog(
		id, employeeID, appointmentID,
		startedAt.Time,
		pgconv.TimePtrFromPgtype(endedAt),
		description,
		timelog.Status(status),
		createdAt.Time, updatedAt.Time,
	), nil
}
