package readstore

import (
	"context"
	"errors"

	"autocare-api/internal/infra"
	"autocare-api/internal/infra/db"
	"autocare-api/internal/pkg/pgconv"
	"autocare-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const timeLogViewColumns = `
	id, employee_id, appointment_id, started_at, ended_at,
	description, status, created_at, updated_at`

type TimeLogReadStore struct {
	db db.DBTX
}

func NewTimeLogReadStore(dbtx db.DBTX) *TimeLogReadStore {
	return &TimeLogReadStore{db: dbtx}
}

func (r *TimeLogReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TimeLogView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+timeLogViewColumns+`
		FROM time_logs
		WHERE id = $1
	`, id)

	view, err := scanTimeLogView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "time log not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find time log by ID", err)
	}
	return view, nil
}

// ActiveByEmployee returns the employee's running log, or NOT_FOUND when the
// employee has no timer open. The partial unique index on (employee_id) WHERE
// status = 'active' guarantees at most one row.
func (r *TimeLogReadStore) ActiveByEmployee(ctx context.Context, employeeID uuid.UUID) (*queries.TimeLogView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+timeLogViewColumns+`
		FROM time_logs
		WHERE employee_id = $1 AND status = 'active'
	`, employeeID)

	view, err := scanTimeLogView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "no active time log", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find active time log", err)
	}
	return view, nil
}

func (r *TimeLogReadStore) HasActiveForAppointment(ctx context.Context, appointmentID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM time_logs
			WHERE appointment_id = $1 AND status = 'active'
		)
	`, appointmentID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to check active time logs", err)
	}
	return exists, nil
}

func (r *TimeLogReadStore) ListByAppointment(ctx context.Context, appointmentID uuid.UUID) ([]*queries.TimeLogView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+timeLogViewColumns+`
		FROM time_logs
		WHERE appointment_id = $1
		ORDER BY started_at ASC, id ASC
	`, appointmentID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list time logs by appointment", err)
	}
	return collectTimeLogViews(rows)
}

func (r *TimeLogReadStore) ListByEmployee(ctx context.Context, employeeID uuid.UUID, limit int32) ([]*queries.TimeLogView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+timeLogViewColumns+`
		FROM time_logs
		WHERE employee_id = $1
		ORDER BY started_at DESC, id DESC
		LIMIT $2
	`, employeeID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list time logs by employee", err)
	}
	return collectTimeLogViews(rows)
}

// TotalMinutesByAppointment sums completed log durations. Recomputed from the
// stored ranges so edits and deletions are always reflected.
func (r *TimeLogReadStore) TotalMinutesByAppointment(ctx context.Context, appointmentID uuid.UUID) (float64, error) {
	var minutes pgtype.Float8
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(EXTRACT(EPOCH FROM (ended_at - started_at)) / 60), 0)
		FROM time_logs
		WHERE appointment_id = $1 AND status = 'completed'
	`, appointmentID).Scan(&minutes)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to sum time log durations", err)
	}
	return minutes.Float64, nil
}

func scanTimeLogView(row pgx.Row) (*queries.TimeLogView, error) {
	var (
		v                    queries.TimeLogView
		startedAt, endedAt   pgtype.Timestamptz
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID, &v.EmployeeID, &v.AppointmentID, &startedAt, &endedAt,
		&v.Description, &v.Status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.StartedAt = startedAt.Time
	v.EndedAt = pgconv.TimePtrFromPgtype(endedAt)
	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time
	if v.EndedAt != nil && v.EndedAt.After(v.StartedAt) {
		v.DurationMinutes = v.EndedAt.Sub(v.StartedAt).Minutes()
	}
	return &v, nil
}

func collectTimeLogViews(rows pgx.Rows) ([]*queries.TimeLogView, error) {
	defer rows.Close()

	result := make([]*queries.TimeLogView, 0)
	for rows.Next() {
		view, err := scanTimeLogView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan time log row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate time log rows", err)
	}
	return result, nil
}
