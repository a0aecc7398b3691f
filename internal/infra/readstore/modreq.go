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

const modificationRequestViewColumns = `
	id, appointment_id, customer_id, reason, proposed_date,
	status, decision_reason, decided_by, created_at, decided_at`

type ModificationRequestReadStore struct {
	db db.DBTX
}

func NewModificationRequestReadStore(dbtx db.DBTX) *ModificationRequestReadStore {
	return &ModificationRequestReadStore{db: dbtx}
}

func (r *ModificationRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ModificationRequestView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+modificationRequestViewColumns+`
		FROM modification_requests
		WHERE id = $1
	`, id)

	view, err := scanModificationRequestView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "modification request not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find modification request by ID", err)
	}
	return view, nil
}

// PendingByAppointment returns the appointment's pending request, or
// NOT_FOUND when none is open. The partial unique index on (appointment_id)
// WHERE status = 'pending' guarantees at most one row.
func (r *ModificationRequestReadStore) PendingByAppointment(ctx context.Context, appointmentID uuid.UUID) (*queries.ModificationRequestView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+modificationRequestViewColumns+`
		FROM modification_requests
		WHERE appointment_id = $1 AND status = 'pending'
	`, appointmentID)

	view, err := scanModificationRequestView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "no pending modification request", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find pending modification request", err)
	}
	return view, nil
}

func (r *ModificationRequestReadStore) ListByAppointment(ctx context.Context, appointmentID uuid.UUID) ([]*queries.ModificationRequestView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+modificationRequestViewColumns+`
		FROM modification_requests
		WHERE appointment_id = $1
		ORDER BY created_at DESC, id DESC
	`, appointmentID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list modification requests", err)
	}

	defer rows.Close()
	result := make([]*queries.ModificationRequestView, 0)
	for rows.Next() {
		view, err := scanModificationRequestView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan modification request row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate modification request rows", err)
	}
	return result, nil
}

func scanModificationRequestView(row pgx.Row) (*queries.ModificationRequestView, error) {
	var (
		v                    queries.ModificationRequestView
		proposedDate         pgtype.Timestamptz
		decisionReason       pgtype.Text
		decidedBy            pgtype.UUID
		createdAt, decidedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID, &v.AppointmentID, &v.CustomerID, &v.Reason, &proposedDate,
		&v.Status, &decisionReason, &decidedBy, &createdAt, &decidedAt,
	)
	if err != nil {
		return nil, err
	}

	v.ProposedDate = pgconv.TimePtrFromPgtype(proposedDate)
	v.DecisionReason = pgconv.StringPtrFromPgtype(decisionReason)
	v.DecidedBy = pgconv.UUIDPtrFromPgtype(decidedBy)
	v.CreatedAt = createdAt.Time
	v.DecidedAt = pgconv.TimePtrFromPgtype(decidedAt)
	return &v, nil
}
