package repository

import (
	"context"
	"errors"

	"autocare-api/internal/domain/modreq"
	"autocare-api/internal/infra"
	"autocare-api/internal/infra/db"
	"autocare-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ModificationRequestRepository struct{}

func NewModificationRequestRepository() *ModificationRequestRepository {
	return &ModificationRequestRepository{}
}

func (r *ModificationRequestRepository) Create(ctx context.Context, dbtx db.DBTX, req *modreq.ModificationRequest) (uuid.UUID, error) {
	var id uuid.UUID
	row := dbtx.QueryRow(ctx, `
		INSERT INTO modification_requests (
			id, appointment_id, customer_id, reason, proposed_date,
			status, decision_reason, decided_by, created_at, decided_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id
	`,
		req.ID(), req.AppointmentID(), req.CustomerID(), req.Reason(),
		pgconv.TimePtrToPgtype(req.ProposedDate()), req.Status().String(),
		pgconv.StringPtrToPgtype(req.DecisionReason()),
		pgconv.UUIDPtrToPgtype(req.DecidedBy()),
		req.CreatedAt(), pgconv.TimePtrToPgtype(req.DecidedAt()),
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, wrapWriteErr("failed to create modification request", err)
	}
	return id, nil
}

func (r *ModificationRequestRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*modreq.ModificationRequest, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, appointment_id, customer_id, reason, proposed_date,
			status, decision_reason, decided_by, created_at, decided_at
		FROM modification_requests
		WHERE id = $1
	`, id)
	return scanModificationRequest(row)
}

func (r *ModificationRequestRepository) Update(ctx context.Context, dbtx db.DBTX, req *modreq.ModificationRequest) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE modification_requests
		SET status = $2,
			decision_reason = $3,
			decided_by = $4,
			decided_at = $5
		WHERE id = $1
	`,
		req.ID(), req.Status().String(),
		pgconv.StringPtrToPgtype(req.DecisionReason()),
		pgconv.UUIDPtrToPgtype(req.DecidedBy()),
		pgconv.TimePtrToPgtype(req.DecidedAt()),
	)
	if err != nil {
		return wrapWriteErr("failed to update modification request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "modification request not found", nil)
	}
	return nil
}

func scanModificationRequest(row pgx.Row) (*modreq.ModificationRequest, error) {
	var (
		id, appointmentID, customerID uuid.UUID
		reason                        string
		proposedDate                  pgtype.Timestamptz
		status                        string
		decisionReason                pgtype.Text
		decidedBy                     pgtype.UUID
		createdAt, decidedAt          pgtype.Timestamptz
	)
	err := row.Scan(
		&id, &appointmentID, &customerID, &reason, &proposedDate,
		&status, &decisionReason, &decidedBy, &createdAt, &decidedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "modification request not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read modification request", err)
	}

	return modreq.ReconstructModificationRequest(
		id, appointmentID, customerID, reason,
		pgconv.TimePtrFromPgtype(proposedDate),
		modreq.Status(status),
		pgconv.StringPtrFromPgtype(decisionReason),
		pgconv.UUIDPtrFromPgtype(decidedBy),
		createdAt.Time,
		pgconv.TimePtrFromPgtype(decidedAt),
	), nil
}
