package repository

import (
	"context"
	"errors"

	"autocare-api/internal/domain/appointment"
	"autocare-api/internal/infra"
	"autocare-api/internal/infra/db"
	"autocare-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentRepository struct{}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

func (r *AppointmentRepository) Create(ctx context.Context, dbtx db.DBTX, appt *appointment.Appointment) (uuid.UUID, error) {
	var estimated, actual *int64
	if c := appt.EstimatedCost(); c != nil {
		v := c.Cents()
		estimated = &v
	}
	if c := appt.ActualCost(); c != nil {
		v := c.Cents()
		actual = &v
	}

	var id uuid.UUID
	row := dbtx.QueryRow(ctx, `
		INSERT INTO appointments (
			id, customer_id, vehicle_make, vehicle_model, vehicle_year, vehicle_plate,
			service_type, scheduled_at, priority, description, status,
			assigned_employee_id, estimated_cost_cents, actual_cost_cents,
			notes, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,'{}',$15,$16)
		RETURNING id
	`,
		appt.ID(), appt.CustomerID(),
		appt.Vehicle().Make(), appt.Vehicle().Model(), appt.Vehicle().Year(), appt.Vehicle().Plate(),
		appt.ServiceType().String(), appt.ScheduledAt(), appt.Priority().String(),
		appt.Description().String(), appt.Status().String(),
		pgconv.UUIDPtrToPgtype(appt.AssignedEmployee()),
		pgconv.Int64PtrToPgtype(estimated), pgconv.Int64PtrToPgtype(actual),
		appt.CreatedAt(), appt.UpdatedAt(),
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, wrapWriteErr("failed to create appointment", err)
	}
	return id, nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*appointment.Appointment, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, customer_id, vehicle_make, vehicle_model, vehicle_year, vehicle_plate,
			service_type, scheduled_at, priority, description, status,
			assigned_employee_id, estimated_cost_cents, actual_cost_cents,
			created_at, updated_at
		FROM appointments
		WHERE id = $1
	`, id)
	return scanAppointment(row)
}

// Update persists the mutable columns. Identity, vehicle snapshot and the
// customer reference are write-once at booking.
func (r *AppointmentRepository) Update(ctx context.Context, dbtx db.DBTX, appt *appointment.Appointment) error {
	var actual *int64
	if c := appt.ActualCost(); c != nil {
		v := c.Cents()
		actual = &v
	}

	tag, err := dbtx.Exec(ctx, `
		UPDATE appointments
		SET status = $2,
			assigned_employee_id = $3,
			scheduled_at = $4,
			actual_cost_cents = $5,
			updated_at = $6
		WHERE id = $1
	`,
		appt.ID(), appt.Status().String(),
		pgconv.UUIDPtrToPgtype(appt.AssignedEmployee()),
		appt.ScheduledAt(), pgconv.Int64PtrToPgtype(actual), appt.UpdatedAt(),
	)
	if err != nil {
		return wrapWriteErr("failed to update appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "appointment not found", nil)
	}
	return nil
}

func (r *AppointmentRepository) AppendNote(ctx context.Context, dbtx db.DBTX, id uuid.UUID, note string) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE appointments
		SET notes = array_append(notes, $2)
		WHERE id = $1
	`, id, note)
	if err != nil {
		return wrapWriteErr("failed to append appointment note", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "appointment not found", nil)
	}
	return nil
}

func scanAppointment(row pgx.Row) (*appointment.Appointment, error) {
	var (
		id, customerID              uuid.UUID
		vehicleMake, vehicleModel   string
		vehicleYear                 int
		vehiclePlate                string
		serviceType, priority       string
		scheduledAt                 pgtype.Timestamptz
		description, status         string
		assignedEmployee            pgtype.UUID
		estimatedCents, actualCents pgtype.Int8
		createdAt, updatedAt        pgtype.Timestamptz
	)
	err := row.Scan(
		&id, &customerID, &vehicleMake, &vehicleModel, &vehicleYear, &vehiclePlate,
		&serviceType, &scheduledAt, &priority, &description, &status,
		&assignedEmployee, &estimatedCents, &actualCents,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "appointment not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read appointment", err)
	}

	desc, err := appointment.NewDescription(description)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "invalid stored description", err)
	}

	var estimated, actual *appointment.Money
	if v := pgconv.Int64PtrFromPgtype(estimatedCents); v != nil {
		m, merr := appointment.NewMoney(*v)
		if merr != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "invalid stored estimated cost", merr)
		}
		estimated = &m
	}
	if v := pgconv.Int64PtrFromPgtype(actualCents); v != nil {
		m, merr := appointment.NewMoney(*v)
		if merr != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "invalid stored actual cost", merr)
		}
		actual = &m
	}

	return appointment.ReconstructAppointment(
		id, customerID,
		appointment.ReconstructVehicleSnapshot(vehicleMake, vehicleModel, vehicleYear, vehiclePlate),
		appointment.ServiceType(serviceType),
		scheduledAt.Time,
		appointment.Priority(priority),
		desc,
		appointment.Status(status),
		pgconv.UUIDPtrFromPgtype(assignedEmployee),
		estimated, actual,
		createdAt.Time, updatedAt.Time,
	), nil
}

func wrapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return infra.WrapRepoErr(infra.KindDuplicateKey, msg, err)
		case "23503":
			return infra.WrapRepoErr(infra.KindForeignKeyViolated, msg, err)
		}
	}
	return infra.WrapRepoErr(infra.KindDBFailure, msg, err)
}
