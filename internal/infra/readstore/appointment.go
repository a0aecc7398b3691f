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

const appointmentViewColumns = `
	id, customer_id, vehicle_make, vehicle_model, vehicle_year, vehicle_plate,
	service_type, scheduled_at, priority, description, status,
	assigned_employee_id, estimated_cost_cents, actual_cost_cents,
	notes, created_at, updated_at`

const appointmentListColumns = `
	id, customer_id, vehicle_plate, service_type, scheduled_at,
	priority, status, assigned_employee_id, created_at`

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(dbtx db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: dbtx}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+appointmentViewColumns+`
		FROM appointments
		WHERE id = $1
	`, id)

	view, err := scanAppointmentView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "appointment not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find appointment by ID", err)
	}
	return view, nil
}

func (r *AppointmentReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int32) ([]*queries.AppointmentListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+appointmentListColumns+`
		FROM appointments
		WHERE customer_id = $1
		ORDER BY scheduled_at DESC, id DESC
		LIMIT $2
	`, customerID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list appointments by customer", err)
	}
	return collectAppointmentListItems(rows)
}

func (r *AppointmentReadStore) ListByEmployee(ctx context.Context, employeeID uuid.UUID, limit int32) ([]*queries.AppointmentListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+appointmentListColumns+`
		FROM appointments
		WHERE assigned_employee_id = $1
		ORDER BY scheduled_at DESC, id DESC
		LIMIT $2
	`, employeeID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list appointments by employee", err)
	}
	return collectAppointmentListItems(rows)
}

// ListAll supports the back-office listing. An empty status means no filter.
func (r *AppointmentReadStore) ListAll(ctx context.Context, status string, limit int32) ([]*queries.AppointmentListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+appointmentListColumns+`
		FROM appointments
		WHERE ($1 = '' OR status = $1)
		ORDER BY scheduled_at DESC, id DESC
		LIMIT $2
	`, status, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list appointments", err)
	}
	return collectAppointmentListItems(rows)
}

func scanAppointmentView(row pgx.Row) (*queries.AppointmentView, error) {
	var (
		v                           queries.AppointmentView
		scheduledAt                 pgtype.Timestamptz
		assignedEmployee            pgtype.UUID
		estimatedCents, actualCents pgtype.Int8
		createdAt, updatedAt        pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID, &v.CustomerID, &v.VehicleMake, &v.VehicleModel, &v.VehicleYear, &v.VehiclePlate,
		&v.ServiceType, &scheduledAt, &v.Priority, &v.Description, &v.Status,
		&assignedEmployee, &estimatedCents, &actualCents,
		&v.Notes, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.ScheduledAt = scheduledAt.Time
	v.AssignedEmployeeID = pgconv.UUIDPtrFromPgtype(assignedEmployee)
	v.EstimatedCostCents = pgconv.Int64PtrFromPgtype(estimatedCents)
	v.ActualCostCents = pgconv.Int64PtrFromPgtype(actualCents)
	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time
	if v.Notes == nil {
		v.Notes = []string{}
	}
	return &v, nil
}

func collectAppointmentListItems(rows pgx.Rows) ([]*queries.AppointmentListItem, error) {
	defer rows.Close()

	result := make([]*queries.AppointmentListItem, 0)
	for rows.Next() {
		var (
			item             queries.AppointmentListItem
			scheduledAt      pgtype.Timestamptz
			assignedEmployee pgtype.UUID
			createdAt        pgtype.Timestamptz
		)
		err := rows.Scan(
			&item.ID, &item.CustomerID, &item.VehiclePlate, &item.ServiceType,
			&scheduledAt, &item.Priority, &item.Status, &assignedEmployee, &createdAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan appointment row", err)
		}
		item.ScheduledAt = scheduledAt.Time
		item.AssignedEmployeeID = pgconv.UUIDPtrFromPgtype(assignedEmployee)
		item.CreatedAt = createdAt.Time
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate appointment rows", err)
	}
	return result, nil
}
