//go:build unit || e2e

package builder

import (
	"time"

	domappt "autocare-api/internal/domain/appointment"
	reqdto "autocare-api/internal/handler/dto/request"
	"autocare-api/internal/pkg/clock"
	"autocare-api/internal/usecase/queries"
	"autocare-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	CustomerID         uuid.UUID
	VehicleMake        string
	VehicleModel       string
	VehicleYear        int
	VehiclePlate       string
	ServiceType        string
	ScheduledAt        time.Time
	Priority           string
	Description        string
	Status             string
	AssignedEmployeeID *uuid.UUID
	EstimatedCostCents *int64
	ActualCostCents    *int64
	Now                time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return &AppointmentBuilder{
		CustomerID:   uuid.New(),
		VehicleMake:  "Toyota",
		VehicleModel: "Corolla",
		VehicleYear:  2021,
		VehiclePlate: "ABC-1234",
		ServiceType:  "maintenance",
		ScheduledAt:  now.Add(48 * time.Hour),
		Priority:     "medium",
		Description:  "Routine oil change",
		Status:       "pending",
		Now:          now,
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *AppointmentBuilder) BuildDomain() (*domappt.Appointment, error) {
	vehicle, err := domappt.NewVehicleSnapshot(b.VehicleMake, b.VehicleModel, b.VehicleYear, b.VehiclePlate)
	if err != nil {
		return nil, err
	}
	desc, err := domappt.NewDescription(b.Description)
	if err != nil {
		return nil, err
	}
	var estimated *domappt.Money
	if b.EstimatedCostCents != nil {
		m, merr := domappt.NewMoney(*b.EstimatedCostCents)
		if merr != nil {
			return nil, merr
		}
		estimated = &m
	}
	return domappt.NewAppointment(
		clock.NewMockClock(b.Now),
		b.CustomerID,
		vehicle,
		domappt.ServiceType(b.ServiceType),
		b.ScheduledAt,
		domappt.Priority(b.Priority),
		desc,
		estimated,
	)
}

// BuildReconstructed bypasses booking validation so tests can place the
// appointment in any lifecycle state.
func (b *AppointmentBuilder) BuildReconstructed() *domappt.Appointment {
	vehicle := domappt.ReconstructVehicleSnapshot(b.VehicleMake, b.VehicleModel, b.VehicleYear, b.VehiclePlate)
	desc, _ := domappt.NewDescription(b.Description)
	var estimated, actual *domappt.Money
	if b.EstimatedCostCents != nil {
		m, _ := domappt.NewMoney(*b.EstimatedCostCents)
		estimated = &m
	}
	if b.ActualCostCents != nil {
		m, _ := domappt.NewMoney(*b.ActualCostCents)
		actual = &m
	}
	return domappt.ReconstructAppointment(
		uuid.New(), b.CustomerID,
		vehicle,
		domappt.ServiceType(b.ServiceType),
		b.ScheduledAt,
		domappt.Priority(b.Priority),
		desc,
		domappt.Status(b.Status),
		b.AssignedEmployeeID,
		estimated, actual,
		b.Now, b.Now,
	)
}

func (b *AppointmentBuilder) BuildSnapshot() *shared.AppointmentSnapshot {
	return &shared.AppointmentSnapshot{
		ID:                 uuid.New(),
		CustomerID:         b.CustomerID,
		Status:             domappt.Status(b.Status),
		AssignedEmployeeID: b.AssignedEmployeeID,
		ScheduledAt:        b.ScheduledAt,
	}
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:                 uuid.New(),
		CustomerID:         b.CustomerID,
		VehicleMake:        b.VehicleMake,
		VehicleModel:       b.VehicleModel,
		VehicleYear:        b.VehicleYear,
		VehiclePlate:       b.VehiclePlate,
		ServiceType:        b.ServiceType,
		ScheduledAt:        b.ScheduledAt,
		Priority:           b.Priority,
		Description:        b.Description,
		Status:             b.Status,
		AssignedEmployeeID: b.AssignedEmployeeID,
		EstimatedCostCents: b.EstimatedCostCents,
		ActualCostCents:    b.ActualCostCents,
		Notes:              []string{},
		CreatedAt:          b.Now,
		UpdatedAt:          b.Now,
	}
}

func (b *AppointmentBuilder) BuildListItem() *queries.AppointmentListItem {
	return &queries.AppointmentListItem{
		ID:                 uuid.New(),
		CustomerID:         b.CustomerID,
		VehiclePlate:       b.VehiclePlate,
		ServiceType:        b.ServiceType,
		ScheduledAt:        b.ScheduledAt,
		Priority:           b.Priority,
		Status:             b.Status,
		AssignedEmployeeID: b.AssignedEmployeeID,
		CreatedAt:          b.Now,
	}
}

func (b *AppointmentBuilder) BuildBookRequestDTO() reqdto.BookAppointmentRequest {
	return reqdto.BookAppointmentRequest{
		VehicleMake:        b.VehicleMake,
		VehicleModel:       b.VehicleModel,
		VehicleYear:        b.VehicleYear,
		VehiclePlate:       b.VehiclePlate,
		ServiceType:        b.ServiceType,
		ScheduledAt:        b.ScheduledAt,
		Priority:           b.Priority,
		Description:        b.Description,
		EstimatedCostCents: b.EstimatedCostCents,
	}
}

// Fluent builder methods
func (b *AppointmentBuilder) WithCustomerID(id uuid.UUID) *AppointmentBuilder {
	b.CustomerID = id
	return b
}

func (b *AppointmentBuilder) WithServiceType(t string) *AppointmentBuilder {
	b.ServiceType = t
	return b
}

func (b *AppointmentBuilder) WithScheduledAt(t time.Time) *AppointmentBuilder {
	b.ScheduledAt = t
	return b
}

func (b *AppointmentBuilder) WithPriority(p string) *AppointmentBuilder {
	b.Priority = p
	return b
}

func (b *AppointmentBuilder) WithStatus(s string) *AppointmentBuilder {
	b.Status = s
	return b
}

func (b *AppointmentBuilder) WithAssignedEmployee(id uuid.UUID) *AppointmentBuilder {
	b.AssignedEmployeeID = &id
	return b
}

func (b *AppointmentBuilder) WithEstimatedCostCents(cents int64) *AppointmentBuilder {
	b.EstimatedCostCents = &cents
	return b
}

func (b *AppointmentBuilder) WithVehicleYear(year int) *AppointmentBuilder {
	b.VehicleYear = year
	return b
}
