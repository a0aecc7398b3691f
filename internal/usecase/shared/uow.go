package shared

import (
	"context"

	"autocare-api/internal/domain/appointment"
	"autocare-api/internal/domain/modreq"
	"autocare-api/internal/domain/timelog"
	"autocare-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Appointments() AppointmentRepository
	TimeLogs() TimeLogRepository
	ModificationRequests() ModificationRequestRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the cheap existence/state checks commands run before and
// inside transactions. Anything richer goes through the query side.
type CommandReads interface {
	AppointmentByID(ctx context.Context, id uuid.UUID) (*AppointmentSnapshot, error)
	ActiveTimeLogByEmployee(ctx context.Context, employeeID uuid.UUID) (*TimeLogSnapshot, error)
	HasActiveTimeLogForAppointment(ctx context.Context, appointmentID uuid.UUID) (bool, error)
	TimeLogByID(ctx context.Context, id uuid.UUID) (*TimeLogSnapshot, error)
	PendingRequestByAppointment(ctx context.Context, appointmentID uuid.UUID) (*ModificationSnapshot, error)
	ModificationByID(ctx context.Context, id uuid.UUID) (*ModificationSnapshot, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, appt *appointment.Appointment) (uuid.UUID, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*appointment.Appointment, error)
	Update(ctx context.Context, dbtx db.DBTX, appt *appointment.Appointment) error
	AppendNote(ctx context.Context, dbtx db.DBTX, id uuid.UUID, note string) error
}

type TimeLogRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, log *timelog.TimeLog) (uuid.UUID, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*timelog.TimeLog, error)
	Update(ctx context.Context, dbtx db.DBTX, log *timelog.TimeLog) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type ModificationRequestRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, req *modreq.ModificationRequest) (uuid.UUID, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*modreq.ModificationRequest, error)
	Update(ctx context.Context, dbtx db.DBTX, req *modreq.ModificationRequest) error
}
