package commands

import (
	"errors"

	"autocare-api/internal/pkg/errs"
	"autocare-api/internal/pkg/lock"
)

// Sentinels shared across all command groups. The handler layer maps these to
// the HTTP error taxonomy; command code marks low-level causes onto them with
// errs.Mark.
var (
	ErrBusy      = errs.New("resource busy, retry later")
	ErrForbidden = errs.New("operation not permitted for this caller")
)

func mapLockErr(err error) error {
	if errors.Is(err, lock.ErrAcquireTimeout) {
		return errs.Mark(err, ErrBusy)
	}
	return err
}

func keyAppointment(id string) string { return "appointment:" + id }
func keyEmployee(id string) string    { return "employee:" + id }
