package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The store
// carries a unique index on (employee_ref, date); it is the only arbiter for
// concurrent marks of the same day.
type AttendanceRepository interface {
	// Create inserts a new record. A losing insert race on the composite key
	// returns ErrAlreadyMarked.
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByEmployeeAndDate retrieves the record for an employee on a
	// normalized date, or nil when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeRef string, date time.Time) (*Record, error)

	// UpdateStatus overwrites the status of an existing record.
	UpdateStatus(ctx context.Context, id string, status Status) error

	// GetByEmployee retrieves all records for an employee, newest date first.
	GetByEmployee(ctx context.Context, employeeRef string) ([]Record, error)
}
