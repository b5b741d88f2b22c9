package attendance

import "time"

// Record is a single attendance fact: one row per employee per calendar day.
// EmployeeRef holds the employee's internal identity, not the external
// employeeId.
type Record struct {
	ID          string
	EmployeeRef string
	Date        time.Time
	Status      Status
}

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// IsValid requires exact casing. "present" is not a valid status.
func (s Status) IsValid() bool {
	return s == StatusPresent || s == StatusAbsent
}
