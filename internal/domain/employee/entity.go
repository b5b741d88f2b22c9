package employee

import "time"

// Employee is a directory record. ID is the system-generated internal
// identity; EmployeeID is the externally assigned identifier shown to users.
type Employee struct {
	ID         string
	EmployeeID string
	FullName   string
	Email      string
	Department string
	CreatedAt  time.Time
}
