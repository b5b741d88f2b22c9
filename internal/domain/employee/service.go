package employee

import "context"

// EmployeeService defines business logic for the employee directory
type EmployeeService interface {
	// Register creates a new employee after uniqueness checks
	Register(ctx context.Context, req RegisterEmployeeRequest) (EmployeeResponse, error)

	// List retrieves all employees, newest first
	List(ctx context.Context) ([]EmployeeResponse, error)

	// Delete removes an employee by internal identity
	Delete(ctx context.Context, id string) error
}
