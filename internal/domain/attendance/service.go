package attendance

import "context"

// AttendanceService defines business logic for the attendance ledger
type AttendanceService interface {
	// Mark records or overwrites attendance for an employee on a calendar day
	Mark(ctx context.Context, req MarkAttendanceRequest) (MarkResult, error)

	// GetHistory retrieves an employee's attendance, newest first, with
	// aggregate counts
	GetHistory(ctx context.Context, employeeID string) (HistoryResponse, error)
}
