package attendance

import (
	"time"

	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) || validator.IsEmpty(r.Date) || validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "All fields are required: employeeId, date, status",
		})
		return errs
	}

	if !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "Status must be either Present or Absent",
		})
	}

	if _, ok := validator.ParseDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid ISO-8601 date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParsedDate returns the request date normalized to midnight UTC. Validate
// must have passed first.
func (r *MarkAttendanceRequest) ParsedDate() time.Time {
	t, _ := validator.ParseDate(r.Date)
	return validator.NormalizeDate(t)
}

// RecordResponse is a single attendance record with the employee's
// identifying fields joined in at read time.
type RecordResponse struct {
	ID       string            `json:"id"`
	Employee employee.Identity `json:"employee"`
	Date     string            `json:"date"`
	Status   Status            `json:"status"`
}

// MarkResult distinguishes a fresh record from an overwritten one so the
// handler can pick the right status code; the data shape is identical.
type MarkResult struct {
	Record  RecordResponse
	Created bool
}

type HistoryEntry struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Status Status `json:"status"`
}

type Summary struct {
	TotalDays   int `json:"totalDays"`
	PresentDays int `json:"presentDays"`
	AbsentDays  int `json:"absentDays"`
}

type HistoryResponse struct {
	Employee   employee.Identity `json:"employee"`
	Attendance []HistoryEntry    `json:"attendance"`
	Summary    Summary           `json:"summary"`
}

func ToRecordResponse(rec Record, emp employee.Employee) RecordResponse {
	return RecordResponse{
		ID:       rec.ID,
		Employee: employee.ToIdentity(emp),
		Date:     rec.Date.Format(dateLayout),
		Status:   rec.Status,
	}
}

func ToHistoryEntry(rec Record) HistoryEntry {
	return HistoryEntry{
		ID:     rec.ID,
		Date:   rec.Date.Format(dateLayout),
		Status: rec.Status,
	}
}
