package attendance

import (
	"context"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/domain/employee"
)

type attendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) attendance.AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// Mark implements attendance.AttendanceService. Marking is an upsert on
// (employee, calendar day): an existing record has its status overwritten, a
// missing one is inserted. Two concurrent inserts for the same day are
// arbitrated by the store's unique index; the loser gets ErrAlreadyMarked.
func (s *attendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.MarkResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkResult{}, err
	}

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.MarkResult{}, err
	}

	date := req.ParsedDate()
	status := attendance.Status(req.Status)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.MarkResult{}, err
	}

	if existing != nil {
		if err := s.attendanceRepo.UpdateStatus(ctx, existing.ID, status); err != nil {
			return attendance.MarkResult{}, err
		}
		existing.Status = status
		return attendance.MarkResult{
			Record:  attendance.ToRecordResponse(*existing, emp),
			Created: false,
		}, nil
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Record{
		EmployeeRef: emp.ID,
		Date:        date,
		Status:      status,
	})
	if err != nil {
		return attendance.MarkResult{}, err
	}

	return attendance.MarkResult{
		Record:  attendance.ToRecordResponse(created, emp),
		Created: true,
	}, nil
}

// GetHistory implements attendance.AttendanceService. An employee with no
// records gets an empty list and zero counts, not an error.
func (s *attendanceServiceImpl) GetHistory(ctx context.Context, employeeID string) (attendance.HistoryResponse, error) {
	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return attendance.HistoryResponse{}, err
	}

	records, err := s.attendanceRepo.GetByEmployee(ctx, emp.ID)
	if err != nil {
		return attendance.HistoryResponse{}, err
	}

	entries := make([]attendance.HistoryEntry, 0, len(records))
	summary := attendance.Summary{TotalDays: len(records)}
	for _, rec := range records {
		entries = append(entries, attendance.ToHistoryEntry(rec))
		switch rec.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
		case attendance.StatusAbsent:
			summary.AbsentDays++
		}
	}

	return attendance.HistoryResponse{
		Employee:   employee.ToIdentity(emp),
		Attendance: entries,
		Summary:    summary,
	}, nil
}
