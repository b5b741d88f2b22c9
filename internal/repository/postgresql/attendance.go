package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const attendanceUniqueConstraint = "attendance_records_employee_ref_date_key"

type attendanceRepositoryImpl struct {
	db database.Querier
}

func NewAttendanceRepository(db database.Querier) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	query := `
		INSERT INTO attendance_records (employee_ref, date, status)
		VALUES ($1, $2, $3)
		RETURNING id, employee_ref, date, status
	`

	var created attendance.Record
	err := a.db.QueryRow(ctx, query, rec.EmployeeRef, rec.Date, rec.Status).Scan(
		&created.ID, &created.EmployeeRef, &created.Date, &created.Status,
	)
	if err != nil {
		// Concurrent marks for the same day race here; the composite unique
		// index picks exactly one winner.
		if isUniqueViolation(err, attendanceUniqueConstraint) {
			return attendance.Record{}, attendance.ErrAlreadyMarked
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return created, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeRef string, date time.Time) (*attendance.Record, error) {
	query := `
		SELECT id, employee_ref, date, status
		FROM attendance_records
		WHERE employee_ref = $1 AND date = $2
	`

	var rec attendance.Record
	err := a.db.QueryRow(ctx, query, employeeRef, date).Scan(
		&rec.ID, &rec.EmployeeRef, &rec.Date, &rec.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &rec, nil
}

// UpdateStatus implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) UpdateStatus(ctx context.Context, id string, status attendance.Status) error {
	query := `UPDATE attendance_records SET status = $1 WHERE id = $2`

	tag, err := a.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update attendance status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// GetByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByEmployee(ctx context.Context, employeeRef string) ([]attendance.Record, error) {
	query := `
		SELECT id, employee_ref, date, status
		FROM attendance_records
		WHERE employee_ref = $1
		ORDER BY date DESC
	`

	rows, err := a.db.Query(ctx, query, employeeRef)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(&rec.ID, &rec.EmployeeRef, &rec.Date, &rec.Status); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
