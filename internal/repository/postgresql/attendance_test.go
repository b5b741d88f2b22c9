package postgresql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testRecordUUID      = "7d1f5a2b-3c4d-4e5f-8a9b-0c1d2e3f4a5b"
	testEmployeeRefUUID = "4567e145-b1c9-4a3f-9e2d-0c1b2a3d4e5f"
)

var testDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newAttendanceMock(t *testing.T) (pgxmock.PgxPoolIface, attendance.AttendanceRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })
	return mock, NewAttendanceRepository(mock)
}

func TestAttendanceRepository_Create_Success(t *testing.T) {
	t.Parallel()
	mock, repo := newAttendanceMock(t)

	rows := pgxmock.NewRows([]string{"id", "employee_ref", "date", "status"}).
		AddRow(testRecordUUID, testEmployeeRefUUID, testDate, attendance.StatusPresent)

	mock.ExpectQuery("INSERT INTO attendance_records").
		WithArgs(testEmployeeRefUUID, testDate, attendance.StatusPresent).
		WillReturnRows(rows)

	created, err := repo.Create(context.Background(), attendance.Record{
		EmployeeRef: testEmployeeRefUUID,
		Date:        testDate,
		Status:      attendance.StatusPresent,
	})

	require.NoError(t, err)
	assert.Equal(t, testRecordUUID, created.ID)
	assert.Equal(t, attendance.StatusPresent, created.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_Create_DuplicateDayConflict(t *testing.T) {
	t.Parallel()
	mock, repo := newAttendanceMock(t)

	mock.ExpectQuery("INSERT INTO attendance_records").
		WithArgs(testEmployeeRefUUID, testDate, attendance.StatusPresent).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: attendanceUniqueConstraint})

	_, err := repo.Create(context.Background(), attendance.Record{
		EmployeeRef: testEmployeeRefUUID,
		Date:        testDate,
		Status:      attendance.StatusPresent,
	})

	assert.ErrorIs(t, err, attendance.ErrAlreadyMarked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_GetByEmployeeAndDate_NoRecord(t *testing.T) {
	t.Parallel()
	mock, repo := newAttendanceMock(t)

	mock.ExpectQuery("SELECT id, employee_ref, date, status").
		WithArgs(testEmployeeRefUUID, testDate).
		WillReturnRows(pgxmock.NewRows([]string{"id", "employee_ref", "date", "status"}))

	rec, err := repo.GetByEmployeeAndDate(context.Background(), testEmployeeRefUUID, testDate)

	require.NoError(t, err)
	assert.Nil(t, rec, "a missing record is not an error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_UpdateStatus(t *testing.T) {
	t.Parallel()
	mock, repo := newAttendanceMock(t)

	mock.ExpectExec("UPDATE attendance_records").
		WithArgs(attendance.StatusAbsent, testRecordUUID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateStatus(context.Background(), testRecordUUID, attendance.StatusAbsent)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_GetByEmployee_OrderedNewestFirst(t *testing.T) {
	t.Parallel()
	mock, repo := newAttendanceMock(t)

	rows := pgxmock.NewRows([]string{"id", "employee_ref", "date", "status"}).
		AddRow("7d1f5a2b-3c4d-4e5f-8a9b-000000000002", testEmployeeRefUUID, testDate.AddDate(0, 0, 1), attendance.StatusAbsent).
		AddRow("7d1f5a2b-3c4d-4e5f-8a9b-000000000001", testEmployeeRefUUID, testDate, attendance.StatusPresent)

	mock.ExpectQuery("SELECT id, employee_ref, date, status").
		WithArgs(testEmployeeRefUUID).
		WillReturnRows(rows)

	records, err := repo.GetByEmployee(context.Background(), testEmployeeRefUUID)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, attendance.StatusAbsent, records[0].Status)
	assert.True(t, records[0].Date.After(records[1].Date))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	dup := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: attendanceUniqueConstraint}
	assert.True(t, isUniqueViolation(dup, attendanceUniqueConstraint))
	assert.True(t, isUniqueViolation(dup, ""))
	assert.False(t, isUniqueViolation(dup, employeeIDUniqueConstraint))

	fk := &pgconn.PgError{Code: "23503"}
	assert.False(t, isUniqueViolation(fk, ""))

	assert.False(t, isUniqueViolation(errors.New("plain"), ""))
}
