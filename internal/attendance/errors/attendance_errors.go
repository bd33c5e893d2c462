package attendanceerrors

import (
	"net/http"

	"hrms-lite/internal/shared/apperror"
)

var (
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)
	ErrAlreadyMarked = apperror.New(
		apperror.CodeConflict,
		"Attendance already marked for this date",
		http.StatusConflict,
	)
	ErrInvalidAttendanceID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid attendance ID format",
		http.StatusBadRequest,
	)
)

func AlreadyMarked(employeeID, date string) error {
	return apperror.Describe(ErrAlreadyMarked, "Attendance already marked for employee '%s' on %s", employeeID, date)
}
