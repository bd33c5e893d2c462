package attendance

import (
	"errors"
	"strings"

	attendanceerrors "hrms-lite/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

func mapRepositoryError(err error, a *Attendance) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, mongo.ErrNoDocuments) {
		return attendanceerrors.ErrAttendanceNotFound
	}

	employeeID, date := "", ""
	if a != nil {
		employeeID, date = a.EmployeeID, a.Date
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == ConstraintEmployeeDate {
		return attendanceerrors.AlreadyMarked(employeeID, date)
	}

	if mongo.IsDuplicateKeyError(err) && strings.Contains(err.Error(), ConstraintEmployeeDate) {
		return attendanceerrors.AlreadyMarked(employeeID, date)
	}

	return err
}
