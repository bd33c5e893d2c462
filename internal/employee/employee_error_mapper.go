package employee

import (
	"errors"
	"strings"

	employeeerrors "hrms-lite/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// mapRepositoryError translates store failures into directory errors. Unique
// violations caught here are the races the service pre-checks could not see.
func mapRepositoryError(err error, empl *Employee) error {
	if err == nil {
		return nil
	}

	employeeID, email := "", ""
	if empl != nil {
		employeeID, email = empl.EmployeeID, empl.Email
	}

	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, mongo.ErrNoDocuments) {
		return employeeerrors.EmployeeNotFound(employeeID)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case ConstraintEmployeeID:
			return employeeerrors.EmployeeIDAlreadyExists(employeeID)
		case ConstraintEmail:
			return employeeerrors.EmailAlreadyExists(email)
		}
	}

	if mongo.IsDuplicateKeyError(err) || strings.Contains(strings.ToLower(err.Error()), "duplicate key") {
		msg := err.Error()
		switch {
		case strings.Contains(msg, ConstraintEmployeeID):
			return employeeerrors.EmployeeIDAlreadyExists(employeeID)
		case strings.Contains(msg, ConstraintEmail):
			return employeeerrors.EmailAlreadyExists(email)
		}
	}

	return err
}
