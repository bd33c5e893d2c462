package employeeerrors

import (
	"net/http"

	"hrms-lite/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeIDAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same employee ID already exists",
		http.StatusConflict,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
)

func EmployeeNotFound(employeeID string) error {
	return apperror.Describe(ErrEmployeeNotFound, "Employee with ID '%s' not found", employeeID)
}

func EmployeeIDAlreadyExists(employeeID string) error {
	return apperror.Describe(ErrEmployeeIDAlreadyExists, "Employee with ID '%s' already exists", employeeID)
}

func EmployeeIDTaken(employeeID string) error {
	return apperror.Describe(ErrEmployeeIDAlreadyExists, "Employee ID '%s' is already taken", employeeID)
}

func EmailAlreadyExists(email string) error {
	return apperror.Describe(ErrEmailAlreadyExists, "Employee with email '%s' already exists", email)
}

func EmailTaken(email string) error {
	return apperror.Describe(ErrEmailAlreadyExists, "Email '%s' is already taken by another employee", email)
}
