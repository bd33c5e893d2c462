package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hrms-lite/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,max=5"`
	Email      string `json:"email" binding:"required,email"`
	Status     string `json:"status" binding:"required,oneof=Present Absent"`
}

func TestValidateStruct(t *testing.T) {
	err := apperror.ValidateStruct(sampleRequest{EmployeeID: "EMP-000001", Email: "x", Status: "Late"})

	assert.True(t, errors.Is(err, apperror.ErrValidation))

	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Equal(t, apperror.CodeValidation, httpErr.Code)
	assert.Equal(t, "Employee Id must be at most 5 characters", httpErr.Message)

	details, ok := httpErr.Details.([]apperror.FieldError)
	assert.True(t, ok)
	assert.Equal(t, []apperror.FieldError{
		{Field: "employee_id", Message: "Employee Id must be at most 5 characters"},
		{Field: "email", Message: "Email must be a valid email address"},
		{Field: "status", Message: "Status must be one of: Present, Absent"},
	}, details)
}

func TestValidateStruct_Valid(t *testing.T) {
	assert.NoError(t, apperror.ValidateStruct(sampleRequest{EmployeeID: "E1", Email: "a@b.co", Status: "Absent"}))
}

func TestMapValidationError_NonValidator(t *testing.T) {
	err := apperror.MapValidationError(errors.New("unexpected EOF"))

	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Equal(t, "Invalid request body", httpErr.Message)
	assert.Equal(t, "unexpected EOF", httpErr.Details)
}

func TestToHTTP(t *testing.T) {
	notFound := apperror.New(apperror.CodeNotFound, "Employee not found", http.StatusNotFound)

	t.Run("described sentinel", func(t *testing.T) {
		err := fmt.Errorf("lookup: %w", apperror.Describe(notFound, "Employee with ID '%s' not found", "EMP9"))

		assert.True(t, errors.Is(err, notFound))
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, "Employee with ID 'EMP9' not found", httpErr.Message)
	})

	t.Run("plain error hidden", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: password authentication failed"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.Equal(t, "Internal server error", httpErr.Message)
	})
}
