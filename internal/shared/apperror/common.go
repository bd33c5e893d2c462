package apperror

import (
	"net/http"
)

var (
	ErrInternal = New(
		CodeInternalError,
		"Internal server error",
		http.StatusInternalServerError,
	)

	ErrValidation = New(
		CodeValidation,
		"Input validation failed",
		http.StatusUnprocessableEntity,
	)
)
