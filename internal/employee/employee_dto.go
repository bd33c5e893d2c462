package employee

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,min=1,max=20"`
	FullName   string `json:"full_name" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"required,min=1,max=50"`
}

// UpdateEmployeeRequest is a full replacement: every field is required.
type UpdateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,min=1,max=20"`
	FullName   string `json:"full_name" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"required,min=1,max=50"`
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	CreatedAt  string `json:"created_at"`
}

type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int                `json:"total"`
}
