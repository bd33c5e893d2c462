package employee

import (
	"time"

	"github.com/google/uuid"
)

// Unique constraint names. The Mongo backend uses the same names for its indexes
// so duplicate-key errors map the same way on both stores.
const (
	ConstraintEmployeeID = "uq_employees_employee_id"
	ConstraintEmail      = "uq_employees_email"
)

type Employee struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID string    `gorm:"column:employee_id;size:20;not null;uniqueIndex:uq_employees_employee_id"`
	FullName   string    `gorm:"column:full_name;size:100;not null"`
	Email      string    `gorm:"column:email;size:255;not null;uniqueIndex:uq_employees_email"`
	Department string    `gorm:"column:department;size:50;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;index"`
}

func (Employee) TableName() string {
	return "employees"
}
