package attendance

import (
	"time"

	"github.com/google/uuid"
)

// ConstraintEmployeeDate is the compound unique index on (employee_id, date).
// The Mongo backend names its index the same way.
const ConstraintEmployeeDate = "uq_attendance_employee_date"

// DateLayout is the canonical stored form of an attendance date.
const DateLayout = "2006-01-02"

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

func (s Status) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

type Attendance struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID string    `gorm:"column:employee_id;size:20;not null;uniqueIndex:uq_attendance_employee_date,priority:1"`
	Date       string    `gorm:"column:date;type:varchar(10);not null;uniqueIndex:uq_attendance_employee_date,priority:2;index"`
	Status     Status    `gorm:"column:status;type:varchar(10);not null;index"`
	MarkedAt   time.Time `gorm:"column:marked_at;not null"`
}

func (Attendance) TableName() string {
	return "attendance"
}

// Filter narrows list and count queries. Empty fields match everything.
type Filter struct {
	EmployeeID string
	Date       string
	Status     Status
}
