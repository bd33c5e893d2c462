package attendance

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, a *Attendance) error
	// FindAll returns matching records, newest date first.
	FindAll(ctx context.Context, filter Filter) ([]Attendance, error)
	ExistsByEmployeeAndDate(ctx context.Context, employeeID, date string) (bool, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByEmployee(ctx context.Context, employeeID string) (int64, error)
	ReassignEmployee(ctx context.Context, fromEmployeeID, toEmployeeID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) scoped(ctx context.Context, filter Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&Attendance{})
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	return q
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindAll(ctx context.Context, filter Filter) ([]Attendance, error) {
	var rows []Attendance
	err := r.scoped(ctx, filter).
		Order("date DESC, marked_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ExistsByEmployeeAndDate(ctx context.Context, employeeID, date string) (bool, error) {
	n, err := r.Count(ctx, Filter{EmployeeID: employeeID, Date: date})
	return n > 0, err
}

func (r *repository) Count(ctx context.Context, filter Filter) (int64, error) {
	var n int64
	err := r.scoped(ctx, filter).Count(&n).Error
	return n, err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&Attendance{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteByEmployee(ctx context.Context, employeeID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&Attendance{})
	return res.RowsAffected, res.Error
}

func (r *repository) ReassignEmployee(ctx context.Context, fromEmployeeID, toEmployeeID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("employee_id = ?", fromEmployeeID).
		Update("employee_id", toEmployeeID)
	return res.RowsAffected, res.Error
}
