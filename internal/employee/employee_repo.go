package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
	// ExistsByEmail ignores the employee identified by excludeEmployeeID when it is not empty.
	ExistsByEmail(ctx context.Context, email, excludeEmployeeID string) (bool, error)
	UpdateByEmployeeID(ctx context.Context, employeeID string, empl *Employee) error
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Take(&empl).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("employee_id = ?", employeeID).
		Count(&n).Error
	return n > 0, err
}

func (r *repository) ExistsByEmail(ctx context.Context, email, excludeEmployeeID string) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("email = ?", email)
	if excludeEmployeeID != "" {
		q = q.Where("employee_id <> ?", excludeEmployeeID)
	}

	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}

// UpdateByEmployeeID overwrites every mutable column of the row keyed by employeeID.
// id and created_at are never touched.
func (r *repository) UpdateByEmployeeID(ctx context.Context, employeeID string, empl *Employee) error {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("employee_id = ?", employeeID).
		Updates(map[string]any{
			"employee_id": empl.EmployeeID,
			"full_name":   empl.FullName,
			"email":       empl.Email,
			"department":  empl.Department,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	res := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&Employee{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Employee{}).Count(&n).Error
	return n, err
}
