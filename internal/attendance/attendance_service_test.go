package attendance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hrms-lite/internal/attendance"
	attendanceerrors "hrms-lite/internal/attendance/errors"
	attendanceMock "hrms-lite/internal/attendance/mock"
	"hrms-lite/internal/employee"
	employeeerrors "hrms-lite/internal/employee/errors"
	employeeMock "hrms-lite/internal/employee/mock"
	"hrms-lite/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   attendance.Service
	repo      *attendanceMock.MockRepository
	employees *employeeMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	repo := attendanceMock.NewMockRepository(ctrl)
	employees := employeeMock.NewMockRepository(ctrl)

	return &serviceDeps{
		service:   attendance.NewService(repo, employees),
		repo:      repo,
		employees: employees,
	}
}

func jane() *employee.Employee {
	return &employee.Employee{
		ID:         uuid.New(),
		EmployeeID: "EMP001",
		FullName:   "Jane Doe",
		Email:      "jane@co.com",
		Department: "Eng",
		CreatedAt:  time.Now().UTC(),
	}
}

func record(employeeID, date string, status attendance.Status) attendance.Attendance {
	return attendance.Attendance{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
		MarkedAt:   time.Date(2026, 2, 3, 8, 30, 0, 0, time.UTC),
	}
}

func TestAttendanceService_Mark(t *testing.T) {
	ctx := context.Background()
	req := attendance.MarkAttendanceRequest{EmployeeID: "EMP001", Date: "2026-02-03", Status: attendance.StatusPresent}

	t.Run("success - enriched with employee name", func(t *testing.T) {
		deps := setupServiceTest(t)

		gomock.InOrder(
			deps.employees.EXPECT().FindByEmployeeID(ctx, "EMP001").Return(jane(), nil),
			deps.repo.EXPECT().ExistsByEmployeeAndDate(ctx, "EMP001", "2026-02-03").Return(false, nil),
			deps.repo.EXPECT().
				Create(ctx, gomock.Any()).
				DoAndReturn(func(ctx context.Context, a *attendance.Attendance) error {
					assert.NotEqual(t, uuid.Nil, a.ID)
					assert.Equal(t, "2026-02-03", a.Date)
					assert.Equal(t, attendance.StatusPresent, a.Status)
					assert.False(t, a.MarkedAt.IsZero())
					return nil
				}),
		)

		resp, err := deps.service.Mark(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "Jane Doe", resp.EmployeeName)
		assert.Equal(t, attendance.StatusPresent, resp.Status)
		assert.NotEmpty(t, resp.ID)
		assert.NotEmpty(t, resp.MarkedAt)
	})

	t.Run("unknown employee - nothing persisted", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.employees.EXPECT().FindByEmployeeID(ctx, "EMP001").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Mark(ctx, req)

		assert.True(t, errors.Is(err, employeeerrors.ErrEmployeeNotFound))
		assert.Equal(t, 404, apperror.ToHTTP(err).Status)
	})

	t.Run("already marked regardless of status", func(t *testing.T) {
		deps := setupServiceTest(t)
		absent := req
		absent.Status = attendance.StatusAbsent

		deps.employees.EXPECT().FindByEmployeeID(ctx, "EMP001").Return(jane(), nil)
		deps.repo.EXPECT().ExistsByEmployeeAndDate(ctx, "EMP001", "2026-02-03").Return(true, nil)

		_, err := deps.service.Mark(ctx, absent)

		assert.True(t, errors.Is(err, attendanceerrors.ErrAlreadyMarked))
		assert.Equal(t, "Attendance already marked for employee 'EMP001' on 2026-02-03", apperror.ToHTTP(err).Message)
	})

	t.Run("unique index race maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.employees.EXPECT().FindByEmployeeID(ctx, "EMP001").Return(jane(), nil)
		deps.repo.EXPECT().ExistsByEmployeeAndDate(ctx, "EMP001", "2026-02-03").Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: attendance.ConstraintEmployeeDate})

		_, err := deps.service.Mark(ctx, req)

		assert.True(t, errors.Is(err, attendanceerrors.ErrAlreadyMarked))
	})

	t.Run("invalid input rejected before store access", func(t *testing.T) {
		cases := []attendance.MarkAttendanceRequest{
			{EmployeeID: "EMP001", Date: "2026-02-03", Status: "Late"},
			{EmployeeID: "EMP001", Date: "03/02/2026", Status: attendance.StatusPresent},
			{EmployeeID: "EMP001", Date: "2026-02-30", Status: attendance.StatusPresent},
			{EmployeeID: "", Date: "2026-02-03", Status: attendance.StatusPresent},
		}
		for _, c := range cases {
			deps := setupServiceTest(t)

			_, err := deps.service.Mark(ctx, c)

			assert.True(t, errors.Is(err, apperror.ErrValidation), "%+v", c)
		}
	})
}

func TestAttendanceService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("names resolved and orphans marked unknown", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().FindAll(ctx, attendance.Filter{Date: "2026-02-03"}).Return([]attendance.Attendance{
			record("EMP001", "2026-02-03", attendance.StatusPresent),
			record("EMP999", "2026-02-03", attendance.StatusAbsent),
		}, nil)
		deps.employees.EXPECT().FindAll(ctx).Times(1).Return([]employee.Employee{*jane()}, nil)

		resp, err := deps.service.GetAll(ctx, attendance.ListFilter{DateFilter: "2026-02-03"})

		assert.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, "Jane Doe", resp.Records[0].EmployeeName)
		assert.Equal(t, attendance.UnknownEmployeeName, resp.Records[1].EmployeeName)
		assert.Equal(t, "2026-02-03T08:30:00Z", resp.Records[0].MarkedAt)
	})

	t.Run("filters are combined", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindAll(ctx, attendance.Filter{EmployeeID: "EMP001", Date: "2026-02-03"}).
			Return(nil, nil)
		deps.employees.EXPECT().FindAll(ctx).Return(nil, nil)

		resp, err := deps.service.GetAll(ctx, attendance.ListFilter{DateFilter: "2026-02-03", EmployeeID: "EMP001"})

		assert.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
		assert.NotNil(t, resp.Records)
	})

	t.Run("malformed date filter", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.GetAll(ctx, attendance.ListFilter{DateFilter: "yesterday"})

		assert.True(t, errors.Is(err, apperror.ErrValidation))
		assert.Equal(t, 422, apperror.ToHTTP(err).Status)
	})
}

func TestAttendanceService_GetByEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.employees.EXPECT().FindByEmployeeID(ctx, "EMP001").Return(jane(), nil)
		deps.repo.EXPECT().FindAll(ctx, attendance.Filter{EmployeeID: "EMP001"}).Return([]attendance.Attendance{
			record("EMP001", "2026-02-04", attendance.StatusAbsent),
			record("EMP001", "2026-02-03", attendance.StatusPresent),
		}, nil)

		resp, err := deps.service.GetByEmployee(ctx, "EMP001")

		assert.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, "2026-02-04", resp.Records[0].Date)
		assert.Equal(t, "Jane Doe", resp.Records[1].EmployeeName)
	})

	t.Run("employee gone", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.employees.EXPECT().FindByEmployeeID(ctx, "EMP001").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByEmployee(ctx, "EMP001")

		assert.Equal(t, 404, apperror.ToHTTP(err).Status)
	})
}

func TestAttendanceService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("rounded percentage", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.employees.EXPECT().FindByEmployeeID(ctx, "EMP001").Return(jane(), nil)
		deps.repo.EXPECT().Count(ctx, attendance.Filter{EmployeeID: "EMP001"}).Return(int64(3), nil)
		deps.repo.EXPECT().Count(ctx, attendance.Filter{EmployeeID: "EMP001", Status: attendance.StatusPresent}).Return(int64(2), nil)

		resp, err := deps.service.Summary(ctx, "EMP001")

		assert.NoError(t, err)
		assert.Equal(t, int64(3), resp.TotalDays)
		assert.Equal(t, int64(2), resp.PresentDays)
		assert.Equal(t, int64(1), resp.AbsentDays)
		assert.Equal(t, resp.TotalDays, resp.PresentDays+resp.AbsentDays)
		assert.Equal(t, 66.67, resp.AttendancePercentage)
		assert.Equal(t, "Jane Doe", resp.EmployeeName)
	})

	t.Run("no days recorded", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.employees.EXPECT().FindByEmployeeID(ctx, "EMP001").Return(jane(), nil)
		deps.repo.EXPECT().Count(ctx, gomock.Any()).Times(2).Return(int64(0), nil)

		resp, err := deps.service.Summary(ctx, "EMP001")

		assert.NoError(t, err)
		assert.Equal(t, float64(0), resp.AttendancePercentage)
	})

	t.Run("employee missing", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.employees.EXPECT().FindByEmployeeID(ctx, "EMP404").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Summary(ctx, "EMP404")

		assert.True(t, errors.Is(err, employeeerrors.ErrEmployeeNotFound))
	})
}

func TestAttendanceService_SummaryPercentage(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		present, total int64
		want           float64
	}{
		{0, 0, 0},
		{4, 4, 100},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{1, 32, 3.12},
		{1, 160, 0.62},
	}
	for _, c := range cases {
		deps := setupServiceTest(t)

		deps.employees.EXPECT().FindByEmployeeID(ctx, "EMP001").Return(jane(), nil)
		deps.repo.EXPECT().Count(ctx, attendance.Filter{EmployeeID: "EMP001"}).Return(c.total, nil)
		deps.repo.EXPECT().Count(ctx, attendance.Filter{EmployeeID: "EMP001", Status: attendance.StatusPresent}).Return(c.present, nil)

		resp, err := deps.service.Summary(ctx, "EMP001")

		assert.NoError(t, err)
		assert.Equal(t, c.want, resp.AttendancePercentage, "%d of %d", c.present, c.total)
	}
}

func TestAttendanceService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed id", func(t *testing.T) {
		deps := setupServiceTest(t)

		err := deps.service.Delete(ctx, "not-a-uuid")

		assert.True(t, errors.Is(err, attendanceerrors.ErrInvalidAttendanceID))
		assert.Equal(t, 400, apperror.ToHTTP(err).Status)
	})

	t.Run("nothing matched", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		deps.repo.EXPECT().Delete(ctx, id).Return(gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, id.String())

		assert.True(t, errors.Is(err, attendanceerrors.ErrAttendanceNotFound))
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		deps.repo.EXPECT().Delete(ctx, id).Return(nil)

		assert.NoError(t, deps.service.Delete(ctx, id.String()))
	})
}

func TestAttendanceService_Export(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	deps.repo.EXPECT().FindAll(ctx, attendance.Filter{}).Return([]attendance.Attendance{
		record("EMP001", "2026-02-03", attendance.StatusPresent),
	}, nil)
	deps.employees.EXPECT().FindAll(ctx).Return([]employee.Employee{*jane()}, nil)

	content, err := deps.service.Export(ctx, attendance.ListFilter{})

	assert.NoError(t, err)
	assert.NotEmpty(t, content)
	// xlsx is a zip container
	assert.Equal(t, []byte("PK"), content[:2])
}
