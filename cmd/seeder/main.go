package main

import (
	"context"
	"errors"
	"time"

	"hrms-lite/internal/app"
	"hrms-lite/internal/attendance"
	"hrms-lite/internal/config"
	"hrms-lite/internal/employee"
	"hrms-lite/internal/shared/apperror"

	"go.uber.org/zap"
)

var demoEmployees = []employee.CreateEmployeeRequest{
	{EmployeeID: "EMP001", FullName: "Jane Doe", Email: "jane.doe@example.com", Department: "Engineering"},
	{EmployeeID: "EMP002", FullName: "John Roe", Email: "john.roe@example.com", Department: "Operations"},
	{EmployeeID: "EMP003", FullName: "Amara Okafor", Email: "amara.okafor@example.com", Department: "Finance"},
	{EmployeeID: "EMP004", FullName: "Kenji Sato", Email: "kenji.sato@example.com", Department: "Engineering"},
}

// seedDays is how many past weekdays get an attendance mark per employee.
const seedDays = 10

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	apperror.Init()

	ctx := context.Background()
	store, err := app.OpenStore(ctx, cfg)
	if err != nil {
		logger.Fatal("open store failed", zap.Error(err))
	}
	defer store.Close(ctx)

	employees := employee.NewService(store.Employees, store.Attendance, logger)
	records := attendance.NewService(store.Attendance, store.Employees, logger)

	for _, req := range demoEmployees {
		if _, err := employees.Create(ctx, req); err != nil && !isConflict(err) {
			logger.Fatal("seed employee failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		}
	}

	marked := 0
	for i, req := range demoEmployees {
		for _, day := range pastWeekdays(time.Now().UTC(), seedDays) {
			status := attendance.StatusPresent
			// every employee misses a different weekday now and then
			if (day.YearDay()+i)%5 == 0 {
				status = attendance.StatusAbsent
			}
			_, err := records.Mark(ctx, attendance.MarkAttendanceRequest{
				EmployeeID: req.EmployeeID,
				Date:       day.Format(attendance.DateLayout),
				Status:     status,
			})
			if err != nil && !isConflict(err) {
				logger.Fatal("seed attendance failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
			}
			if err == nil {
				marked++
			}
		}
	}

	logger.Info("seed complete", zap.Int("employees", len(demoEmployees)), zap.Int("attendance_marked", marked))
}

func isConflict(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.Code == apperror.CodeConflict
}

func pastWeekdays(from time.Time, n int) []time.Time {
	days := make([]time.Time, 0, n)
	for d := from.AddDate(0, 0, -1); len(days) < n; d = d.AddDate(0, 0, -1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		days = append(days, d)
	}
	return days
}
