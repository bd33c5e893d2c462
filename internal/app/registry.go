package app

import (
	"hrms-lite/internal/attendance"
	"hrms-lite/internal/employee"
	"hrms-lite/internal/stats"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(router *gin.Engine, store *Store, logger *zap.Logger) {
	// --- Services ---
	employeeService := employee.NewService(store.Employees, store.Attendance, logger)
	attendanceService := attendance.NewService(store.Attendance, store.Employees, logger)
	statsService := stats.NewService(store.Employees, store.Attendance, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	statsHandler := stats.NewHandler(statsService, logger)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		employee.RegisterRoutes(api, employeeHandler)
		attendance.RegisterRoutes(api, attendanceHandler)
		stats.RegisterRoutes(api, statsHandler)
	}
}
