package attendance

import (
	"context"
	"errors"
	"math"
	"time"

	attendanceerrors "hrms-lite/internal/attendance/errors"
	"hrms-lite/internal/employee"
	employeeerrors "hrms-lite/internal/employee/errors"
	"hrms-lite/internal/shared/apperror"
	"hrms-lite/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UnknownEmployeeName labels records whose employee no longer exists.
const UnknownEmployeeName = "Unknown"

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, filter ListFilter) (AttendanceListResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) (AttendanceListResponse, error)
	Summary(ctx context.Context, employeeID string) (AttendanceSummaryResponse, error)
	Delete(ctx context.Context, attendanceID string) error
	Export(ctx context.Context, filter ListFilter) ([]byte, error)
}

type service struct {
	repo      Repository
	employees employee.Repository
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(repo Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		repo:      repo,
		employees: employees,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    l,
	}
}

func (s *service) Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("mark attendance requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
		zap.String("status", string(req.Status)),
	)

	if err := apperror.ValidateStruct(req); err != nil {
		return AttendanceResponse{}, err
	}

	empl, err := s.findEmployee(ctx, req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	marked, err := s.repo.ExistsByEmployeeAndDate(ctx, req.EmployeeID, req.Date)
	if err != nil {
		log.Error("mark attendance duplicate check failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	if marked {
		log.Warn("mark attendance duplicate", zap.String("employee_id", req.EmployeeID), zap.String("date", req.Date))
		return AttendanceResponse{}, attendanceerrors.AlreadyMarked(req.EmployeeID, req.Date)
	}

	a := &Attendance{
		ID:         uuid.New(),
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     req.Status,
		MarkedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		log.Error("mark attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err, a)
	}

	log.Info("mark attendance success",
		zap.String("id", a.ID.String()),
		zap.String("employee_id", a.EmployeeID),
		zap.String("date", a.Date),
	)

	return mapToResponse(*a, empl.FullName), nil
}

// GetAll resolves employee names through one directory read per call.
func (s *service) GetAll(ctx context.Context, filter ListFilter) (AttendanceListResponse, error) {
	contextutil.GetLogger(ctx, s.logger).Debug("list attendance requested",
		zap.String("date_filter", filter.DateFilter),
		zap.String("employee_id", filter.EmployeeID),
	)

	if err := apperror.ValidateStruct(filter); err != nil {
		return AttendanceListResponse{}, err
	}

	rows, err := s.repo.FindAll(ctx, Filter{EmployeeID: filter.EmployeeID, Date: filter.DateFilter})
	if err != nil {
		return AttendanceListResponse{}, mapRepositoryError(err, nil)
	}

	names, err := s.employeeNames(ctx)
	if err != nil {
		return AttendanceListResponse{}, err
	}

	return mapToListResponse(rows, func(employeeID string) string {
		if name, ok := names[employeeID]; ok {
			return name
		}
		return UnknownEmployeeName
	}), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) (AttendanceListResponse, error) {
	contextutil.GetLogger(ctx, s.logger).Debug("list attendance for employee requested", zap.String("employee_id", employeeID))

	empl, err := s.findEmployee(ctx, employeeID)
	if err != nil {
		return AttendanceListResponse{}, err
	}

	rows, err := s.repo.FindAll(ctx, Filter{EmployeeID: employeeID})
	if err != nil {
		return AttendanceListResponse{}, mapRepositoryError(err, nil)
	}

	return mapToListResponse(rows, func(string) string { return empl.FullName }), nil
}

func (s *service) Summary(ctx context.Context, employeeID string) (AttendanceSummaryResponse, error) {
	contextutil.GetLogger(ctx, s.logger).Debug("attendance summary requested", zap.String("employee_id", employeeID))

	empl, err := s.findEmployee(ctx, employeeID)
	if err != nil {
		return AttendanceSummaryResponse{}, err
	}

	total, err := s.repo.Count(ctx, Filter{EmployeeID: employeeID})
	if err != nil {
		return AttendanceSummaryResponse{}, err
	}
	present, err := s.repo.Count(ctx, Filter{EmployeeID: employeeID, Status: StatusPresent})
	if err != nil {
		return AttendanceSummaryResponse{}, err
	}

	return AttendanceSummaryResponse{
		EmployeeID:           empl.EmployeeID,
		EmployeeName:         empl.FullName,
		TotalDays:            total,
		PresentDays:          present,
		AbsentDays:           total - present,
		AttendancePercentage: percentage(present, total),
	}, nil
}

func (s *service) Delete(ctx context.Context, attendanceID string) error {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("delete attendance requested", zap.String("attendance_id", attendanceID))

	id, err := uuid.Parse(attendanceID)
	if err != nil {
		return attendanceerrors.ErrInvalidAttendanceID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		mapped := mapRepositoryError(err, nil)
		if !errors.Is(mapped, attendanceerrors.ErrAttendanceNotFound) {
			log.Error("delete attendance failed", zap.Error(err))
		}
		return mapped
	}

	log.Info("delete attendance success", zap.String("attendance_id", attendanceID))
	return nil
}

func (s *service) Export(ctx context.Context, filter ListFilter) ([]byte, error) {
	list, err := s.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	content, err := renderWorkbook(list.Records)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("attendance export render failed", zap.Error(err))
		return nil, err
	}
	return content, nil
}

func (s *service) findEmployee(ctx context.Context, employeeID string) (*employee.Employee, error) {
	empl, err := s.employees.FindByEmployeeID(ctx, employeeID)
	if err == nil {
		return empl, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, mongo.ErrNoDocuments) {
		return nil, employeeerrors.EmployeeNotFound(employeeID)
	}
	contextutil.GetLogger(ctx, s.logger).Error("employee lookup failed", zap.String("employee_id", employeeID), zap.Error(err))
	return nil, err
}

func (s *service) employeeNames(ctx context.Context) (map[string]string, error) {
	empls, err := s.employees.FindAll(ctx)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("employee name lookup failed", zap.Error(err))
		return nil, err
	}
	names := make(map[string]string, len(empls))
	for _, e := range empls {
		names[e.EmployeeID] = e.FullName
	}
	return names, nil
}

// percentage rounds to two decimals, halves to even, and is 0 when there are no days.
func percentage(present, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.RoundToEven(float64(present)/float64(total)*100*100) / 100
}

func mapToResponse(a Attendance, employeeName string) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID.String(),
		EmployeeID:   a.EmployeeID,
		EmployeeName: employeeName,
		Date:         a.Date,
		Status:       a.Status,
		MarkedAt:     a.MarkedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(rows []Attendance, nameOf func(employeeID string) string) AttendanceListResponse {
	res := make([]AttendanceResponse, len(rows))
	for i, a := range rows {
		res[i] = mapToResponse(a, nameOf(a.EmployeeID))
	}
	return AttendanceListResponse{Records: res, Total: len(res)}
}
