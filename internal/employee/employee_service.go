package employee

import (
	"context"
	"errors"
	"strings"
	"time"

	employeeerrors "hrms-lite/internal/employee/errors"
	"hrms-lite/internal/shared/apperror"
	"hrms-lite/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) (EmployeeListResponse, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeResponse, error)
	Update(ctx context.Context, employeeID string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, employeeID string) error
}

// AttendanceCascade is the slice of the attendance ledger the directory needs
// to keep the employee_id foreign key consistent.
type AttendanceCascade interface {
	ReassignEmployee(ctx context.Context, fromEmployeeID, toEmployeeID string) (int64, error)
	DeleteByEmployee(ctx context.Context, employeeID string) (int64, error)
}

type service struct {
	repo       Repository
	attendance AttendanceCascade
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(repo Repository, attendance AttendanceCascade, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:       repo,
		attendance: attendance,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("email", req.Email),
	)

	if err := apperror.ValidateStruct(req); err != nil {
		return EmployeeResponse{}, err
	}
	req.Email = normalizeEmail(req.Email)

	taken, err := s.repo.ExistsByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("create employee check employee_id failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	if taken {
		s.logger.Warn("create employee duplicate employee_id", zap.String("employee_id", req.EmployeeID))
		return EmployeeResponse{}, employeeerrors.EmployeeIDAlreadyExists(req.EmployeeID)
	}

	taken, err = s.repo.ExistsByEmail(ctx, req.Email, "")
	if err != nil {
		s.logger.Error("create employee check email failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	if taken {
		s.logger.Warn("create employee duplicate email", zap.String("email", req.Email))
		return EmployeeResponse{}, employeeerrors.EmailAlreadyExists(req.Email)
	}

	empl := &Employee{
		ID:         uuid.New(),
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
		CreatedAt:  s.now(),
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err, empl)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("id", empl.ID.String()),
		zap.String("employee_id", empl.EmployeeID),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) (EmployeeListResponse, error) {
	s.logger.Debug("get all employees requested", zap.String("request_id", contextutil.GetRequestID(ctx)))

	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return EmployeeListResponse{}, mapRepositoryError(err, nil)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeResponse, error) {
	s.logger.Debug("get employee requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("employee_id", employeeID),
	)

	empl, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return EmployeeResponse{}, s.lookupError(err, employeeID)
	}

	return mapToResponse(*empl), nil
}

// Update replaces every mutable field of the employee stored under employeeID.
// When the identifier itself changes, attendance records are re-keyed afterwards
// in a separate, non-atomic step.
func (s *service) Update(ctx context.Context, employeeID string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("new_employee_id", req.EmployeeID),
	)

	if err := apperror.ValidateStruct(req); err != nil {
		return EmployeeResponse{}, err
	}
	req.Email = normalizeEmail(req.Email)

	if _, err := s.repo.FindByEmployeeID(ctx, employeeID); err != nil {
		return EmployeeResponse{}, s.lookupError(err, employeeID)
	}

	renamed := req.EmployeeID != employeeID
	if renamed {
		taken, err := s.repo.ExistsByEmployeeID(ctx, req.EmployeeID)
		if err != nil {
			s.logger.Error("update employee check employee_id failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}
		if taken {
			s.logger.Warn("update employee employee_id taken", zap.String("new_employee_id", req.EmployeeID))
			return EmployeeResponse{}, employeeerrors.EmployeeIDTaken(req.EmployeeID)
		}
	}

	taken, err := s.repo.ExistsByEmail(ctx, req.Email, employeeID)
	if err != nil {
		s.logger.Error("update employee check email failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	if taken {
		s.logger.Warn("update employee email taken", zap.String("email", req.Email))
		return EmployeeResponse{}, employeeerrors.EmailTaken(req.Email)
	}

	replacement := &Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
	}
	if err := s.repo.UpdateByEmployeeID(ctx, employeeID, replacement); err != nil {
		s.logger.Error("update employee persist failed", zap.String("request_id", rid), zap.Error(err))
		if isNotFound(err) {
			return EmployeeResponse{}, employeeerrors.EmployeeNotFound(employeeID)
		}
		return EmployeeResponse{}, mapRepositoryError(err, replacement)
	}

	if renamed {
		moved, err := s.attendance.ReassignEmployee(ctx, employeeID, req.EmployeeID)
		if err != nil {
			s.logger.Error("update employee attendance cascade failed",
				zap.String("request_id", rid),
				zap.String("from", employeeID),
				zap.String("to", req.EmployeeID),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
		s.logger.Info("attendance re-keyed",
			zap.String("from", employeeID),
			zap.String("to", req.EmployeeID),
			zap.Int64("records", moved),
		)
	}

	updated, err := s.repo.FindByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return EmployeeResponse{}, s.lookupError(err, req.EmployeeID)
	}

	s.logger.Info("update employee success", zap.String("request_id", rid), zap.String("employee_id", req.EmployeeID))

	return mapToResponse(*updated), nil
}

// Delete removes the employee and then, as a second independent step, every
// attendance record keyed by the same employee_id.
func (s *service) Delete(ctx context.Context, employeeID string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)

	if _, err := s.repo.FindByEmployeeID(ctx, employeeID); err != nil {
		return s.lookupError(err, employeeID)
	}

	if err := s.repo.DeleteByEmployeeID(ctx, employeeID); err != nil {
		s.logger.Error("delete employee failed", zap.String("request_id", rid), zap.Error(err))
		if isNotFound(err) {
			return employeeerrors.EmployeeNotFound(employeeID)
		}
		return err
	}

	removed, err := s.attendance.DeleteByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("delete employee attendance cascade failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Int64("attendance_removed", removed),
	)
	return nil
}

func (s *service) lookupError(err error, employeeID string) error {
	if isNotFound(err) {
		return employeeerrors.EmployeeNotFound(employeeID)
	}
	s.logger.Error("employee lookup failed", zap.String("employee_id", employeeID), zap.Error(err))
	return err
}

// normalizeEmail lowercases the domain part. The local part is kept as typed.
func normalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

func isNotFound(err error) bool {
	return errors.Is(mapRepositoryError(err, nil), employeeerrors.ErrEmployeeNotFound)
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         empl.ID.String(),
		EmployeeID: empl.EmployeeID,
		FullName:   empl.FullName,
		Email:      empl.Email,
		Department: empl.Department,
		CreatedAt:  empl.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(empls []Employee) EmployeeListResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return EmployeeListResponse{Employees: res, Total: len(res)}
}
