package stats

import (
	"context"

	"hrms-lite/internal/attendance"
	"hrms-lite/internal/employee"
	"hrms-lite/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Service interface {
	Get(ctx context.Context) (StatsResponse, error)
}

type service struct {
	employees  employee.Repository
	attendance attendance.Repository
	logger     *zap.Logger
}

func NewService(employees employee.Repository, attendance attendance.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("stats.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("stats.service")
	}
	return &service{employees: employees, attendance: attendance, logger: l}
}

// Get runs four independent counts. They are not taken from one snapshot.
func (s *service) Get(ctx context.Context) (StatsResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	var (
		resp StatsResponse
		err  error
	)
	if resp.TotalEmployees, err = s.employees.Count(ctx); err != nil {
		log.Error("count employees failed", zap.Error(err))
		return StatsResponse{}, err
	}
	if resp.TotalAttendanceRecords, err = s.attendance.Count(ctx, attendance.Filter{}); err != nil {
		log.Error("count attendance failed", zap.Error(err))
		return StatsResponse{}, err
	}
	if resp.PresentCount, err = s.attendance.Count(ctx, attendance.Filter{Status: attendance.StatusPresent}); err != nil {
		log.Error("count present failed", zap.Error(err))
		return StatsResponse{}, err
	}
	if resp.AbsentCount, err = s.attendance.Count(ctx, attendance.Filter{Status: attendance.StatusAbsent}); err != nil {
		log.Error("count absent failed", zap.Error(err))
		return StatsResponse{}, err
	}

	return resp, nil
}
