package stats_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hrms-lite/internal/attendance"
	attendanceMock "hrms-lite/internal/attendance/mock"
	employeeMock "hrms-lite/internal/employee/mock"
	"hrms-lite/internal/stats"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStatsService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("four counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		employees := employeeMock.NewMockRepository(ctrl)
		records := attendanceMock.NewMockRepository(ctrl)

		employees.EXPECT().Count(ctx).Return(int64(2), nil)
		records.EXPECT().Count(ctx, attendance.Filter{}).Return(int64(5), nil)
		records.EXPECT().Count(ctx, attendance.Filter{Status: attendance.StatusPresent}).Return(int64(3), nil)
		records.EXPECT().Count(ctx, attendance.Filter{Status: attendance.StatusAbsent}).Return(int64(2), nil)

		resp, err := stats.NewService(employees, records).Get(ctx)

		assert.NoError(t, err)
		assert.Equal(t, stats.StatsResponse{
			TotalEmployees:         2,
			TotalAttendanceRecords: 5,
			PresentCount:           3,
			AbsentCount:            2,
		}, resp)
	})

	t.Run("empty store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		employees := employeeMock.NewMockRepository(ctrl)
		records := attendanceMock.NewMockRepository(ctrl)

		employees.EXPECT().Count(ctx).Return(int64(0), nil)
		records.EXPECT().Count(ctx, gomock.Any()).Times(3).Return(int64(0), nil)

		resp, err := stats.NewService(employees, records).Get(ctx)

		assert.NoError(t, err)
		assert.Equal(t, stats.StatsResponse{}, resp)
	})

	t.Run("store failure stops early", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		employees := employeeMock.NewMockRepository(ctrl)
		records := attendanceMock.NewMockRepository(ctrl)
		dbErr := errors.New("connection refused")

		employees.EXPECT().Count(ctx).Return(int64(0), dbErr)

		_, err := stats.NewService(employees, records).Get(ctx)

		assert.ErrorIs(t, err, dbErr)
	})
}

type fakeStatsService struct {
	resp stats.StatsResponse
	err  error
}

func (f *fakeStatsService) Get(ctx context.Context) (stats.StatsResponse, error) {
	return f.resp, f.err
}

func TestStatsHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		r := gin.New()
		stats.RegisterRoutes(r.Group("/api"), stats.NewHandler(&fakeStatsService{
			resp: stats.StatsResponse{TotalEmployees: 1, TotalAttendanceRecords: 1, PresentCount: 1},
		}))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var env struct {
			Ok   bool                `json:"ok"`
			Data stats.StatsResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.Equal(t, int64(1), env.Data.PresentCount)
		assert.Contains(t, w.Body.String(), `"absent_count":0`)
	})

	t.Run("failure is logged and hidden", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		r := gin.New()
		stats.RegisterRoutes(r.Group("/api"), stats.NewHandler(&fakeStatsService{err: errors.New("count timeout")}, zap.New(core)))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal server error")
		assert.NotContains(t, w.Body.String(), "count timeout")

		failed := logs.FilterMessage("stats request failed").All()
		assert.Len(t, failed, 1)
		assert.Equal(t, "stats.handler", failed[0].LoggerName)
		assert.Equal(t, "count timeout", failed[0].ContextMap()["error"])
	})
}
