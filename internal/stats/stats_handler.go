package stats

import (
	"net/http"

	"hrms-lite/internal/shared/apperror"
	"hrms-lite/internal/shared/contextutil"
	"hrms-lite/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("stats.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("stats.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	log := contextutil.GetLogger(c.Request.Context(), h.logger)
	if httpErr.Status >= http.StatusInternalServerError {
		log.Error("stats request failed", zap.String("path", c.FullPath()), zap.Error(err))
	} else {
		log.Warn("stats request rejected",
			zap.String("path", c.FullPath()),
			zap.Int("status", httpErr.Status),
			zap.String("message", httpErr.Message),
		)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Get(c *gin.Context) {
	h.logger.Debug("http get stats")

	resp, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/stats", h.Get)
}
