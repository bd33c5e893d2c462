package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	records := r.Group("/attendance")
	{
		records.GET("", h.GetAll)
		records.POST("", h.Mark)
		records.GET("/export", h.Export)
		records.GET("/employee/:employee_id", h.GetByEmployee)
		records.GET("/summary/:employee_id", h.Summary)
		records.DELETE("/:attendance_id", h.Delete)
	}
}
