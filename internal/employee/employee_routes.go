package employee

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:employee_id", handler.GetByEmployeeID)
		employees.POST("", handler.Create)
		employees.PUT("/:employee_id", handler.Update)
		employees.DELETE("/:employee_id", handler.Delete)
	}
}
