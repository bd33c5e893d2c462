package apperror

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var initOnce sync.Once

// Init makes the gin validator report json field names (employee_id) instead of Go names (EmployeeID).
func Init() {
	initOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(func(fld reflect.StructField) string {
				name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
				if name == "-" {
					return ""
				}
				return name
			})
		}
	})
}

// ValidateStruct runs the `binding` tags of obj through gin's validator and
// returns a 422 AppError describing every failing field.
func ValidateStruct(obj any) error {
	Init()
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return MapValidationError(err)
	}
	return nil
}
