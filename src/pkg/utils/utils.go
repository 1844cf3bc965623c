package utils

import (
	"encoding/json"
	"fmt"

	httpError "kitchen-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

// Result is the envelope every usecase returns. Data is set on success, Error
// carries an httpError.CommonError on failure.
type Result struct {
	Data  interface{}
	Error error
}

type responseBody struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(responseBody{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ResponseError(err error, ctx *fiber.Ctx) error {
	if commonErr, ok := err.(*httpError.CommonError); ok {
		return ctx.Status(commonErr.Code).JSON(responseBody{
			Success: false,
			Message: commonErr.Message,
		})
	}
	return ctx.Status(fiber.StatusBadRequest).JSON(responseBody{
		Success: false,
		Message: err.Error(),
	})
}

// ConvertString marshal anything into a loggable string
func ConvertString(v interface{}) string {
	switch d := v.(type) {
	case string:
		return d
	case []byte:
		return string(d)
	case error:
		return d.Error()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%+v", v)
		}
		return string(data)
	}
}

func ConvertInt(v interface{}) int {
	switch d := v.(type) {
	case int:
		return d
	case int64:
		return int(d)
	case float64:
		return int(d)
	case string:
		var n int
		fmt.Sscanf(d, "%d", &n)
		return n
	default:
		return 0
	}
}
