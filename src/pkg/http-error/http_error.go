package httpError

import "github.com/gofiber/fiber/v2"

// CommonError is the error object carried inside utils.Result. The Code is the
// HTTP status the controller should answer with; Message is shown to the user
// as-is, so it must name the specific reason (which coupon rule failed, which
// state transition was illegal) rather than a generic failure.
type CommonError struct {
	Code         int    `json:"code"`
	ResponseCode string `json:"responseCode,omitempty"`
	Message      string `json:"message"`
}

func (e *CommonError) Error() string {
	return e.Message
}

func NewBadRequest() *CommonError {
	return &CommonError{
		Code:         fiber.StatusBadRequest,
		ResponseCode: "BAD_REQUEST",
		Message:      "bad request",
	}
}

func NewUnauthorized() *CommonError {
	return &CommonError{
		Code:         fiber.StatusUnauthorized,
		ResponseCode: "UNAUTHORIZED",
		Message:      "unauthorized",
	}
}

func NewForbidden() *CommonError {
	return &CommonError{
		Code:         fiber.StatusForbidden,
		ResponseCode: "FORBIDDEN",
		Message:      "forbidden",
	}
}

func NewNotFound() *CommonError {
	return &CommonError{
		Code:         fiber.StatusNotFound,
		ResponseCode: "NOT_FOUND",
		Message:      "not found",
	}
}

func NewConflict() *CommonError {
	return &CommonError{
		Code:         fiber.StatusConflict,
		ResponseCode: "CONFLICT",
		Message:      "conflict",
	}
}

func NewInternalServerError() *CommonError {
	return &CommonError{
		Code:         fiber.StatusInternalServerError,
		ResponseCode: "INTERNAL_SERVER_ERROR",
		Message:      "internal server error",
	}
}
