package httpError

import "github.com/gofiber/fiber/v2"

// CommonError is the error shape carried through usecase results and
// rendered by utils.ResponseError.
type CommonError struct {
	ResponseCode int    `json:"-"`
	Code         string `json:"code"`
	Message      string `json:"message"`
}

func (e *CommonError) Error() string {
	return e.Message
}

func NewBadRequest() *CommonError {
	return &CommonError{
		ResponseCode: fiber.StatusBadRequest,
		Code:         "BAD_REQUEST",
		Message:      "bad request",
	}
}

func NewNotFound() *CommonError {
	return &CommonError{
		ResponseCode: fiber.StatusNotFound,
		Code:         "NOT_FOUND",
		Message:      "data not found",
	}
}

func NewConflict() *CommonError {
	return &CommonError{
		ResponseCode: fiber.StatusConflict,
		Code:         "CONFLICT",
		Message:      "conflict",
	}
}

func NewUnauthorized() *CommonError {
	return &CommonError{
		ResponseCode: fiber.StatusUnauthorized,
		Code:         "UNAUTHORIZED",
		Message:      "unauthorized",
	}
}

func NewInternalServerError() *CommonError {
	return &CommonError{
		ResponseCode: fiber.StatusInternalServerError,
		Code:         "INTERNAL_SERVER_ERROR",
		Message:      "internal server error",
	}
}
