package serverutils

import (
	"errors"

	"conjoint-survey-be/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

type ErrorBody struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) ErrorBody {
	return ErrorBody{
		Success: false,
		Code:    code,
		Message: message,
	}
}

var validate = validator.New()

// ValidateRequest runs struct tag validation and reports the first failing
// field as a validation error.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]
		return apperrors.Validation("field %s failed on rule %s", first.Field(), first.Tag())
	}
	return apperrors.Validation("invalid request body")
}

// ErrorHandlerMiddleware translates the error taxonomy into HTTP statuses at
// the boundary. Services return typed errors and never touch status codes.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		status := fiber.StatusInternalServerError
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			switch appErr.Kind {
			case apperrors.KindNotFound:
				status = fiber.StatusNotFound
			case apperrors.KindValidation:
				status = fiber.StatusBadRequest
			case apperrors.KindDuplicateWrite, apperrors.KindState:
				status = fiber.StatusConflict
			case apperrors.KindStoreUnavailable:
				status = fiber.StatusServiceUnavailable
			}
		}
		return ctx.Status(status).JSON(ErrorResponse(status, err.Error()))
	}
}
