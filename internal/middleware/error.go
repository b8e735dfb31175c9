package middleware

import (
	"errors"
	"net/http"

	"dev-quizz/internal/domain"
	"dev-quizz/internal/dto"
	"dev-quizz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const genericErrorMessage = "Internal server error"

// ErrorHandler is a centralized error handling middleware
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()

		// Handle validation errors
		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			log.Warn("Validation errors occurred",
				zap.String("path", c.Path()),
				zap.Int("error_count", len(validationErrs)),
			)
			fields := make([]dto.FieldError, 0, len(validationErrs))
			for _, ve := range validationErrs {
				fields = append(fields, dto.FieldError{Field: ve.Field, Code: string(ve.Code), Message: ve.Message})
			}
			return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    string(domain.CodeValidation),
				Message: validationErrs.Error(),
				Fields:  fields,
			})
		}

		// Handle domain errors
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			status := StatusForCode(domainErr.Code)
			message := domainErr.Message

			if status >= http.StatusInternalServerError {
				log.Error("Request failed",
					zap.String("path", c.Path()),
					zap.String("code", string(domainErr.Code)),
					zap.String("message", domainErr.Message),
					zap.Error(domainErr.Cause),
				)
				message = genericErrorMessage
			} else {
				log.Debug("Request rejected",
					zap.String("path", c.Path()),
					zap.String("code", string(domainErr.Code)),
					zap.Int("status", status),
				)
			}

			return c.Status(status).JSON(dto.ErrorResponse{
				Code:    string(domainErr.Code),
				Message: message,
			})
		}

		// Handle fiber errors
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{
				Code:    "HTTP_ERROR",
				Message: fiberErr.Message,
			})
		}

		log.Error("Unknown error occurred",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    string(domain.CodeInternal),
			Message: genericErrorMessage,
		})
	}
}

// StatusForCode maps domain error codes to HTTP status codes
func StatusForCode(code domain.ErrorCode) int {
	switch code {
	case domain.CodeNotFound, domain.CodeGameNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidInput, domain.CodeQuestionNotFound,
		domain.CodeValidation, domain.CodeMissingField, domain.CodeInvalidFormat, domain.CodeOutOfRange:
		return http.StatusBadRequest
	case domain.CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
