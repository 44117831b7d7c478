package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sandesh/institutecrm/internal/app/models/dto"
	"github.com/sandesh/institutecrm/internal/pkg/apperrors"
	"github.com/sandesh/institutecrm/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Scope misses
// surface as plain 404s; only disallowed write operation types yield 403.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		handleCustomError(c, custom)
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Account is disabled")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrTokenNotFound):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token not found")
	case errors.Is(err, apperrors.ErrTokenRevoked):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Token revoked")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")
	case errors.Is(err, apperrors.ErrMobileAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Inquiry with this mobile already exists")
	case errors.Is(err, apperrors.ErrInquiryAlreadyAdmitted):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Inquiry already has an enrolled student")
	case errors.Is(err, apperrors.ErrStudentMobileExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Student with this mobile already exists")
	case errors.Is(err, apperrors.ErrAttendanceDuplicate):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Attendance already marked for this student and date")
	case errors.Is(err, apperrors.ErrUsernameAlreadyUsed):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Username already in use")
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed")
	case isNotFound(err):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, err.Error())
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// HandleValidationError reports a request binding failure
func HandleValidationError(c *gin.Context, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
		WithDetails(err.Error())
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

func handleCustomError(c *gin.Context, custom *apperrors.CustomError) {
	status := http.StatusInternalServerError
	code := dto.ErrorCodeInternalServer

	switch {
	case errors.Is(custom.Err, apperrors.ErrValidationFailed):
		status, code = http.StatusBadRequest, dto.ErrorCodeValidationFailed
	case errors.Is(custom.Err, apperrors.ErrResourceNotFound):
		status, code = http.StatusNotFound, dto.ErrorCodeResourceNotFound
	case errors.Is(custom.Err, apperrors.ErrPermissionDenied):
		status, code = http.StatusForbidden, dto.ErrorCodeForbidden
	case errors.Is(custom.Err, apperrors.ErrConflict):
		status, code = http.StatusConflict, dto.ErrorCodeResourceAlreadyExists
	}

	errorDetail := dto.NewErrorDetail(code, custom.Message)
	if custom.Field != "" {
		errorDetail = errorDetail.WithField(custom.Field)
	}
	if custom.Details != nil {
		errorDetail = errorDetail.WithDetails(custom.Details)
	}
	c.JSON(status, dto.NewErrorResponse(errorDetail))
}

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrResourceNotFound) ||
		errors.Is(err, apperrors.ErrUserNotFound) ||
		errors.Is(err, apperrors.ErrInquiryNotFound) ||
		errors.Is(err, apperrors.ErrBatchNotFound) ||
		errors.Is(err, apperrors.ErrStudentNotFound) ||
		errors.Is(err, apperrors.ErrFeeNotFound) ||
		errors.Is(err, apperrors.ErrAttendanceNotFound) ||
		errors.Is(err, apperrors.ErrOutreachNotFound)
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
