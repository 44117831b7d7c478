package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sandesh/institutecrm/internal/app/models/dto"
	"github.com/sandesh/institutecrm/internal/app/policy"
	"github.com/sandesh/institutecrm/internal/middleware"
)

// parseIDParam reads the :id path parameter. On failure it writes a 400
// response and returns false.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID").
			WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// requireSubject fetches the authenticated subject set by JWTAuth. On
// failure it writes a 401 response and returns false.
func requireSubject(ctx *gin.Context) (policy.Subject, bool) {
	sub, ok := middleware.CurrentSubject(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return policy.Subject{}, false
	}
	return sub, true
}
