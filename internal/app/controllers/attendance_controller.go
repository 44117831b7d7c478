package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sandesh/institutecrm/internal/app/models/dto"
	"github.com/sandesh/institutecrm/internal/app/services"
	"github.com/sandesh/institutecrm/internal/middleware"
)

// AttendanceController handles attendance CRUD
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// ListAttendance lists attendance records visible to the caller
// @Summary List attendance
// @Description Lists attendance within the caller's scope, optionally filtered by batch, student or date
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param batch query int false "Batch ID"
// @Param student query int false "Student ID"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]models.Attendance}
// @Router /attendance [get]
func (c *AttendanceController) ListAttendance(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}

	var req dto.AttendanceFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	records, err := c.attendanceService.List(ctx, sub, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(records))
}

// GetAttendance retrieves one attendance record
// @Summary Get attendance by ID
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendance ID"
// @Success 200 {object} dto.APIResponse{data=models.Attendance}
// @Failure 404 {object} dto.ErrorResponse "Attendance not found"
// @Router /attendance/{id} [get]
func (c *AttendanceController) GetAttendance(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	record, err := c.attendanceService.Get(ctx, sub, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(record))
}

// CreateAttendance marks a student's attendance
// @Summary Create attendance
// @Description Marks attendance; the trainer is server-assigned and the (student, date) pair must be unique
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAttendanceRequest true "Attendance data"
// @Success 201 {object} dto.APIResponse{data=models.Attendance}
// @Failure 400 {object} dto.ErrorResponse "Duplicate student/date pair"
// @Router /attendance [post]
func (c *AttendanceController) CreateAttendance(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}

	var req dto.CreateAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	record, err := c.attendanceService.Create(ctx, sub, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(record))
}

// UpdateAttendance applies a partial update
// @Summary Update attendance
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendance ID"
// @Param request body dto.UpdateAttendanceRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Attendance}
// @Router /attendance/{id} [put]
func (c *AttendanceController) UpdateAttendance(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	record, err := c.attendanceService.Update(ctx, sub, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(record))
}

// DeleteAttendance removes an attendance record
// @Summary Delete attendance
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendance ID"
// @Success 200 {object} dto.APIResponse
// @Router /attendance/{id} [delete]
func (c *AttendanceController) DeleteAttendance(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.attendanceService.Delete(ctx, sub, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"deleted": id}))
}
