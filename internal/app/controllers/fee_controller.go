package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sandesh/institutecrm/internal/app/models/dto"
	"github.com/sandesh/institutecrm/internal/app/services"
	"github.com/sandesh/institutecrm/internal/middleware"
)

// FeeController handles fee CRUD
type FeeController struct {
	feeService *services.FeeService
}

// NewFeeController creates a new FeeController
func NewFeeController(feeService *services.FeeService) *FeeController {
	return &FeeController{feeService: feeService}
}

// ListFees lists fee records
// @Summary List fees
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param student query int false "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Fee}
// @Router /fees [get]
func (c *FeeController) ListFees(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}

	var req dto.FeeFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	fees, err := c.feeService.List(ctx, sub, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(fees))
}

// GetFee retrieves one fee record
// @Summary Get fee by ID
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Success 200 {object} dto.APIResponse{data=models.Fee}
// @Failure 404 {object} dto.ErrorResponse "Fee not found"
// @Router /fees/{id} [get]
func (c *FeeController) GetFee(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	fee, err := c.feeService.Get(ctx, sub, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(fee))
}

// CreateFee records a fee installment
// @Summary Create fee
// @Description Records an installment; the collector and collection date are server-assigned
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFeeRequest true "Fee data"
// @Success 201 {object} dto.APIResponse{data=models.Fee}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /fees [post]
func (c *FeeController) CreateFee(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}

	var req dto.CreateFeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	fee, err := c.feeService.Create(ctx, sub, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(fee))
}

// UpdateFee applies a partial update
// @Summary Update fee
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Param request body dto.UpdateFeeRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Fee}
// @Router /fees/{id} [put]
func (c *FeeController) UpdateFee(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateFeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	fee, err := c.feeService.Update(ctx, sub, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(fee))
}

// DeleteFee removes a fee record
// @Summary Delete fee
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Success 200 {object} dto.APIResponse
// @Router /fees/{id} [delete]
func (c *FeeController) DeleteFee(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.feeService.Delete(ctx, sub, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"deleted": id}))
}
