package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sandesh/institutecrm/internal/app/models/dto"
	"github.com/sandesh/institutecrm/internal/app/services"
	"github.com/sandesh/institutecrm/internal/middleware"
)

// OutreachController handles placement outreach CRUD
type OutreachController struct {
	outreachService *services.OutreachService
}

// NewOutreachController creates a new OutreachController
func NewOutreachController(outreachService *services.OutreachService) *OutreachController {
	return &OutreachController{outreachService: outreachService}
}

// ListOutreach lists outreach records visible to the caller
// @Summary List outreach
// @Tags outreach
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.PlacementOutreach}
// @Router /outreach [get]
func (c *OutreachController) ListOutreach(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}

	records, err := c.outreachService.List(ctx, sub)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(records))
}

// GetOutreach retrieves one outreach record
// @Summary Get outreach by ID
// @Tags outreach
// @Produce json
// @Security BearerAuth
// @Param id path int true "Outreach ID"
// @Success 200 {object} dto.APIResponse{data=models.PlacementOutreach}
// @Failure 404 {object} dto.ErrorResponse "Outreach not found"
// @Router /outreach/{id} [get]
func (c *OutreachController) GetOutreach(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	record, err := c.outreachService.Get(ctx, sub, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(record))
}

// CreateOutreach logs an outreach event
// @Summary Create outreach
// @Description Logs an outreach event; the officer and date are server-assigned
// @Tags outreach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateOutreachRequest true "Outreach data"
// @Success 201 {object} dto.APIResponse{data=models.PlacementOutreach}
// @Router /outreach [post]
func (c *OutreachController) CreateOutreach(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}

	var req dto.CreateOutreachRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	record, err := c.outreachService.Create(ctx, sub, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(record))
}

// UpdateOutreach applies a partial update
// @Summary Update outreach
// @Tags outreach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Outreach ID"
// @Param request body dto.UpdateOutreachRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.PlacementOutreach}
// @Router /outreach/{id} [put]
func (c *OutreachController) UpdateOutreach(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateOutreachRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	record, err := c.outreachService.Update(ctx, sub, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(record))
}

// DeleteOutreach removes an outreach record
// @Summary Delete outreach
// @Tags outreach
// @Produce json
// @Security BearerAuth
// @Param id path int true "Outreach ID"
// @Success 200 {object} dto.APIResponse
// @Router /outreach/{id} [delete]
func (c *OutreachController) DeleteOutreach(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.outreachService.Delete(ctx, sub, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"deleted": id}))
}
