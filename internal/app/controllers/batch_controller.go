package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sandesh/institutecrm/internal/app/models/dto"
	"github.com/sandesh/institutecrm/internal/app/services"
	"github.com/sandesh/institutecrm/internal/middleware"
)

// BatchController handles batch CRUD
type BatchController struct {
	batchService *services.BatchService
}

// NewBatchController creates a new BatchController
func NewBatchController(batchService *services.BatchService) *BatchController {
	return &BatchController{batchService: batchService}
}

// ListBatches lists batches visible to the caller
// @Summary List batches
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Batch}
// @Router /batches [get]
func (c *BatchController) ListBatches(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}

	batches, err := c.batchService.List(ctx, sub)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(batches))
}

// GetBatch retrieves one batch
// @Summary Get batch by ID
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Success 200 {object} dto.APIResponse{data=models.Batch}
// @Failure 404 {object} dto.ErrorResponse "Batch not found"
// @Router /batches/{id} [get]
func (c *BatchController) GetBatch(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	batch, err := c.batchService.Get(ctx, sub, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(batch))
}

// CreateBatch schedules a new batch
// @Summary Create batch
// @Tags batches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBatchRequest true "Batch data"
// @Success 201 {object} dto.APIResponse{data=models.Batch}
// @Router /batches [post]
func (c *BatchController) CreateBatch(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}

	var req dto.CreateBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	batch, err := c.batchService.Create(ctx, sub, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(batch))
}

// UpdateBatch applies a partial update
// @Summary Update batch
// @Tags batches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Param request body dto.UpdateBatchRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Batch}
// @Router /batches/{id} [put]
func (c *BatchController) UpdateBatch(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	batch, err := c.batchService.Update(ctx, sub, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(batch))
}

// DeleteBatch removes a batch
// @Summary Delete batch
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Success 200 {object} dto.APIResponse
// @Router /batches/{id} [delete]
func (c *BatchController) DeleteBatch(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.batchService.Delete(ctx, sub, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"deleted": id}))
}
