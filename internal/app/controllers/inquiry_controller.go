package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sandesh/institutecrm/internal/app/models/dto"
	"github.com/sandesh/institutecrm/internal/app/services"
	"github.com/sandesh/institutecrm/internal/middleware"
)

// InquiryController handles inquiry CRUD and follow-ups
type InquiryController struct {
	inquiryService *services.InquiryService
}

// NewInquiryController creates a new InquiryController
func NewInquiryController(inquiryService *services.InquiryService) *InquiryController {
	return &InquiryController{inquiryService: inquiryService}
}

// ListInquiries lists inquiries visible to the caller
// @Summary List inquiries
// @Description Lists inquiries within the caller's scope, optionally filtered by a name/mobile substring
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name or mobile substring"
// @Success 200 {object} dto.APIResponse{data=[]models.Inquiry}
// @Router /inquiries [get]
func (c *InquiryController) ListInquiries(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}

	var req dto.InquiryFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	inquiries, err := c.inquiryService.List(ctx, sub, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(inquiries))
}

// GetInquiry retrieves one inquiry
// @Summary Get inquiry by ID
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Inquiry ID"
// @Success 200 {object} dto.APIResponse{data=models.Inquiry}
// @Failure 404 {object} dto.ErrorResponse "Inquiry not found"
// @Router /inquiries/{id} [get]
func (c *InquiryController) GetInquiry(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	inquiry, err := c.inquiryService.Get(ctx, sub, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(inquiry))
}

// CreateInquiry registers a new inquiry
// @Summary Create inquiry
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateInquiryRequest true "Inquiry data"
// @Success 201 {object} dto.APIResponse{data=models.Inquiry}
// @Failure 409 {object} dto.ErrorResponse "Mobile already exists"
// @Router /inquiries [post]
func (c *InquiryController) CreateInquiry(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}

	var req dto.CreateInquiryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	inquiry, err := c.inquiryService.Create(ctx, sub, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(inquiry))
}

// UpdateInquiry applies a partial update
// @Summary Update inquiry
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Inquiry ID"
// @Param request body dto.UpdateInquiryRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Inquiry}
// @Router /inquiries/{id} [put]
func (c *InquiryController) UpdateInquiry(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateInquiryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	inquiry, err := c.inquiryService.Update(ctx, sub, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(inquiry))
}

// DeleteInquiry removes an inquiry
// @Summary Delete inquiry
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Inquiry ID"
// @Success 200 {object} dto.APIResponse
// @Router /inquiries/{id} [delete]
func (c *InquiryController) DeleteInquiry(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.inquiryService.Delete(ctx, sub, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"deleted": id}))
}

// AddFollowUp appends a follow-up note
// @Summary Add inquiry follow-up
// @Description Appends a timestamped note to an inquiry within the caller's scope
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Inquiry ID"
// @Param request body dto.AddFollowUpRequest true "Note"
// @Success 201 {object} dto.APIResponse{data=models.InquiryFollowUp}
// @Failure 404 {object} dto.ErrorResponse "Inquiry not found"
// @Router /inquiries/{id}/add_followup [post]
func (c *InquiryController) AddFollowUp(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.AddFollowUpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	followUp, err := c.inquiryService.AddFollowUp(ctx, sub, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(followUp))
}
