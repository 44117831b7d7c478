package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sandesh/institutecrm/internal/app/models/dto"
	"github.com/sandesh/institutecrm/internal/app/services"
	"github.com/sandesh/institutecrm/internal/middleware"
)

// AuthController handles login and token refresh
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login authenticates a user
// @Summary Obtain a token pair
// @Description Exchanges username and password for an access/refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Token pair issued"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/token [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	tokens, err := c.authService.Login(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(tokens))
}

// RefreshToken exchanges a refresh token for a new pair
// @Summary Refresh a token pair
// @Description Exchanges a live refresh token for a new access/refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Token pair issued"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Token expired, revoked or unknown"
// @Router /auth/token/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	tokens, err := c.authService.RefreshToken(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(tokens))
}
