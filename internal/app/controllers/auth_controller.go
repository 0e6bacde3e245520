// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dapi/studenttrack/internal/app/models/dto"
	"github.com/dapi/studenttrack/internal/app/services"
	"github.com/dapi/studenttrack/internal/middleware"
)

// AuthController handles registration and login endpoints.
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

// RegisterStudent handles student account plus record creation
// @Summary Register a new student
// @Description Creates the login account and the student record in one step. Numeric and date fields are raw form strings.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentRequest true "Student registration form"
// @Success 201 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.APIResponse "Missing fields, bad email pattern or bad semester start"
// @Failure 409 {object} dto.APIResponse "Email or Roll already exists"
// @Router /auth/register/student [post]
func (c *AuthController) RegisterStudent(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student registration payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")))
		return
	}

	student, err := c.authService.RegisterStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      student,
		Message:   "Student registered",
		Timestamp: time.Now(),
	})
}

// RegisterStaff handles staff account creation
// @Summary Register a new staff member
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterStaffRequest true "Staff registration form"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Missing fields or bad email pattern"
// @Failure 409 {object} dto.APIResponse "Staff email already exists"
// @Router /auth/register/staff [post]
func (c *AuthController) RegisterStaff(ctx *gin.Context) {
	var req dto.RegisterStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid staff registration payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")))
		return
	}

	user, err := c.authService.RegisterStaff(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      user,
		Message:   "Staff registered",
		Timestamp: time.Now(),
	})
}

// Login handles role-scoped credential checks
// @Summary Log in as student or staff
// @Description Verifies the role-scoped credentials and returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login form"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 401 {object} dto.APIResponse "Invalid email or password"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")))
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      token,
		Timestamp: time.Now(),
	})
}
