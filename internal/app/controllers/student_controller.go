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

// StudentController handles the student-facing portal and update endpoints.
type StudentController struct {
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{studentService: studentService, logger: logger}
}

// Portal serves the signed-in student's dashboard
// @Summary Get the student portal
// @Description Returns the record with attendance and CGPA recomputed for today plus the cached placement score.
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PortalResponse}
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /student/portal [get]
func (c *StudentController) Portal(ctx *gin.Context) {
	email := ctx.GetString(middleware.ContextEmail)

	portal, err := c.studentService.Portal(ctx.Request.Context(), email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      portal,
		Timestamp: time.Now(),
	})
}

// UpdateProfile rewrites the signed-in student's profile fields
// @Summary Update the student profile
// @Description Identity and residence fields only; academic fields and the placement score are untouched.
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile form"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Fill all required fields"
// @Router /student/profile [put]
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid profile update payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")))
		return
	}

	email := ctx.GetString(middleware.ContextEmail)
	if err := c.studentService.UpdateProfile(ctx.Request.Context(), email, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Profile updated",
		Timestamp: time.Now(),
	})
}

// UpdateAcademics rewrites the signed-in student's academic fields
// @Summary Update the student academics
// @Description Semester start, present days, arrears and semester scores. Triggers a placement score refresh.
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateAcademicsRequest true "Academics form"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Semester Start must be YYYY-MM-DD"
// @Router /student/academics [put]
func (c *StudentController) UpdateAcademics(ctx *gin.Context) {
	var req dto.UpdateAcademicsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid academics update payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")))
		return
	}

	email := ctx.GetString(middleware.ContextEmail)
	if err := c.studentService.UpdateAcademics(ctx.Request.Context(), email, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Academics updated",
		Timestamp: time.Now(),
	})
}
