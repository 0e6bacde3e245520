package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dapi/studenttrack/internal/app/models/dto"
	"github.com/dapi/studenttrack/internal/app/repositories"
	"github.com/dapi/studenttrack/internal/app/services"
	"github.com/dapi/studenttrack/internal/middleware"
)

// StaffController handles the staff directory and cross-student editing.
type StaffController struct {
	studentService *services.StudentService
	skillService   *services.SkillService
	studentRepo    *repositories.StudentRepository
	logger         zerolog.Logger
}

// NewStaffController creates a new StaffController
func NewStaffController(
	studentService *services.StudentService,
	skillService *services.SkillService,
	studentRepo *repositories.StudentRepository,
	logger zerolog.Logger,
) *StaffController {
	return &StaffController{
		studentService: studentService,
		skillService:   skillService,
		studentRepo:    studentRepo,
		logger:         logger,
	}
}

// Directory searches and groups the student roster
// @Summary Search the student directory
// @Description Case-insensitive substring match on roll, name, student id, login email and department, grouped by department.
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param query query string false "Search text; empty lists everyone"
// @Success 200 {object} dto.APIResponse{data=dto.DirectoryResponse}
// @Router /staff/students [get]
func (c *StaffController) Directory(ctx *gin.Context) {
	directory, err := c.studentService.Directory(ctx.Request.Context(), ctx.Query("query"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: directory, Timestamp: time.Now()})
}

// GetStudent serves any student's portal view to staff
// @Summary Get one student's full record
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student row id"
// @Success 200 {object} dto.APIResponse{data=dto.PortalResponse}
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /staff/students/{id} [get]
func (c *StaffController) GetStudent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	portal, err := c.studentService.PortalByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: portal, Timestamp: time.Now()})
}

// EditStudent rewrites any student's profile and academics
// @Summary Edit one student's record
// @Description Combined profile plus academics edit. Triggers a placement score refresh.
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student row id"
// @Param request body dto.StaffEditRequest true "Edit form"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Fill all required fields"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /staff/students/{id} [put]
func (c *StaffController) EditStudent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.StaffEditRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid staff edit payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")))
		return
	}

	if err := c.studentService.StaffEdit(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Message: "Student updated", Timestamp: time.Now()})
}

// AddStudentSkill adds a skill to any student's record
// @Summary Add a skill for a student
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student row id"
// @Param request body dto.AddSkillRequest true "Skill form"
// @Success 201 {object} dto.APIResponse{data=models.Skill}
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /staff/students/{id}/skills [post]
func (c *StaffController) AddStudentSkill(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.AddSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid skill payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")))
		return
	}

	student, err := c.studentRepo.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	skill, err := c.skillService.Add(ctx.Request.Context(), student.UserEmail, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: skill, Timestamp: time.Now()})
}

// DeleteStudentSkill removes a skill from any student's record
// @Summary Delete a skill for a student
// @Description Owner scoping still applies: a skill id that belongs to a different student deletes nothing.
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student row id"
// @Param skillId path int true "Skill id"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /staff/students/{id}/skills/{skillId} [delete]
func (c *StaffController) DeleteStudentSkill(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	skillID, ok := pathID(ctx, "skillId")
	if !ok {
		return
	}

	student, err := c.studentRepo.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.skillService.Delete(ctx.Request.Context(), skillID, student.UserEmail); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Message: "Skill deleted", Timestamp: time.Now()})
}
