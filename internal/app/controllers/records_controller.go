package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dapi/studenttrack/internal/app/models/dto"
	"github.com/dapi/studenttrack/internal/app/services"
	"github.com/dapi/studenttrack/internal/middleware"
)

// RecordsController handles the signed-in student's skill, achievement and
// certification endpoints. Every mutation is scoped to the caller's own
// record.
type RecordsController struct {
	skillService *services.SkillService
	achService   *services.AchievementService
	certService  *services.CertificationService
	logger       zerolog.Logger
}

// NewRecordsController creates a new RecordsController
func NewRecordsController(
	skillService *services.SkillService,
	achService *services.AchievementService,
	certService *services.CertificationService,
	logger zerolog.Logger,
) *RecordsController {
	return &RecordsController{
		skillService: skillService,
		achService:   achService,
		certService:  certService,
		logger:       logger,
	}
}

// AddSkill adds a skill to the caller's record
// @Summary Add a skill
// @Tags records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddSkillRequest true "Skill form"
// @Success 201 {object} dto.APIResponse{data=models.Skill}
// @Failure 400 {object} dto.APIResponse "Skill name required"
// @Router /student/skills [post]
func (c *RecordsController) AddSkill(ctx *gin.Context) {
	var req dto.AddSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid skill payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")))
		return
	}

	email := ctx.GetString(middleware.ContextEmail)
	skill, err := c.skillService.Add(ctx.Request.Context(), email, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: skill, Timestamp: time.Now()})
}

// DeleteSkill removes one of the caller's skills
// @Summary Delete a skill
// @Description Deletes nothing when the id belongs to another student; the call still succeeds.
// @Tags records
// @Produce json
// @Security BearerAuth
// @Param id path int true "Skill id"
// @Success 200 {object} dto.APIResponse
// @Router /student/skills/{id} [delete]
func (c *RecordsController) DeleteSkill(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	email := ctx.GetString(middleware.ContextEmail)
	if err := c.skillService.Delete(ctx.Request.Context(), id, email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Message: "Skill deleted", Timestamp: time.Now()})
}

// AddAchievement adds an achievement to the caller's record
// @Summary Add an achievement
// @Tags records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddAchievementRequest true "Achievement form"
// @Success 201 {object} dto.APIResponse{data=models.Achievement}
// @Failure 400 {object} dto.APIResponse "Achievement title required"
// @Router /student/achievements [post]
func (c *RecordsController) AddAchievement(ctx *gin.Context) {
	var req dto.AddAchievementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid achievement payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")))
		return
	}

	email := ctx.GetString(middleware.ContextEmail)
	ach, err := c.achService.Add(ctx.Request.Context(), email, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: ach, Timestamp: time.Now()})
}

// DeleteAchievement removes one of the caller's achievements
// @Summary Delete an achievement
// @Tags records
// @Produce json
// @Security BearerAuth
// @Param id path int true "Achievement id"
// @Success 200 {object} dto.APIResponse
// @Router /student/achievements/{id} [delete]
func (c *RecordsController) DeleteAchievement(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	email := ctx.GetString(middleware.ContextEmail)
	if err := c.achService.Delete(ctx.Request.Context(), id, email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Message: "Achievement deleted", Timestamp: time.Now()})
}

// AddCertification adds a certification to the caller's record
// @Summary Add a certification
// @Tags records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddCertificationRequest true "Certification form"
// @Success 201 {object} dto.APIResponse{data=models.Certification}
// @Failure 400 {object} dto.APIResponse "Certification name required"
// @Router /student/certifications [post]
func (c *RecordsController) AddCertification(ctx *gin.Context) {
	var req dto.AddCertificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid certification payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")))
		return
	}

	email := ctx.GetString(middleware.ContextEmail)
	cert, err := c.certService.Add(ctx.Request.Context(), email, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: cert, Timestamp: time.Now()})
}

// DeleteCertification removes one of the caller's certifications
// @Summary Delete a certification
// @Tags records
// @Produce json
// @Security BearerAuth
// @Param id path int true "Certification id"
// @Success 200 {object} dto.APIResponse
// @Router /student/certifications/{id} [delete]
func (c *RecordsController) DeleteCertification(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	email := ctx.GetString(middleware.ContextEmail)
	if err := c.certService.Delete(ctx.Request.Context(), id, email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Message: "Certification deleted", Timestamp: time.Now()})
}

// pathID parses a numeric path parameter, writing a 400 response itself when
// the value is not a number.
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid id parameter").WithField(name)))
		return 0, false
	}
	return id, true
}
