package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dapi/studenttrack/internal/app/models"
	"github.com/dapi/studenttrack/internal/app/models/dto"
	"github.com/dapi/studenttrack/internal/pkg/apperrors"
	"github.com/dapi/studenttrack/internal/pkg/forms"
)

// MsgSkillNameRequired is the verbatim message for a blank skill name.
const MsgSkillNameRequired = "Skill name required"

// skillStore is the persistence surface SkillService needs. Satisfied by
// repositories.SkillRepository.
type skillStore interface {
	Create(ctx context.Context, skill *models.Skill) error
	DeleteOwned(ctx context.Context, id int64, studentEmail string) error
}

// SkillService manages a student's skill rows.
type SkillService struct {
	skillRepo skillStore
	placement ScoreRefresher
	logger    zerolog.Logger
}

// NewSkillService creates a new SkillService
func NewSkillService(skillRepo skillStore, placement ScoreRefresher, logger zerolog.Logger) *SkillService {
	return &SkillService{skillRepo: skillRepo, placement: placement, logger: logger}
}

// Add creates a skill for the student owned by studentEmail. Levels are
// clamped to [0, 10]; any unparseable input lands on 0.
func (s *SkillService) Add(ctx context.Context, studentEmail string, req *dto.AddSkillRequest) (*models.Skill, error) {
	name := strings.TrimSpace(req.SkillName)
	if name == "" {
		return nil, apperrors.NewValidationError(MsgSkillNameRequired).WithField("skillName")
	}

	skill := &models.Skill{
		StudentEmail:    studentEmail,
		SkillName:       name,
		LevelsCompleted: max(0, min(10, forms.SafeInt(req.LevelsCompleted, 0))),
	}

	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	s.refresh(ctx, studentEmail, "skill added")
	return skill, nil
}

// Delete removes the skill only when it belongs to studentEmail; a foreign
// or unknown id deletes nothing and still succeeds.
func (s *SkillService) Delete(ctx context.Context, id int64, studentEmail string) error {
	if err := s.skillRepo.DeleteOwned(ctx, id, studentEmail); err != nil {
		return apperrors.NewStoreError(err)
	}
	s.refresh(ctx, studentEmail, "skill deleted")
	return nil
}

func (s *SkillService) refresh(ctx context.Context, studentEmail, cause string) {
	if err := s.placement.RefreshScore(ctx, studentEmail); err != nil {
		s.logger.Error().Err(err).Str("studentEmail", studentEmail).Str("cause", cause).Msg("Placement score refresh failed")
	}
}
