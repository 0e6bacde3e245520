package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dapi/studenttrack/internal/app/models"
	"github.com/dapi/studenttrack/internal/app/models/dto"
	"github.com/dapi/studenttrack/internal/pkg/apperrors"
)

// MsgAchievementTitleRequired is the verbatim message for a blank title.
const MsgAchievementTitleRequired = "Achievement title required"

// achievementStore is the persistence surface AchievementService needs.
// Satisfied by repositories.AchievementRepository.
type achievementStore interface {
	Create(ctx context.Context, a *models.Achievement) error
	DeleteOwned(ctx context.Context, id int64, studentEmail string) error
}

// AchievementService manages a student's achievement rows.
type AchievementService struct {
	achRepo   achievementStore
	placement ScoreRefresher
	logger    zerolog.Logger
}

// NewAchievementService creates a new AchievementService
func NewAchievementService(achRepo achievementStore, placement ScoreRefresher, logger zerolog.Logger) *AchievementService {
	return &AchievementService{achRepo: achRepo, placement: placement, logger: logger}
}

// Add creates an achievement for the student owned by studentEmail. Only the
// title is required; the date stays free text.
func (s *AchievementService) Add(ctx context.Context, studentEmail string, req *dto.AddAchievementRequest) (*models.Achievement, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.NewValidationError(MsgAchievementTitleRequired).WithField("title")
	}

	ach := &models.Achievement{
		StudentEmail: studentEmail,
		Title:        title,
		Level:        strings.TrimSpace(req.Level),
		DateStr:      strings.TrimSpace(req.DateStr),
		Description:  strings.TrimSpace(req.Description),
	}

	if err := s.achRepo.Create(ctx, ach); err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	s.refresh(ctx, studentEmail, "achievement added")
	return ach, nil
}

// Delete removes the achievement only when it belongs to studentEmail.
func (s *AchievementService) Delete(ctx context.Context, id int64, studentEmail string) error {
	if err := s.achRepo.DeleteOwned(ctx, id, studentEmail); err != nil {
		return apperrors.NewStoreError(err)
	}
	s.refresh(ctx, studentEmail, "achievement deleted")
	return nil
}

func (s *AchievementService) refresh(ctx context.Context, studentEmail, cause string) {
	if err := s.placement.RefreshScore(ctx, studentEmail); err != nil {
		s.logger.Error().Err(err).Str("studentEmail", studentEmail).Str("cause", cause).Msg("Placement score refresh failed")
	}
}
