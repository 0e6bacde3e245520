package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dapi/studenttrack/internal/app/models"
	"github.com/dapi/studenttrack/internal/pkg/academics"
	"github.com/dapi/studenttrack/internal/pkg/apperrors"
)

// Weighting of the placement score components. CGPA contributes up to 50
// points, skills up to 30 (a full 10 skills at 10 levels each), achievements
// up to 10 (4 achievements max out), certifications up to 10 (5 max out),
// and each arrear deducts 10 points up to a 40 point penalty.
const (
	cgpaWeight      = 50.0
	skillWeight     = 30.0
	skillFullLevels = 100.0
	achPoints       = 2.5
	achCap          = 10.0
	certPoints      = 2.0
	certCap         = 10.0
	arrearPenalty   = 10.0
	arrearCap       = 40.0
)

// ScoreRefresher recomputes and persists a student's placement score. Every
// mutation path that feeds the score calls it after a successful write.
type ScoreRefresher interface {
	RefreshScore(ctx context.Context, studentEmail string) error
}

// placementStudentStore is the slice of the student repository the score
// engine needs.
type placementStudentStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	UpdatePlacementScore(ctx context.Context, email string, score float64) error
}

// skillLevelSummer sums a student's completed skill levels.
type skillLevelSummer interface {
	TotalLevels(ctx context.Context, studentEmail string) (int, error)
}

// rowCounter counts a student's rows in one child table.
type rowCounter interface {
	CountByStudent(ctx context.Context, studentEmail string) (int, error)
}

// PlacementService derives the placement score from a student's academics
// and the skill/achievement/certification aggregates, and writes it back to
// the student row. Reads of the score never recompute it; they always serve
// the last value written here.
type PlacementService struct {
	stores PlacementStores
}

// PlacementStores bundles the store slices the score engine reads from.
type PlacementStores struct {
	Students       placementStudentStore
	Skills         skillLevelSummer
	Achievements   rowCounter
	Certifications rowCounter
}

// NewPlacementService creates a new PlacementService
func NewPlacementService(stores PlacementStores) *PlacementService {
	return &PlacementService{stores: stores}
}

// ComputeScore evaluates the placement score formula. Each component is
// clamped before summing and the result is clamped to [0, 100] and rounded
// to two decimal places, so a penalty-heavy record bottoms out at exactly 0.
func ComputeScore(cgpa *float64, skillTotal, achievementCount, certificationCount, arrearCount int) float64 {
	var cg float64
	if cgpa != nil {
		cg = *cgpa
	}
	cgPart := cg / 10.0 * cgpaWeight

	skillPart := min(skillWeight, float64(skillTotal)/skillFullLevels*skillWeight)
	achPart := min(achCap, float64(achievementCount)*achPoints)
	certPart := min(certCap, float64(certificationCount)*certPoints)

	arrears := max(0, arrearCount)
	penalty := min(arrearCap, float64(arrears)*arrearPenalty)

	raw := cgPart + skillPart + achPart + certPart - penalty
	return academics.Round2(academics.Clamp(raw, 0.0, 100.0))
}

// RefreshScore recomputes the score for the student owned by studentEmail
// and persists it. A missing student is a no-op rather than an error.
func (s *PlacementService) RefreshScore(ctx context.Context, studentEmail string) error {
	student, err := s.stores.Students.GetByEmail(ctx, studentEmail)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil
		}
		return fmt.Errorf("error loading student for score refresh: %w", err)
	}

	skillTotal, err := s.stores.Skills.TotalLevels(ctx, studentEmail)
	if err != nil {
		return fmt.Errorf("error aggregating skill levels: %w", err)
	}

	achCount, err := s.stores.Achievements.CountByStudent(ctx, studentEmail)
	if err != nil {
		return fmt.Errorf("error counting achievements: %w", err)
	}

	certCount, err := s.stores.Certifications.CountByStudent(ctx, studentEmail)
	if err != nil {
		return fmt.Errorf("error counting certifications: %w", err)
	}

	cgpa := academics.CGPA(student.Semesters[:])
	score := ComputeScore(cgpa, skillTotal, achCount, certCount, student.ArrearCount)

	if err := s.stores.Students.UpdatePlacementScore(ctx, studentEmail, score); err != nil {
		return fmt.Errorf("error persisting placement score: %w", err)
	}
	return nil
}
