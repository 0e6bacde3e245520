package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dapi/studenttrack/internal/app/models"
	"github.com/dapi/studenttrack/internal/app/models/dto"
	"github.com/dapi/studenttrack/internal/pkg/apperrors"
)

// MsgCertificationNameRequired is the verbatim message for a blank name.
const MsgCertificationNameRequired = "Certification name required"

// certificationStore is the persistence surface CertificationService needs.
// Satisfied by repositories.CertificationRepository.
type certificationStore interface {
	Create(ctx context.Context, c *models.Certification) error
	DeleteOwned(ctx context.Context, id int64, studentEmail string) error
}

// CertificationService manages a student's certification rows.
type CertificationService struct {
	certRepo  certificationStore
	placement ScoreRefresher
	logger    zerolog.Logger
}

// NewCertificationService creates a new CertificationService
func NewCertificationService(certRepo certificationStore, placement ScoreRefresher, logger zerolog.Logger) *CertificationService {
	return &CertificationService{certRepo: certRepo, placement: placement, logger: logger}
}

// Add creates a certification for the student owned by studentEmail. Only
// the name is required.
func (s *CertificationService) Add(ctx context.Context, studentEmail string, req *dto.AddCertificationRequest) (*models.Certification, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError(MsgCertificationNameRequired).WithField("name")
	}

	cert := &models.Certification{
		StudentEmail:  studentEmail,
		Name:          name,
		Provider:      strings.TrimSpace(req.Provider),
		IssueDate:     strings.TrimSpace(req.IssueDate),
		CredentialURL: strings.TrimSpace(req.CredentialURL),
	}

	if err := s.certRepo.Create(ctx, cert); err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	s.refresh(ctx, studentEmail, "certification added")
	return cert, nil
}

// Delete removes the certification only when it belongs to studentEmail.
func (s *CertificationService) Delete(ctx context.Context, id int64, studentEmail string) error {
	if err := s.certRepo.DeleteOwned(ctx, id, studentEmail); err != nil {
		return apperrors.NewStoreError(err)
	}
	s.refresh(ctx, studentEmail, "certification deleted")
	return nil
}

func (s *CertificationService) refresh(ctx context.Context, studentEmail, cause string) {
	if err := s.placement.RefreshScore(ctx, studentEmail); err != nil {
		s.logger.Error().Err(err).Str("studentEmail", studentEmail).Str("cause", cause).Msg("Placement score refresh failed")
	}
}
