package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dapi/studenttrack/internal/app/models"
	"github.com/dapi/studenttrack/internal/app/models/dto"
	"github.com/dapi/studenttrack/internal/app/repositories"
	"github.com/dapi/studenttrack/internal/pkg/academics"
	"github.com/dapi/studenttrack/internal/pkg/apperrors"
	"github.com/dapi/studenttrack/internal/pkg/forms"
)

// StudentService serves the student portal and the profile and academic
// update forms.
type StudentService struct {
	studentRepo *repositories.StudentRepository
	skillRepo   *repositories.SkillRepository
	achRepo     *repositories.AchievementRepository
	certRepo    *repositories.CertificationRepository
	placement   ScoreRefresher
	logger      zerolog.Logger

	// now is swappable so attendance figures are testable.
	now func() time.Time
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	skillRepo *repositories.SkillRepository,
	achRepo *repositories.AchievementRepository,
	certRepo *repositories.CertificationRepository,
	placement ScoreRefresher,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		skillRepo:   skillRepo,
		achRepo:     achRepo,
		certRepo:    certRepo,
		placement:   placement,
		logger:      logger,
		now:         time.Now,
	}
}

// Portal assembles the portal view for the student owned by email.
func (s *StudentService) Portal(ctx context.Context, email string) (*dto.PortalResponse, error) {
	student, err := s.studentRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.buildPortal(ctx, student)
}

// PortalByID assembles the same portal view for staff, addressed by row id.
func (s *StudentService) PortalByID(ctx context.Context, id int64) (*dto.PortalResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.buildPortal(ctx, student)
}

// buildPortal recomputes attendance and CGPA on every read; only the
// placement score is served from its cached column.
func (s *StudentService) buildPortal(ctx context.Context, student *models.Student) (*dto.PortalResponse, error) {
	today := s.now()

	// An unparseable stored start date collapses the window to just today
	// instead of failing the whole page.
	start, err := forms.ParseYMD(student.SemesterStart)
	if err != nil {
		start = today
	}
	total, present, pct := academics.Attendance(start, student.PresentDays, today)

	cgpa := academics.CGPA(student.Semesters[:])

	skills, err := s.skillRepo.ListByStudent(ctx, student.UserEmail)
	if err != nil {
		return nil, fmt.Errorf("error loading skills: %w", err)
	}
	achievements, err := s.achRepo.ListByStudent(ctx, student.UserEmail)
	if err != nil {
		return nil, fmt.Errorf("error loading achievements: %w", err)
	}
	certifications, err := s.certRepo.ListByStudent(ctx, student.UserEmail)
	if err != nil {
		return nil, fmt.Errorf("error loading certifications: %w", err)
	}

	return &dto.PortalResponse{
		Student:        student,
		TotalDays:      total,
		PresentDays:    present,
		AttendancePct:  pct,
		CGPA:           cgpa,
		PlacementScore: student.PlacementScore,
		Semesters:      student.Semesters,
		Skills:         skills,
		Achievements:   achievements,
		Certifications: certifications,
	}, nil
}

// UpdateProfile rewrites the identity and residence fields of the student
// owned by email. Profile edits never touch the placement score.
func (s *StudentService) UpdateProfile(ctx context.Context, email string, req *dto.UpdateProfileRequest) error {
	student, err := profileFromRequest(req)
	if err != nil {
		return err
	}

	if err := s.studentRepo.UpdateProfile(ctx, email, student); err != nil {
		return err
	}

	s.logger.Info().Str("studentEmail", email).Msg("Student profile updated")
	return nil
}

// UpdateAcademics rewrites the semester calendar, attendance counter, arrears
// and semester scores of the student owned by email, then refreshes the
// placement score.
func (s *StudentService) UpdateAcademics(ctx context.Context, email string, req *dto.UpdateAcademicsRequest) error {
	student, err := academicsFromRequest(req.SemesterStart, req.PresentDays, req.ArrearCount, req.Semesters)
	if err != nil {
		return err
	}

	if err := s.studentRepo.UpdateAcademics(ctx, email, student); err != nil {
		return err
	}

	if err := s.placement.RefreshScore(ctx, email); err != nil {
		s.logger.Error().Err(err).Str("studentEmail", email).Msg("Placement score refresh failed after academics update")
	}

	s.logger.Info().Str("studentEmail", email).Msg("Student academics updated")
	return nil
}

// StaffEdit rewrites the combined profile and academic fields of the student
// with the given row id, then refreshes the placement score.
func (s *StudentService) StaffEdit(ctx context.Context, id int64, req *dto.StaffEditRequest) error {
	profile, err := profileFromRequest(&req.UpdateProfileRequest)
	if err != nil {
		return err
	}
	// The staff form treats the start date as a required field; the
	// student academics form reports a blank one as a format error.
	if strings.TrimSpace(req.SemesterStart) == "" {
		return apperrors.NewValidationError(MsgFillAllFields)
	}
	acad, err := academicsFromRequest(req.SemesterStart, req.PresentDays, req.ArrearCount, req.Semesters)
	if err != nil {
		return err
	}

	student := profile
	student.SemesterStart = acad.SemesterStart
	student.PresentDays = acad.PresentDays
	student.ArrearCount = acad.ArrearCount
	student.Semesters = acad.Semesters

	if err := s.studentRepo.Update(ctx, id, student); err != nil {
		return err
	}

	// The score cache is keyed by the owning email, so reload the row.
	updated, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.placement.RefreshScore(ctx, updated.UserEmail); err != nil {
		s.logger.Error().Err(err).Str("studentEmail", updated.UserEmail).Msg("Placement score refresh failed after staff edit")
	}

	s.logger.Info().Int64("studentID", id).Msg("Student record edited by staff")
	return nil
}

// Directory runs the staff search and groups the hits by department. Rows
// with no department fall into an "Unknown" bucket. Buckets come out in
// ascending department order; rows inside a bucket stay newest first.
func (s *StudentService) Directory(ctx context.Context, query string) (*dto.DirectoryResponse, error) {
	query = strings.TrimSpace(query)

	students, err := s.studentRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	resp := &dto.DirectoryResponse{Query: query, Departments: []dto.DepartmentGroup{}}
	for _, st := range students {
		dept := st.Department
		if dept == "" {
			dept = "Unknown"
		}
		if n := len(resp.Departments); n > 0 && resp.Departments[n-1].Department == dept {
			resp.Departments[n-1].Students = append(resp.Departments[n-1].Students, st)
			continue
		}
		resp.Departments = append(resp.Departments, dto.DepartmentGroup{
			Department: dept,
			Students:   []*models.Student{st},
		})
	}
	return resp, nil
}

// profileFromRequest validates the shared profile fields and maps them onto
// a student value.
func profileFromRequest(req *dto.UpdateProfileRequest) (*models.Student, error) {
	student := &models.Student{
		Name:         strings.TrimSpace(req.Name),
		ContactEmail: forms.NormalizeEmail(req.ContactEmail),
		Phone:        strings.TrimSpace(req.Phone),
		ParentPhone:  strings.TrimSpace(req.ParentPhone),
		Address:      strings.TrimSpace(req.Address),
		Department:   strings.TrimSpace(req.Department),
		MentorName:   strings.TrimSpace(req.MentorName),
	}

	required := []string{
		student.Name, student.ContactEmail, student.Phone, student.ParentPhone,
		student.Address, student.Department, student.MentorName,
	}
	for _, v := range required {
		if v == "" {
			return nil, apperrors.NewValidationError(MsgFillAllFields)
		}
	}

	scholarType, wardenName, roomNo, err := normalizeResidence(req.ScholarType, req.WardenName, req.RoomNo)
	if err != nil {
		return nil, err
	}
	student.ScholarType = scholarType
	student.WardenName = wardenName
	student.RoomNo = roomNo

	return student, nil
}

// academicsFromRequest validates the shared academic fields and maps them
// onto a student value. An empty start date fails the strict date parse, so
// it surfaces the format message rather than the required-fields one.
func academicsFromRequest(semesterStart, presentDays, arrearCount string, semesters []string) (*models.Student, error) {
	semesterStart = strings.TrimSpace(semesterStart)
	if _, err := forms.ParseYMD(semesterStart); err != nil {
		return nil, apperrors.NewValidationError(MsgBadSemesterStart).WithField("semesterStart")
	}

	student := &models.Student{
		SemesterStart: semesterStart,
		PresentDays:   max(0, forms.SafeInt(presentDays, 0)),
		ArrearCount:   max(0, forms.SafeInt(arrearCount, 0)),
	}
	for i := 0; i < models.SemesterCount && i < len(semesters); i++ {
		student.Semesters[i] = forms.SafeFloat(semesters[i])
	}
	return student, nil
}
