package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/dapi/studenttrack/internal/app/models"
	"github.com/dapi/studenttrack/internal/app/models/dto"
	"github.com/dapi/studenttrack/internal/app/repositories"
	"github.com/dapi/studenttrack/internal/db"
	"github.com/dapi/studenttrack/internal/pkg/apperrors"
	pkgauth "github.com/dapi/studenttrack/internal/pkg/auth"
	"github.com/dapi/studenttrack/internal/pkg/dberrors"
	"github.com/dapi/studenttrack/internal/pkg/forms"
)

// Verbatim business-rule messages surfaced to the form layer.
const (
	MsgFillAllRegister    = "Please fill all required fields"
	MsgFillAllFields      = "Fill all required fields"
	MsgBadStudentEmail    = `Student email must be like "name".student@gmail.com`
	MsgBadStaffEmail      = `Staff email must be like "name".staff@gmail.com`
	MsgBadSemesterStart   = "Semester Start must be YYYY-MM-DD"
	MsgHostellerRule      = "If Hosteller: warden name + room no required"
	MsgDuplicateStudent   = "Email or Roll already exists"
	MsgDuplicateStaff     = "Staff email already exists"
	MsgInvalidCredentials = "Invalid email or password"
)

// AuthService handles registration and login.
type AuthService struct {
	pool        *pgxpool.Pool
	userRepo    *repositories.UserRepository
	studentRepo *repositories.StudentRepository
	placement   ScoreRefresher
	jwtService  *pkgauth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	pool *pgxpool.Pool,
	userRepo *repositories.UserRepository,
	studentRepo *repositories.StudentRepository,
	placement ScoreRefresher,
	jwtService *pkgauth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		pool:        pool,
		userRepo:    userRepo,
		studentRepo: studentRepo,
		placement:   placement,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// RegisterStudent validates the full registration form, creates the user
// account and the student record in one transaction, then refreshes the
// placement score.
func (s *AuthService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, error) {
	loginEmail := forms.NormalizeEmail(req.LoginEmail)
	loginPass := strings.TrimSpace(req.LoginPassword)

	student := &models.Student{
		UserEmail:     loginEmail,
		StudentID:     strings.TrimSpace(req.StudentID),
		Roll:          strings.TrimSpace(req.Roll),
		Name:          strings.TrimSpace(req.Name),
		ContactEmail:  forms.NormalizeEmail(req.ContactEmail),
		Phone:         strings.TrimSpace(req.Phone),
		ParentPhone:   strings.TrimSpace(req.ParentPhone),
		Address:       strings.TrimSpace(req.Address),
		Department:    strings.TrimSpace(req.Department),
		MentorName:    strings.TrimSpace(req.MentorName),
		Tenth:         strings.TrimSpace(req.Tenth),
		Twelfth:       strings.TrimSpace(req.Twelfth),
		SemesterStart: strings.TrimSpace(req.SemesterStart),
		PresentDays:   max(0, forms.SafeInt(req.PresentDays, 0)),
		ArrearCount:   max(0, forms.SafeInt(req.ArrearCount, 0)),
	}

	required := []string{
		loginEmail, loginPass, student.StudentID, student.Roll, student.Name,
		student.ContactEmail, student.Phone, student.ParentPhone,
		student.Address, student.Department, student.MentorName,
		student.Tenth, student.Twelfth, student.SemesterStart,
	}
	for _, v := range required {
		if v == "" {
			return nil, apperrors.NewValidationError(MsgFillAllRegister)
		}
	}

	if !forms.ValidEmailForRole(loginEmail, "student") {
		return nil, apperrors.NewValidationError(MsgBadStudentEmail).WithField("loginEmail")
	}

	if _, err := forms.ParseYMD(student.SemesterStart); err != nil {
		return nil, apperrors.NewValidationError(MsgBadSemesterStart).WithField("semesterStart")
	}

	scholarType, wardenName, roomNo, err := normalizeResidence(req.ScholarType, req.WardenName, req.RoomNo)
	if err != nil {
		return nil, err
	}
	student.ScholarType = scholarType
	student.WardenName = wardenName
	student.RoomNo = roomNo

	for i := 0; i < models.SemesterCount && i < len(req.Semesters); i++ {
		student.Semesters[i] = forms.SafeFloat(req.Semesters[i])
	}

	passwordHash, err := pkgauth.HashPassword(loginPass)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:        loginEmail,
		Role:         models.RoleStudent,
		PasswordHash: passwordHash,
	}

	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			return err
		}
		return s.studentRepo.Create(ctx, tx, student)
	})
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateKeyError(MsgDuplicateStudent)
		}
		return nil, apperrors.NewStoreError(err)
	}

	// Best effort: a refresh failure must not mask the successful insert.
	if err := s.placement.RefreshScore(ctx, loginEmail); err != nil {
		s.logger.Error().Err(err).Str("studentEmail", loginEmail).Msg("Placement score refresh failed after registration")
	}

	s.logger.Info().Str("email", loginEmail).Str("roll", student.Roll).Msg("Student registered")
	return student, nil
}

// RegisterStaff validates the staff registration form and creates the staff
// account.
func (s *AuthService) RegisterStaff(ctx context.Context, req *dto.RegisterStaffRequest) (*models.User, error) {
	email := forms.NormalizeEmail(req.Email)
	password := strings.TrimSpace(req.Password)

	if email == "" || password == "" {
		return nil, apperrors.NewValidationError(MsgFillAllFields)
	}

	if !forms.ValidEmailForRole(email, "staff") {
		return nil, apperrors.NewValidationError(MsgBadStaffEmail).WithField("email")
	}

	passwordHash, err := pkgauth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Role:         models.RoleStaff,
		PasswordHash: passwordHash,
	}

	if err := s.userRepo.Create(ctx, s.pool, user); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateKeyError(MsgDuplicateStaff)
		}
		return nil, apperrors.NewStoreError(err)
	}

	s.logger.Info().Str("email", email).Msg("Staff registered")
	return user, nil
}

// Login checks the role-scoped credentials and issues an access token.
// Every failure mode surfaces the same message, so the form never reveals
// whether the email exists.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	role := strings.TrimSpace(req.Role)
	email := forms.NormalizeEmail(req.Email)
	password := strings.TrimSpace(req.Password)

	if role == "" || email == "" || password == "" {
		return nil, apperrors.NewValidationError("Please fill all fields")
	}

	if role != string(models.RoleStudent) && role != string(models.RoleStaff) {
		return nil, invalidCredentials()
	}

	user, err := s.userRepo.GetByEmailAndRole(ctx, email, models.RoleType(role))
	if err != nil {
		return nil, invalidCredentials()
	}

	if !pkgauth.CheckPassword(user.PasswordHash, password) {
		return nil, invalidCredentials()
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Role:      string(user.Role),
		Email:     user.Email,
	}, nil
}

func invalidCredentials() error {
	return &apperrors.CustomError{
		Err:     apperrors.ErrInvalidCredentials,
		Message: MsgInvalidCredentials,
	}
}

// normalizeResidence applies the scholar-type rule: Hostellers must supply
// warden and room, Day Scholars have both forced empty regardless of input.
func normalizeResidence(scholarType, wardenName, roomNo string) (models.ScholarType, string, string, error) {
	st := models.ScholarType(strings.TrimSpace(scholarType))
	if st == "" {
		st = models.ScholarDay
	}
	wardenName = strings.TrimSpace(wardenName)
	roomNo = strings.TrimSpace(roomNo)

	if st == models.ScholarHostel {
		if wardenName == "" || roomNo == "" {
			return "", "", "", apperrors.NewValidationError(MsgHostellerRule)
		}
		return st, wardenName, roomNo, nil
	}
	return st, "", "", nil
}
