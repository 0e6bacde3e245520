package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dapi/studenttrack/internal/app/models"
	"github.com/dapi/studenttrack/internal/pkg/apperrors"
	"github.com/dapi/studenttrack/internal/pkg/logger"
)

var studentColumns = []string{
	"id", "user_email", "student_id", "roll", "name", "contact_email",
	"phone", "parent_phone", "address", "department", "mentor_name",
	"scholar_type", "warden_name", "room_no", "tenth", "twelfth",
	"semester_start", "present_days", "arrear_count",
	"sem1", "sem2", "sem3", "sem4", "sem5", "sem6", "sem7", "sem8",
	"placement_score",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID, &s.UserEmail, &s.StudentID, &s.Roll, &s.Name, &s.ContactEmail,
		&s.Phone, &s.ParentPhone, &s.Address, &s.Department, &s.MentorName,
		&s.ScholarType, &s.WardenName, &s.RoomNo, &s.Tenth, &s.Twelfth,
		&s.SemesterStart, &s.PresentDays, &s.ArrearCount,
		&s.Semesters[0], &s.Semesters[1], &s.Semesters[2], &s.Semesters[3],
		&s.Semesters[4], &s.Semesters[5], &s.Semesters[6], &s.Semesters[7],
		&s.PlacementScore,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new student row. It accepts a Querier so registration can
// pair it with the user insert in one transaction.
func (r *StudentRepository) Create(ctx context.Context, q Querier, s *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns(studentColumns[1 : len(studentColumns)-1]...).
		Values(s.UserEmail, s.StudentID, s.Roll, s.Name, s.ContactEmail,
			s.Phone, s.ParentPhone, s.Address, s.Department, s.MentorName,
			s.ScholarType, s.WardenName, s.RoomNo, s.Tenth, s.Twelfth,
			s.SemesterStart, s.PresentDays, s.ArrearCount,
			s.Semesters[0], s.Semesters[1], s.Semesters[2], s.Semesters[3],
			s.Semesters[4], s.Semesters[5], s.Semesters[6], s.Semesters[7]).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if err := q.QueryRow(ctx, sql, args...).Scan(&s.ID); err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	logger.Info().Str("userEmail", s.UserEmail).Str("roll", s.Roll).Msg("Student created")
	return nil
}

// GetByEmail retrieves a student by its owning user email.
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"user_email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return s, nil
}

// GetByID retrieves a student by its internal row id (staff lookups).
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return s, nil
}

// UpdateProfile updates the identity and residence fields of the student
// owned by email. Academic fields are untouched.
func (r *StudentRepository) UpdateProfile(ctx context.Context, email string, s *models.Student) error {
	sql, args, err := r.sb.Update("students").
		Set("name", s.Name).
		Set("contact_email", s.ContactEmail).
		Set("phone", s.Phone).
		Set("parent_phone", s.ParentPhone).
		Set("address", s.Address).
		Set("department", s.Department).
		Set("mentor_name", s.MentorName).
		Set("scholar_type", s.ScholarType).
		Set("warden_name", s.WardenName).
		Set("room_no", s.RoomNo).
		Where(squirrel.Eq{"user_email": email}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update profile query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating student profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// UpdateAcademics updates the semester calendar, attendance counter, arrears
// and the eight semester scores of the student owned by email.
func (r *StudentRepository) UpdateAcademics(ctx context.Context, email string, s *models.Student) error {
	b := r.sb.Update("students").
		Set("semester_start", s.SemesterStart).
		Set("present_days", s.PresentDays).
		Set("arrear_count", s.ArrearCount)
	for i := 0; i < models.SemesterCount; i++ {
		b = b.Set(fmt.Sprintf("sem%d", i+1), s.Semesters[i])
	}

	sql, args, err := b.Where(squirrel.Eq{"user_email": email}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update academics query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating student academics: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Update rewrites the combined profile and academic fields of the student
// with the given row id (the staff edit form posts both at once).
func (r *StudentRepository) Update(ctx context.Context, id int64, s *models.Student) error {
	b := r.sb.Update("students").
		Set("name", s.Name).
		Set("contact_email", s.ContactEmail).
		Set("phone", s.Phone).
		Set("parent_phone", s.ParentPhone).
		Set("address", s.Address).
		Set("department", s.Department).
		Set("mentor_name", s.MentorName).
		Set("scholar_type", s.ScholarType).
		Set("warden_name", s.WardenName).
		Set("room_no", s.RoomNo).
		Set("semester_start", s.SemesterStart).
		Set("present_days", s.PresentDays).
		Set("arrear_count", s.ArrearCount)
	for i := 0; i < models.SemesterCount; i++ {
		b = b.Set(fmt.Sprintf("sem%d", i+1), s.Semesters[i])
	}

	sql, args, err := b.Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// UpdatePlacementScore writes back the recomputed cached score.
func (r *StudentRepository) UpdatePlacementScore(ctx context.Context, email string, score float64) error {
	sql, args, err := r.sb.Update("students").
		Set("placement_score", score).
		Where(squirrel.Eq{"user_email": email}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update score query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error updating placement score: %w", err)
	}
	return nil
}

// Search returns students whose roll, name, student id, user email or
// department contains the query substring, case-insensitively. An empty
// query lists everyone. Ordered department ascending, then newest row first
// within a department.
func (r *StudentRepository) Search(ctx context.Context, query string) ([]*models.Student, error) {
	b := r.sb.Select(studentColumns...).From("students")

	if query != "" {
		like := "%" + query + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"roll": like},
			squirrel.ILike{"name": like},
			squirrel.ILike{"student_id": like},
			squirrel.ILike{"user_email": like},
			squirrel.ILike{"department": like},
		})
	}

	sql, args, err := b.OrderBy("department ASC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build search query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}
