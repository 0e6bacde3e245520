package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dapi/studenttrack/internal/app/models"
)

// SkillRepository handles skill database operations
type SkillRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a skill for a student.
func (r *SkillRepository) Create(ctx context.Context, skill *models.Skill) error {
	sql, args, err := r.sb.Insert("skills").
		Columns("student_email", "skill_name", "levels_completed").
		Values(skill.StudentEmail, skill.SkillName, skill.LevelsCompleted).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create skill query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&skill.ID); err != nil {
		return fmt.Errorf("error creating skill: %w", err)
	}
	return nil
}

// ListByStudent returns a student's skills, newest first.
func (r *SkillRepository) ListByStudent(ctx context.Context, studentEmail string) ([]*models.Skill, error) {
	sql, args, err := r.sb.Select("id", "student_email", "skill_name", "levels_completed").
		From("skills").
		Where(squirrel.Eq{"student_email": studentEmail}).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list skills query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing skills: %w", err)
	}
	defer rows.Close()

	var skills []*models.Skill
	for rows.Next() {
		var s models.Skill
		if err := rows.Scan(&s.ID, &s.StudentEmail, &s.SkillName, &s.LevelsCompleted); err != nil {
			return nil, fmt.Errorf("error scanning skill row: %w", err)
		}
		skills = append(skills, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating skill rows: %w", err)
	}

	return skills, nil
}

// DeleteOwned deletes a skill only when both the id and owner email match.
// A mismatched pair deletes nothing, so one student can never remove
// another's rows.
func (r *SkillRepository) DeleteOwned(ctx context.Context, id int64, studentEmail string) error {
	sql, args, err := ownedDeleteQuery(r.sb, "skills", id, studentEmail)
	if err != nil {
		return fmt.Errorf("failed to build delete skill query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error deleting skill: %w", err)
	}
	return nil
}

// TotalLevels sums levels_completed across a student's skills.
func (r *SkillRepository) TotalLevels(ctx context.Context, studentEmail string) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(levels_completed), 0) FROM skills WHERE student_email = $1`,
		studentEmail).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error summing skill levels: %w", err)
	}
	return total, nil
}
