package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dapi/studenttrack/internal/app/models"
)

// AchievementRepository handles achievement database operations
type AchievementRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAchievementRepository creates a new AchievementRepository
func NewAchievementRepository(db *pgxpool.Pool) *AchievementRepository {
	return &AchievementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts an achievement for a student.
func (r *AchievementRepository) Create(ctx context.Context, a *models.Achievement) error {
	sql, args, err := r.sb.Insert("achievements").
		Columns("student_email", "title", "level", "date_str", "description").
		Values(a.StudentEmail, a.Title, a.Level, a.DateStr, a.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create achievement query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&a.ID); err != nil {
		return fmt.Errorf("error creating achievement: %w", err)
	}
	return nil
}

// ListByStudent returns a student's achievements, newest first.
func (r *AchievementRepository) ListByStudent(ctx context.Context, studentEmail string) ([]*models.Achievement, error) {
	sql, args, err := r.sb.Select("id", "student_email", "title", "level", "date_str", "description").
		From("achievements").
		Where(squirrel.Eq{"student_email": studentEmail}).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list achievements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing achievements: %w", err)
	}
	defer rows.Close()

	var achievements []*models.Achievement
	for rows.Next() {
		var a models.Achievement
		if err := rows.Scan(&a.ID, &a.StudentEmail, &a.Title, &a.Level, &a.DateStr, &a.Description); err != nil {
			return nil, fmt.Errorf("error scanning achievement row: %w", err)
		}
		achievements = append(achievements, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating achievement rows: %w", err)
	}

	return achievements, nil
}

// DeleteOwned deletes an achievement only when both id and owner email match.
func (r *AchievementRepository) DeleteOwned(ctx context.Context, id int64, studentEmail string) error {
	sql, args, err := ownedDeleteQuery(r.sb, "achievements", id, studentEmail)
	if err != nil {
		return fmt.Errorf("failed to build delete achievement query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error deleting achievement: %w", err)
	}
	return nil
}

// CountByStudent counts a student's achievement rows.
func (r *AchievementRepository) CountByStudent(ctx context.Context, studentEmail string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM achievements WHERE student_email = $1`,
		studentEmail).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting achievements: %w", err)
	}
	return count, nil
}
