package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dapi/studenttrack/internal/app/models"
)

// CertificationRepository handles certification database operations
type CertificationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCertificationRepository creates a new CertificationRepository
func NewCertificationRepository(db *pgxpool.Pool) *CertificationRepository {
	return &CertificationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a certification for a student.
func (r *CertificationRepository) Create(ctx context.Context, c *models.Certification) error {
	sql, args, err := r.sb.Insert("certifications").
		Columns("student_email", "name", "provider", "issue_date", "credential_url").
		Values(c.StudentEmail, c.Name, c.Provider, c.IssueDate, c.CredentialURL).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create certification query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.ID); err != nil {
		return fmt.Errorf("error creating certification: %w", err)
	}
	return nil
}

// ListByStudent returns a student's certifications, newest first.
func (r *CertificationRepository) ListByStudent(ctx context.Context, studentEmail string) ([]*models.Certification, error) {
	sql, args, err := r.sb.Select("id", "student_email", "name", "provider", "issue_date", "credential_url").
		From("certifications").
		Where(squirrel.Eq{"student_email": studentEmail}).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list certifications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing certifications: %w", err)
	}
	defer rows.Close()

	var certs []*models.Certification
	for rows.Next() {
		var c models.Certification
		if err := rows.Scan(&c.ID, &c.StudentEmail, &c.Name, &c.Provider, &c.IssueDate, &c.CredentialURL); err != nil {
			return nil, fmt.Errorf("error scanning certification row: %w", err)
		}
		certs = append(certs, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating certification rows: %w", err)
	}

	return certs, nil
}

// DeleteOwned deletes a certification only when both id and owner email match.
func (r *CertificationRepository) DeleteOwned(ctx context.Context, id int64, studentEmail string) error {
	sql, args, err := ownedDeleteQuery(r.sb, "certifications", id, studentEmail)
	if err != nil {
		return fmt.Errorf("failed to build delete certification query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error deleting certification: %w", err)
	}
	return nil
}

// CountByStudent counts a student's certification rows.
func (r *CertificationRepository) CountByStudent(ctx context.Context, studentEmail string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM certifications WHERE student_email = $1`,
		studentEmail).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting certifications: %w", err)
	}
	return count, nil
}
