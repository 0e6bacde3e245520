package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx, so repository
// methods can run standalone or inside a caller-owned transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories bundles all record-store repositories.
type Repositories struct {
	UserRepository          *UserRepository
	StudentRepository       *StudentRepository
	SkillRepository         *SkillRepository
	AchievementRepository   *AchievementRepository
	CertificationRepository *CertificationRepository
}

// NewRepositories creates all repositories sharing one connection pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(db),
		StudentRepository:       NewStudentRepository(db),
		SkillRepository:         NewSkillRepository(db),
		AchievementRepository:   NewAchievementRepository(db),
		CertificationRepository: NewCertificationRepository(db),
	}
}
