package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dapi/studenttrack/internal/app/models"
	"github.com/dapi/studenttrack/internal/pkg/apperrors"
)

// UserRepository handles user account database operations
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user account. It accepts a Querier so registration
// can create the user and its student row in one transaction. Unique email
// violations surface as the raw pg error for the caller to classify.
func (r *UserRepository) Create(ctx context.Context, q Querier, user *models.User) error {
	err := q.QueryRow(ctx, `
		INSERT INTO users (email, role, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id`,
		user.Email, user.Role, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// GetByEmailAndRole retrieves a user by its unique email, constrained to the
// given role. Login looks users up this way so a student token can never be
// minted from a staff row and vice versa.
func (r *UserRepository) GetByEmailAndRole(ctx context.Context, email string, role models.RoleType) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, email, role, password_hash
		FROM users
		WHERE email = $1 AND role = $2`,
		email, role).Scan(&user.ID, &user.Email, &user.Role, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}
