// Package seed creates the default records a fresh install needs.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/dapi/studenttrack/internal/app/models"
	"github.com/dapi/studenttrack/internal/app/repositories"
	"github.com/dapi/studenttrack/internal/pkg/auth"
	"github.com/dapi/studenttrack/internal/pkg/dberrors"
)

// Default staff credentials for a fresh database. Change the password after
// first login.
const (
	DefaultStaffEmail    = "admin.staff@gmail.com"
	defaultStaffPassword = "changeme123"
)

// CreateDefaultData seeds the default staff account if it does not exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, DefaultStaffEmail)
	if err != nil {
		return fmt.Errorf("failed to check default staff account: %w", err)
	}
	if exists {
		return nil
	}

	passwordHash, err := auth.HashPassword(defaultStaffPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default staff password: %w", err)
	}

	user := &models.User{
		Email:        DefaultStaffEmail,
		Role:         models.RoleStaff,
		PasswordHash: passwordHash,
	}
	if err := userRepo.Create(ctx, dbPool, user); err != nil {
		// A concurrent boot may have won the insert race.
		if dberrors.IsUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("failed to create default staff account: %w", err)
	}

	lgr.Info().Str("email", DefaultStaffEmail).Msg("Default staff account created")
	return nil
}
