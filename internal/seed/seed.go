package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/lucianaf/vspotlight/internal/app/models"
	appRepos "github.com/lucianaf/vspotlight/internal/app/repositories"
	"github.com/lucianaf/vspotlight/internal/config"
	"github.com/lucianaf/vspotlight/internal/pkg/logger"
)

// CreateDefaultData creates the dean account if it doesn't exist. The dean is
// the only built-in account; everything else registers through the API.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, cfg.University.DeanEmail)
	if err != nil {
		return fmt.Errorf("failed to check if dean account exists: %w", err)
	}

	if exists {
		logger.Debug().Str("email", cfg.University.DeanEmail).Msg("Dean account already exists, skipping creation")
		return nil
	}

	logger.Info().Str("email", cfg.University.DeanEmail).Msg("Creating dean account...")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.University.DeanPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash dean password: %w", err)
	}

	dean := &appModels.User{
		Email:     cfg.University.DeanEmail,
		Password:  string(hashedPassword),
		FirstName: cfg.University.DeanFirstName,
		LastName:  cfg.University.DeanLastName,
		StudentID: cfg.University.DeanStudentID,
		Major:     cfg.University.DeanMajor,
		Role:      appModels.RoleDean,
	}

	if err := userRepo.CreateUser(ctx, dean); err != nil {
		return fmt.Errorf("failed to create dean account: %w", err)
	}

	logger.Info().Str("email", dean.Email).Msg("Dean account created")
	return nil
}
