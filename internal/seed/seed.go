package seed

import (
	"context"
	"fmt"

	"github.com/academyadmin/academy-api/internal/app/models"
	"github.com/academyadmin/academy-api/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// UserStore is the part of the user repository used for seeding
type UserStore interface {
	EmailExists(ctx context.Context, email, excludeID string) (bool, error)
	Create(ctx context.Context, user *models.User) error
}

// AdminConfig holds the credentials of the first administrator
type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

// CreateDefaultAdmin creates an active administrator with the configured
// credentials unless some user already owns that email. An empty config is a no-op.
func CreateDefaultAdmin(ctx context.Context, users UserStore, cfg AdminConfig, lgr zerolog.Logger) error {
	if cfg.Email == "" || cfg.Password == "" {
		lgr.Debug().Msg("No seed administrator configured")
		return nil
	}

	taken, err := users.EmailExists(ctx, cfg.Email, "")
	if err != nil {
		return fmt.Errorf("failed to check seed administrator: %w", err)
	}
	if taken {
		lgr.Info().Str("email", cfg.Email).Msg("Seed administrator already exists")
		return nil
	}

	digest, err := auth.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("failed to hash seed administrator password: %w", err)
	}

	name := cfg.Name
	if name == "" {
		name = "Admin"
	}

	admin := &models.User{
		Email:    cfg.Email,
		Password: digest,
		Name:     name,
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := users.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create seed administrator: %w", err)
	}

	lgr.Info().Str("email", cfg.Email).Str("userID", admin.ID).Msg("Seed administrator created")
	return nil
}
