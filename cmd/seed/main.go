package main

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/srgjo27/campus_event/internal/adapter/repository/gormrepo"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/srgjo27/campus_event/internal/core/services"
	"github.com/srgjo27/campus_event/internal/platform/auth"
	"github.com/srgjo27/campus_event/internal/platform/config"
	"github.com/srgjo27/campus_event/internal/platform/database"
	"github.com/srgjo27/campus_event/internal/platform/logger"
)

var defaultCategories = map[domain.CategoryKind][]string{
	domain.CategoryEvent: {"Workshop", "Seminar", "Conference", "Competition", "Webinar", "Training"},
	domain.CategoryBlog:  {"Technology", "Business", "Design", "Education", "Career", "Entrepreneurship"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", true)
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.NewPostgresDB(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to db")
	}
	defer db.Close()

	if err := database.Migrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	gormDB, err := database.NewGorm(db, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open gorm")
	}

	users := gormrepo.NewUserRepository(gormDB)
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	if err := seedAdmin(ctx, users, hasher, cfg.Seed, log); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin")
	}

	categories := services.NewCategoryService(gormrepo.NewCategoryRepository(gormDB))
	for kind, names := range defaultCategories {
		for _, name := range names {
			_, err := categories.Create(ctx, kind, name)
			switch {
			case errors.Is(err, domain.ErrCategoryExists):
				log.Debug().Str("kind", string(kind)).Str("name", name).Msg("category exists")
			case err != nil:
				log.Fatal().Err(err).Str("kind", string(kind)).Str("name", name).Msg("failed to seed category")
			default:
				log.Info().Str("kind", string(kind)).Str("name", name).Msg("category created")
			}
		}
	}

	log.Info().Msg("seed complete")
}

func seedAdmin(ctx context.Context, users *gormrepo.UserRepository, hasher *auth.BcryptHasher, cfg config.SeedConfig, log zerolog.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Warn().Msg("SEED_ADMIN_EMAIL or SEED_ADMIN_PASSWORD not set, skipping admin")
		return nil
	}

	_, err := users.GetByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		log.Info().Str("email", cfg.AdminEmail).Msg("admin already exists")
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := &domain.User{
		ID:           uuid.New(),
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	log.Info().Str("email", admin.Email).Msg("admin created")
	return nil
}
