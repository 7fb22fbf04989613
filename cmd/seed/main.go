// Command seed prepares a development database: it migrates the schema,
// creates the default user and inserts the starter categories and mechanics.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"bgcatalog/backend/internal/config"
	"bgcatalog/backend/internal/database"
	"bgcatalog/backend/internal/logger"
	"bgcatalog/backend/pkg/jwt"
)

func main() {
	email := flag.String("email", "dev@example.com", "email of the default user")
	username := flag.String("username", "dev", "username of the default user")
	password := flag.String("password", "password", "password of the default user")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "lifetime of the printed development token")
	flag.Parse()

	cfg, err := config.Load(".")
	if err != nil {
		panic("Configuration load failed: " + err.Error())
	}
	log := logger.New(cfg.AppEnv, cfg.LogLevel, os.Stderr)
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("Configuration validation failed")
		os.Exit(1)
	}

	seed := database.SeedUser{Email: *email, Username: *username, Password: *password}
	if err := run(cfg, log, seed, *tokenTTL); err != nil {
		log.Error().Err(err).Msg("Seeding failed")
		os.Exit(1)
	}
}

func run(cfg *config.Config, log zerolog.Logger, seed database.SeedUser, tokenTTL time.Duration) error {
	id, err := cfg.DefaultCaller()
	if err != nil {
		return err
	}
	seed.ID = id

	db, err := database.Connect(cfg.DatabaseURL, logger.ForGorm(log, cfg.DBLogLevel))
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := database.Migrate(db); err != nil {
		return err
	}

	user, err := database.EnsureUser(db, seed)
	if err != nil {
		return err
	}
	log.Info().Str("user_id", user.ID.String()).Str("email", user.Email).Msg("Default user ready")

	if err := database.SeedTaxonomy(db); err != nil {
		return err
	}
	log.Info().
		Int("categories", len(database.DefaultCategories)).
		Int("mechanics", len(database.DefaultMechanics)).
		Msg("Taxonomy seeded")

	if cfg.JWTSecret == "" {
		log.Info().Msg("JWT_SECRET is not set, skipping development token")
		return nil
	}
	token, err := jwt.GenerateToken(cfg.JWTSecret, user.ID, tokenTTL)
	if err != nil {
		return fmt.Errorf("generate token: %w", err)
	}
	fmt.Println(token)
	return nil
}
