package bootstrap

import (
	"errors"

	"github.com/Lexv0lk/token-store/internal/pkg/database"
	"github.com/Lexv0lk/token-store/internal/pkg/env"
	"github.com/Lexv0lk/token-store/internal/token/domain"
	"github.com/Lexv0lk/token-store/internal/token/infrastructure/postgres"
)

type LedgerConfig struct {
	DbSettings database.PostgresSettings
	HttpPort   string
	JwtSecret  string

	Administrator   domain.Address
	AdminPassword   string
	RedeemPolicy    domain.RedeemPolicy
	CatalogSeedPath string

	RateLimitRPS   float64
	RateLimitBurst int
	JournalBuffer  int
}

func DefaultLedgerConfig() LedgerConfig {
	return LedgerConfig{
		DbSettings: database.PostgresSettings{
			User:       "admin",
			Password:   "password",
			Host:       "localhost",
			Port:       "5432",
			DBName:     "token_store_db",
			SSlEnabled: false,
		},
		HttpPort:       ":8080",
		Administrator:  "admin",
		RedeemPolicy:   domain.RedeemBurn,
		RateLimitRPS:   50,
		RateLimitBurst: 100,
		JournalBuffer:  postgres.DefaultJournalBuffer,
	}
}

// LoadLedgerConfig overlays environment variables on DefaultLedgerConfig.
func LoadLedgerConfig() (LedgerConfig, error) {
	cfg := DefaultLedgerConfig()

	env.TrySetFromEnv(env.EnvDatabaseHost, &cfg.DbSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &cfg.DbSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &cfg.DbSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &cfg.DbSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &cfg.DbSettings.DBName)
	env.TrySetFromEnv(env.EnvHttpPort, &cfg.HttpPort)
	env.TrySetFromEnv(env.EnvJwtSecret, &cfg.JwtSecret)
	env.TrySetFromEnv(env.EnvCatalogSeedPath, &cfg.CatalogSeedPath)
	env.TrySetFromEnv(env.EnvAdminPassword, &cfg.AdminPassword)

	administrator := string(cfg.Administrator)
	env.TrySetFromEnv(env.EnvAdministrator, &administrator)
	cfg.Administrator = domain.Address(administrator)

	policy := string(cfg.RedeemPolicy)
	env.TrySetFromEnv(env.EnvRedeemPolicy, &policy)
	parsedPolicy, err := domain.ParseRedeemPolicy(policy)
	if err != nil {
		return LedgerConfig{}, err
	}
	cfg.RedeemPolicy = parsedPolicy

	err = errors.Join(
		env.TrySetBoolFromEnv(env.EnvDatabaseSSL, &cfg.DbSettings.SSlEnabled),
		env.TrySetFloatFromEnv(env.EnvRateLimitRPS, &cfg.RateLimitRPS),
		env.TrySetIntFromEnv(env.EnvRateLimitBurst, &cfg.RateLimitBurst),
		env.TrySetIntFromEnv(env.EnvJournalBuffer, &cfg.JournalBuffer),
	)
	if err != nil {
		return LedgerConfig{}, err
	}

	if cfg.JwtSecret == "" {
		return LedgerConfig{}, errors.New(env.EnvJwtSecret + " must be set")
	}
	if err := domain.ValidateAddress(cfg.Administrator, env.EnvAdministrator); err != nil {
		return LedgerConfig{}, err
	}
	if cfg.AdminPassword == "" {
		return LedgerConfig{}, errors.New(env.EnvAdminPassword + " must be set")
	}

	return cfg, nil
}
