package env

const (
	EnvHttpPort = "HTTP_PORT"

	EnvDatabaseHost     = "DB_HOST"
	EnvDatabasePort     = "DB_PORT"
	EnvDatabaseUser     = "DB_USER"
	EnvDatabasePassword = "DB_PASSWORD"
	EnvDatabaseName     = "DB_NAME"
	EnvDatabaseSSL      = "DB_SSL"

	EnvJwtSecret = "JWT_SECRET"

	EnvAdministrator   = "ADMIN_ACCOUNT"
	EnvAdminPassword   = "ADMIN_PASSWORD"
	EnvRedeemPolicy    = "REDEEM_POLICY"
	EnvCatalogSeedPath = "CATALOG_SEED_PATH"

	EnvRateLimitRPS   = "RATE_LIMIT_RPS"
	EnvRateLimitBurst = "RATE_LIMIT_BURST"

	EnvJournalBuffer = "JOURNAL_BUFFER"
)
