package config

import (
	"dentalbridge-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Enabled:  utils.GetEnvBool("MONGODB_ENABLED", false),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "dentalbridge"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Enabled:  utils.GetEnvBool("REDIS_ENABLED", false),
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1.0"),
			Name:            utils.GetEnvString("APP_NAME", "dentalbridge-service"),
			Transport:       utils.GetEnvString("APP_TRANSPORT", "http"),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 10),
		},
		OpenDental: OpenDental{
			BaseURL:              utils.GetEnvString("OPENDENTAL_BASE_URL", "http://localhost:8006"),
			TimeoutSeconds:       utils.GetEnvInt("OPENDENTAL_TIMEOUT_SECONDS", 30),
			ReportTimeoutSeconds: utils.GetEnvInt("OPENDENTAL_REPORT_TIMEOUT_SECONDS", 1800),
		},
		MCP: MCP{
			AuthSecret: utils.GetEnvString("MCP_AUTH_SECRET", ""),
		},
		RateLimit: RateLimit{
			PerToolPerMinute: utils.GetEnvInt("RATE_LIMIT_PER_TOOL_PER_MINUTE", 60),
		},
		Audit: Audit{
			Enabled: utils.GetEnvBool("AUDIT_ENABLED", false),
		},
	}
}
