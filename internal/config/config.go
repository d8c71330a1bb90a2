package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Bot      BotConfig
	Catalog  CatalogConfig
	Session  SessionConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	NatsEnabled        bool
	RedisURL           string
}

// BotConfig is the static reply surface: who the bot says it is and the
// business thresholds baked into its answers.
type BotConfig struct {
	CompanyName       string
	BotName           string
	SupportContactURL string
	MinOrderFirst     int
	MinOrderRepeat    int
	EscalationEmailTo string
}

// CatalogConfig selects where product rows come from. Source is "json" or
// "postgres".
type CatalogConfig struct {
	Source   string
	JSONPath string
}

// SessionConfig selects the session store. Store is "memory" or "redis".
type SessionConfig struct {
	Store      string
	TTLMinutes int
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			NatsEnabled:        getEnv("NATS_ENABLED", "false") == "true",
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Bot: BotConfig{
			CompanyName:       getEnv("COMPANY_NAME", "Keel Toys"),
			BotName:           getEnv("BOT_NAME", "Keelie"),
			SupportContactURL: getEnv("SUPPORT_CONTACT_URL", "https://www.keeltoys.com/contact"),
			MinOrderFirst:     getEnvAsInt("MIN_ORDER_FIRST", 500),
			MinOrderRepeat:    getEnvAsInt("MIN_ORDER_REPEAT", 250),
			EscalationEmailTo: getEnv("ESCALATION_EMAIL_TO", ""),
		},
		Catalog: CatalogConfig{
			Source:   getEnv("CATALOG_SOURCE", "json"),
			JSONPath: getEnv("CATALOG_JSON_PATH", "data/catalog.json"),
		},
		Session: SessionConfig{
			Store:      getEnv("SESSION_STORE", "memory"),
			TTLMinutes: getEnvAsInt("SESSION_TTL_MINUTES", 60),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Keelie"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
