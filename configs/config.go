package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration. It is constructed once at
// startup and read-only afterwards.
type Config struct {
	Addr          string
	DbConfig      DbConfig
	AuthForward   bool
	Denylist      []string
	LogPathPrefix string
	TicketBaseURL string
	QueryTimeout  time.Duration
	ReadOnly      bool
	RedisAddr     string
	AuditKey      string
	AuditMax      int64
}

// DbConfig holds database-related configuration. PbaDatabase and
// ProdDatabase are the two addressable targets; the rest is shared.
type DbConfig struct {
	Server       string
	Port         int
	Dialect      string
	User         string
	Password     string
	PbaDatabase  string
	ProdDatabase string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables only")
	}

	return &Config{
		Addr: getEnv("ADDR", ":6891"),
		DbConfig: DbConfig{
			Server:       os.Getenv("DB_SERVER"),
			Port:         getEnvInt("DB_PORT", 1433),
			Dialect:      getEnv("DB_DIALECT", "mssql"),
			User:         os.Getenv("DB_USER"),
			Password:     os.Getenv("DB_PASSWORD"),
			PbaDatabase:  os.Getenv("DB_PBA"),
			ProdDatabase: os.Getenv("DB_PROD"),
		},
		AuthForward:   getEnvBool("AUTH_FORWARD", false),
		Denylist:      splitList(os.Getenv("DENYLIST")),
		LogPathPrefix: getEnv("LOG_PATH_PREFIX", `C:\xampp\htdocs\en-trega\`),
		TicketBaseURL: os.Getenv("TICKET_BASE_URL"),
		QueryTimeout:  time.Duration(getEnvInt("QUERY_TIMEOUT_MS", 30000)) * time.Millisecond,
		ReadOnly:      getEnvBool("READ_ONLY", false),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		AuditKey:      getEnv("AUDIT_KEY", "sql-gateway:audit"),
		AuditMax:      int64(getEnvInt("AUDIT_MAX", 1000)),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid %s value: %v. Using default %d.", key, value, fallback)
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Invalid %s value: %v. Using default %t.", key, value, fallback)
		return fallback
	}
	return parsed
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
