package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string

	DBDriver          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	AutoMigrate       bool

	SaltRound        int
	BureauIDAttempts int

	UploadRoot   string
	MaxDocuments int
	BodyLimitMB  int

	JanitorSchedule string // cron spec, empty disables the upload janitor
	JanitorGrace    time.Duration
}

// AppConfig is the configuration loaded by the entrypoint
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = FromEnv()

	if AppConfig.DBName == "" {
		log.Println("Warning: DB_NAME is empty. Update it in your environment.")
	}

	return AppConfig
}

// FromEnv builds a Config from the current process environment only
func FromEnv() *Config {
	return &Config{
		Port: getEnv("PORT", "5000"),

		DBDriver:          strings.ToLower(getEnv("DB_DRIVER", "mysql")),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", ""),
		DBUser:            getEnv("DB_USER", "root"),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBName:            getEnv("DB_NAME", ""),
		DBMaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 0),
		AutoMigrate:       getEnvBool("DB_AUTO_MIGRATE", false),

		SaltRound:        getEnvInt("SALT_ROUND", 10),
		BureauIDAttempts: getEnvInt("BUREAU_ID_ATTEMPTS", 5),

		UploadRoot:   getEnv("UPLOAD_ROOT", "."),
		MaxDocuments: getEnvInt("MAX_DOCUMENTS", 10),
		BodyLimitMB:  getEnvInt("BODY_LIMIT_MB", 20),

		JanitorSchedule: getEnvAllowEmpty("JANITOR_SCHEDULE", "@every 6h"),
		JanitorGrace:    getEnvDuration("JANITOR_GRACE", 24*time.Hour),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAllowEmpty returns the default only when the variable is unset, so an
// explicitly empty value can switch a feature off.
func getEnvAllowEmpty(key, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return strings.TrimSpace(value)
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to duration: %v", key, err)
		return defaultValue
	}
	return d
}
