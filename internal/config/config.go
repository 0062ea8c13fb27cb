package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Goal store backends.
const (
	GoalStoreFile  = "file"
	GoalStoreRedis = "redis"
)

// Config holds application configuration
type Config struct {
	// Server
	Env       string
	Port      string
	StaticDir string

	// Database
	DBDriver      string
	DBPath        string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	MigrationsDir string

	// Dashboard
	DefaultOwnerID uint
	MonthlyIncome  decimal.Decimal

	// Goals
	GoalStore     string
	GoalsDir      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Env:       getEnv("ENV", "development"),
		Port:      getEnv("PORT", "3000"),
		StaticDir: getEnv("STATIC_DIR", "public"),

		// Database
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBPath:        getEnv("DB_PATH", "wealthwise.db"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "wealthwise"),
		DBPassword:    getEnv("DB_PASSWORD", "wealthwise"),
		DBName:        getEnv("DB_NAME", "wealthwise"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),

		// Goals
		GoalStore:     getEnv("GOAL_STORE", GoalStoreFile),
		GoalsDir:      getEnv("GOALS_DIR", "."),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}

	ownerStr := getEnv("DEFAULT_OWNER_ID", "1")
	owner, err := strconv.ParseUint(ownerStr, 10, 32)
	if err != nil || owner == 0 {
		log.Printf("Warning: invalid DEFAULT_OWNER_ID value '%s', falling back to 1\n", ownerStr)
		owner = 1
	}
	config.DefaultOwnerID = uint(owner)

	// The dashboard has no income source yet; this is the fixed placeholder.
	incomeStr := getEnv("MONTHLY_INCOME", "5000")
	income, err := decimal.NewFromString(incomeStr)
	if err != nil {
		log.Printf("Warning: invalid MONTHLY_INCOME value '%s', falling back to 5000\n", incomeStr)
		income = decimal.NewFromInt(5000)
	}
	config.MonthlyIncome = income

	redisDBStr := getEnv("REDIS_DB", "0")
	redisDB, err := strconv.Atoi(redisDBStr)
	if err != nil {
		log.Printf("Warning: invalid REDIS_DB value '%s', falling back to 0\n", redisDBStr)
		redisDB = 0
	}
	config.RedisDB = redisDB

	return config, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
