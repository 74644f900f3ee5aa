package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                       string
	FirebaseProject            string
	ServiceAccountJSON         string
	ServiceAccountPath         string
	Environment                string
	CORSAllowOrigins           []string
	RecycleRetentionDays       int
	RecycleSweepSchedule       string
	FeedbackRateLimitPerMinute int
}

func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	config := &Config{
		Port:                       getEnv("PORT", "5000"),
		FirebaseProject:            getEnv("FIREBASE_PROJECT_ID", ""),
		ServiceAccountJSON:         getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),
		ServiceAccountPath:         getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", "./serviceAccountKey.json"),
		Environment:                getEnv("ENVIRONMENT", "development"),
		CORSAllowOrigins:           getEnvAsList("CORS_ALLOW_ORIGINS", []string{"*"}),
		RecycleRetentionDays:       getEnvAsInt("RECYCLE_RETENTION_DAYS", 30),
		RecycleSweepSchedule:       getEnv("RECYCLE_SWEEP_SCHEDULE", ""),
		FeedbackRateLimitPerMinute: getEnvAsInt("FEEDBACK_RATE_LIMIT", 30),
	}

	if config.RecycleRetentionDays <= 0 {
		config.RecycleRetentionDays = 30
	}

	return config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(strings.TrimSpace(value))
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	var items []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
