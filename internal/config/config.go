package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	Port       string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	SeedDB     bool
}

// Load reads configuration from the environment, pulling in a .env file
// first when one is present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:        getEnv("APP_ENV", "development"),
		Port:       getEnv("PORT", "8080"),
		DBHost:     getEnv("POSTGRES_HOST", "localhost"),
		DBUser:     getEnv("POSTGRES_USER", "cornerstore"),
		DBPassword: getEnv("POSTGRES_PASSWORD", "cornerstore"),
		DBName:     getEnv("POSTGRES_DB", "cornerstore"),
		DBPort:     getEnv("DB_PORT", "5432"),
		SeedDB:     getEnv("SEED_DB", "false") == "true",
	}
}

func getEnv(key, fallback string) string {

	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return fallback
}
