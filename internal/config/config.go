package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rosered/backend/internal/kvstore"
)

type Config struct {
	SERVER_PORT  int
	DATABASE_URL string
	DB_PATH      string
	LOG_LEVEL    string

	KAFKA_ADDRESS string

	ES_URL      string
	ES_USER     string
	ES_PASSWORD string

	AUTH_HASH_PASSWORDS bool
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		SERVER_PORT:  EnvIntDefault("SERVER_PORT", 8080),
		DATABASE_URL: os.Getenv("DATABASE_URL"),
		DB_PATH:      EnvDefault("DB_PATH", "rosered.db"),
		LOG_LEVEL:    EnvDefault("LOG_LEVEL", "info"),

		KAFKA_ADDRESS: os.Getenv("KAFKA_ADDRESS"),

		ES_URL:      os.Getenv("ES_URL"),
		ES_USER:     os.Getenv("ES_USER"),
		ES_PASSWORD: os.Getenv("ES_PASSWORD"),

		AUTH_HASH_PASSWORDS: EnvBoolDefault("AUTH_HASH_PASSWORDS", false),
	}

	return config, nil
}

// InitDB opens postgres when DATABASE_URL is set, otherwise a local sqlite
// file — the single-instance store the site was built around.
func InitDB(cfg *Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	if cfg.DATABASE_URL != "" {
		db, err = gorm.Open(postgres.Open(cfg.DATABASE_URL), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.DB_PATH), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}
	if err := db.AutoMigrate(&kvstore.Record{}); err != nil {
		return nil, fmt.Errorf("не удалось выполнить миграцию: %w", err)
	}
	return db, nil
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func EnvBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
