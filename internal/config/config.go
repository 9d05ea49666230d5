package config

import (
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config carries the environment-driven wiring of the store and cache.
type Config struct {
	DBDriver  string // "sqlite" or "postgres"
	DBPath    string // sqlite database file
	DBUrl     string // postgres DSN
	RedisAddr string // empty disables the redis archive text cache
}

func LoadConfig() *Config {
	return &Config{
		DBDriver:  getEnv("BOOKSTORE_DB_DRIVER", "sqlite"),
		DBPath:    getEnv("BOOKSTORE_DB_PATH", "./.tmp/bookstore.db"),
		DBUrl:     os.Getenv("BOOKSTORE_DB_URL"),
		RedisAddr: os.Getenv("BOOKSTORE_REDIS_ADDR"),
	}
}

// GetDb opens the configured database.
func GetDb(cnf *Config) *gorm.DB {
	var db *gorm.DB
	var err error

	switch cnf.DBDriver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(cnf.DBUrl), &gorm.Config{})
	default:
		if mkerr := os.MkdirAll(filepath.Dir(cnf.DBPath), os.ModePerm); mkerr != nil {
			logrus.Fatalf("error creating database directory: %v", mkerr)
		}
		db, err = gorm.Open(sqlite.Open(cnf.DBPath), &gorm.Config{})
	}

	if err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}

	return db
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
