package db

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskboard/internal/config"
)

// Open connects to the relational store. DATABASE_URL selects postgres;
// otherwise a local sqlite file (DB_PATH) is used, which is also what the
// tests run against via an in-memory DSN.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.DBPath)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

// Migrate brings the schema up to date. AutoMigrate is idempotent, so this
// runs unconditionally at startup.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&UserModel{}, &TaskModel{})
}
