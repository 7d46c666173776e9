package database

import (
	"codeventure_gateway/internal/config"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// InitDB opens the local sqlite database backing the credential store.
// The file is created on first use next to the binary unless configured
// elsewhere.
func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Local database opened at", cfg.Path)
	return db, nil
}
