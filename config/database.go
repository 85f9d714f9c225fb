package config

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/andrewpaige1/nodecanvas-api/models"
)

// Connect opens the project store and runs migrations. DB_URL selects
// postgres; without it a local sqlite file keeps the editor fully usable
// offline. The handle is returned rather than held in a package global so
// callers own their wiring.
func Connect() (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	if dbURL := os.Getenv("DB_URL"); dbURL != "" {
		db, err = gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	} else {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "nodecanvas.db"
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Project{}); err != nil {
		return nil, err
	}

	return db, nil
}
