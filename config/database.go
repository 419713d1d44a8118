package config

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fraternos-backend/internal/model"
)

// ConnectDB opens the configured database and migrates the event table.
// Sqlite is the default so the tool runs off a single file at the venue;
// mysql serves shared deployments.
func ConnectDB(cfg Config) *gorm.DB {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dialector = mysql.Open(cfg.DBDSN)
	default:
		dialector = sqlite.Open(cfg.DBDSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		logrus.Fatalf("database connection failed: %v", err)
	}

	if err := db.AutoMigrate(&model.AttendanceEvent{}); err != nil {
		logrus.Fatalf("database migration failed: %v", err)
	}

	return db
}
